// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
)

// Configuration is the network configuration that operations and descriptions
// are validated against.
type Configuration interface {
	Supports(operation string) bool
	Successful(status string) (bool, error)
	Check(network identifier.Network) error
}

// Validator checks descriptions and operations for structural problems, so
// that matching only has to deal with well-formed input.
type Validator struct {
	config   Configuration
	validate *validator.Validate
}

// New creates a new validator for the given network configuration.
func New(config Configuration) *Validator {

	v := &Validator{
		config:   config,
		validate: newStructValidator(),
	}

	return v
}
