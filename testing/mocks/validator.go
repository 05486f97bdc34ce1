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

package mocks

import (
	"testing"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

type Validator struct {
	DescriptionsFunc func(descriptions parser.Descriptions) error
	OperationsFunc   func(operations []*object.Operation) error
	NetworkFunc      func(network identifier.Network) error
}

func BaselineValidator(t *testing.T) *Validator {
	t.Helper()

	v := Validator{
		DescriptionsFunc: func(descriptions parser.Descriptions) error {
			return nil
		},
		OperationsFunc: func(operations []*object.Operation) error {
			return nil
		},
		NetworkFunc: func(network identifier.Network) error {
			return nil
		},
	}

	return &v
}

func (v *Validator) Descriptions(descriptions parser.Descriptions) error {
	return v.DescriptionsFunc(descriptions)
}

func (v *Validator) Operations(operations []*object.Operation) error {
	return v.OperationsFunc(operations)
}

func (v *Validator) Network(network identifier.Network) error {
	return v.NetworkFunc(network)
}
