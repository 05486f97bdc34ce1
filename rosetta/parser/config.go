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

package parser

import (
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// DefaultConfig is the default configuration for the Parser.
var DefaultConfig = Config{
	ExemptFunc: nil,
	Exemptions: nil,
}

// Config contains the optional parameters of the Parser.
type Config struct {
	// ExemptFunc marks operations that should not be considered when
	// computing balance changes, such as fee operations that a network
	// reports but does not reflect in balances.
	ExemptFunc func(*object.Operation) bool

	// Exemptions are the balance exemptions of the network, used to look up
	// which accounts are allowed to have balances that do not follow from
	// their operations.
	Exemptions []BalanceExemption
}

// Option is an option that can be given to the parser to configure optional
// parameters on initialization.
type Option func(*Config)

// WithExemptFunc sets the function that marks operations as exempt from
// balance changes.
func WithExemptFunc(exempt func(*object.Operation) bool) Option {
	return func(cfg *Config) {
		cfg.ExemptFunc = exempt
	}
}

// WithExemptions sets the balance exemptions of the network.
func WithExemptions(exemptions ...BalanceExemption) Option {
	return func(cfg *Config) {
		cfg.Exemptions = append(cfg.Exemptions, exemptions...)
	}
}
