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

package conformance

import (
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Suite is a set of cases that are all checked against the same operation
// descriptions. When a network is given, it must be the configured one.
// Blocks and balance exemptions are only used for balance reports.
type Suite struct {
	Network      *identifier.Network       `json:"network_identifier,omitempty"`
	Descriptions parser.Descriptions       `json:"descriptions"`
	Cases        []Case                    `json:"cases"`
	Blocks       []Block                   `json:"blocks,omitempty"`
	Exemptions   []parser.BalanceExemption `json:"balance_exemptions,omitempty"`
}

// Case is a single set of observed operations, optionally with the intent they
// were constructed from and the signers of the transaction. ExpectMatch states
// whether the case is supposed to conform.
type Case struct {
	Name        string                  `json:"name"`
	Operations  []*object.Operation     `json:"operations"`
	Intent      []*object.Operation     `json:"intent,omitempty"`
	Payloads    []object.SigningPayload `json:"signing_payloads,omitempty"`
	Signers     []identifier.Account    `json:"signers,omitempty"`
	ExpectMatch bool                    `json:"expect_match"`
}
