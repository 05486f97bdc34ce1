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

type Checker struct {
	MatchOperationsFunc    func(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error)
	ExpectedOperationsFunc func(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error
	ExpectedSignersFunc    func(payloads []object.SigningPayload, signers []identifier.Account) error
}

func BaselineChecker(t *testing.T) *Checker {
	t.Helper()

	c := Checker{
		MatchOperationsFunc: func(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error) {
			return []*parser.Match{}, nil
		},
		ExpectedOperationsFunc: func(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {
			return nil
		},
		ExpectedSignersFunc: func(payloads []object.SigningPayload, signers []identifier.Account) error {
			return nil
		},
	}

	return &c
}

func (c *Checker) MatchOperations(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error) {
	return c.MatchOperationsFunc(descriptions, operations)
}

func (c *Checker) ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {
	return c.ExpectedOperationsFunc(intent, observed, errExtra, confirmSuccess)
}

func (c *Checker) ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error {
	return c.ExpectedSignersFunc(payloads, signers)
}
