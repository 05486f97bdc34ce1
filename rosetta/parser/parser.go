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
	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// Statuses is the table of operation statuses of a network.
type Statuses interface {
	Successful(status string) (bool, error)
}

// Parser checks observed operations against descriptions and intents, and
// derives balance changes from blocks. The checks that do not depend on the
// network's status table are also available as package functions.
type Parser struct {
	log      zerolog.Logger
	cfg      Config
	statuses Statuses
}

// New creates a new parser using the given status table.
func New(log zerolog.Logger, statuses Statuses, opts ...Option) *Parser {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	p := Parser{
		log:      log.With().Str("component", "parser").Logger(),
		cfg:      cfg,
		statuses: statuses,
	}

	return &p
}

// MatchOperations matches the operations against the descriptions, logging
// the reason when they do not match.
func (p *Parser) MatchOperations(descriptions *Descriptions, operations []*object.Operation) ([]*Match, error) {
	matches, err := MatchOperations(descriptions, operations)
	if failure.IsMismatch(err) {
		p.log.Debug().Int("operations", len(operations)).Err(err).Msg("operations do not match descriptions")
	}
	return matches, err
}

// ExpectedSigners checks the signers against the signing payloads, logging
// the accounts that did not sign.
func (p *Parser) ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error {
	err := ExpectedSigners(payloads, signers)
	if failure.IsMismatch(err) {
		p.log.Debug().Int("payloads", len(payloads)).Int("signers", len(signers)).Err(err).Msg("signers do not match signing payloads")
	}
	return err
}
