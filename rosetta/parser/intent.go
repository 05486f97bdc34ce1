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
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// ExpectedOperation returns an error if the observed operation differs from
// the intended one. Identifiers, related operations, status and metadata are
// ignored; only type, account and amount are compared.
func ExpectedOperation(intent *object.Operation, observed *object.Operation) error {

	if intent == nil || observed == nil {
		return failure.IntentMismatch{
			Description: failure.NewDescription("operation is missing"),
		}
	}

	if intent.Type != observed.Type {
		return failure.IntentMismatch{
			Description: failure.NewDescription("intended type did not match observed type",
				failure.WithString("intent", intent.Type),
				failure.WithString("observed", observed.Type),
			),
		}
	}

	if !equalAccounts(intent.AccountID, observed.AccountID) {
		return failure.IntentMismatch{
			Description: failure.NewDescription("intended account did not match observed account",
				failure.WithString("intent", accountString(intent.AccountID)),
				failure.WithString("observed", accountString(observed.AccountID)),
			),
		}
	}

	if !equalAmounts(intent.Amount, observed.Amount) {
		return failure.IntentMismatch{
			Description: failure.NewDescription("intended amount did not match observed amount",
				failure.WithString("intent", amountString(intent.Amount)),
				failure.WithString("observed", amountString(observed.Amount)),
			),
		}
	}

	return nil
}

// ExpectedOperations returns an error if the intended operations were not all
// observed. Intents are processed in order, and each one consumes the first
// unconsumed observed operation that is equal to it. When confirmSuccess is
// set, observed operations must also have a successful status to be consumed;
// statuses missing from the status table are an error. When errExtra is set,
// observed operations left unconsumed are reported as well.
func (p *Parser) ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {

	consumed := make([]bool, len(observed))
	var missing, unsuccessful, extra []int
	for i, want := range intent {
		if want == nil {
			continue
		}

		found := false
		for j, have := range observed {
			if consumed[j] || have == nil {
				continue
			}
			if ExpectedOperation(want, have) != nil {
				continue
			}

			if confirmSuccess {
				ok, err := p.statuses.Successful(have.Status)
				if err != nil {
					return fmt.Errorf("could not check status of observed operation %d: %w", j, err)
				}
				if !ok {
					unsuccessful = append(unsuccessful, j)
					continue
				}
			}

			consumed[j] = true
			found = true
			break
		}

		if !found {
			missing = append(missing, i)
		}
	}

	if errExtra {
		for j, have := range observed {
			if have != nil && !consumed[j] {
				extra = append(extra, j)
			}
		}
	}

	var merr *multierror.Error
	for _, i := range missing {
		merr = multierror.Append(merr, fmt.Errorf("could not find observed operation for intent %d (type: %s)", i, intent[i].Type))
	}
	for _, j := range extra {
		merr = multierror.Append(merr, fmt.Errorf("found extra observed operation %d (type: %s)", j, observed[j].Type))
	}
	if merr == nil {
		return nil
	}

	p.log.Debug().
		Ints("missing", missing).
		Ints("extra", extra).
		Ints("unsuccessful", unsuccessful).
		Msg("observed operations do not match intent")

	return failure.IntentMismatch{
		Description: failure.NewDescription("observed operations do not match intent",
			failure.WithInts("missing", missing...),
			failure.WithInts("extra", extra...),
			failure.WithInts("unsuccessful", unsuccessful...),
			failure.WithErr(merr.ErrorOrNil()),
		),
	}
}

// ExpectedSigners returns an error if the account of any signing payload is
// not among the observed signers. Several payloads may share an account, and
// observed signers that no payload asked for are tolerated.
func ExpectedSigners(payloads []object.SigningPayload, observed []identifier.Account) error {

	var missing []string
	seen := make(map[uint64][]*identifier.Account)
	for i, payload := range payloads {
		account := payload.AccountID
		if account == nil {
			return fmt.Errorf("signing payload %d has no account identifier", i)
		}

		hash, err := key(account)
		if err != nil {
			return fmt.Errorf("could not compute key of signing payload %d: %w", i, err)
		}
		if containsAccount(seen[hash], account) {
			continue
		}
		seen[hash] = append(seen[hash], account)

		found := false
		for j := range observed {
			if equalAccounts(account, &observed[j]) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, account.String())
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return failure.MissingSigner{
		Description: failure.NewDescription("signing payload accounts were not observed as signers",
			failure.WithStrings("missing", missing...),
			failure.WithInt("observed", len(observed)),
		),
		Address: missing[0],
	}
}

func containsAccount(accounts []*identifier.Account, account *identifier.Account) bool {
	for _, candidate := range accounts {
		if equalAccounts(candidate, account) {
			return true
		}
	}
	return false
}

func accountString(account *identifier.Account) string {
	if account == nil {
		return "<nil>"
	}
	return account.String()
}

func amountString(amount *object.Amount) string {
	if amount == nil {
		return "<nil>"
	}
	return amount.Value + " " + amount.Currency.Symbol
}
