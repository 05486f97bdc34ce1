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
	"errors"
	"fmt"
	"math/big"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// Match contains all operations assigned to one slot, along with their parsed
// amounts. Amounts has the same length as Operations; an entry is nil when the
// corresponding operation has no amount.
type Match struct {
	Operations []*object.Operation
	Amounts    []*big.Int
}

// First returns the first operation and amount of the match. It is meant for
// slots that do not allow repeats, and is safe to call on a nil match.
func (m *Match) First() (*object.Operation, *big.Int) {
	if m == nil || len(m.Operations) == 0 {
		return nil, nil
	}
	return m.Operations[0], m.Amounts[0]
}

// Net returns the sum of all amounts of the match. Operations without amount
// can not be summed and result in an error.
func (m *Match) Net() (*big.Int, error) {
	net := new(big.Int)
	for i, amount := range m.Amounts {
		if amount == nil {
			return nil, failure.InvalidAmount{
				Description: failure.NewDescription("matched operation has no amount",
					failure.WithInt("operation", i),
				),
			}
		}
		net.Add(net, amount)
	}
	return net, nil
}

// MatchOperations assigns operations to the slots of the descriptions and
// returns one match per slot, in slot order. Unmatched optional slots are nil.
//
// Operations are processed in order and each one goes to the first slot that
// is still open and that it satisfies; a slot is open until its first match,
// or forever if it allows repeats. Assignments are never revisited. Nil
// operations are skipped.
//
// Malformed amounts and invalid group definitions result in structural
// failures. Operations that do not satisfy the descriptions result in
// failures for which failure.IsMismatch returns true. No partial result is
// ever returned.
func MatchOperations(descriptions *Descriptions, operations []*object.Operation) ([]*Match, error) {

	if descriptions == nil || len(descriptions.OperationDescriptions) == 0 {
		return nil, failure.InvalidDescriptions{
			Description: failure.NewDescription("no descriptions to match"),
		}
	}

	// Groups are checked before anything is matched, so that descriptions
	// which can never be evaluated fail regardless of the operations.
	err := checkGroupIndices(descriptions)
	if err != nil {
		return nil, err
	}

	slots := descriptions.OperationDescriptions
	matches := make([]*Match, len(slots))

	for i, op := range operations {
		if op == nil {
			continue
		}

		var amount *big.Int
		if op.Amount != nil {
			amount, err = op.Amount.Int()
			if err != nil {
				return nil, fmt.Errorf("could not parse amount of operation %d: %w", i, err)
			}
		}

		found, err := assign(slots, matches, op, amount)
		if err != nil {
			return nil, fmt.Errorf("could not match operation %d: %w", i, err)
		}
		if !found && descriptions.ErrUnmatched {
			return nil, failure.UnmatchedOperation{
				Description: failure.NewDescription("operation does not fit any open description",
					failure.WithString("type", op.Type),
				),
				Index: i,
			}
		}
	}

	for i, m := range matches {
		if m == nil && !slots[i].Optional {
			return nil, failure.UnmatchedDescription{
				Description: failure.NewDescription("no operation matched mandatory description"),
				Index:       i,
			}
		}
	}

	err = checkGroups(descriptions, matches)
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// assign adds the operation to the first open slot it satisfies.
func assign(slots []OperationDescription, matches []*Match, op *object.Operation, amount *big.Int) (bool, error) {
	for i := range slots {
		slot := &slots[i]
		if matches[i] != nil && !slot.AllowRepeats {
			continue
		}

		err := slot.check(op, amount)
		if errors.As(err, &mismatch{}) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("could not check description %d: %w", i, err)
		}

		if matches[i] == nil {
			matches[i] = &Match{}
		}
		matches[i].Operations = append(matches[i].Operations, op)
		matches[i].Amounts = append(matches[i].Amounts, amount)

		return true, nil
	}

	return false, nil
}
