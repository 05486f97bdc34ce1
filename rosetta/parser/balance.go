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
	"context"
	"fmt"
	"math/big"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// BalanceChange is the net change of the balance of one currency for one
// account within a block.
type BalanceChange struct {
	Account    identifier.Account  `json:"account_identifier"`
	Currency   identifier.Currency `json:"currency"`
	Block      identifier.Block    `json:"block_identifier"`
	Difference string              `json:"difference"`
}

// SkipOperation returns whether an operation should be left out of balance
// changes: unsuccessful operations, operations without account or amount,
// and operations marked as exempt.
func (p *Parser) SkipOperation(op *object.Operation) (bool, error) {

	successful, err := p.statuses.Successful(op.Status)
	if err != nil {
		return false, fmt.Errorf("could not check operation status: %w", err)
	}
	if !successful {
		return true, nil
	}

	if op.AccountID == nil || op.Amount == nil {
		return true, nil
	}

	if p.cfg.ExemptFunc != nil && p.cfg.ExemptFunc(op) {
		return true, nil
	}

	return false, nil
}

// BalanceChanges sums the operations of a block into one balance change per
// account and currency, in order of first appearance. When the block is
// orphaned, the changes are negated so that they revert the block.
func (p *Parser) BalanceChanges(ctx context.Context, block object.Block, orphaned bool) ([]BalanceChange, error) {

	type entry struct {
		change *BalanceChange
		value  *big.Int
	}

	var entries []*entry
	buckets := make(map[uint64][]*entry)
	for _, tx := range block.Transactions {

		// Blocks can be large, so we don't want to keep going once the caller
		// has given up.
		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		for i := range tx.Operations {
			op := &tx.Operations[i]

			skip, err := p.SkipOperation(op)
			if err != nil {
				return nil, fmt.Errorf("could not check operation (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
			}
			if skip {
				continue
			}

			value, err := op.Amount.Int()
			if err != nil {
				return nil, fmt.Errorf("could not parse amount (transaction: %s, index: %d): %w", tx.ID.Hash, op.ID.Index, err)
			}
			if orphaned {
				value.Neg(value)
			}

			hash, err := key(op.AccountID, op.Amount.Currency)
			if err != nil {
				return nil, fmt.Errorf("could not compute balance key: %w", err)
			}

			var existing *entry
			for _, candidate := range buckets[hash] {
				if equalAccounts(&candidate.change.Account, op.AccountID) &&
					equalCurrencies(&candidate.change.Currency, &op.Amount.Currency) {
					existing = candidate
					break
				}
			}
			if existing != nil {
				existing.value.Add(existing.value, value)
				continue
			}

			created := &entry{
				change: &BalanceChange{
					Account:  *op.AccountID,
					Currency: op.Amount.Currency,
					Block:    block.ID,
				},
				value: value,
			}
			buckets[hash] = append(buckets[hash], created)
			entries = append(entries, created)
		}
	}

	changes := make([]BalanceChange, 0, len(entries))
	for _, e := range entries {
		e.change.Difference = e.value.String()
		changes = append(changes, *e.change)
	}

	p.log.Debug().
		Str("block", block.ID.Hash).
		Bool("orphaned", orphaned).
		Int("changes", len(changes)).
		Msg("computed balance changes")

	return changes, nil
}
