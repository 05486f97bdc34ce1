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
	"context"
	"fmt"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Block is a block of a suite whose operations are turned into balance
// changes. Orphaned blocks have their changes reverted.
type Block struct {
	Block    object.Block `json:"block"`
	Orphaned bool         `json:"orphaned,omitempty"`
}

// Balancer derives balance changes from blocks and looks up the balance
// exemptions of the network.
type Balancer interface {
	BalanceChanges(ctx context.Context, block object.Block, orphaned bool) ([]parser.BalanceChange, error)
	FindExemptions(account identifier.Account, currency identifier.Currency) []parser.BalanceExemption
}

// BalanceEntry is a balance change together with the exemption that allows
// it, if there is one.
type BalanceEntry struct {
	parser.BalanceChange
	Exemption *parser.BalanceExemption
}

// BalanceReport holds the operation groups and balance changes of one block.
type BalanceReport struct {
	Block    identifier.Block
	Orphaned bool
	Groups   []parser.OperationGroup
	Entries  []BalanceEntry
}

// Balances computes the balance changes of the given blocks in order.
func (r *Runner) Balances(ctx context.Context, balance Balancer, blocks []Block) ([]BalanceReport, error) {

	reports := make([]BalanceReport, 0, len(blocks))
	for _, b := range blocks {

		changes, err := balance.BalanceChanges(ctx, b.Block, b.Orphaned)
		if err != nil {
			return nil, fmt.Errorf("could not compute balance changes (block: %s): %w", b.Block.ID.Hash, err)
		}

		report := BalanceReport{
			Block:    b.Block.ID,
			Orphaned: b.Orphaned,
		}
		for _, tx := range b.Block.Transactions {
			report.Groups = append(report.Groups, parser.GroupOperations(tx)...)
		}

		for _, change := range changes {
			exemptions := balance.FindExemptions(change.Account, change.Currency)
			exemption, err := parser.MatchBalanceExemption(exemptions, change.Difference)
			if err != nil {
				return nil, fmt.Errorf("could not match balance exemptions (block: %s, account: %s): %w", b.Block.ID.Hash, change.Account, err)
			}
			report.Entries = append(report.Entries, BalanceEntry{
				BalanceChange: change,
				Exemption:     exemption,
			})
		}

		r.log.Debug().
			Str("block", b.Block.ID.Hash).
			Bool("orphaned", b.Orphaned).
			Int("groups", len(report.Groups)).
			Int("changes", len(report.Entries)).
			Msg("balance changes computed")

		reports = append(reports, report)
	}

	return reports, nil
}
