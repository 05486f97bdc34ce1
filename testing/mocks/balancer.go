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
	"context"
	"testing"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

type Balancer struct {
	BalanceChangesFunc func(ctx context.Context, block object.Block, orphaned bool) ([]parser.BalanceChange, error)
	FindExemptionsFunc func(account identifier.Account, currency identifier.Currency) []parser.BalanceExemption
}

func BaselineBalancer(t *testing.T) *Balancer {
	t.Helper()

	b := Balancer{
		BalanceChangesFunc: func(ctx context.Context, block object.Block, orphaned bool) ([]parser.BalanceChange, error) {
			return []parser.BalanceChange{}, nil
		},
		FindExemptionsFunc: func(account identifier.Account, currency identifier.Currency) []parser.BalanceExemption {
			return nil
		},
	}

	return &b
}

func (b *Balancer) BalanceChanges(ctx context.Context, block object.Block, orphaned bool) ([]parser.BalanceChange, error) {
	return b.BalanceChangesFunc(ctx, block, orphaned)
}

func (b *Balancer) FindExemptions(account identifier.Account, currency identifier.Currency) []parser.BalanceExemption {
	return b.FindExemptionsFunc(account, currency)
}
