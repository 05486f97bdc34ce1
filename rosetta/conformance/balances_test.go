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


package conformance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-conformance/rosetta/conformance"
	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

func TestRunner_Balances(t *testing.T) {

	deposits := parser.BalanceExemption{
		Currency: &mocks.GenericCurrency,
		Type:     parser.ExemptionGreaterOrEqual,
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		balance := parser.New(mocks.NoopLogger, mocks.BaselineStatuses(t), parser.WithExemptions(deposits))
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		blocks := []conformance.Block{
			{Block: mocks.GenericBlock(mocks.GenericTransfer("100")...)},
		}

		reports, err := runner.Balances(context.Background(), balance, blocks)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, "block42", reports[0].Block.Hash)
		assert.False(t, reports[0].Orphaned)

		require.Len(t, reports[0].Groups, 1)
		assert.Len(t, reports[0].Groups[0].Operations, 2)
		assert.Equal(t, mocks.GenericOperationType, reports[0].Groups[0].Type)

		require.Len(t, reports[0].Entries, 2)
		assert.Equal(t, mocks.GenericSender, reports[0].Entries[0].Account)
		assert.Equal(t, "-100", reports[0].Entries[0].Difference)
		assert.Nil(t, reports[0].Entries[0].Exemption)
		assert.Equal(t, mocks.GenericReceiver, reports[0].Entries[1].Account)
		assert.Equal(t, "100", reports[0].Entries[1].Difference)
		require.NotNil(t, reports[0].Entries[1].Exemption)
		assert.Equal(t, parser.ExemptionGreaterOrEqual, reports[0].Entries[1].Exemption.Type)
	})

	t.Run("orphaned block", func(t *testing.T) {
		t.Parallel()

		balance := parser.New(mocks.NoopLogger, mocks.BaselineStatuses(t), parser.WithExemptions(deposits))
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		blocks := []conformance.Block{
			{Block: mocks.GenericBlock(mocks.GenericTransfer("100")...), Orphaned: true},
		}

		reports, err := runner.Balances(context.Background(), balance, blocks)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.True(t, reports[0].Orphaned)
		require.Len(t, reports[0].Entries, 2)
		assert.Equal(t, "100", reports[0].Entries[0].Difference)
		assert.NotNil(t, reports[0].Entries[0].Exemption)
		assert.Equal(t, "-100", reports[0].Entries[1].Difference)
		assert.Nil(t, reports[0].Entries[1].Exemption)
	})

	t.Run("no blocks", func(t *testing.T) {
		t.Parallel()

		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))

		reports, err := runner.Balances(context.Background(), mocks.BaselineBalancer(t), nil)

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("handles balance change failure", func(t *testing.T) {
		t.Parallel()

		balance := mocks.BaselineBalancer(t)
		balance.BalanceChangesFunc = func(context.Context, object.Block, bool) ([]parser.BalanceChange, error) {
			return nil, mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		blocks := []conformance.Block{{Block: mocks.GenericBlock()}}

		_, err := runner.Balances(context.Background(), balance, blocks)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid difference", func(t *testing.T) {
		t.Parallel()

		balance := mocks.BaselineBalancer(t)
		balance.BalanceChangesFunc = func(context.Context, object.Block, bool) ([]parser.BalanceChange, error) {
			change := parser.BalanceChange{
				Account:    mocks.GenericSender,
				Currency:   mocks.GenericCurrency,
				Difference: "ten",
			}
			return []parser.BalanceChange{change}, nil
		}
		balance.FindExemptionsFunc = func(identifier.Account, identifier.Currency) []parser.BalanceExemption {
			return []parser.BalanceExemption{deposits}
		}
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		blocks := []conformance.Block{{Block: mocks.GenericBlock()}}

		_, err := runner.Balances(context.Background(), balance, blocks)

		assert.ErrorAs(t, err, &failure.InvalidAmount{})
	})

	t.Run("handles canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		balance := parser.New(mocks.NoopLogger, mocks.BaselineStatuses(t))
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		blocks := []conformance.Block{
			{Block: mocks.GenericBlock(mocks.GenericTransfer("100")...)},
		}

		_, err := runner.Balances(ctx, balance, blocks)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
