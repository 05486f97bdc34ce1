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

package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

func TestParser_BalanceChanges(t *testing.T) {

	sender := mocks.GenericSender
	receiver := mocks.GenericReceiver

	block := func() object.Block {
		transfer := mocks.GenericTransfer("100")
		fee := mocks.GenericOperation(2, sender, "-1")
		fee.Type = "FEE"
		refund := mocks.GenericOperation(3, sender, "1")
		refund.Status = "FAILURE"
		note := mocks.GenericOperation(4, sender, "0")
		note.Amount = nil
		return mocks.GenericBlock(transfer[0], transfer[1], fee, refund, note)
	}

	statuses := mocks.BaselineStatuses(t)
	statuses.SuccessfulFunc = func(status string) (bool, error) {
		return status == mocks.GenericStatus, nil
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.NoopLogger, statuses)

		changes, err := p.BalanceChanges(context.Background(), block(), false)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, sender, changes[0].Account)
		assert.Equal(t, "-101", changes[0].Difference)
		assert.Equal(t, mocks.GenericCurrency, changes[0].Currency)
		assert.Equal(t, "block42", changes[0].Block.Hash)
		assert.Equal(t, receiver, changes[1].Account)
		assert.Equal(t, "100", changes[1].Difference)
	})

	t.Run("orphaned block", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.NoopLogger, statuses)

		changes, err := p.BalanceChanges(context.Background(), block(), true)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, "101", changes[0].Difference)
		assert.Equal(t, "-100", changes[1].Difference)
	})

	t.Run("exempt operations", func(t *testing.T) {
		t.Parallel()

		exempt := func(op *object.Operation) bool {
			return op.Type == "FEE"
		}
		p := parser.New(mocks.NoopLogger, statuses, parser.WithExemptFunc(exempt))

		changes, err := p.BalanceChanges(context.Background(), block(), false)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, "-100", changes[0].Difference)
	})

	t.Run("separates sub-accounts and currencies", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.NoopLogger, statuses)

		staking := sender
		staking.SubAccount = &identifier.SubAccount{Address: "staking"}
		other := mocks.GenericOperation(1, sender, "3")
		other.Amount.Currency = identifier.Currency{Symbol: "ETH", Decimals: 18}

		b := mocks.GenericBlock(
			mocks.GenericOperation(0, sender, "5"),
			other,
			mocks.GenericOperation(2, staking, "7"),
			mocks.GenericOperation(3, sender, "5"),
		)

		changes, err := p.BalanceChanges(context.Background(), b, false)

		require.NoError(t, err)
		require.Len(t, changes, 3)
		assert.Equal(t, "10", changes[0].Difference)
		assert.Equal(t, "3", changes[1].Difference)
		assert.Equal(t, "7", changes[2].Difference)
		assert.Equal(t, staking, changes[2].Account)
	})

	t.Run("handles status lookup failure", func(t *testing.T) {
		t.Parallel()

		failing := mocks.BaselineStatuses(t)
		failing.SuccessfulFunc = func(string) (bool, error) {
			return false, mocks.GenericError
		}
		p := parser.New(mocks.NoopLogger, failing)

		_, err := p.BalanceChanges(context.Background(), block(), false)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles malformed amount", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.NoopLogger, statuses)
		b := mocks.GenericBlock(mocks.GenericOperation(0, sender, "ten"))

		_, err := p.BalanceChanges(context.Background(), b, false)

		assert.Error(t, err)
	})

	t.Run("handles canceled context", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.NoopLogger, statuses)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.BalanceChanges(ctx, block(), false)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
