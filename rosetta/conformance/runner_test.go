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

	"github.com/optakt/rosetta-conformance/rosetta/configuration"
	"github.com/optakt/rosetta-conformance/rosetta/conformance"
	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
	"github.com/optakt/rosetta-conformance/rosetta/validator"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

func genericSuite() *conformance.Suite {
	suite := conformance.Suite{
		Network:      &mocks.GenericNetwork,
		Descriptions: mocks.GenericDescriptions,
		Cases: []conformance.Case{
			{
				Name:        "transfer",
				Operations:  mocks.GenericTransfer("100"),
				Intent:      mocks.GenericTransfer("100"),
				Payloads:    mocks.GenericSigningPayloads(mocks.GenericSender),
				Signers:     []identifier.Account{mocks.GenericSender},
				ExpectMatch: true,
			},
			{
				Name:        "withdrawal only",
				Operations:  mocks.GenericTransfer("100")[:1],
				ExpectMatch: false,
			},
		},
	}
	return &suite
}

func TestRunner_Run(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.MatchOperationsFunc = func(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error) {
			if len(operations) < 2 {
				return nil, failure.UnmatchedDescription{Index: 1}
			}
			return []*parser.Match{{}, {}}, nil
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		reports, err := runner.Run(context.Background(), genericSuite())

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "transfer", reports[0].Case)
		assert.Equal(t, 2, reports[0].Matches)
		assert.True(t, reports[0].Passed())
		assert.Equal(t, "withdrawal only", reports[1].Case)
		assert.ErrorAs(t, reports[1].Match, &failure.UnmatchedDescription{})
		assert.True(t, reports[1].Passed())
	})

	t.Run("passes options to checker", func(t *testing.T) {
		t.Parallel()

		var gotExtra, gotConfirm bool
		check := mocks.BaselineChecker(t)
		check.ExpectedOperationsFunc = func(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {
			gotExtra, gotConfirm = errExtra, confirmSuccess
			return nil
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t),
			conformance.WithWorkers(1),
			conformance.WithErrExtra(true),
			conformance.WithConfirmSuccess(true),
		)

		_, err := runner.Run(context.Background(), genericSuite())

		require.NoError(t, err)
		assert.True(t, gotExtra)
		assert.True(t, gotConfirm)
	})

	t.Run("skips checks without inputs", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.ExpectedOperationsFunc = func([]*object.Operation, []*object.Operation, bool, bool) error {
			t.Fail()
			return nil
		}
		check.ExpectedSignersFunc = func([]object.SigningPayload, []identifier.Account) error {
			t.Fail()
			return nil
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		suite := genericSuite()
		suite.Cases = suite.Cases[1:]
		reports, err := runner.Run(context.Background(), suite)

		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("reports intent and signer mismatches", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.ExpectedOperationsFunc = func([]*object.Operation, []*object.Operation, bool, bool) error {
			return failure.IntentMismatch{}
		}
		check.ExpectedSignersFunc = func([]object.SigningPayload, []identifier.Account) error {
			return failure.MissingSigner{}
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		reports, err := runner.Run(context.Background(), genericSuite())

		require.NoError(t, err)
		assert.ErrorAs(t, reports[0].Intent, &failure.IntentMismatch{})
		assert.ErrorAs(t, reports[0].Signers, &failure.MissingSigner{})
		assert.False(t, reports[0].Passed())
	})

	t.Run("handles structural match error", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.MatchOperationsFunc = func(*parser.Descriptions, []*object.Operation) ([]*parser.Match, error) {
			return nil, mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles structural intent error", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.ExpectedOperationsFunc = func([]*object.Operation, []*object.Operation, bool, bool) error {
			return mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles structural signer error", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.ExpectedSignersFunc = func([]object.SigningPayload, []identifier.Account) error {
			return mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, check, mocks.BaselineValidator(t))

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid network", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.NetworkFunc = func(identifier.Network) error {
			return mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), validate)

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid descriptions", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.DescriptionsFunc = func(parser.Descriptions) error {
			return mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), validate)

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid operations", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.OperationsFunc = func([]*object.Operation) error {
			return mocks.GenericError
		}
		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), validate)

		_, err := runner.Run(context.Background(), genericSuite())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles canceled context", func(t *testing.T) {
		t.Parallel()

		runner := conformance.NewRunner(mocks.NoopLogger, mocks.BaselineChecker(t), mocks.BaselineValidator(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Run(ctx, genericSuite())

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunner_Suite(t *testing.T) {

	suite, err := conformance.Load("testdata/transfer.json")
	require.NoError(t, err)

	config := configuration.New(*suite.Network, "1.0.0", []string{"TRANSFER", "FEE"})
	check := parser.New(mocks.NoopLogger, config)
	validate := validator.New(config)

	t.Run("with success confirmation", func(t *testing.T) {
		t.Parallel()

		runner := conformance.NewRunner(mocks.NoopLogger, check, validate, conformance.WithConfirmSuccess(true))

		reports, err := runner.Run(context.Background(), suite)

		require.NoError(t, err)
		require.Len(t, reports, 4)
		for _, report := range reports {
			assert.True(t, report.Passed(), report.Case)
		}
		assert.Equal(t, conformance.Summary{Total: 4, Passed: 4}, conformance.Summarize(reports))
	})

	t.Run("without success confirmation", func(t *testing.T) {
		t.Parallel()

		runner := conformance.NewRunner(mocks.NoopLogger, check, validate)

		reports, err := runner.Run(context.Background(), suite)

		require.NoError(t, err)
		require.Len(t, reports, 4)
		assert.False(t, reports[3].Passed())
		assert.Equal(t, conformance.Summary{Total: 4, Passed: 3, Failed: 1}, conformance.Summarize(reports))
	})

	t.Run("with extra operations as mismatch", func(t *testing.T) {
		t.Parallel()

		runner := conformance.NewRunner(mocks.NoopLogger, check, validate,
			conformance.WithConfirmSuccess(true),
			conformance.WithErrExtra(true),
		)

		reports, err := runner.Run(context.Background(), suite)

		require.NoError(t, err)
		assert.ErrorAs(t, reports[0].Intent, &failure.IntentMismatch{})
		assert.False(t, reports[0].Passed())
	})

	t.Run("handles other network", func(t *testing.T) {
		t.Parallel()

		other := configuration.New(identifier.Network{Blockchain: "bitcoin", Network: "mainnet"}, "1.0.0", nil)
		runner := conformance.NewRunner(mocks.NoopLogger, parser.New(mocks.NoopLogger, other), validator.New(other))

		_, err := runner.Run(context.Background(), suite)

		assert.ErrorAs(t, err, &failure.InvalidNetwork{})
	})
}
