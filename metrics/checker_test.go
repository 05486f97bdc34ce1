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

package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-conformance/metrics"
	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

// counts gathers the check results from the registry, keyed by check and result.
func counts(t *testing.T, registry *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != "rosetta_conformance_check_results_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			var check, result string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "check":
					check = label.GetValue()
				case "result":
					result = label.GetValue()
				}
			}
			values[check+"/"+result] = metric.GetCounter().GetValue()
		}
	}

	return values
}

func TestChecker(t *testing.T) {

	t.Run("forwards calls and records results", func(t *testing.T) {
		t.Parallel()

		check := mocks.BaselineChecker(t)
		check.MatchOperationsFunc = func(*parser.Descriptions, []*object.Operation) ([]*parser.Match, error) {
			return []*parser.Match{nil}, nil
		}
		check.ExpectedOperationsFunc = func([]*object.Operation, []*object.Operation, bool, bool) error {
			return failure.IntentMismatch{}
		}
		check.ExpectedSignersFunc = func([]object.SigningPayload, []identifier.Account) error {
			return mocks.GenericError
		}

		registry := prometheus.NewRegistry()
		checker := metrics.NewChecker(check, registry)

		matches, err := checker.MatchOperations(&mocks.GenericDescriptions, nil)
		assert.NoError(t, err)
		assert.Equal(t, []*parser.Match{nil}, matches)

		_, err = checker.MatchOperations(&mocks.GenericDescriptions, nil)
		assert.NoError(t, err)

		err = checker.ExpectedOperations(nil, nil, true, false)
		assert.ErrorAs(t, err, &failure.IntentMismatch{})

		err = checker.ExpectedSigners(nil, nil)
		assert.ErrorIs(t, err, mocks.GenericError)

		values := counts(t, registry)
		assert.Equal(t, 2.0, values["match/pass"])
		assert.Equal(t, 1.0, values["intent/mismatch"])
		assert.Equal(t, 1.0, values["signers/error"])
	})

	t.Run("outputs summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := zerolog.New(&buf)

		checker := metrics.NewChecker(mocks.BaselineChecker(t), prometheus.NewRegistry())
		_, _ = checker.MatchOperations(&mocks.GenericDescriptions, nil)

		checker.Output(log)

		output := buf.String()
		assert.Contains(t, output, `"check":"match"`)
		assert.Contains(t, output, `"pass":1`)
		assert.Contains(t, output, `"calls":1`)
		assert.Contains(t, output, `"check":"signers"`)
	})
}
