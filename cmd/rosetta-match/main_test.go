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


package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-conformance/rosetta/configuration"
	failures "github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/meta"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

func TestParseStatuses(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		statuses, err := parseStatuses([]string{"SUCCESS:true", "REVERTED:false"})

		require.NoError(t, err)
		want := []meta.StatusDefinition{
			{Status: "SUCCESS", Successful: true},
			{Status: "REVERTED", Successful: false},
		}
		assert.Equal(t, want, statuses)
	})

	t.Run("no statuses", func(t *testing.T) {
		t.Parallel()

		statuses, err := parseStatuses(nil)

		require.NoError(t, err)
		assert.Empty(t, statuses)
	})

	t.Run("handles missing separator", func(t *testing.T) {
		t.Parallel()

		_, err := parseStatuses([]string{"SUCCESS"})

		assert.Error(t, err)
	})

	t.Run("handles empty status", func(t *testing.T) {
		t.Parallel()

		_, err := parseStatuses([]string{":true"})

		assert.Error(t, err)
	})

	t.Run("handles invalid flag", func(t *testing.T) {
		t.Parallel()

		_, err := parseStatuses([]string{"SUCCESS:yes"})

		assert.Error(t, err)
	})
}

func TestLogConfiguration(t *testing.T) {

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	config := configuration.New(mocks.GenericNetwork, "0.9.0", []string{mocks.GenericOperationType})

	logConfiguration(log, config)

	output := buf.String()
	assert.Contains(t, output, `"blockchain":"bitcoin"`)
	assert.Contains(t, output, `"rosetta_version":"`+configuration.RosettaVersion+`"`)
	assert.Contains(t, output, `"node_version":"0.9.0"`)
	assert.Contains(t, output, `"operations":["TRANSFER"]`)
	assert.Contains(t, output, `"status":"SUCCESS"`)
	assert.Contains(t, output, `"message":"`+failures.ErrorUnsupportedOperation.Message+`"`)
	assert.Contains(t, output, `"code":27`)
}
