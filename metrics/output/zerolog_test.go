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

package output_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-conformance/metrics/output"
	"github.com/optakt/rosetta-conformance/testing/mocks"
)

func TestOutput(t *testing.T) {

	t.Run("final summary without interval", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := zerolog.New(&buf)

		calls := 0
		collector := mocks.BaselineCollector(t)
		collector.OutputFunc = func(log zerolog.Logger) {
			calls++
			log.Info().Msg("summary")
		}

		out := output.New(log, 0, collector)
		out.Start(context.Background())
		out.Stop()

		assert.Equal(t, 1, calls)
		assert.Contains(t, buf.String(), `"component":"metrics"`)
	})

	t.Run("periodic summaries", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		calls := 0
		collector := mocks.BaselineCollector(t)
		collector.OutputFunc = func(zerolog.Logger) {
			mu.Lock()
			defer mu.Unlock()
			calls++
		}

		out := output.New(mocks.NoopLogger, time.Millisecond, collector)
		out.Start(context.Background())

		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return calls >= 2
		}, time.Second, time.Millisecond)

		out.Stop()
	})

	t.Run("stops with context", func(t *testing.T) {
		t.Parallel()

		calls := 0
		collector := mocks.BaselineCollector(t)
		collector.OutputFunc = func(zerolog.Logger) {
			calls++
		}

		ctx, cancel := context.WithCancel(context.Background())
		out := output.New(mocks.NoopLogger, time.Hour, collector)
		out.Start(ctx)
		cancel()
		out.Stop()

		assert.Equal(t, 1, calls)
	})

	t.Run("stop without start", func(t *testing.T) {
		t.Parallel()

		out := output.New(mocks.NoopLogger, 0)

		assert.NotPanics(t, out.Stop)
	})
}
