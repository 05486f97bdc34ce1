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

package output

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-conformance/metrics"
)

// Output writes the summaries of its collectors to a log at a fixed interval
// while it is started, and once more when it is stopped. With a zero
// interval, only the final summary is written.
type Output struct {
	log        zerolog.Logger
	interval   time.Duration
	collectors []metrics.Collector
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates an output for the given collectors.
func New(log zerolog.Logger, interval time.Duration, collectors ...metrics.Collector) *Output {
	o := Output{
		log:        log.With().Str("component", "metrics").Logger(),
		interval:   interval,
		collectors: collectors,
		cancel:     func() {},
	}
	return &o
}

// Start launches the output loop. It stops when Stop is called or when the
// context is canceled.
func (o *Output) Start(ctx context.Context) {
	ctx, o.cancel = context.WithCancel(ctx)
	o.wg.Add(1)
	go o.loop(ctx)
}

// Stop ends the output loop and waits for the final summary to be written.
func (o *Output) Stop() {
	o.cancel()
	o.wg.Wait()
}

// Print writes the summaries of all collectors once.
func (o *Output) Print() {
	for _, collector := range o.collectors {
		collector.Output(o.log)
	}
}

func (o *Output) loop(ctx context.Context) {
	defer o.wg.Done()
	defer o.Print()

	if o.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.Print()
		}
	}
}
