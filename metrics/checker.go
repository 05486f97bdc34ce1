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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-conformance/rosetta/conformance"
	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

const namespaceConformance = "rosetta_conformance"

// Results of a check, as used in metric labels.
const (
	ResultPass     = "pass"
	ResultMismatch = "mismatch"
	ResultError    = "error"
)

var (
	checks  = []string{conformance.CheckMatch, conformance.CheckIntent, conformance.CheckSigners}
	results = []string{ResultPass, ResultMismatch, ResultError}
)

type checker interface {
	MatchOperations(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error)
	ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error
	ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error
}

// Checker wraps a checker and records the results and durations of its checks
// as prometheus metrics.
type Checker struct {
	check    checker
	results  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewChecker creates a checker that registers its metrics with the given
// registerer.
func NewChecker(check checker, registry prometheus.Registerer) *Checker {

	factory := promauto.With(registry)

	resultsOpts := prometheus.CounterOpts{
		Name:      "check_results_total",
		Namespace: namespaceConformance,
		Help:      "number of checks by check and result",
	}
	resultsVec := factory.NewCounterVec(resultsOpts, []string{"check", "result"})

	durationOpts := prometheus.HistogramOpts{
		Name:      "check_duration_seconds",
		Namespace: namespaceConformance,
		Help:      "duration of checks",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}
	durationVec := factory.NewHistogramVec(durationOpts, []string{"check"})

	c := Checker{
		check:    check,
		results:  resultsVec,
		duration: durationVec,
	}

	return &c
}

func (c *Checker) MatchOperations(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error) {
	start := time.Now()
	matches, err := c.check.MatchOperations(descriptions, operations)
	c.record(conformance.CheckMatch, start, err)
	return matches, err
}

func (c *Checker) ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {
	start := time.Now()
	err := c.check.ExpectedOperations(intent, observed, errExtra, confirmSuccess)
	c.record(conformance.CheckIntent, start, err)
	return err
}

func (c *Checker) ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error {
	start := time.Now()
	err := c.check.ExpectedSigners(payloads, signers)
	c.record(conformance.CheckSigners, start, err)
	return err
}

func (c *Checker) record(check string, start time.Time, err error) {
	c.duration.WithLabelValues(check).Observe(time.Since(start).Seconds())

	result := ResultPass
	switch {
	case failure.IsMismatch(err):
		result = ResultMismatch
	case err != nil:
		result = ResultError
	}
	c.results.WithLabelValues(check, result).Inc()
}

// Output logs the number of results and the average duration of each check.
func (c *Checker) Output(log zerolog.Logger) {

	log = log.With().Str("metrics", namespaceConformance).Str("type", "checks").Logger()

	for _, check := range checks {

		event := log.Info().Str("check", check)
		for _, result := range results {
			var metric dto.Metric
			err := c.results.WithLabelValues(check, result).Write(&metric)
			if err != nil {
				log.Warn().Err(err).Str("check", check).Str("result", result).Msg("could not read check results")
				continue
			}
			event = event.Float64(result, metric.GetCounter().GetValue())
		}

		var metric dto.Metric
		histogram, ok := c.duration.WithLabelValues(check).(prometheus.Metric)
		if ok && histogram.Write(&metric) == nil {
			count := metric.GetHistogram().GetSampleCount()
			sum := metric.GetHistogram().GetSampleSum()
			average := time.Duration(0)
			if count > 0 {
				average = time.Duration(sum / float64(count) * float64(time.Second))
			}
			event = event.Uint64("calls", count).Dur("average", average)
		}

		event.Msg("check metrics")
	}
}
