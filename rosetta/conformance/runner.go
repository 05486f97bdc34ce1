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

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Checker runs the checks of a case.
type Checker interface {
	MatchOperations(descriptions *parser.Descriptions, operations []*object.Operation) ([]*parser.Match, error)
	ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error
	ExpectedSigners(payloads []object.SigningPayload, signers []identifier.Account) error
}

// Validator rejects suites that can not be checked.
type Validator interface {
	Descriptions(descriptions parser.Descriptions) error
	Operations(operations []*object.Operation) error
	Network(network identifier.Network) error
}

// Runner checks all cases of a suite.
type Runner struct {
	log      zerolog.Logger
	cfg      Config
	check    Checker
	validate Validator
}

// NewRunner creates a new runner using the given checker and validator.
func NewRunner(log zerolog.Logger, check Checker, validate Validator, opts ...Option) *Runner {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := Runner{
		log:      log.With().Str("component", "runner").Logger(),
		cfg:      cfg,
		check:    check,
		validate: validate,
	}

	return &r
}

// Run validates the suite and then checks its cases concurrently. It returns
// one report per case, in the order of the cases. Structural errors in any
// case abort the run.
func (r *Runner) Run(ctx context.Context, suite *Suite) ([]Report, error) {

	err := r.validateSuite(suite)
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Int("cases", len(suite.Cases)).
		Int("descriptions", len(suite.Descriptions.OperationDescriptions)).
		Uint("workers", r.cfg.Workers).
		Msg("starting conformance run")

	passed := atomic.NewUint64(0)
	failed := atomic.NewUint64(0)

	reports := make([]Report, len(suite.Cases))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(int(r.cfg.Workers))
	for i := range suite.Cases {

		// Stop scheduling cases once the run is canceled or a case failed.
		if groupCtx.Err() != nil {
			break
		}

		i := i
		c := suite.Cases[i]
		group.Go(func() error {
			report, err := r.checkCase(&suite.Descriptions, c)
			if err != nil {
				return fmt.Errorf("could not check case %d (%s): %w", i, c.Name, err)
			}
			reports[i] = report

			if report.Passed() {
				passed.Inc()
			} else {
				failed.Inc()
			}

			r.log.Debug().
				Str("case", c.Name).
				Bool("expect_match", c.ExpectMatch).
				Bool("conforms", report.Conforms()).
				Uint64("passed", passed.Load()).
				Uint64("failed", failed.Load()).
				Msg("case checked")

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	// Cases that were never scheduled don't fail the group, so a canceled
	// run has to be caught here.
	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Uint64("passed", passed.Load()).
		Uint64("failed", failed.Load()).
		Msg("conformance run complete")

	return reports, nil
}

func (r *Runner) validateSuite(suite *Suite) error {

	if suite.Network != nil {
		err := r.validate.Network(*suite.Network)
		if err != nil {
			return fmt.Errorf("invalid suite network: %w", err)
		}
	}

	err := r.validate.Descriptions(suite.Descriptions)
	if err != nil {
		return fmt.Errorf("invalid suite descriptions: %w", err)
	}

	for i, c := range suite.Cases {
		err = r.validate.Operations(c.Operations)
		if err != nil {
			return fmt.Errorf("invalid operations in case %d (%s): %w", i, c.Name, err)
		}
		err = r.validate.Operations(c.Intent)
		if err != nil {
			return fmt.Errorf("invalid intent in case %d (%s): %w", i, c.Name, err)
		}
	}

	return nil
}

// checkCase runs the checks the case has inputs for. Mismatches end up in the
// report; any other error is returned.
func (r *Runner) checkCase(descriptions *parser.Descriptions, c Case) (Report, error) {

	report := Report{
		Case:        c.Name,
		ExpectMatch: c.ExpectMatch,
	}

	matches, err := r.check.MatchOperations(descriptions, c.Operations)
	if err != nil && !failure.IsMismatch(err) {
		return Report{}, fmt.Errorf("could not match operations: %w", err)
	}
	report.Match = err
	for _, match := range matches {
		if match != nil {
			report.Matches++
		}
	}

	if len(c.Intent) > 0 {
		err = r.check.ExpectedOperations(c.Intent, c.Operations, r.cfg.ErrExtra, r.cfg.ConfirmSuccess)
		if err != nil && !failure.IsMismatch(err) {
			return Report{}, fmt.Errorf("could not reconcile intent: %w", err)
		}
		report.Intent = err
	}

	if len(c.Payloads) > 0 {
		err = r.check.ExpectedSigners(c.Payloads, c.Signers)
		if err != nil && !failure.IsMismatch(err) {
			return Report{}, fmt.Errorf("could not check signers: %w", err)
		}
		report.Signers = err
	}

	return report, nil
}
