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
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/rosetta-conformance/metrics"
	"github.com/optakt/rosetta-conformance/metrics/output"
	"github.com/optakt/rosetta-conformance/rosetta/configuration"
	"github.com/optakt/rosetta-conformance/rosetta/conformance"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/meta"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
	"github.com/optakt/rosetta-conformance/rosetta/validator"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	var (
		flagBalances       bool
		flagBlockchain     string
		flagConfirmSuccess bool
		flagErrExtra       bool
		flagInterval       time.Duration
		flagLevel          string
		flagNetwork        string
		flagNodeVersion    string
		flagOperations     []string
		flagOutput         string
		flagStatuses       []string
		flagSuite          string
		flagWorkers        uint
	)

	pflag.BoolVar(&flagBalances, "balances", false, "report the balance changes of the blocks in the suite")
	pflag.StringVarP(&flagBlockchain, "blockchain", "b", "", "blockchain of the network, if not given by the suite")
	pflag.BoolVar(&flagConfirmSuccess, "confirm-success", false, "require observed operations to be successful to satisfy the intent")
	pflag.BoolVar(&flagErrExtra, "err-extra", false, "treat observed operations that are not part of the intent as mismatch")
	pflag.DurationVarP(&flagInterval, "interval", "i", 0, "interval for periodic metrics output, zero for summary only")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagNetwork, "network", "n", "", "network of the network identifier, if not given by the suite")
	pflag.StringVar(&flagNodeVersion, "node-version", "", "version of the node under test")
	pflag.StringSliceVarP(&flagOperations, "operations", "o", nil, "supported operation types (default: any)")
	pflag.StringVar(&flagOutput, "output", "", "path to write the suite to after loading, compressed if it ends in .zst")
	pflag.StringSliceVar(&flagStatuses, "statuses", []string{"SUCCESS:true", "FAILURE:false"}, "operation statuses as status:successful pairs")
	pflag.StringVarP(&flagSuite, "suite", "s", "suite.json", "path to the conformance suite, compressed if it ends in .zst")
	pflag.UintVarP(&flagWorkers, "workers", "w", conformance.DefaultConfig.Workers, "maximum number of cases checked concurrently")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	statuses, err := parseStatuses(flagStatuses)
	if err != nil {
		log.Error().Strs("statuses", flagStatuses).Err(err).Msg("could not parse operation statuses")
		return failure
	}

	suite, err := conformance.Load(flagSuite)
	if err != nil {
		log.Error().Str("suite", flagSuite).Err(err).Msg("could not load suite")
		return failure
	}

	if flagOutput != "" {
		err = conformance.Save(flagOutput, suite)
		if err != nil {
			log.Error().Str("output", flagOutput).Err(err).Msg("could not save suite")
			return failure
		}
		log.Info().Str("output", flagOutput).Msg("suite saved")
	}

	network := identifier.Network{
		Blockchain: flagBlockchain,
		Network:    flagNetwork,
	}
	if suite.Network != nil {
		network = *suite.Network
	}
	if network.Blockchain == "" || network.Network == "" {
		log.Error().Msg("network identifier must be given by the suite or by flags")
		return failure
	}

	// Initialize the checking components, with the checks instrumented so we
	// can log a summary at the end.
	config := configuration.New(network, flagNodeVersion, flagOperations, statuses...)
	logConfiguration(log, config)
	parse := parser.New(log, config, parser.WithExemptions(suite.Exemptions...))
	check := metrics.NewChecker(parse, prometheus.NewRegistry())
	validate := validator.New(config)
	runner := conformance.NewRunner(log, check, validate,
		conformance.WithWorkers(flagWorkers),
		conformance.WithErrExtra(flagErrExtra),
		conformance.WithConfirmSuccess(flagConfirmSuccess),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-sig
		log.Info().Msg("conformance run stopping")
		cancel()
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	out := output.New(log, flagInterval, check)
	out.Start(ctx)
	reports, err := runner.Run(ctx, suite)
	out.Stop()
	if err != nil {
		log.Error().Str("suite", flagSuite).Err(err).Msg("could not run suite")
		return failure
	}

	for _, report := range reports {
		event := log.Info()
		if !report.Passed() {
			event = log.Warn()
		}
		event.
			Str("case", report.Case).
			Bool("expect_match", report.ExpectMatch).
			Bool("conforms", report.Conforms()).
			Int("matches", report.Matches).
			AnErr("match", report.Match).
			AnErr("intent", report.Intent).
			AnErr("signers", report.Signers).
			Msg("case report")

		for _, f := range report.Failures() {
			log.Debug().
				Str("case", report.Case).
				Str("check", f.Check).
				Uint("code", f.Code).
				Str("message", f.Message).
				Bool("retriable", f.Retriable).
				Str("description", f.Description).
				Fields(f.Details).
				Msg("case failure")
		}
	}

	if flagBalances {
		balances, err := runner.Balances(ctx, parse, suite.Blocks)
		if err != nil {
			log.Error().Str("suite", flagSuite).Err(err).Msg("could not compute balance changes")
			return failure
		}
		for _, report := range balances {
			for _, entry := range report.Entries {
				event := log.Info().
					Str("block", report.Block.Hash).
					Bool("orphaned", report.Orphaned).
					Int("groups", len(report.Groups)).
					Str("account", entry.Account.String()).
					Str("currency", entry.Currency.Symbol).
					Str("difference", entry.Difference)
				if entry.Exemption != nil {
					event = event.Str("exemption", string(entry.Exemption.Type))
				}
				event.Msg("balance change")
			}
		}
	}

	summary := conformance.Summarize(reports)
	log.Info().
		Int("total", summary.Total).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Msg("conformance suite done")

	if summary.Failed > 0 {
		return failure
	}

	return success
}

func logConfiguration(log zerolog.Logger, config *configuration.Configuration) {

	network := config.Network()
	version := config.Version()
	log.Info().
		Str("blockchain", network.Blockchain).
		Str("network", network.Network).
		Str("rosetta_version", version.RosettaVersion).
		Str("node_version", version.NodeVersion).
		Str("middleware_version", version.MiddlewareVersion).
		Strs("operations", config.Operations()).
		Msg("configuration initialized")

	for _, status := range config.Statuses() {
		log.Debug().Str("status", status.Status).Bool("successful", status.Successful).Msg("operation status")
	}
	for _, def := range config.Errors() {
		log.Debug().Uint("code", def.Code).Str("message", def.Message).Bool("retriable", def.Retriable).Msg("error definition")
	}
}

func parseStatuses(pairs []string) ([]meta.StatusDefinition, error) {
	statuses := make([]meta.StatusDefinition, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid status pair (%s)", pair)
		}
		successful, err := strconv.ParseBool(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid status flag (%s): %w", pair, err)
		}
		statuses = append(statuses, meta.StatusDefinition{Status: parts[0], Successful: successful})
	}
	return statuses, nil
}
