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

package validator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// Operations returns an error for every operation that can not be matched or
// reconciled at all. Failures keep their type, so they can still be inspected
// with `errors.As` on the returned error.
func (v *Validator) Operations(operations []*object.Operation) error {

	var merr *multierror.Error
	for i, op := range operations {
		if op == nil {
			continue
		}

		if !v.config.Supports(op.Type) {
			merr = multierror.Append(merr, failure.UnsupportedOperation{
				Description: failure.NewDescription("operation type is not configured",
					failure.WithInt("operation", i),
				),
				Type: op.Type,
			})
		}

		if op.Status != "" {
			_, err := v.config.Successful(op.Status)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("invalid status of operation %d: %w", i, err))
			}
		}

		if op.Amount != nil {
			_, err := op.Amount.Int()
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("invalid amount of operation %d: %w", i, err))
			}
		}

		if op.CoinChange != nil && !op.CoinChange.CoinAction.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("invalid coin action of operation %d (coin_action: %s)", i, op.CoinChange.CoinAction))
		}
	}

	return merr.ErrorOrNil()
}

// Network returns an error if the network identifier is incomplete or does not
// match the configured network.
func (v *Validator) Network(network identifier.Network) error {

	err := v.validate.Struct(network)
	if err != nil {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("network identifier is incomplete",
				failure.WithErr(collect(err)),
			),
		}
	}

	return v.config.Check(network)
}
