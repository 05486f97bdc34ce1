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

package object

import (
	"math/big"
	"strings"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
)

// Amount is some value of a currency. It is considered invalid to specify a
// value without a currency. The value is the signed amount in atomic units,
// encoded as a base-10 integer of arbitrary size.
type Amount struct {
	Value    string              `json:"value"`
	Currency identifier.Currency `json:"currency"`
}

// Int parses the value of the amount into an arbitrary-precision integer.
func (a Amount) Int() (*big.Int, error) {
	// Amount values never carry an explicit plus sign, even though the
	// integer parser would accept one.
	if strings.HasPrefix(a.Value, "+") {
		return nil, failure.InvalidAmount{
			Description: failure.NewDescription("amount value has a leading plus sign"),
			Value:       a.Value,
			Symbol:      a.Currency.Symbol,
		}
	}

	value, ok := new(big.Int).SetString(a.Value, 10)
	if !ok {
		return nil, failure.InvalidAmount{
			Description: failure.NewDescription("amount value is not a base-10 integer"),
			Value:       a.Value,
			Symbol:      a.Currency.Symbol,
		}
	}
	return value, nil
}
