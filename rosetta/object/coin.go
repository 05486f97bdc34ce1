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
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
)

// CoinAction is the kind of change an operation applies to a coin.
type CoinAction string

// Coin actions defined by the Rosetta API.
const (
	CoinCreated CoinAction = "coin_created"
	CoinSpent   CoinAction = "coin_spent"
)

// Valid returns whether the coin action is one of the defined actions.
func (c CoinAction) Valid() bool {
	return c == CoinCreated || c == CoinSpent
}

// CoinChange is used to represent a change in state of some coin identified
// by a coin identifier. It is only populated on UTXO-based networks.
type CoinChange struct {
	CoinID     identifier.Coin `json:"coin_identifier"`
	CoinAction CoinAction      `json:"coin_action"`
}
