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

package parser

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/OneOfOne/xxhash"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// equalAccounts compares two accounts structurally, including sub-accounts
// and metadata.
func equalAccounts(a *identifier.Account, b *identifier.Account) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Address != b.Address {
		return false
	}
	if !equalMetadata(a.Metadata, b.Metadata) {
		return false
	}

	x, y := a.SubAccount, b.SubAccount
	if x == nil || y == nil {
		return x == y
	}
	return x.Address == y.Address && equalMetadata(x.Metadata, y.Metadata)
}

// equalAmounts compares two amounts structurally. Values are compared as
// strings, so differently formatted but numerically equal values differ.
func equalAmounts(a *object.Amount, b *object.Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && equalCurrencies(&a.Currency, &b.Currency)
}

func equalCurrencies(a *identifier.Currency, b *identifier.Currency) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Symbol == b.Symbol &&
		a.Decimals == b.Decimals &&
		equalMetadata(a.Metadata, b.Metadata)
}

// equalMetadata treats nil and empty metadata as the same.
func equalMetadata(a map[string]interface{}, b map[string]interface{}) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// key computes a hash over the canonical JSON encoding of the given values,
// which sorts map keys. Equal keys do not guarantee equal values, so lookups
// must still compare structurally.
func key(values ...interface{}) (uint64, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return 0, fmt.Errorf("could not encode key: %w", err)
	}
	return xxhash.Checksum64(data), nil
}
