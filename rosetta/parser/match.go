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
	"fmt"
	"math/big"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// mismatch is the reason an operation does not fit a slot. It never leaves
// the package; hard errors are returned as they are.
type mismatch struct {
	reason string
}

func (m mismatch) Error() string {
	return m.reason
}

func mismatchf(format string, args ...interface{}) error {
	return mismatch{reason: fmt.Sprintf(format, args...)}
}

// check verifies every constrained field of the description against the
// operation. The amount is the already parsed amount of the operation, or nil
// if it has none.
func (d *OperationDescription) check(op *object.Operation, amount *big.Int) error {

	if d.Type != "" && d.Type != op.Type {
		return mismatchf("unexpected type (have: %s, want: %s)", op.Type, d.Type)
	}

	err := accountMatch(d.Account, op.AccountID)
	if err != nil {
		return err
	}

	err = amountMatch(d.Amount, op.Amount, amount)
	if err != nil {
		return err
	}

	err = metadataMatch(d.Metadata, op.Metadata)
	if err != nil {
		return fmt.Errorf("operation metadata: %w", err)
	}

	err = coinActionMatch(d.CoinAction, op.CoinChange)
	if err != nil {
		return err
	}

	return nil
}

func accountMatch(req *AccountDescription, account *identifier.Account) error {
	if req == nil {
		return nil
	}

	if account == nil {
		if req.Exists {
			return mismatchf("account is missing")
		}
		return nil
	}
	if !req.Exists {
		return mismatchf("account is populated")
	}

	sub := account.SubAccount
	if sub == nil && req.SubAccountOptional {
		return nil
	}

	if !req.SubAccountExists {
		if sub != nil {
			return mismatchf("sub-account is populated")
		}
		return nil
	}
	if sub == nil {
		return mismatchf("sub-account is missing")
	}

	if req.SubAccountAddress != "" && sub.Address != req.SubAccountAddress {
		return mismatchf("unexpected sub-account address (have: %s, want: %s)", sub.Address, req.SubAccountAddress)
	}

	err := metadataMatch(req.SubAccountMetadataKeys, sub.Metadata)
	if err != nil {
		return fmt.Errorf("sub-account metadata: %w", err)
	}

	return nil
}

func amountMatch(req *AmountDescription, amount *object.Amount, value *big.Int) error {
	if req == nil {
		return nil
	}

	if amount == nil {
		if req.Exists {
			return mismatchf("amount is missing")
		}
		return nil
	}
	if !req.Exists {
		return mismatchf("amount is populated")
	}

	if !req.Sign.Match(value) {
		return mismatchf("unexpected amount sign (have: %s, want: %s)", value, req.Sign)
	}

	if req.Currency != nil && !equalCurrencies(req.Currency, &amount.Currency) {
		return mismatchf("unexpected currency (have: %s, want: %s)", amount.Currency.Symbol, req.Currency.Symbol)
	}

	return nil
}

func metadataMatch(reqs []MetadataDescription, metadata map[string]interface{}) error {
	for _, req := range reqs {
		val, ok := metadata[req.Key]
		if !ok {
			return mismatchf("key is not present in metadata (key: %s)", req.Key)
		}
		kind := KindOf(val)
		if kind != req.ValueKind {
			return mismatchf("unexpected value kind (key: %s, have: %s, want: %s)", req.Key, kind, req.ValueKind)
		}
	}
	return nil
}

func coinActionMatch(action object.CoinAction, change *object.CoinChange) error {
	if action == "" {
		return nil
	}
	if change == nil {
		return mismatchf("coin change is missing (want: %s)", action)
	}
	if change.CoinAction != action {
		return mismatchf("unexpected coin action (have: %s, want: %s)", change.CoinAction, action)
	}
	return nil
}
