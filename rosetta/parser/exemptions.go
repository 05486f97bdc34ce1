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
	"math/big"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
)

// ExemptionType is the kind of deviation a balance exemption allows between
// the computed and the live balance of an account.
type ExemptionType string

// Supported exemption types.
const (
	ExemptionGreaterOrEqual ExemptionType = "greater_or_equal"
	ExemptionLessOrEqual    ExemptionType = "less_or_equal"
	ExemptionDynamic        ExemptionType = "dynamic"
)

// BalanceExemption marks balances that can change without operations, such
// as staking rewards. Sub-account address and currency narrow it down; when
// nil, the exemption applies to all of them.
type BalanceExemption struct {
	SubAccountAddress *string              `json:"sub_account_address,omitempty"`
	Currency          *identifier.Currency `json:"currency,omitempty"`
	Type              ExemptionType        `json:"exemption_type"`
}

// FindExemptions returns the configured exemptions that apply to the account
// and currency.
func (p *Parser) FindExemptions(account identifier.Account, currency identifier.Currency) []BalanceExemption {
	var exemptions []BalanceExemption
	for _, exemption := range p.cfg.Exemptions {
		if exemption.Currency != nil && !equalCurrencies(exemption.Currency, &currency) {
			continue
		}
		if exemption.SubAccountAddress != nil {
			if account.SubAccount == nil || account.SubAccount.Address != *exemption.SubAccountAddress {
				continue
			}
		}
		exemptions = append(exemptions, exemption)
	}
	return exemptions
}

// MatchBalanceExemption returns the first exemption that allows the given
// balance difference, or nil if none does.
func MatchBalanceExemption(exemptions []BalanceExemption, difference string) (*BalanceExemption, error) {

	value, ok := new(big.Int).SetString(difference, 10)
	if !ok {
		return nil, failure.InvalidAmount{
			Description: failure.NewDescription("balance difference is not a base-10 integer"),
			Value:       difference,
		}
	}

	for i, exemption := range exemptions {
		switch {
		case exemption.Type == ExemptionDynamic,
			exemption.Type == ExemptionGreaterOrEqual && value.Sign() >= 0,
			exemption.Type == ExemptionLessOrEqual && value.Sign() <= 0:
			return &exemptions[i], nil
		}
	}

	return nil, nil
}
