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
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// MetadataDescription requires a metadata key to be present with a value of
// the given kind. The value itself is not constrained.
type MetadataDescription struct {
	Key       string `json:"key" validate:"required"`
	ValueKind Kind   `json:"value_kind" validate:"oneof=null bool number string array object"`
}

// AccountDescription describes the account identifier of an operation.
type AccountDescription struct {
	Exists                 bool                  `json:"exists"`
	SubAccountExists       bool                  `json:"sub_account_exists"`
	SubAccountOptional     bool                  `json:"sub_account_optional"`
	SubAccountAddress      string                `json:"sub_account_address,omitempty"`
	SubAccountMetadataKeys []MetadataDescription `json:"sub_account_metadata_keys,omitempty" validate:"dive"`
}

// AmountDescription describes the amount of an operation. Without a currency,
// amounts of any currency are accepted.
type AmountDescription struct {
	Exists   bool                 `json:"exists"`
	Sign     AmountSign           `json:"sign" validate:"min=0,max=4"`
	Currency *identifier.Currency `json:"currency,omitempty"`
}

// OperationDescription is the template for one slot. Nil and empty fields do
// not constrain the matched operation.
type OperationDescription struct {
	Account    *AccountDescription   `json:"account,omitempty"`
	Amount     *AmountDescription    `json:"amount,omitempty"`
	Metadata   []MetadataDescription `json:"metadata,omitempty" validate:"dive"`
	Type       string                `json:"type,omitempty"`
	CoinAction object.CoinAction     `json:"coin_action,omitempty" validate:"omitempty,oneof=coin_created coin_spent"`

	// AllowRepeats lets a slot keep accepting operations after its first match.
	AllowRepeats bool `json:"allow_repeats"`

	// Optional lets a slot remain without any match.
	Optional bool `json:"optional"`
}

// Descriptions holds the slots to match operations against, as well as the
// groups of slots that must satisfy joint invariants. Groups are lists of
// indices into the operation descriptions.
//
// Matching is first-fit: an operation is assigned to the first slot it fits
// and never reconsidered, so more specific slots should come first.
type Descriptions struct {
	OperationDescriptions []OperationDescription `json:"operation_descriptions" validate:"required,min=1,dive"`

	// EqualAmounts groups slots whose net amounts must be equal.
	EqualAmounts [][]int `json:"equal_amounts,omitempty"`

	// OppositeAmounts groups slots whose net amounts must be the negation of
	// the net amount of the first slot of the group.
	OppositeAmounts [][]int `json:"opposite_amounts,omitempty"`

	// OppositeOrZeroAmounts is like OppositeAmounts, except that a zero net
	// amount on either side satisfies the pair.
	OppositeOrZeroAmounts [][]int `json:"opposite_or_zero_amounts,omitempty"`

	// EqualAddresses groups slots whose single operation must share the same
	// top-level account address.
	EqualAddresses [][]int `json:"equal_addresses,omitempty"`

	// ErrUnmatched fails matching when an operation fits no slot.
	ErrUnmatched bool `json:"err_unmatched"`
}

// Group names, as used in failures.
const (
	GroupEqualAmounts          = "equal_amounts"
	GroupOppositeAmounts       = "opposite_amounts"
	GroupOppositeOrZeroAmounts = "opposite_or_zero_amounts"
	GroupEqualAddresses        = "equal_addresses"
)

type group struct {
	name    string
	indices [][]int
	minimum int
}

func (d *Descriptions) groups() []group {
	return []group{
		{name: GroupEqualAmounts, indices: d.EqualAmounts, minimum: 1},
		{name: GroupOppositeAmounts, indices: d.OppositeAmounts, minimum: 2},
		{name: GroupOppositeOrZeroAmounts, indices: d.OppositeOrZeroAmounts, minimum: 2},
		{name: GroupEqualAddresses, indices: d.EqualAddresses, minimum: 2},
	}
}
