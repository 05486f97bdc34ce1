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
)

// AmountSign is the sign an amount is required to have.
type AmountSign int

// Supported amount signs. The zero value accepts any amount.
const (
	AnyAmountSign AmountSign = iota
	NegativeAmountSign
	PositiveAmountSign
	PositiveOrZeroAmountSign
	NegativeOrZeroAmountSign
)

var signNames = map[AmountSign]string{
	AnyAmountSign:            "any",
	NegativeAmountSign:       "negative",
	PositiveAmountSign:       "positive",
	PositiveOrZeroAmountSign: "positive_or_zero",
	NegativeOrZeroAmountSign: "negative_or_zero",
}

// Match returns whether the given value has the sign.
func (s AmountSign) Match(value *big.Int) bool {
	switch s {
	case AnyAmountSign:
		return true
	case NegativeAmountSign:
		return value.Sign() < 0
	case PositiveAmountSign:
		return value.Sign() > 0
	case PositiveOrZeroAmountSign:
		return value.Sign() >= 0
	case NegativeOrZeroAmountSign:
		return value.Sign() <= 0
	default:
		return false
	}
}

func (s AmountSign) String() string {
	name, ok := signNames[s]
	if !ok {
		return "invalid"
	}
	return name
}

// MarshalText implements encoding.TextMarshaler.
func (s AmountSign) MarshalText() ([]byte, error) {
	name, ok := signNames[s]
	if !ok {
		return nil, fmt.Errorf("invalid amount sign (%d)", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *AmountSign) UnmarshalText(text []byte) error {
	for sign, name := range signNames {
		if name == string(text) {
			*s = sign
			return nil
		}
	}
	return fmt.Errorf("unknown amount sign (%s)", text)
}
