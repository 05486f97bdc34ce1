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

package mocks

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test conformance components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericNetwork = identifier.Network{
		Blockchain: "bitcoin",
		Network:    "testnet",
	}

	GenericCurrency = identifier.Currency{
		Symbol:   "BTC",
		Decimals: 8,
	}

	GenericOperationType = "TRANSFER"

	GenericStatus = "SUCCESS"

	GenericSender = identifier.Account{
		Address: "addr1",
	}

	GenericReceiver = identifier.Account{
		Address: "addr2",
	}

	// GenericDescriptions describe a simple transfer: one negative amount
	// and one positive amount of the same size.
	GenericDescriptions = parser.Descriptions{
		OperationDescriptions: []parser.OperationDescription{
			{
				Account: &parser.AccountDescription{Exists: true},
				Amount:  &parser.AmountDescription{Exists: true, Sign: parser.NegativeAmountSign},
			},
			{
				Account: &parser.AccountDescription{Exists: true},
				Amount:  &parser.AmountDescription{Exists: true, Sign: parser.PositiveAmountSign},
			},
		},
		OppositeAmounts: [][]int{{0, 1}},
	}
)

// GenericAmount returns an amount of the generic currency.
func GenericAmount(value string) *object.Amount {
	amount := object.Amount{
		Value:    value,
		Currency: GenericCurrency,
	}
	return &amount
}

// GenericOperation returns a successful operation of the generic type that
// moves the given value in or out of the given account.
func GenericOperation(index uint, account identifier.Account, value string) *object.Operation {
	op := object.Operation{
		ID:        identifier.Operation{Index: index},
		Type:      GenericOperationType,
		Status:    GenericStatus,
		AccountID: &account,
		Amount:    GenericAmount(value),
	}
	return &op
}

// GenericTransfer returns the operations of a transfer that satisfies the
// generic descriptions.
func GenericTransfer(value string) []*object.Operation {
	withdrawal := GenericOperation(0, GenericSender, "-"+value)
	deposit := GenericOperation(1, GenericReceiver, value)
	deposit.RelatedIDs = []identifier.Operation{withdrawal.ID}
	return []*object.Operation{withdrawal, deposit}
}

// GenericSigningPayloads returns one signing payload for each account.
func GenericSigningPayloads(accounts ...identifier.Account) []object.SigningPayload {
	payloads := make([]object.SigningPayload, 0, len(accounts))
	for i := range accounts {
		account := accounts[i]
		payload := object.SigningPayload{
			AccountID:     &account,
			HexBytes:      "deadbeef",
			SignatureType: "ecdsa",
		}
		payloads = append(payloads, payload)
	}
	return payloads
}

// GenericBlock returns a block with a single transaction holding the given
// operations.
func GenericBlock(operations ...*object.Operation) object.Block {
	index := uint64(42)
	tx := object.Transaction{
		ID: identifier.Transaction{Hash: "tx1"},
	}
	for _, op := range operations {
		tx.Operations = append(tx.Operations, *op)
	}
	block := object.Block{
		ID:           identifier.Block{Index: &index, Hash: "block42"},
		ParentID:     identifier.Block{Hash: "block41"},
		Transactions: []object.Transaction{tx},
	}
	return block
}
