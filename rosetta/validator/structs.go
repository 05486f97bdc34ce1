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

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Tags reported by the struct-level validators.
const (
	blockchainEmpty = "blockchain_empty"
	networkEmpty    = "network_empty"
	groupSize       = "group_size"
	groupRange      = "group_range"
	groupAccount    = "group_account"
)

// Field names are only used when the validation errors are printed as plain
// errors, but they are mandatory arguments for the `ReportError` method.
const (
	blockchainField = "blockchain"
	networkField    = "network"
)

func newStructValidator() *validator.Validate {

	v := validator.New()

	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(networkValidator, identifier.Network{})
	v.RegisterStructValidation(descriptionsValidator, parser.Descriptions{})

	return v
}

func networkValidator(sl validator.StructLevel) {
	network := sl.Current().Interface().(identifier.Network)
	if network.Blockchain == "" {
		sl.ReportError(network.Blockchain, blockchainField, blockchainField, blockchainEmpty, "")
	}
	if network.Network == "" {
		sl.ReportError(network.Network, networkField, networkField, networkEmpty, "")
	}
}

// descriptionsValidator reports every group that can not be evaluated. The
// parameter of each reported error names the group and its position.
func descriptionsValidator(sl validator.StructLevel) {
	descriptions := sl.Current().Interface().(parser.Descriptions)
	slots := descriptions.OperationDescriptions

	check := func(name string, groups [][]int, minimum int) {
		for n, indices := range groups {
			param := fmt.Sprintf("%s[%d]", name, n)
			if len(indices) < minimum {
				sl.ReportError(indices, name, name, groupSize, param)
			}
			for _, index := range indices {
				if index < 0 || index >= len(slots) {
					sl.ReportError(indices, name, name, groupRange, param)
					continue
				}
				if name == parser.GroupEqualAddresses && slots[index].Account == nil {
					sl.ReportError(indices, name, name, groupAccount, param)
				}
			}
		}
	}

	check(parser.GroupEqualAmounts, descriptions.EqualAmounts, 1)
	check(parser.GroupOppositeAmounts, descriptions.OppositeAmounts, 2)
	check(parser.GroupOppositeOrZeroAmounts, descriptions.OppositeOrZeroAmounts, 2)
	check(parser.GroupEqualAddresses, descriptions.EqualAddresses, 2)
}

// collect turns the validation errors of the library into a single error
// that lists all of them.
func collect(err error) error {

	// InvalidValidationError is returned by the validation library in cases of
	// invalid usage, such as passing a non-struct to `validate.Struct()`.
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var merr *multierror.Error
	for _, verr := range verrs {
		msg := fmt.Sprintf("%s failed on %s", verr.Namespace(), verr.Tag())
		if verr.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, verr.Param())
		}
		merr = multierror.Append(merr, fmt.Errorf("%s", msg))
	}

	return merr.ErrorOrNil()
}
