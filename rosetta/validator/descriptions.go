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
	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

// Descriptions returns an error listing every structural problem of the
// descriptions: invalid signs, kinds and coin actions, unsupported operation
// types and groups that can not be evaluated.
func (v *Validator) Descriptions(descriptions parser.Descriptions) error {

	var merr *multierror.Error
	err := v.validate.Struct(descriptions)
	if err != nil {
		merr = multierror.Append(merr, collect(err))
	}

	for i, slot := range descriptions.OperationDescriptions {
		if slot.Type != "" && !v.config.Supports(slot.Type) {
			merr = multierror.Append(merr, fmt.Errorf("description %d has unsupported operation type (type: %s)", i, slot.Type))
		}
	}

	err = merr.ErrorOrNil()
	if err == nil {
		return nil
	}

	return failure.InvalidDescriptions{
		Description: failure.NewDescription("descriptions failed validation",
			failure.WithInt("problems", merr.Len()),
			failure.WithErr(err),
		),
	}
}
