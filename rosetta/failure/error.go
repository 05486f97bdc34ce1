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

package failure

import (
	"errors"

	"github.com/optakt/rosetta-conformance/rosetta/meta"
)

// Error definitions for the failures of this package.
var (
	ErrorInternal             = meta.ErrorDefinition{Code: 1, Message: "internal error", Retriable: false}
	ErrorInvalidFormat        = meta.ErrorDefinition{Code: 3, Message: "invalid request format", Retriable: false}
	ErrorInvalidNetwork       = meta.ErrorDefinition{Code: 4, Message: "invalid network identifier", Retriable: false}
	ErrorInvalidIntent        = meta.ErrorDefinition{Code: 12, Message: "invalid transaction intent", Retriable: false}
	ErrorInvalidAmount        = meta.ErrorDefinition{Code: 18, Message: "invalid amount", Retriable: false}
	ErrorInvalidDescriptions  = meta.ErrorDefinition{Code: 23, Message: "invalid operation descriptions", Retriable: false}
	ErrorUnknownStatus        = meta.ErrorDefinition{Code: 24, Message: "unknown operation status", Retriable: false}
	ErrorOperationsMismatch   = meta.ErrorDefinition{Code: 25, Message: "operations do not match descriptions", Retriable: false}
	ErrorSignersMismatch      = meta.ErrorDefinition{Code: 26, Message: "signers do not match signing payloads", Retriable: false}
	ErrorUnsupportedOperation = meta.ErrorDefinition{Code: 27, Message: "operation type not supported", Retriable: false}
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Rosetta converts an error into its Rosetta representation. Failures of this
// package keep their definition, anything else is an internal error.
func Rosetta(err error) Error {
	var r interface{ RosettaError() Error }
	if errors.As(err, &r) {
		return r.RosettaError()
	}
	return newError(ErrorInternal, NewDescription(err.Error()))
}

// IsMismatch returns whether the error reports well-formed input that did not
// satisfy a set of descriptions or an intent, as opposed to malformed input.
func IsMismatch(err error) bool {
	var m interface{ Mismatch() bool }
	return errors.As(err, &m) && m.Mismatch()
}

func newError(def meta.ErrorDefinition, description Description) Error {

	err := Error{
		ErrorDefinition: def,
		Description:     description.Text,
	}

	if len(description.Fields) > 0 {
		err.Details = make(map[string]interface{}, len(description.Fields))
		description.Fields.Iterate(func(key string, val interface{}) {
			err.Details[key] = val
		})
	}

	return err
}
