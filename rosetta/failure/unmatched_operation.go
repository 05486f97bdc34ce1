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
	"fmt"
)

// UnmatchedOperation is returned when an operation could not be assigned to
// any description while unmatched operations are not allowed.
type UnmatchedOperation struct {
	Description Description
	Index       int
}

// Error implements the error interface.
func (u UnmatchedOperation) Error() string {
	return fmt.Sprintf("unable to find match for operation (index: %d): %s", u.Index, u.Description)
}

// Mismatch marks the failure as a non-match of well-formed input.
func (u UnmatchedOperation) Mismatch() bool {
	return true
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (u UnmatchedOperation) RosettaError() Error {
	return newError(ErrorOperationsMismatch, u.Description)
}
