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

// UnmatchedDescription is returned when a mandatory description did not get
// any operation assigned.
type UnmatchedDescription struct {
	Description Description
	Index       int
}

// Error implements the error interface.
func (u UnmatchedDescription) Error() string {
	return fmt.Sprintf("could not find match for description (index: %d): %s", u.Index, u.Description)
}

// Mismatch marks the failure as a non-match of well-formed input.
func (u UnmatchedDescription) Mismatch() bool {
	return true
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (u UnmatchedDescription) RosettaError() Error {
	return newError(ErrorOperationsMismatch, u.Description)
}
