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

// GroupMismatch is returned when the operations matched to a group of
// descriptions violate the invariant of the group.
type GroupMismatch struct {
	Description Description
	Group       string
	Index       int
}

// Error implements the error interface.
func (g GroupMismatch) Error() string {
	return fmt.Sprintf("group descriptions not met (group: %s, index: %d): %s", g.Group, g.Index, g.Description)
}

// Mismatch marks the failure as a non-match of well-formed input.
func (g GroupMismatch) Mismatch() bool {
	return true
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (g GroupMismatch) RosettaError() Error {
	return newError(ErrorOperationsMismatch, g.Description)
}
