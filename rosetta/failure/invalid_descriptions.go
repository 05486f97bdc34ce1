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

// InvalidDescriptions is the error for a set of operation descriptions that
// can not be evaluated at all, such as a group referencing a slot that does
// not exist.
type InvalidDescriptions struct {
	Description Description
	Group       string
	Index       int
}

// Error implements the error interface.
func (i InvalidDescriptions) Error() string {
	if i.Group == "" {
		return fmt.Sprintf("invalid descriptions: %s", i.Description)
	}
	return fmt.Sprintf("invalid descriptions (group: %s, index: %d): %s", i.Group, i.Index, i.Description)
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (i InvalidDescriptions) RosettaError() Error {
	return newError(ErrorInvalidDescriptions, i.Description)
}
