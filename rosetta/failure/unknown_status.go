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

// UnknownStatus is the error for an operation status that is missing or that
// is not part of the configured status definitions.
type UnknownStatus struct {
	Description Description
	Status      string
}

// Error implements the error interface.
func (u UnknownStatus) Error() string {
	return fmt.Sprintf("unknown operation status (status: %q): %s", u.Status, u.Description)
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (u UnknownStatus) RosettaError() Error {
	return newError(ErrorUnknownStatus, u.Description)
}
