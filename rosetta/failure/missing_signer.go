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

// MissingSigner is returned when the account of a signing payload is not part
// of the signers observed on a transaction.
type MissingSigner struct {
	Description Description
	Address     string
}

// Error implements the error interface.
func (m MissingSigner) Error() string {
	return fmt.Sprintf("missing expected signer (address: %s): %s", m.Address, m.Description)
}

// Mismatch marks the failure as a non-match of well-formed input.
func (m MissingSigner) Mismatch() bool {
	return true
}

// RosettaError returns the error information in a Rosetta-compatible format.
func (m MissingSigner) RosettaError() Error {
	return newError(ErrorSignersMismatch, m.Description)
}
