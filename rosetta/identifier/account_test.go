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


package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
)

func TestAccount_String(t *testing.T) {

	t.Run("without sub-account", func(t *testing.T) {
		t.Parallel()

		account := identifier.Account{Address: "addr1"}

		assert.Equal(t, "addr1", account.String())
	})

	t.Run("with sub-account", func(t *testing.T) {
		t.Parallel()

		account := identifier.Account{
			Address:    "addr1",
			SubAccount: &identifier.SubAccount{Address: "stake"},
		}

		assert.Equal(t, "addr1:stake", account.String())
	})
}
