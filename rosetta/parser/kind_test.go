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

package parser_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-conformance/rosetta/parser"
)

func TestKindOf(t *testing.T) {

	t.Run("decoded JSON", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{"a": null, "b": true, "c": 1.5, "d": "x", "e": [1], "f": {"g": 1}}`)
		var values map[string]interface{}
		err := json.Unmarshal(data, &values)
		require.NoError(t, err)

		assert.Equal(t, parser.KindNull, parser.KindOf(values["a"]))
		assert.Equal(t, parser.KindBool, parser.KindOf(values["b"]))
		assert.Equal(t, parser.KindNumber, parser.KindOf(values["c"]))
		assert.Equal(t, parser.KindString, parser.KindOf(values["d"]))
		assert.Equal(t, parser.KindArray, parser.KindOf(values["e"]))
		assert.Equal(t, parser.KindObject, parser.KindOf(values["f"]))
	})

	t.Run("other Go values", func(t *testing.T) {
		t.Parallel()

		text := "text"
		var missing *string

		assert.Equal(t, parser.KindNumber, parser.KindOf(uint64(7)))
		assert.Equal(t, parser.KindNumber, parser.KindOf(int8(-7)))
		assert.Equal(t, parser.KindString, parser.KindOf(&text))
		assert.Equal(t, parser.KindNull, parser.KindOf(missing))
		assert.Equal(t, parser.KindArray, parser.KindOf([]string{"a"}))
		assert.Equal(t, parser.KindNull, parser.KindOf([]string(nil)))
		assert.Equal(t, parser.KindObject, parser.KindOf(map[interface{}]interface{}{"a": 1}))
		assert.Equal(t, parser.KindObject, parser.KindOf(struct{}{}))
		assert.Equal(t, parser.Kind(""), parser.KindOf(make(chan int)))
	})
}
