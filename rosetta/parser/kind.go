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

package parser

import (
	"encoding/json"
	"reflect"
)

// Kind is the type of a decoded JSON value.
type Kind string

// Supported JSON kinds.
const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// KindOf returns the JSON kind of a value. Values decoded with the standard
// JSON decoder map one-to-one; other Go values are classified by their
// reflected kind.
func KindOf(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return KindNull
		}
		return KindOf(v.Elem().Interface())
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return KindNull
		}
		return KindArray
	case reflect.Map:
		if v.IsNil() {
			return KindNull
		}
		return KindObject
	case reflect.Struct:
		return KindObject
	default:
		return ""
	}
}
