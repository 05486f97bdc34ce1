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

package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/optakt/rosetta-conformance/codec/zbor"
)

// CompressedExtension is the file extension of suites that are stored as
// compressed CBOR instead of JSON.
const CompressedExtension = ".zst"

// Codec encodes and decodes suites.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(value interface{}) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}

// CodecFor returns the codec for the file at the given path, based on its
// extension.
func CodecFor(path string) Codec {
	if strings.HasSuffix(path, CompressedExtension) {
		return zbor.NewCodec()
	}
	return jsonCodec{}
}

// Decode decodes a suite with the given codec.
func Decode(codec Codec, data []byte) (*Suite, error) {
	var suite Suite
	err := codec.Unmarshal(data, &suite)
	if err != nil {
		return nil, fmt.Errorf("could not decode suite: %w", err)
	}
	return &suite, nil
}

// Encode encodes a suite with the given codec.
func Encode(codec Codec, suite *Suite) ([]byte, error) {
	data, err := codec.Marshal(suite)
	if err != nil {
		return nil, fmt.Errorf("could not encode suite: %w", err)
	}
	return data, nil
}

// Load reads the suite at the given path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read suite file: %w", err)
	}
	return Decode(CodecFor(path), data)
}

// Save writes the suite to the given path.
func Save(path string, suite *Suite) error {
	data, err := Encode(CodecFor(path), suite)
	if err != nil {
		return err
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("could not write suite file: %w", err)
	}
	return nil
}
