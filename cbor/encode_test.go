// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/catbuffer/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted by encoded length, then bytewise
	{
		CborHex: "a3616101626262026363636303",
		Object:  map[string]int{"ccc": 3, "a": 1, "bb": 2},
	},
	// Fixed-size byte arrays encode as byte strings
	{
		CborHex: "43010203",
		Object:  [3]byte{1, 2, 3},
	},
	{
		CborHex: "9f0102ff",
		Object:  cbor.IndefLengthList{1, 2},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		require.NoError(t, err)
		assert.Equal(t, test.CborHex, hex.EncodeToString(cborData))
	}
}

func TestEncodeStruct(t *testing.T) {
	type entity struct {
		Type string `cbor:"type"`
		Size int    `cbor:"size"`
	}
	first, err := cbor.Encode(entity{Type: "Transfer", Size: 28})
	require.NoError(t, err)
	second, err := cbor.Encode(&entity{Type: "Transfer", Size: 28})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var decoded entity
	n, err := cbor.Decode(first, &decoded)
	require.NoError(t, err)
	assert.Equal(t, len(first), n)
	assert.Equal(t, entity{Type: "Transfer", Size: 28}, decoded)
}
