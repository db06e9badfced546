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
	"testing"

	"github.com/blinklabs-io/catbuffer/cbor"
	"github.com/blinklabs-io/catbuffer/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUnknownField(t *testing.T) {
	type known struct {
		A int `cbor:"a"`
	}
	var dest known
	// {"a": 1, "b": 2}
	_, err := cbor.Decode(test.DecodeHexString("a2616101616202"), &dest)
	assert.Error(t, err)
}

func TestDecodeReturnsBytesRead(t *testing.T) {
	var dest []int
	// [1, 2] followed by a trailing item
	n, err := cbor.Decode(test.DecodeHexString("820102 03"), &dest)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2}, dest)
}

func TestListLength(t *testing.T) {
	n, err := cbor.ListLength(test.DecodeHexString("83010203"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = cbor.ListLength(test.DecodeHexString("01"))
	assert.Error(t, err)
}

func TestDiagnose(t *testing.T) {
	diag, err := cbor.Diagnose(test.DecodeHexString("a26474797065685472616e7366657264646174614201ff"))
	require.NoError(t, err)
	assert.Equal(t, `{"type": "Transfer", "data": h'01ff'}`, diag)
	_, err = cbor.Diagnose([]byte{0x82, 0x01})
	assert.Error(t, err)
}
