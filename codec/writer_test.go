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

package codec_test

import (
	"testing"

	"github.com/blinklabs-io/catbuffer/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFields(t *testing.T) {
	w := codec.NewWriter(0)
	w.PutUint8(1)
	w.PutUint16(0x0102)
	w.PutUint32(0x01020304)
	w.PutUint64(0x84B3552D375FFA4B)
	w.PutBytes([]byte{0xaa})
	w.PutZeros(2)
	ret, err := w.ResultSized(18)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]byte{
			0x01,
			0x02, 0x01,
			0x04, 0x03, 0x02, 0x01,
			0x4b, 0xfa, 0x5f, 0x37, 0x2d, 0x55, 0xb3, 0x84,
			0xaa,
			0x00, 0x00,
		},
		ret,
	)
}

func TestWriterStickyError(t *testing.T) {
	w := codec.NewWriter(4)
	w.PutUint8(1)
	w.PutCount8(256)
	w.PutUint8(2)
	w.PutCount16(70000)
	_, err := w.Result()
	var overflowErr codec.ValueOverflowError
	require.ErrorAs(t, err, &overflowErr)
	assert.Equal(t, uint64(256), overflowErr.Value)
	assert.Equal(t, 1, overflowErr.Width)
	assert.Equal(t, 1, w.Len())
}

func TestWriterCounts(t *testing.T) {
	w := codec.NewWriter(7)
	w.PutCount8(255)
	w.PutCount16(65535)
	w.PutCount32(1)
	ret, err := w.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0x01, 0x00, 0x00, 0x00}, ret)
}

func TestWriterResultSizedMismatch(t *testing.T) {
	w := codec.NewWriter(2)
	w.PutUint8(1)
	_, err := w.ResultSized(2)
	assert.Error(t, err)
}
