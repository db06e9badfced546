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

func TestReaderSequence(t *testing.T) {
	data := []byte{
		0x01,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x4b, 0xfa, 0x5f, 0x37, 0x2d, 0x55, 0xb3, 0x84,
		0xaa, 0xbb,
	}
	r := codec.NewReader(data)
	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)
	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)
	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), u32)
	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x84B3552D375FFA4B), u64)
	assert.Equal(t, 15, r.Offset())
	assert.Equal(t, 2, r.Len())
	rest := r.Rest()
	assert.Equal(t, []byte{0xaa, 0xbb}, rest)
	assert.Equal(t, 0, r.Len())
	_, err = r.ReadUint8()
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

func TestReaderNeverReadsPastEnd(t *testing.T) {
	r := codec.NewReader([]byte{1, 2, 3})
	_, err := r.ReadUint32()
	var lengthErr codec.MalformedLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 0, lengthErr.Offset)
	assert.Equal(t, 4, lengthErr.Wanted)
	assert.Equal(t, 3, lengthErr.Available)
	// failed reads do not consume
	assert.Equal(t, 3, r.Len())
	_, err = r.ReadBytes(-1)
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

func TestReaderSub(t *testing.T) {
	r := codec.NewReader([]byte{1, 2, 3, 4, 5})
	require.NoError(t, r.Skip(1))
	sub, err := r.Sub(3)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 1, sub.Offset())
	_, err = sub.ReadUint32()
	var lengthErr codec.MalformedLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 1, lengthErr.Offset)
	_, err = r.Sub(2)
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

func TestReaderReturnsCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	r := codec.NewReader(data)
	buf, err := r.ReadBytes(2)
	require.NoError(t, err)
	buf[0] = 9
	assert.Equal(t, byte(1), data[0])
	var dst [1]byte
	require.NoError(t, r.ReadInto(dst[:]))
	assert.Equal(t, byte(3), dst[0])
}

func TestReaderPeek(t *testing.T) {
	r := codec.NewReader([]byte{1, 2, 3})
	require.NoError(t, r.Skip(1))
	p := r.Peek()
	v, err := p.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), v)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, p.Offset())
}

func TestReaderEmptyReads(t *testing.T) {
	r := codec.NewReader([]byte{1})
	buf, err := r.ReadBytes(0)
	require.NoError(t, err)
	assert.Nil(t, buf)
	require.NoError(t, r.Skip(1))
	assert.Nil(t, r.Rest())
}
