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

package codec

import (
	"encoding/binary"
	"slices"
)

const (
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
)

// ReadUint reads a little-endian unsigned integer of the given width from buf. The
// width must be 1, 2 or 4 and buf must hold exactly that many bytes.
func ReadUint(buf []byte, width int) (uint32, error) {
	if !supportedWidth(width) {
		return 0, UnsupportedWidthError{Width: width}
	}
	if len(buf) != width {
		return 0, MalformedLengthError{Wanted: width, Available: len(buf)}
	}
	switch width {
	case Uint8Size:
		return uint32(buf[0]), nil
	case Uint16Size:
		return uint32(binary.LittleEndian.Uint16(buf)), nil
	default:
		return binary.LittleEndian.Uint32(buf), nil
	}
}

// ReadUint64Pair reads an 8-byte value and returns it as [low, high].
//
// The bytes are reversed and two big-endian words read from the reversed buffer, the
// low word at offset 4 and the high word at offset 0. That yields the low word from
// bytes 0-3 and the high word from bytes 4-7 of the input, each little-endian.
func ReadUint64Pair(buf []byte) ([2]uint32, error) {
	if len(buf) != Uint64Size {
		return [2]uint32{}, MalformedLengthError{Wanted: Uint64Size, Available: len(buf)}
	}
	reversed := slices.Clone(buf)
	slices.Reverse(reversed)
	return [2]uint32{
		binary.BigEndian.Uint32(reversed[4:]),
		binary.BigEndian.Uint32(reversed[:4]),
	}, nil
}

// WriteUint returns the little-endian encoding of value in width bytes
func WriteUint(value uint32, width int) ([]byte, error) {
	if !supportedWidth(width) {
		return nil, UnsupportedWidthError{Width: width}
	}
	if width < Uint32Size && value >= 1<<(8*width) {
		return nil, ValueOverflowError{Value: uint64(value), Width: width}
	}
	ret := make([]byte, width)
	switch width {
	case Uint8Size:
		ret[0] = byte(value)
	case Uint16Size:
		binary.LittleEndian.PutUint16(ret, uint16(value))
	default:
		binary.LittleEndian.PutUint32(ret, value)
	}
	return ret, nil
}

// WriteUint64Pair is the inverse of ReadUint64Pair
func WriteUint64Pair(pair [2]uint32) []byte {
	ret := make([]byte, Uint64Size)
	binary.LittleEndian.PutUint32(ret[:4], pair[0])
	binary.LittleEndian.PutUint32(ret[4:], pair[1])
	return ret
}

// Uint64FromPair collapses a [low, high] pair into a single value
func Uint64FromPair(pair [2]uint32) uint64 {
	return uint64(pair[1])<<32 | uint64(pair[0])
}

// PairFromUint64 splits a value into its [low, high] pair
func PairFromUint64(value uint64) [2]uint32 {
	return [2]uint32{uint32(value), uint32(value >> 32)}
}

// Concat returns a new buffer holding a followed by b
func Concat(a []byte, b []byte) []byte {
	return slices.Concat(a, b)
}

// TakeBytes returns a copy of the first n bytes of buf
func TakeBytes(buf []byte, n int) ([]byte, error) {
	if n < 0 || n > len(buf) {
		return nil, MalformedLengthError{Wanted: n, Available: len(buf)}
	}
	return slices.Clone(buf[:n]), nil
}

// PaddingSize returns the number of bytes needed to bring length up to a multiple of
// alignment
func PaddingSize(length int, alignment int) int {
	if alignment <= 0 {
		return 0
	}
	return (alignment - length%alignment) % alignment
}

func supportedWidth(width int) bool {
	return width == Uint8Size || width == Uint16Size || width == Uint32Size
}
