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

// Reader is a bounded cursor over a byte buffer
type Reader struct {
	data   []byte
	offset int
	base   int
}

// NewReader returns a Reader positioned at the start of data. The buffer is never
// modified and all returned slices are copies.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes
func (r *Reader) Len() int {
	return len(r.data) - r.offset
}

// Offset returns the number of bytes consumed so far, relative to the outermost reader
func (r *Reader) Offset() int {
	return r.base + r.offset
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, MalformedLengthError{
			Offset:    r.Offset(),
			Wanted:    n,
			Available: r.Len(),
		}
	}
	ret := r.data[r.offset : r.offset+n]
	r.offset += n
	return ret, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.next(Uint8Size)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.next(Uint16Size)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.next(Uint32Size)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadUint64 reads an 8-byte value using the pair layout of ReadUint64Pair
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.next(Uint64Size)
	if err != nil {
		return 0, err
	}
	pair, err := ReadUint64Pair(buf)
	if err != nil {
		return 0, err
	}
	return Uint64FromPair(pair), nil
}

// ReadBytes returns a copy of the next n bytes, or nil when n is 0
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf, err := r.next(n)
	if err != nil || n == 0 {
		return nil, err
	}
	return slices.Clone(buf), nil
}

// ReadInto fills dst with the next len(dst) bytes
func (r *Reader) ReadInto(dst []byte) error {
	buf, err := r.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, buf)
	return nil
}

// Skip consumes n bytes without looking at them
func (r *Reader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// Sub consumes the next n bytes and returns a Reader bounded to them
func (r *Reader) Sub(n int) (*Reader, error) {
	base := r.Offset()
	buf, err := r.next(n)
	if err != nil {
		return nil, err
	}
	return &Reader{data: buf, base: base}, nil
}

// Rest consumes and returns a copy of all remaining bytes, or nil when none remain
func (r *Reader) Rest() []byte {
	if r.Len() == 0 {
		return nil
	}
	buf, _ := r.next(r.Len())
	return slices.Clone(buf)
}

// Peek returns a Reader over the unread bytes without consuming them
func (r *Reader) Peek() *Reader {
	return &Reader{data: r.data[r.offset:], base: r.Offset()}
}
