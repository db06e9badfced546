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
	"fmt"
	"math"
)

// Writer accumulates encoded fields. The first failure is kept and later writes are
// ignored.
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns a Writer with room for sizeHint bytes
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, max(sizeHint, 0))}
}

// Fail records err unless an earlier error is already recorded
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) Err() error {
	return w.err
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) PutUint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

func (w *Writer) PutUint16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) PutUint32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutUint64 writes an 8-byte value using the pair layout of WriteUint64Pair
func (w *Writer) PutUint64(v uint64) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, WriteUint64Pair(PairFromUint64(v))...)
}

func (w *Writer) PutBytes(data []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, data...)
}

// PutZeros writes n zero bytes
func (w *Writer) PutZeros(n int) {
	if w.err != nil || n <= 0 {
		return
	}
	w.buf = append(w.buf, make([]byte, n)...)
}

// PutCount8 writes a 1-byte count or size prefix
func (w *Writer) PutCount8(n int) {
	if n < 0 || n > math.MaxUint8 {
		w.Fail(ValueOverflowError{Value: uint64(n), Width: Uint8Size})
		return
	}
	w.PutUint8(uint8(n))
}

// PutCount16 writes a 2-byte count or size prefix
func (w *Writer) PutCount16(n int) {
	if n < 0 || n > math.MaxUint16 {
		w.Fail(ValueOverflowError{Value: uint64(n), Width: Uint16Size})
		return
	}
	w.PutUint16(uint16(n))
}

// PutCount32 writes a 4-byte count or size prefix
func (w *Writer) PutCount32(n int) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		w.Fail(ValueOverflowError{Value: uint64(n), Width: Uint32Size})
		return
	}
	w.PutUint32(uint32(n))
}

// Result returns the encoded bytes, or the first error recorded
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

// ResultSized is Result with a check that exactly size bytes were produced
func (w *Writer) ResultSized(size int) ([]byte, error) {
	ret, err := w.Result()
	if err != nil {
		return nil, err
	}
	if len(ret) != size {
		return nil, fmt.Errorf(
			"encoded %d bytes, expected %d",
			len(ret),
			size,
		)
	}
	return ret, nil
}
