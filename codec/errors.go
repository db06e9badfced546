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
	"errors"
	"fmt"
)

var (
	// ErrMalformedLength is matched by MalformedLengthError
	ErrMalformedLength = errors.New("malformed length")
	// ErrUnsupportedWidth is matched by UnsupportedWidthError
	ErrUnsupportedWidth = errors.New("unsupported integer width")
	// ErrValueOverflow is matched by ValueOverflowError
	ErrValueOverflow = errors.New("value overflows field width")
)

// MalformedLengthError indicates that a read needed more bytes than the input holds
type MalformedLengthError struct {
	Offset    int
	Wanted    int
	Available int
}

func (e MalformedLengthError) Error() string {
	return fmt.Sprintf(
		"malformed length at offset %d: wanted %d bytes, %d available",
		e.Offset,
		e.Wanted,
		e.Available,
	)
}

func (MalformedLengthError) Is(target error) bool {
	return target == ErrMalformedLength
}

// UnsupportedWidthError indicates a primitive read or write with a width outside {1, 2, 4}
type UnsupportedWidthError struct {
	Width int
}

func (e UnsupportedWidthError) Error() string {
	return fmt.Sprintf("unsupported integer width: %d", e.Width)
}

func (UnsupportedWidthError) Is(target error) bool {
	return target == ErrUnsupportedWidth
}

// ValueOverflowError indicates a value that does not fit its count, size or integer field
type ValueOverflowError struct {
	Value uint64
	Width int
}

func (e ValueOverflowError) Error() string {
	return fmt.Sprintf(
		"value %d does not fit in %d byte(s)",
		e.Value,
		e.Width,
	)
}

func (ValueOverflowError) Is(target error) bool {
	return target == ErrValueOverflow
}
