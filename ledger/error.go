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

package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEntityType is matched by UnknownEntityTypeError
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrUnknownReceiptType is matched by UnknownReceiptTypeError
	ErrUnknownReceiptType = errors.New("unknown receipt type")
	// ErrUnknownEnumValue is matched by UnknownEnumValueError
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrInvalidConstruction is matched by InvalidConstructionError
	ErrInvalidConstruction = errors.New("invalid construction")
	// ErrSizeMismatch is matched by SizeMismatchError
	ErrSizeMismatch = errors.New("size mismatch")
)

// UnknownEntityTypeError indicates an entity type with no registered body codec
type UnknownEntityTypeError struct {
	Type EntityType
}

func (e UnknownEntityTypeError) Error() string {
	return fmt.Sprintf("unknown entity type: 0x%04x", uint16(e.Type))
}

func (UnknownEntityTypeError) Is(target error) bool {
	return target == ErrUnknownEntityType
}

// UnknownReceiptTypeError indicates a receipt type with no registered body codec
type UnknownReceiptTypeError struct {
	Type ReceiptType
}

func (e UnknownReceiptTypeError) Error() string {
	return fmt.Sprintf("unknown receipt type: 0x%04x", uint16(e.Type))
}

func (UnknownReceiptTypeError) Is(target error) bool {
	return target == ErrUnknownReceiptType
}

// UnknownEnumValueError indicates a discriminant outside its closed enumeration
type UnknownEnumValueError struct {
	Enum  string
	Value uint64
}

func (e UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown %s value: %d", e.Enum, e.Value)
}

func (UnknownEnumValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}

// InvalidConstructionError indicates a value whose fields violate a structural rule
type InvalidConstructionError struct {
	Entity string
	Reason string
}

func (e InvalidConstructionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
}

func (InvalidConstructionError) Is(target error) bool {
	return target == ErrInvalidConstruction
}

// SizeMismatchError indicates that a declared entity size disagrees with its content
type SizeMismatchError struct {
	Entity   string
	Declared int
	Actual   int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf(
		"%s size mismatch: declared %d bytes, content is %d bytes",
		e.Entity,
		e.Declared,
		e.Actual,
	)
}

func (SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}
