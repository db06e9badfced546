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

package ledger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchSentinels(t *testing.T) {
	testDefs := []struct {
		err      error
		sentinel error
		message  string
	}{
		{
			err:      ledger.UnknownEntityTypeError{Type: 0x1234},
			sentinel: ledger.ErrUnknownEntityType,
			message:  "unknown entity type: 0x1234",
		},
		{
			err:      ledger.UnknownReceiptTypeError{Type: 0xabcd},
			sentinel: ledger.ErrUnknownReceiptType,
			message:  "unknown receipt type: 0xabcd",
		},
		{
			err:      ledger.UnknownEnumValueError{Enum: "alias action", Value: 9},
			sentinel: ledger.ErrUnknownEnumValue,
			message:  "unknown alias action value: 9",
		},
		{
			err:      ledger.InvalidConstructionError{Entity: "namespace registration", Reason: "bad"},
			sentinel: ledger.ErrInvalidConstruction,
			message:  "invalid namespace registration: bad",
		},
		{
			err:      ledger.SizeMismatchError{Entity: "receipt", Declared: 10, Actual: 12},
			sentinel: ledger.ErrSizeMismatch,
			message:  "receipt size mismatch: declared 10 bytes, content is 12 bytes",
		},
	}
	for _, testDef := range testDefs {
		wrapped := fmt.Errorf("outer: %w", testDef.err)
		assert.ErrorIs(t, wrapped, testDef.sentinel)
		assert.Equal(t, testDef.message, testDef.err.Error())
		for _, other := range testDefs {
			if other.sentinel != testDef.sentinel {
				assert.False(t, errors.Is(testDef.err, other.sentinel))
			}
		}
	}
}
