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
	"strings"
	"testing"

	"github.com/blinklabs-io/catbuffer/codec"
	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceRegistrationConstruction(t *testing.T) {
	duration := ledger.BlockDuration(1000)
	parent := ledger.NamespaceId(0x84B3552D375FFA4B)

	_, err := ledger.NewNamespaceRegistrationTransactionBody(1, []byte("a"), &duration, &parent)
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)
	_, err = ledger.NewNamespaceRegistrationTransactionBody(1, []byte("a"), nil, nil)
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)

	root, err := ledger.NewNamespaceRegistrationTransactionBody(1, []byte("a"), &duration, nil)
	require.NoError(t, err)
	assert.Equal(t, ledger.RootNamespace{Duration: duration}, root.Registration)
	assert.Equal(t, ledger.NamespaceRegistrationTypeRoot, root.Registration.RegistrationType())

	child, err := ledger.NewNamespaceRegistrationTransactionBody(2, []byte("b"), nil, &parent)
	require.NoError(t, err)
	assert.Equal(t, ledger.ChildNamespace{ParentId: parent}, child.Registration)
	assert.Equal(t, ledger.NamespaceRegistrationTypeChild, child.Registration.RegistrationType())
}

func TestNamespaceRegistrationLayout(t *testing.T) {
	duration := ledger.BlockDuration(0x0102030405060708)
	body, err := ledger.NewNamespaceRegistrationTransactionBody(0x84B3552D375FFA4B, []byte("nem"), &duration, nil)
	require.NoError(t, err)
	data, err := body.Serialize()
	require.NoError(t, err)
	expected := []byte{
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x4b, 0xfa, 0x5f, 0x37, 0x2d, 0x55, 0xb3, 0x84,
		0x00,
		0x03,
		'n', 'e', 'm',
	}
	assert.Equal(t, expected, data)

	// the slot is reinterpreted according to the registration type
	data[16] = byte(ledger.NamespaceRegistrationTypeChild)
	decoded, err := ledger.NewNamespaceRegistrationTransactionBodyFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, ledger.ChildNamespace{ParentId: 0x0102030405060708}, decoded.Registration)

	data[16] = 0x02
	_, err = ledger.NewNamespaceRegistrationTransactionBodyFromBinary(data)
	assert.ErrorIs(t, err, ledger.ErrUnknownEnumValue)
}

func TestNamespaceRegistrationEncodeErrors(t *testing.T) {
	body := &ledger.NamespaceRegistrationTransactionBody{Id: 1, Name: []byte("x")}
	_, err := body.Serialize()
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)

	body.Registration = ledger.RootNamespace{Duration: 1}
	body.Name = []byte(strings.Repeat("x", 256))
	_, err = body.Serialize()
	assert.ErrorIs(t, err, codec.ErrValueOverflow)
}
