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
	"testing"

	"github.com/blinklabs-io/catbuffer/codec"
	"github.com/blinklabs-io/catbuffer/internal/test"
	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceIdPair(t *testing.T) {
	id := ledger.NewNamespaceIdFromPair([2]uint32{0x375FFA4B, 0x84B3552D})
	data := id.Serialize()
	require.Len(t, data, ledger.NamespaceIdSize)
	assert.Equal(t, test.DecodeHexString("4bfa5f37 2d55b384"), data)
	decoded, err := ledger.NewNamespaceIdFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, [2]uint32{0x375FFA4B, 0x84B3552D}, decoded.Pair())
	assert.Equal(t, "84B3552D375FFA4B", decoded.String())
}

func TestUint64Values(t *testing.T) {
	data := test.DecodeHexString("0100000002000000")
	amount, err := ledger.NewAmountFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, ledger.Amount(0x0000000200000001), amount)
	assert.Equal(t, [2]uint32{1, 2}, amount.Pair())
	assert.Equal(t, data, amount.Serialize())
	height, err := ledger.NewHeightFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, ledger.NewHeightFromPair([2]uint32{1, 2}), height)
	_, err = ledger.NewTimestampFromBinary(data[:7])
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

func TestFixedByteValues(t *testing.T) {
	addr := test_ledger.SampleAddress(0x98)
	decoded, err := ledger.NewAddressFromBinary(addr.Serialize())
	require.NoError(t, err)
	assert.Equal(t, addr, decoded)
	assert.Len(t, addr.String(), 40)
	text, err := addr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, addr.String(), string(text))

	_, err = ledger.NewAddressFromBinary(make([]byte, 24))
	assert.ErrorIs(t, err, codec.ErrMalformedLength)

	key := test_ledger.SampleKey(0x0f)
	assert.Equal(t, "0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f", key.String())
	_, err = ledger.NewSignatureFromBinary(make([]byte, 63))
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}

func TestMosaicLayout(t *testing.T) {
	mosaic := ledger.UnresolvedMosaic{MosaicId: 0x6bed913fa20223f8, Amount: 1}
	data := mosaic.Serialize()
	assert.Equal(t, test.DecodeHexString("f82302a23f91ed6b 0100000000000000"), data)
	decoded, err := ledger.NewUnresolvedMosaicFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, mosaic, decoded)
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "Transfer", ledger.EntityTypeTransfer.String())
	assert.Equal(t, "EntityType(1)", ledger.EntityType(1).String())
	assert.Equal(t, []byte{0x54, 0x41}, ledger.EntityTypeTransfer.Serialize())
	entityType, err := ledger.NewEntityTypeFromBinary([]byte{0x41, 0x41})
	require.NoError(t, err)
	assert.Equal(t, ledger.EntityTypeAggregateComplete, entityType)
	_, err = ledger.NewEntityTypeFromBinary([]byte{0x00, 0x00})
	assert.ErrorIs(t, err, ledger.ErrUnknownEnumValue)

	_, err = ledger.NewLinkActionFromBinary([]byte{0x02})
	assert.ErrorIs(t, err, ledger.ErrUnknownEnumValue)
	algorithm, err := ledger.NewLockHashAlgorithmFromBinary([]byte{0x02})
	require.NoError(t, err)
	assert.Equal(t, ledger.LockHashAlgorithmHash256, algorithm)

	flags, err := ledger.NewMosaicFlagsFromBinary([]byte{0x07})
	require.NoError(t, err)
	assert.True(t, flags.Has(ledger.MosaicFlagsRestrictable))
	_, err = ledger.NewMosaicFlagsFromBinary([]byte{0x08})
	assert.ErrorIs(t, err, ledger.ErrUnknownEnumValue)

	restriction, err := ledger.NewAccountRestrictionFlagsFromBinary([]byte{0x01, 0xc0})
	require.NoError(t, err)
	assert.True(t, restriction.Has(ledger.AccountRestrictionFlagsOutgoing))
	assert.True(t, restriction.Has(ledger.AccountRestrictionFlagsBlock))
	_, err = ledger.NewAccountRestrictionFlagsFromBinary([]byte{0x08, 0x00})
	assert.ErrorIs(t, err, ledger.ErrUnknownEnumValue)
}

func TestNetworks(t *testing.T) {
	assert.Equal(t, ledger.NetworkMainnet, ledger.NetworkByName("mainnet"))
	assert.Equal(t, ledger.NetworkTestnet, ledger.NetworkByType(0x98))
	assert.Equal(t, ledger.NetworkInvalid, ledger.NetworkByName("nope"))
	assert.True(t, ledger.NetworkTypePrivateTest.Valid())
	assert.False(t, ledger.NetworkType(0).Valid())
	assert.Equal(t, "NetworkType(0x01)", ledger.NetworkType(1).String())
}

func TestParseAddress(t *testing.T) {
	addr := test_ledger.SampleAddress(0x98)
	parsed, err := ledger.ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
	_, err = ledger.ParseAddress("not an address")
	assert.Error(t, err)
	_, err = ledger.ParseAddress(addr.String()[:32])
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}
