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
	"slices"
	"testing"

	"github.com/blinklabs-io/catbuffer/codec"
	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedEntityTypes(t *testing.T) {
	types := ledger.SupportedEntityTypes()
	assert.Len(t, types, 23)
	assert.True(t, slices.IsSorted(types))
	for _, entityType := range types {
		assert.True(t, entityType.Valid())
		embeddable := entityType != ledger.EntityTypeAggregateComplete &&
			entityType != ledger.EntityTypeAggregateBonded
		assert.Equal(t, embeddable, ledger.IsEmbeddable(entityType), entityType.String())
	}
	assert.False(t, ledger.IsEmbeddable(0))
}

func TestEncodeEmbeddedTransactionPadding(t *testing.T) {
	for _, tx := range test_ledger.SampleEmbeddedTransactions() {
		t.Run(tx.Type().String(), func(t *testing.T) {
			data, err := ledger.EncodeEmbeddedTransaction(tx)
			require.NoError(t, err)
			assert.Zero(t, len(data)%ledger.EmbeddedTransactionAlignment)
			assert.Equal(t, tx.Size()+codec.PaddingSize(tx.Size(), 8), len(data))
			assert.Equal(t, make([]byte, len(data)-tx.Size()), data[tx.Size():])
			decoded, err := ledger.DecodeEmbeddedTransaction(data)
			require.NoError(t, err)
			assert.Equal(t, tx, decoded)
		})
	}
}

func TestEncodeEmbeddedTransactionOddSize(t *testing.T) {
	// 48 byte header + 28 byte transfer body + 5 byte message
	tx := ledger.NewEmbeddedTransaction(
		ledger.EmbeddedTransactionHeader{
			SignerPublicKey: test_ledger.SampleKey(0x01),
			Version:         1,
			Network:         ledger.NetworkTypeMainnet,
		},
		&ledger.TransferTransactionBody{
			RecipientAddress: test_ledger.SampleUnresolvedAddress(0x02),
			Message:          []byte("abcde"),
		},
	)
	require.Equal(t, 81, tx.Size())
	data, err := ledger.EncodeEmbeddedTransaction(tx)
	require.NoError(t, err)
	require.Len(t, data, 88)
	assert.Equal(t, make([]byte, 7), data[81:])
	assert.Equal(t, 3, codec.PaddingSize(53, ledger.EmbeddedTransactionAlignment))
}

func TestEncodeEmbeddedTransactionRejected(t *testing.T) {
	aggregate := test_ledger.SampleAggregate(1)
	tx := ledger.NewEmbeddedTransaction(ledger.EmbeddedTransactionHeader{Network: ledger.NetworkTypeTestnet}, aggregate.Body)
	_, err := ledger.EncodeEmbeddedTransaction(tx)
	assert.ErrorIs(t, err, ledger.ErrUnknownEntityType)

	_, err = ledger.EncodeEmbeddedTransaction(nil)
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)
	_, err = ledger.EncodeEmbeddedTransaction(ledger.NewEmbeddedTransaction(ledger.EmbeddedTransactionHeader{}, nil))
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)
}

func TestDecodeEmbeddedTransactionUnknownType(t *testing.T) {
	tx := test_ledger.SampleEmbeddedTransactions()[0]
	data, err := ledger.EncodeEmbeddedTransaction(tx)
	require.NoError(t, err)
	for _, rawType := range []uint16{0x0000, 0xffff, uint16(ledger.EntityTypeAggregateBonded)} {
		tmp := append([]byte(nil), data...)
		tmp[46] = byte(rawType)
		tmp[47] = byte(rawType >> 8)
		decoded, err := ledger.DecodeEmbeddedTransaction(tmp)
		assert.Nil(t, decoded)
		var typeErr ledger.UnknownEntityTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, ledger.EntityType(rawType), typeErr.Type)
	}
}

func TestEmbeddedTransactionsList(t *testing.T) {
	txs := test_ledger.SampleEmbeddedTransactions()
	total := 0
	for _, tx := range txs {
		data, err := ledger.EncodeEmbeddedTransaction(tx)
		require.NoError(t, err)
		total += len(data)
	}
	assert.Equal(t, total, ledger.EmbeddedTransactionsSize(txs))
	data, err := ledger.EncodeEmbeddedTransactions(txs)
	require.NoError(t, err)
	require.Len(t, data, total)
	decoded, err := ledger.DecodeEmbeddedTransactions(data)
	require.NoError(t, err)
	assert.Equal(t, txs, decoded)

	empty, err := ledger.DecodeEmbeddedTransactions(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEmbeddedTransactionsMissingPadding(t *testing.T) {
	tx := ledger.NewEmbeddedTransaction(
		ledger.EmbeddedTransactionHeader{Network: ledger.NetworkTypeTestnet},
		&ledger.TransferTransactionBody{Message: []byte{1}},
	)
	data, err := ledger.EncodeEmbeddedTransactions([]*ledger.EmbeddedTransaction{tx})
	require.NoError(t, err)
	_, err = ledger.DecodeEmbeddedTransactions(data[:tx.Size()])
	assert.ErrorIs(t, err, codec.ErrMalformedLength)
}
