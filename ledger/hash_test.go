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

	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestGenerateNamespaceId(t *testing.T) {
	nem := ledger.GenerateNamespaceId(0, "nem")
	assert.Equal(t, [2]uint32{0x375FFA4B, 0x84B3552D}, nem.Pair())
	xem := ledger.GenerateNamespaceId(nem, "xem")
	assert.Equal(t, ledger.NamespaceId(0xD525AD41D95FCF29), xem)
	assert.Equal(t, []ledger.NamespaceId{nem, xem}, ledger.GenerateNamespacePath("nem", "xem"))
	assert.Empty(t, ledger.GenerateNamespacePath())
}

func TestGenerateMosaicId(t *testing.T) {
	id := ledger.GenerateMosaicId(0x01020304, test_ledger.SampleAddress(0x98))
	assert.Equal(t, ledger.MosaicId(0x1D25F5436211C0A5), id)
	assert.Zero(t, uint64(id)>>63)
}

func TestCalculateTransactionsHash(t *testing.T) {
	empty, err := ledger.CalculateTransactionsHash(nil)
	require.NoError(t, err)
	assert.Equal(t, ledger.Hash256{}, empty)

	txs := test_ledger.SampleEmbeddedTransactions()[:3]
	leaves := make([][32]byte, 0, len(txs))
	for _, tx := range txs {
		data, err := tx.Serialize()
		require.NoError(t, err)
		leaves = append(leaves, sha3.Sum256(data))
	}

	single, err := ledger.CalculateTransactionsHash(txs[:1])
	require.NoError(t, err)
	assert.Equal(t, ledger.Hash256(leaves[0]), single)

	node := func(a, b [32]byte) [32]byte {
		return sha3.Sum256(append(a[:], b[:]...))
	}
	expected := node(node(leaves[0], leaves[1]), node(leaves[2], leaves[2]))
	root, err := ledger.CalculateTransactionsHash(txs)
	require.NoError(t, err)
	assert.Equal(t, ledger.Hash256(expected), root)

	_, err = ledger.CalculateTransactionsHash([]*ledger.EmbeddedTransaction{nil})
	assert.ErrorIs(t, err, ledger.ErrInvalidConstruction)
}
