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

package bench

import (
	"testing"

	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxTypeFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected ledger.EntityType
		wantErr  bool
	}{
		{"Transfer", ledger.EntityTypeTransfer, false},
		{"transfer", ledger.EntityTypeTransfer, false}, // case insensitive
		{"AGGREGATEBONDED", ledger.EntityTypeAggregateBonded, false},
		{"HashLock", ledger.EntityTypeHashLock, false},
		{"unknown", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entityType, err := TxTypeFromName(tc.name)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, entityType)
			}
		})
	}
}

func TestLoadTxFixture(t *testing.T) {
	for _, name := range FixtureNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadTxFixture(name)
			require.NoError(t, err)
			require.NotNil(t, fixture)

			assert.Equal(t, name, fixture.Name)
			assert.Equal(t, fixture.Type, fixture.Tx.Type())
			assert.Len(t, fixture.Data, fixture.Tx.Size())

			tx, err := ledger.NewTransactionFromBinary(fixture.Data)
			require.NoError(t, err)
			assert.Equal(t, fixture.Tx, tx)
		})
	}
}

func TestLoadTxFixture_UnknownType(t *testing.T) {
	_, err := LoadTxFixture("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestMustLoadTxFixture_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadTxFixture("unknown")
	})
}

func TestLoadReceiptFixtures(t *testing.T) {
	fixtures, err := LoadReceiptFixtures()
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)
	for _, fixture := range fixtures {
		receipt, err := ledger.NewReceiptFromBinary(fixture.Data)
		require.NoError(t, err, fixture.Name)
		assert.Equal(t, fixture.Receipt, receipt, fixture.Name)
	}
}
