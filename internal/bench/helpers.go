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

// Package bench provides benchmark fixtures for the catbuffer codecs.
package bench

import (
	"fmt"
	"strings"

	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
)

// aggregateFixtureSize is the number of embedded transactions in aggregate fixtures
const aggregateFixtureSize = 8

// TxFixture contains a pre-serialized transaction for benchmarking.
type TxFixture struct {
	Name string
	Type ledger.EntityType
	Data []byte
	Tx   *ledger.Transaction
}

// LoadTxFixture builds a top-level transaction of the named entity type.
// Names match EntityType.String and are case insensitive.
func LoadTxFixture(name string) (*TxFixture, error) {
	entityType, err := TxTypeFromName(name)
	if err != nil {
		return nil, err
	}
	body, err := fixtureBody(entityType)
	if err != nil {
		return nil, err
	}
	tx := ledger.NewTransaction(test_ledger.SampleTransactionHeader(), body)
	data, err := tx.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize %s fixture: %w", entityType, err)
	}
	return &TxFixture{
		Name: entityType.String(),
		Type: entityType,
		Data: data,
		Tx:   tx,
	}, nil
}

// MustLoadTxFixture loads a transaction fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s tx fixture: %v", name, err))
	}
	return fixture
}

func fixtureBody(entityType ledger.EntityType) (ledger.TransactionBody, error) {
	switch entityType {
	case ledger.EntityTypeAggregateComplete, ledger.EntityTypeAggregateBonded:
		txs := test_ledger.SampleEmbeddedTransactions()[:aggregateFixtureSize]
		cosignatures := []ledger.Cosignature{
			{SignerPublicKey: test_ledger.SampleKey(0xc1), Signature: test_ledger.SampleSignature(0xc2)},
		}
		if entityType == ledger.EntityTypeAggregateBonded {
			return ledger.NewAggregateBondedTransactionBody(txs, cosignatures)
		}
		return ledger.NewAggregateCompleteTransactionBody(txs, cosignatures)
	}
	for _, body := range test_ledger.SampleBodies() {
		if body.EntityType() == entityType {
			return body, nil
		}
	}
	return nil, fmt.Errorf("no sample body for %s", entityType)
}

// TxTypeFromName returns the entity type with the given name
func TxTypeFromName(name string) (ledger.EntityType, error) {
	for _, entityType := range ledger.SupportedEntityTypes() {
		if strings.EqualFold(entityType.String(), name) {
			return entityType, nil
		}
	}
	return 0, fmt.Errorf("unknown entity type: %s", name)
}

// FixtureNames returns the names of every transaction fixture
func FixtureNames() []string {
	types := ledger.SupportedEntityTypes()
	ret := make([]string, 0, len(types))
	for _, entityType := range types {
		ret = append(ret, entityType.String())
	}
	return ret
}

// ReceiptFixture contains a pre-serialized receipt for benchmarking.
type ReceiptFixture struct {
	Name    string
	Data    []byte
	Receipt *ledger.Receipt
}

// LoadReceiptFixtures serializes one receipt of every body kind
func LoadReceiptFixtures() ([]*ReceiptFixture, error) {
	receipts := test_ledger.SampleReceipts()
	ret := make([]*ReceiptFixture, 0, len(receipts))
	for _, receipt := range receipts {
		data, err := receipt.Serialize()
		if err != nil {
			return nil, fmt.Errorf("serialize %s fixture: %w", receipt.Type, err)
		}
		ret = append(ret, &ReceiptFixture{
			Name:    receipt.Type.String(),
			Data:    data,
			Receipt: receipt,
		})
	}
	return ret, nil
}
