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
)

func FuzzNewTransactionFromBinary(f *testing.F) {
	for _, body := range test_ledger.SampleBodies() {
		data, err := ledger.NewTransaction(test_ledger.SampleTransactionHeader(), body).Serialize()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}
	aggregate, err := test_ledger.SampleAggregate(4).Serialize()
	if err != nil {
		f.Fatal(err)
	}
	f.Add(aggregate)

	f.Fuzz(func(t *testing.T, data []byte) {
		tx, err := ledger.NewTransactionFromBinary(data)
		if err != nil {
			return
		}
		// anything accepted must encode again at its declared size
		encoded, err := tx.Serialize()
		if err != nil {
			t.Fatalf("re-encode failed: %s", err)
		}
		if len(encoded) != tx.Size() {
			t.Fatalf("encoded %d bytes, size is %d", len(encoded), tx.Size())
		}
	})
}

func FuzzDecodeEmbeddedTransactions(f *testing.F) {
	data, err := ledger.EncodeEmbeddedTransactions(test_ledger.SampleEmbeddedTransactions())
	if err != nil {
		f.Fatal(err)
	}
	f.Add(data)
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = ledger.DecodeEmbeddedTransactions(data)
	})
}

func FuzzNewReceiptFromBinary(f *testing.F) {
	for _, receipt := range test_ledger.SampleReceipts() {
		data, err := receipt.Serialize()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = ledger.NewReceiptFromBinary(data)
	})
}
