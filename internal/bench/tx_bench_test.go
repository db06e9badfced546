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
	"fmt"
	"testing"

	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink any

// BenchmarkTxDecode benchmarks top-level transaction decoding by entity type.
func BenchmarkTxDecode(b *testing.B) {
	for _, name := range FixtureNames() {
		fixture := MustLoadTxFixture(name)

		b.Run("Type_"+name, func(b *testing.B) {
			// Pre-validate that decoding succeeds before measuring
			tx, err := ledger.NewTransactionFromBinary(fixture.Data)
			if err != nil {
				b.Fatalf("NewTransactionFromBinary failed for %s: %v", name, err)
			}
			benchSink = tx

			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.NewTransactionFromBinary(fixture.Data)
			}
		})
	}
}

// BenchmarkTxEncode benchmarks top-level transaction serialization by entity type.
func BenchmarkTxEncode(b *testing.B) {
	for _, name := range FixtureNames() {
		fixture := MustLoadTxFixture(name)

		b.Run("Type_"+name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = fixture.Tx.Serialize()
			}
		})
	}
}

// BenchmarkEmbeddedTransactionsDecode benchmarks decoding padded embedded
// transaction lists of increasing length.
func BenchmarkEmbeddedTransactionsDecode(b *testing.B) {
	all := test_ledger.SampleEmbeddedTransactions()
	for _, count := range []int{1, 4, len(all)} {
		data, err := ledger.EncodeEmbeddedTransactions(all[:count])
		if err != nil {
			b.Fatalf("EncodeEmbeddedTransactions failed: %v", err)
		}

		b.Run(fmt.Sprintf("Count_%d", count), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.DecodeEmbeddedTransactions(data)
			}
		})
	}
}

// BenchmarkReceiptDecode benchmarks receipt decoding by receipt type.
func BenchmarkReceiptDecode(b *testing.B) {
	fixtures, err := LoadReceiptFixtures()
	if err != nil {
		b.Fatalf("LoadReceiptFixtures failed: %v", err)
	}
	for _, fixture := range fixtures {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			b.SetBytes(int64(len(fixture.Data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.NewReceiptFromBinary(fixture.Data)
			}
		})
	}
}
