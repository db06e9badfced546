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

// Package ledger implements the catbuffer entity model: fixed-size values, enums,
// transaction bodies, the three transaction envelopes, receipts and the entity type
// registry that dispatches decoding on the 16-bit type tag.
//
// Decoding a top-level transaction:
//
//	tx, err := ledger.NewTransactionFromBinary(data)
//	if err != nil {
//		return err
//	}
//	switch body := tx.Body.(type) {
//	case *ledger.TransferTransactionBody:
//		...
//	}
//
// Size and type fields of an envelope are derived from its body on encode and
// checked against it on decode. Embedded transactions inside an aggregate are padded
// to 8-byte boundaries; EncodeEmbeddedTransactions and DecodeEmbeddedTransactions
// handle the padding.
//
// Decoded values are plain data and safe to share between goroutines.
package ledger
