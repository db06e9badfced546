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

package ledger

import (
	"github.com/blinklabs-io/catbuffer/codec"
)

// TransferTransactionBody sends mosaics and an optional message to a recipient
type TransferTransactionBody struct {
	RecipientAddress UnresolvedAddress
	Message          []byte
	Mosaics          []UnresolvedMosaic
}

func NewTransferTransactionBodyFromBinary(data []byte) (*TransferTransactionBody, error) {
	return decodeTransferTransactionBody(codec.NewReader(data))
}

func decodeTransferTransactionBody(r *codec.Reader) (*TransferTransactionBody, error) {
	b := &TransferTransactionBody{}
	if err := readFixed(r, b.RecipientAddress[:], "recipient address"); err != nil {
		return nil, err
	}
	messageSize, err := readUint16(r, "message size")
	if err != nil {
		return nil, err
	}
	mosaicsCount, err := readUint8(r, "mosaics count")
	if err != nil {
		return nil, err
	}
	if b.Message, err = readBlob(r, int(messageSize), "message"); err != nil {
		return nil, err
	}
	for range mosaicsCount {
		mosaic, err := decodeUnresolvedMosaic(r)
		if err != nil {
			return nil, err
		}
		b.Mosaics = append(b.Mosaics, mosaic)
	}
	return b, nil
}

func (b *TransferTransactionBody) EntityType() EntityType {
	return EntityTypeTransfer
}

func (b *TransferTransactionBody) Size() int {
	return UnresolvedAddressSize +
		2 + // message size
		1 + // mosaics count
		len(b.Message) +
		len(b.Mosaics)*UnresolvedMosaicSize
}

func (b *TransferTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *TransferTransactionBody) encode(w *codec.Writer) {
	w.PutBytes(b.RecipientAddress[:])
	w.PutCount16(len(b.Message))
	w.PutCount8(len(b.Mosaics))
	w.PutBytes(b.Message)
	for _, mosaic := range b.Mosaics {
		mosaic.encode(w)
	}
}
