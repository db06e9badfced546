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

const (
	MosaicDefinitionTransactionBodySize   = MosaicIdSize + BlockDurationSize + MosaicNonceSize + 1 + 1
	MosaicSupplyChangeTransactionBodySize = MosaicIdSize + AmountSize + 1
)

// MosaicDefinitionTransactionBody creates or modifies a mosaic
type MosaicDefinitionTransactionBody struct {
	Id           MosaicId
	Duration     BlockDuration
	Nonce        MosaicNonce
	Flags        MosaicFlags
	Divisibility uint8
}

func NewMosaicDefinitionTransactionBodyFromBinary(data []byte) (*MosaicDefinitionTransactionBody, error) {
	return decodeMosaicDefinitionTransactionBody(codec.NewReader(data))
}

func decodeMosaicDefinitionTransactionBody(r *codec.Reader) (*MosaicDefinitionTransactionBody, error) {
	b := &MosaicDefinitionTransactionBody{}
	var err error
	if b.Id, err = readUint64[MosaicId](r, "mosaic id"); err != nil {
		return nil, err
	}
	if b.Duration, err = readUint64[BlockDuration](r, "duration"); err != nil {
		return nil, err
	}
	nonce, err := readUint32(r, "mosaic nonce")
	if err != nil {
		return nil, err
	}
	b.Nonce = MosaicNonce(nonce)
	if b.Flags, err = readEnum8[MosaicFlags](r, "mosaic flags"); err != nil {
		return nil, err
	}
	if b.Divisibility, err = readUint8(r, "divisibility"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicDefinitionTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicDefinition
}

func (b *MosaicDefinitionTransactionBody) Size() int {
	return MosaicDefinitionTransactionBodySize
}

func (b *MosaicDefinitionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicDefinitionTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.Id))
	w.PutUint64(uint64(b.Duration))
	w.PutUint32(uint32(b.Nonce))
	putEnum8(w, b.Flags, "mosaic flags")
	w.PutUint8(b.Divisibility)
}

// MosaicSupplyChangeTransactionBody increases or decreases the supply of a mosaic
type MosaicSupplyChangeTransactionBody struct {
	MosaicId UnresolvedMosaicId
	Delta    Amount
	Action   MosaicSupplyChangeAction
}

func NewMosaicSupplyChangeTransactionBodyFromBinary(data []byte) (*MosaicSupplyChangeTransactionBody, error) {
	return decodeMosaicSupplyChangeTransactionBody(codec.NewReader(data))
}

func decodeMosaicSupplyChangeTransactionBody(r *codec.Reader) (*MosaicSupplyChangeTransactionBody, error) {
	b := &MosaicSupplyChangeTransactionBody{}
	var err error
	if b.MosaicId, err = readUint64[UnresolvedMosaicId](r, "mosaic id"); err != nil {
		return nil, err
	}
	if b.Delta, err = readUint64[Amount](r, "delta"); err != nil {
		return nil, err
	}
	if b.Action, err = readEnum8[MosaicSupplyChangeAction](r, "mosaic supply change action"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicSupplyChangeTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicSupplyChange
}

func (b *MosaicSupplyChangeTransactionBody) Size() int {
	return MosaicSupplyChangeTransactionBodySize
}

func (b *MosaicSupplyChangeTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicSupplyChangeTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.MosaicId))
	w.PutUint64(uint64(b.Delta))
	putEnum8(w, b.Action, "mosaic supply change action")
}
