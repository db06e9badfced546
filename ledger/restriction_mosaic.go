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
	MosaicAddressRestrictionTransactionBodySize = MosaicIdSize + 8 + 8 + 8 + UnresolvedAddressSize
	MosaicGlobalRestrictionTransactionBodySize  = MosaicIdSize + MosaicIdSize + 8 + 8 + 8 + 1 + 1
)

// MosaicAddressRestrictionTransactionBody sets the restriction value of a mosaic for
// a single address
type MosaicAddressRestrictionTransactionBody struct {
	MosaicId                 UnresolvedMosaicId
	RestrictionKey           uint64
	PreviousRestrictionValue uint64
	NewRestrictionValue      uint64
	TargetAddress            UnresolvedAddress
}

func NewMosaicAddressRestrictionTransactionBodyFromBinary(
	data []byte,
) (*MosaicAddressRestrictionTransactionBody, error) {
	return decodeMosaicAddressRestrictionTransactionBody(codec.NewReader(data))
}

func decodeMosaicAddressRestrictionTransactionBody(
	r *codec.Reader,
) (*MosaicAddressRestrictionTransactionBody, error) {
	b := &MosaicAddressRestrictionTransactionBody{}
	var err error
	if b.MosaicId, err = readUint64[UnresolvedMosaicId](r, "mosaic id"); err != nil {
		return nil, err
	}
	if b.RestrictionKey, err = readUint64[uint64](r, "restriction key"); err != nil {
		return nil, err
	}
	if b.PreviousRestrictionValue, err = readUint64[uint64](r, "previous restriction value"); err != nil {
		return nil, err
	}
	if b.NewRestrictionValue, err = readUint64[uint64](r, "new restriction value"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.TargetAddress[:], "target address"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicAddressRestrictionTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicAddressRestriction
}

func (b *MosaicAddressRestrictionTransactionBody) Size() int {
	return MosaicAddressRestrictionTransactionBodySize
}

func (b *MosaicAddressRestrictionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicAddressRestrictionTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.MosaicId))
	w.PutUint64(b.RestrictionKey)
	w.PutUint64(b.PreviousRestrictionValue)
	w.PutUint64(b.NewRestrictionValue)
	w.PutBytes(b.TargetAddress[:])
}

// MosaicGlobalRestrictionTransactionBody sets a network-wide restriction rule on a
// mosaic, optionally keyed on the restrictions of a reference mosaic
type MosaicGlobalRestrictionTransactionBody struct {
	MosaicId                 UnresolvedMosaicId
	ReferenceMosaicId        UnresolvedMosaicId
	RestrictionKey           uint64
	PreviousRestrictionValue uint64
	NewRestrictionValue      uint64
	PreviousRestrictionType  MosaicRestrictionType
	NewRestrictionType       MosaicRestrictionType
}

func NewMosaicGlobalRestrictionTransactionBodyFromBinary(
	data []byte,
) (*MosaicGlobalRestrictionTransactionBody, error) {
	return decodeMosaicGlobalRestrictionTransactionBody(codec.NewReader(data))
}

func decodeMosaicGlobalRestrictionTransactionBody(
	r *codec.Reader,
) (*MosaicGlobalRestrictionTransactionBody, error) {
	b := &MosaicGlobalRestrictionTransactionBody{}
	var err error
	if b.MosaicId, err = readUint64[UnresolvedMosaicId](r, "mosaic id"); err != nil {
		return nil, err
	}
	if b.ReferenceMosaicId, err = readUint64[UnresolvedMosaicId](r, "reference mosaic id"); err != nil {
		return nil, err
	}
	if b.RestrictionKey, err = readUint64[uint64](r, "restriction key"); err != nil {
		return nil, err
	}
	if b.PreviousRestrictionValue, err = readUint64[uint64](r, "previous restriction value"); err != nil {
		return nil, err
	}
	if b.NewRestrictionValue, err = readUint64[uint64](r, "new restriction value"); err != nil {
		return nil, err
	}
	if b.PreviousRestrictionType, err = readEnum8[MosaicRestrictionType](r, "previous restriction type"); err != nil {
		return nil, err
	}
	if b.NewRestrictionType, err = readEnum8[MosaicRestrictionType](r, "new restriction type"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicGlobalRestrictionTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicGlobalRestriction
}

func (b *MosaicGlobalRestrictionTransactionBody) Size() int {
	return MosaicGlobalRestrictionTransactionBodySize
}

func (b *MosaicGlobalRestrictionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicGlobalRestrictionTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.MosaicId))
	w.PutUint64(uint64(b.ReferenceMosaicId))
	w.PutUint64(b.RestrictionKey)
	w.PutUint64(b.PreviousRestrictionValue)
	w.PutUint64(b.NewRestrictionValue)
	putEnum8(w, b.PreviousRestrictionType, "previous restriction type")
	putEnum8(w, b.NewRestrictionType, "new restriction type")
}
