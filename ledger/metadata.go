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

// MetadataValue holds the fields common to all metadata transactions. ValueSizeDelta
// is the change in the stored value size; Value is the XOR difference to apply.
type MetadataValue struct {
	TargetAddress     UnresolvedAddress
	ScopedMetadataKey uint64
	ValueSizeDelta    int16
	Value             []byte
}

func decodeMetadataTarget(r *codec.Reader, m *MetadataValue) error {
	var err error
	if err = readFixed(r, m.TargetAddress[:], "target address"); err != nil {
		return err
	}
	if m.ScopedMetadataKey, err = readUint64[uint64](r, "scoped metadata key"); err != nil {
		return err
	}
	return nil
}

func decodeMetadataValue(r *codec.Reader, m *MetadataValue) error {
	delta, err := readUint16(r, "value size delta")
	if err != nil {
		return err
	}
	m.ValueSizeDelta = int16(delta)
	valueSize, err := readUint16(r, "value size")
	if err != nil {
		return err
	}
	if m.Value, err = readBlob(r, int(valueSize), "value"); err != nil {
		return err
	}
	return nil
}

func (m *MetadataValue) encodeTarget(w *codec.Writer) {
	w.PutBytes(m.TargetAddress[:])
	w.PutUint64(m.ScopedMetadataKey)
}

func (m *MetadataValue) encodeValue(w *codec.Writer) {
	w.PutUint16(uint16(m.ValueSizeDelta))
	w.PutCount16(len(m.Value))
	w.PutBytes(m.Value)
}

func (m *MetadataValue) size() int {
	return UnresolvedAddressSize +
		8 + // scoped metadata key
		2 + // value size delta
		2 + // value size
		len(m.Value)
}

// AccountMetadataTransactionBody attaches metadata to an account
type AccountMetadataTransactionBody struct {
	MetadataValue
}

func NewAccountMetadataTransactionBodyFromBinary(data []byte) (*AccountMetadataTransactionBody, error) {
	return decodeAccountMetadataTransactionBody(codec.NewReader(data))
}

func decodeAccountMetadataTransactionBody(r *codec.Reader) (*AccountMetadataTransactionBody, error) {
	b := &AccountMetadataTransactionBody{}
	if err := decodeMetadataTarget(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	if err := decodeMetadataValue(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AccountMetadataTransactionBody) EntityType() EntityType {
	return EntityTypeAccountMetadata
}

func (b *AccountMetadataTransactionBody) Size() int {
	return b.size()
}

func (b *AccountMetadataTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *AccountMetadataTransactionBody) encode(w *codec.Writer) {
	b.encodeTarget(w)
	b.encodeValue(w)
}

// MosaicMetadataTransactionBody attaches metadata to a mosaic
type MosaicMetadataTransactionBody struct {
	MetadataValue
	TargetMosaicId UnresolvedMosaicId
}

func NewMosaicMetadataTransactionBodyFromBinary(data []byte) (*MosaicMetadataTransactionBody, error) {
	return decodeMosaicMetadataTransactionBody(codec.NewReader(data))
}

func decodeMosaicMetadataTransactionBody(r *codec.Reader) (*MosaicMetadataTransactionBody, error) {
	b := &MosaicMetadataTransactionBody{}
	var err error
	if err = decodeMetadataTarget(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	if b.TargetMosaicId, err = readUint64[UnresolvedMosaicId](r, "target mosaic id"); err != nil {
		return nil, err
	}
	if err = decodeMetadataValue(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicMetadataTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicMetadata
}

func (b *MosaicMetadataTransactionBody) Size() int {
	return b.size() + MosaicIdSize
}

func (b *MosaicMetadataTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicMetadataTransactionBody) encode(w *codec.Writer) {
	b.encodeTarget(w)
	w.PutUint64(uint64(b.TargetMosaicId))
	b.encodeValue(w)
}

// NamespaceMetadataTransactionBody attaches metadata to a namespace
type NamespaceMetadataTransactionBody struct {
	MetadataValue
	TargetNamespaceId NamespaceId
}

func NewNamespaceMetadataTransactionBodyFromBinary(data []byte) (*NamespaceMetadataTransactionBody, error) {
	return decodeNamespaceMetadataTransactionBody(codec.NewReader(data))
}

func decodeNamespaceMetadataTransactionBody(r *codec.Reader) (*NamespaceMetadataTransactionBody, error) {
	b := &NamespaceMetadataTransactionBody{}
	var err error
	if err = decodeMetadataTarget(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	if b.TargetNamespaceId, err = readUint64[NamespaceId](r, "target namespace id"); err != nil {
		return nil, err
	}
	if err = decodeMetadataValue(r, &b.MetadataValue); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *NamespaceMetadataTransactionBody) EntityType() EntityType {
	return EntityTypeNamespaceMetadata
}

func (b *NamespaceMetadataTransactionBody) Size() int {
	return b.size() + NamespaceIdSize
}

func (b *NamespaceMetadataTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *NamespaceMetadataTransactionBody) encode(w *codec.Writer) {
	b.encodeTarget(w)
	w.PutUint64(uint64(b.TargetNamespaceId))
	b.encodeValue(w)
}
