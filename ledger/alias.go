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
	AddressAliasTransactionBodySize = NamespaceIdSize + AddressSize + 1
	MosaicAliasTransactionBodySize  = NamespaceIdSize + MosaicIdSize + 1
)

// AddressAliasTransactionBody links a namespace to an account address
type AddressAliasTransactionBody struct {
	NamespaceId NamespaceId
	Address     Address
	AliasAction AliasAction
}

func NewAddressAliasTransactionBodyFromBinary(data []byte) (*AddressAliasTransactionBody, error) {
	return decodeAddressAliasTransactionBody(codec.NewReader(data))
}

func decodeAddressAliasTransactionBody(r *codec.Reader) (*AddressAliasTransactionBody, error) {
	b := &AddressAliasTransactionBody{}
	var err error
	if b.NamespaceId, err = readUint64[NamespaceId](r, "namespace id"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.Address[:], "address"); err != nil {
		return nil, err
	}
	if b.AliasAction, err = readEnum8[AliasAction](r, "alias action"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AddressAliasTransactionBody) EntityType() EntityType {
	return EntityTypeAddressAlias
}

func (b *AddressAliasTransactionBody) Size() int {
	return AddressAliasTransactionBodySize
}

func (b *AddressAliasTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *AddressAliasTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.NamespaceId))
	w.PutBytes(b.Address[:])
	putEnum8(w, b.AliasAction, "alias action")
}

// MosaicAliasTransactionBody links a namespace to a mosaic
type MosaicAliasTransactionBody struct {
	NamespaceId NamespaceId
	MosaicId    MosaicId
	AliasAction AliasAction
}

func NewMosaicAliasTransactionBodyFromBinary(data []byte) (*MosaicAliasTransactionBody, error) {
	return decodeMosaicAliasTransactionBody(codec.NewReader(data))
}

func decodeMosaicAliasTransactionBody(r *codec.Reader) (*MosaicAliasTransactionBody, error) {
	b := &MosaicAliasTransactionBody{}
	var err error
	if b.NamespaceId, err = readUint64[NamespaceId](r, "namespace id"); err != nil {
		return nil, err
	}
	if b.MosaicId, err = readUint64[MosaicId](r, "mosaic id"); err != nil {
		return nil, err
	}
	if b.AliasAction, err = readEnum8[AliasAction](r, "alias action"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *MosaicAliasTransactionBody) EntityType() EntityType {
	return EntityTypeMosaicAlias
}

func (b *MosaicAliasTransactionBody) Size() int {
	return MosaicAliasTransactionBodySize
}

func (b *MosaicAliasTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MosaicAliasTransactionBody) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.NamespaceId))
	w.PutUint64(uint64(b.MosaicId))
	putEnum8(w, b.AliasAction, "alias action")
}
