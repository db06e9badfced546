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

const accountRestrictionPrefixSize = 2 + // restriction flags
	1 + // additions count
	1 + // deletions count
	4 // reserved

type accountRestrictionPrefix struct {
	flags          AccountRestrictionFlags
	additionsCount uint8
	deletionsCount uint8
}

func decodeAccountRestrictionPrefix(r *codec.Reader) (accountRestrictionPrefix, error) {
	var ret accountRestrictionPrefix
	var err error
	if ret.flags, err = readEnum16[AccountRestrictionFlags](r, "account restriction flags"); err != nil {
		return ret, err
	}
	if ret.additionsCount, err = readUint8(r, "restriction additions count"); err != nil {
		return ret, err
	}
	if ret.deletionsCount, err = readUint8(r, "restriction deletions count"); err != nil {
		return ret, err
	}
	if err = skipReserved(r, 4, "account restriction reserved"); err != nil {
		return ret, err
	}
	return ret, nil
}

func encodeAccountRestrictionPrefix(
	w *codec.Writer,
	flags AccountRestrictionFlags,
	additions int,
	deletions int,
) {
	putEnum16(w, flags, "account restriction flags")
	w.PutCount8(additions)
	w.PutCount8(deletions)
	w.PutZeros(4)
}

// AccountAddressRestrictionTransactionBody allows or blocks incoming and outgoing
// transactions for a set of addresses
type AccountAddressRestrictionTransactionBody struct {
	RestrictionFlags     AccountRestrictionFlags
	RestrictionAdditions []UnresolvedAddress
	RestrictionDeletions []UnresolvedAddress
}

func NewAccountAddressRestrictionTransactionBodyFromBinary(
	data []byte,
) (*AccountAddressRestrictionTransactionBody, error) {
	return decodeAccountAddressRestrictionTransactionBody(codec.NewReader(data))
}

func decodeAccountAddressRestrictionTransactionBody(
	r *codec.Reader,
) (*AccountAddressRestrictionTransactionBody, error) {
	prefix, err := decodeAccountRestrictionPrefix(r)
	if err != nil {
		return nil, err
	}
	b := &AccountAddressRestrictionTransactionBody{RestrictionFlags: prefix.flags}
	if b.RestrictionAdditions, err = readUnresolvedAddresses(r, int(prefix.additionsCount), "restriction additions"); err != nil {
		return nil, err
	}
	if b.RestrictionDeletions, err = readUnresolvedAddresses(r, int(prefix.deletionsCount), "restriction deletions"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AccountAddressRestrictionTransactionBody) EntityType() EntityType {
	return EntityTypeAccountAddressRestriction
}

func (b *AccountAddressRestrictionTransactionBody) Size() int {
	return accountRestrictionPrefixSize +
		(len(b.RestrictionAdditions)+len(b.RestrictionDeletions))*UnresolvedAddressSize
}

func (b *AccountAddressRestrictionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *AccountAddressRestrictionTransactionBody) encode(w *codec.Writer) {
	encodeAccountRestrictionPrefix(w, b.RestrictionFlags, len(b.RestrictionAdditions), len(b.RestrictionDeletions))
	for _, addr := range b.RestrictionAdditions {
		w.PutBytes(addr[:])
	}
	for _, addr := range b.RestrictionDeletions {
		w.PutBytes(addr[:])
	}
}

// AccountMosaicRestrictionTransactionBody allows or blocks incoming transactions
// carrying a set of mosaics
type AccountMosaicRestrictionTransactionBody struct {
	RestrictionFlags     AccountRestrictionFlags
	RestrictionAdditions []UnresolvedMosaicId
	RestrictionDeletions []UnresolvedMosaicId
}

func NewAccountMosaicRestrictionTransactionBodyFromBinary(
	data []byte,
) (*AccountMosaicRestrictionTransactionBody, error) {
	return decodeAccountMosaicRestrictionTransactionBody(codec.NewReader(data))
}

func readUnresolvedMosaicIds(r *codec.Reader, count int, name string) ([]UnresolvedMosaicId, error) {
	if count == 0 {
		return nil, nil
	}
	ret := make([]UnresolvedMosaicId, count)
	for i := range ret {
		v, err := readUint64[UnresolvedMosaicId](r, name)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func decodeAccountMosaicRestrictionTransactionBody(
	r *codec.Reader,
) (*AccountMosaicRestrictionTransactionBody, error) {
	prefix, err := decodeAccountRestrictionPrefix(r)
	if err != nil {
		return nil, err
	}
	b := &AccountMosaicRestrictionTransactionBody{RestrictionFlags: prefix.flags}
	if b.RestrictionAdditions, err = readUnresolvedMosaicIds(r, int(prefix.additionsCount), "restriction additions"); err != nil {
		return nil, err
	}
	if b.RestrictionDeletions, err = readUnresolvedMosaicIds(r, int(prefix.deletionsCount), "restriction deletions"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AccountMosaicRestrictionTransactionBody) EntityType() EntityType {
	return EntityTypeAccountMosaicRestriction
}

func (b *AccountMosaicRestrictionTransactionBody) Size() int {
	return accountRestrictionPrefixSize +
		(len(b.RestrictionAdditions)+len(b.RestrictionDeletions))*MosaicIdSize
}

func (b *AccountMosaicRestrictionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *AccountMosaicRestrictionTransactionBody) encode(w *codec.Writer) {
	encodeAccountRestrictionPrefix(w, b.RestrictionFlags, len(b.RestrictionAdditions), len(b.RestrictionDeletions))
	for _, id := range b.RestrictionAdditions {
		w.PutUint64(uint64(id))
	}
	for _, id := range b.RestrictionDeletions {
		w.PutUint64(uint64(id))
	}
}

// AccountOperationRestrictionTransactionBody allows or blocks outgoing transactions
// of the listed entity types
type AccountOperationRestrictionTransactionBody struct {
	RestrictionFlags     AccountRestrictionFlags
	RestrictionAdditions []EntityType
	RestrictionDeletions []EntityType
}

func NewAccountOperationRestrictionTransactionBodyFromBinary(
	data []byte,
) (*AccountOperationRestrictionTransactionBody, error) {
	return decodeAccountOperationRestrictionTransactionBody(codec.NewReader(data))
}

func readEntityTypes(r *codec.Reader, count int, name string) ([]EntityType, error) {
	if count == 0 {
		return nil, nil
	}
	ret := make([]EntityType, count)
	for i := range ret {
		v, err := readEnum16[EntityType](r, name)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func decodeAccountOperationRestrictionTransactionBody(
	r *codec.Reader,
) (*AccountOperationRestrictionTransactionBody, error) {
	prefix, err := decodeAccountRestrictionPrefix(r)
	if err != nil {
		return nil, err
	}
	b := &AccountOperationRestrictionTransactionBody{RestrictionFlags: prefix.flags}
	if b.RestrictionAdditions, err = readEntityTypes(r, int(prefix.additionsCount), "restriction additions"); err != nil {
		return nil, err
	}
	if b.RestrictionDeletions, err = readEntityTypes(r, int(prefix.deletionsCount), "restriction deletions"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AccountOperationRestrictionTransactionBody) EntityType() EntityType {
	return EntityTypeAccountOperationRestriction
}

func (b *AccountOperationRestrictionTransactionBody) Size() int {
	return accountRestrictionPrefixSize +
		(len(b.RestrictionAdditions)+len(b.RestrictionDeletions))*EntityTypeSize
}

func (b *AccountOperationRestrictionTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *AccountOperationRestrictionTransactionBody) encode(w *codec.Writer) {
	encodeAccountRestrictionPrefix(w, b.RestrictionFlags, len(b.RestrictionAdditions), len(b.RestrictionDeletions))
	for _, t := range b.RestrictionAdditions {
		putEnum16(w, t, "restriction additions")
	}
	for _, t := range b.RestrictionDeletions {
		putEnum16(w, t, "restriction deletions")
	}
}
