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

// MultisigAccountModificationTransactionBody converts an account into a multisig account
// or changes its cosignatories and approval thresholds
type MultisigAccountModificationTransactionBody struct {
	MinRemovalDelta  int8
	MinApprovalDelta int8
	AddressAdditions []UnresolvedAddress
	AddressDeletions []UnresolvedAddress
}

func NewMultisigAccountModificationTransactionBodyFromBinary(
	data []byte,
) (*MultisigAccountModificationTransactionBody, error) {
	return decodeMultisigAccountModificationTransactionBody(codec.NewReader(data))
}

func decodeMultisigAccountModificationTransactionBody(
	r *codec.Reader,
) (*MultisigAccountModificationTransactionBody, error) {
	b := &MultisigAccountModificationTransactionBody{}
	removal, err := readUint8(r, "min removal delta")
	if err != nil {
		return nil, err
	}
	approval, err := readUint8(r, "min approval delta")
	if err != nil {
		return nil, err
	}
	b.MinRemovalDelta = int8(removal)
	b.MinApprovalDelta = int8(approval)
	additionsCount, err := readUint8(r, "address additions count")
	if err != nil {
		return nil, err
	}
	deletionsCount, err := readUint8(r, "address deletions count")
	if err != nil {
		return nil, err
	}
	if err := skipReserved(r, 4, "multisig account modification reserved"); err != nil {
		return nil, err
	}
	if b.AddressAdditions, err = readUnresolvedAddresses(r, int(additionsCount), "address additions"); err != nil {
		return nil, err
	}
	if b.AddressDeletions, err = readUnresolvedAddresses(r, int(deletionsCount), "address deletions"); err != nil {
		return nil, err
	}
	return b, nil
}

func readUnresolvedAddresses(r *codec.Reader, count int, name string) ([]UnresolvedAddress, error) {
	if count == 0 {
		return nil, nil
	}
	ret := make([]UnresolvedAddress, count)
	for i := range ret {
		if err := readFixed(r, ret[i][:], name); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (b *MultisigAccountModificationTransactionBody) EntityType() EntityType {
	return EntityTypeMultisigAccountModification
}

func (b *MultisigAccountModificationTransactionBody) Size() int {
	return 1 + // min removal delta
		1 + // min approval delta
		1 + // address additions count
		1 + // address deletions count
		4 + // reserved
		len(b.AddressAdditions)*UnresolvedAddressSize +
		len(b.AddressDeletions)*UnresolvedAddressSize
}

func (b *MultisigAccountModificationTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *MultisigAccountModificationTransactionBody) encode(w *codec.Writer) {
	w.PutUint8(uint8(b.MinRemovalDelta))
	w.PutUint8(uint8(b.MinApprovalDelta))
	w.PutCount8(len(b.AddressAdditions))
	w.PutCount8(len(b.AddressDeletions))
	w.PutZeros(4)
	for _, addr := range b.AddressAdditions {
		w.PutBytes(addr[:])
	}
	for _, addr := range b.AddressDeletions {
		w.PutBytes(addr[:])
	}
}
