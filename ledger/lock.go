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
	HashLockTransactionBodySize   = UnresolvedMosaicSize + BlockDurationSize + Hash256Size
	SecretLockTransactionBodySize = UnresolvedAddressSize + Hash256Size + UnresolvedMosaicSize + BlockDurationSize + 1
)

// HashLockTransactionBody locks funds as a deposit for an aggregate bonded transaction
type HashLockTransactionBody struct {
	Mosaic   UnresolvedMosaic
	Duration BlockDuration
	Hash     Hash256
}

func NewHashLockTransactionBodyFromBinary(data []byte) (*HashLockTransactionBody, error) {
	return decodeHashLockTransactionBody(codec.NewReader(data))
}

func decodeHashLockTransactionBody(r *codec.Reader) (*HashLockTransactionBody, error) {
	b := &HashLockTransactionBody{}
	var err error
	if b.Mosaic, err = decodeUnresolvedMosaic(r); err != nil {
		return nil, err
	}
	if b.Duration, err = readUint64[BlockDuration](r, "duration"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.Hash[:], "hash"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *HashLockTransactionBody) EntityType() EntityType {
	return EntityTypeHashLock
}

func (b *HashLockTransactionBody) Size() int {
	return HashLockTransactionBodySize
}

func (b *HashLockTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *HashLockTransactionBody) encode(w *codec.Writer) {
	b.Mosaic.encode(w)
	w.PutUint64(uint64(b.Duration))
	w.PutBytes(b.Hash[:])
}

// SecretLockTransactionBody locks a mosaic until the proof of a secret is revealed
type SecretLockTransactionBody struct {
	RecipientAddress UnresolvedAddress
	Secret           Hash256
	Mosaic           UnresolvedMosaic
	Duration         BlockDuration
	HashAlgorithm    LockHashAlgorithm
}

func NewSecretLockTransactionBodyFromBinary(data []byte) (*SecretLockTransactionBody, error) {
	return decodeSecretLockTransactionBody(codec.NewReader(data))
}

func decodeSecretLockTransactionBody(r *codec.Reader) (*SecretLockTransactionBody, error) {
	b := &SecretLockTransactionBody{}
	var err error
	if err = readFixed(r, b.RecipientAddress[:], "recipient address"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.Secret[:], "secret"); err != nil {
		return nil, err
	}
	if b.Mosaic, err = decodeUnresolvedMosaic(r); err != nil {
		return nil, err
	}
	if b.Duration, err = readUint64[BlockDuration](r, "duration"); err != nil {
		return nil, err
	}
	if b.HashAlgorithm, err = readEnum8[LockHashAlgorithm](r, "hash algorithm"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *SecretLockTransactionBody) EntityType() EntityType {
	return EntityTypeSecretLock
}

func (b *SecretLockTransactionBody) Size() int {
	return SecretLockTransactionBodySize
}

func (b *SecretLockTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *SecretLockTransactionBody) encode(w *codec.Writer) {
	w.PutBytes(b.RecipientAddress[:])
	w.PutBytes(b.Secret[:])
	b.Mosaic.encode(w)
	w.PutUint64(uint64(b.Duration))
	putEnum8(w, b.HashAlgorithm, "hash algorithm")
}

// SecretProofTransactionBody unlocks a secret lock by revealing the proof
type SecretProofTransactionBody struct {
	RecipientAddress UnresolvedAddress
	Secret           Hash256
	HashAlgorithm    LockHashAlgorithm
	Proof            []byte
}

func NewSecretProofTransactionBodyFromBinary(data []byte) (*SecretProofTransactionBody, error) {
	return decodeSecretProofTransactionBody(codec.NewReader(data))
}

func decodeSecretProofTransactionBody(r *codec.Reader) (*SecretProofTransactionBody, error) {
	b := &SecretProofTransactionBody{}
	var err error
	if err = readFixed(r, b.RecipientAddress[:], "recipient address"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.Secret[:], "secret"); err != nil {
		return nil, err
	}
	proofSize, err := readUint16(r, "proof size")
	if err != nil {
		return nil, err
	}
	if b.HashAlgorithm, err = readEnum8[LockHashAlgorithm](r, "hash algorithm"); err != nil {
		return nil, err
	}
	if b.Proof, err = readBlob(r, int(proofSize), "proof"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *SecretProofTransactionBody) EntityType() EntityType {
	return EntityTypeSecretProof
}

func (b *SecretProofTransactionBody) Size() int {
	return UnresolvedAddressSize +
		Hash256Size +
		2 + // proof size
		1 + // hash algorithm
		len(b.Proof)
}

func (b *SecretProofTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *SecretProofTransactionBody) encode(w *codec.Writer) {
	w.PutBytes(b.RecipientAddress[:])
	w.PutBytes(b.Secret[:])
	w.PutCount16(len(b.Proof))
	putEnum8(w, b.HashAlgorithm, "hash algorithm")
	w.PutBytes(b.Proof)
}
