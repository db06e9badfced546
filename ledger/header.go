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
	"fmt"

	"github.com/blinklabs-io/catbuffer/codec"
)

const (
	// size(4) signature(64) signer(32) version(1) network(1) type(2) fee(8) deadline(8)
	TransactionHeaderSize = 4 + SignatureSize + KeySize + 1 + 1 + 2 + AmountSize + TimestampSize
	// size(4) signature(64) signer(32) version(2) type(2) fee(8) deadline(8)
	LegacyTransactionHeaderSize = 4 + SignatureSize + KeySize + 2 + 2 + AmountSize + TimestampSize
	// size(4) reserved(4) signer(32) reserved(4) version(1) network(1) type(2)
	EmbeddedTransactionHeaderSize = 4 + 4 + KeySize + 4 + 1 + 1 + 2
)

// EntityPrefix holds the size and type fields of an entity header. They are only ever
// read from a payload; when encoding both are derived from the entity content.
type EntityPrefix struct {
	Size uint32
	Type EntityType
}

// TransactionHeader is the header shared by all top-level transactions
type TransactionHeader struct {
	Signature       Signature
	SignerPublicKey Key
	Version         uint8
	Network         NetworkType
	Fee             Amount
	Deadline        Timestamp
}

// NewTransactionHeaderFromBinary decodes a transaction header from the front of data
func NewTransactionHeaderFromBinary(data []byte) (TransactionHeader, EntityPrefix, error) {
	return decodeTransactionHeader(codec.NewReader(data))
}

func decodeTransactionHeader(r *codec.Reader) (TransactionHeader, EntityPrefix, error) {
	var h TransactionHeader
	var prefix EntityPrefix
	var err error
	if prefix.Size, err = r.ReadUint32(); err != nil {
		return h, prefix, fmt.Errorf("decode transaction size: %w", err)
	}
	if err := readFixed(r, h.Signature[:], "signature"); err != nil {
		return h, prefix, err
	}
	if err := readFixed(r, h.SignerPublicKey[:], "signer public key"); err != nil {
		return h, prefix, err
	}
	if h.Version, err = r.ReadUint8(); err != nil {
		return h, prefix, fmt.Errorf("decode version: %w", err)
	}
	if h.Network, err = readEnum8[NetworkType](r, "network type"); err != nil {
		return h, prefix, err
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return h, prefix, fmt.Errorf("decode entity type: %w", err)
	}
	prefix.Type = EntityType(rawType)
	if h.Fee, err = readUint64[Amount](r, "fee"); err != nil {
		return h, prefix, err
	}
	if h.Deadline, err = readUint64[Timestamp](r, "deadline"); err != nil {
		return h, prefix, err
	}
	return h, prefix, nil
}

func (h TransactionHeader) Size() int {
	return TransactionHeaderSize
}

func (h TransactionHeader) encode(w *codec.Writer, size int, entityType EntityType) {
	w.PutCount32(size)
	w.PutBytes(h.Signature[:])
	w.PutBytes(h.SignerPublicKey[:])
	w.PutUint8(h.Version)
	putEnum8(w, h.Network, "network type")
	putEnum16(w, entityType, "entity type")
	w.PutUint64(uint64(h.Fee))
	w.PutUint64(uint64(h.Deadline))
}

// LegacyTransactionHeader is the header layout that predates the separate network byte.
// Version holds the whole 16-bit version word.
type LegacyTransactionHeader struct {
	Signature       Signature
	SignerPublicKey Key
	Version         uint16
	Fee             Amount
	Deadline        Timestamp
}

// NewLegacyTransactionHeaderFromBinary decodes a legacy transaction header from the front of data
func NewLegacyTransactionHeaderFromBinary(data []byte) (LegacyTransactionHeader, EntityPrefix, error) {
	return decodeLegacyTransactionHeader(codec.NewReader(data))
}

func decodeLegacyTransactionHeader(r *codec.Reader) (LegacyTransactionHeader, EntityPrefix, error) {
	var h LegacyTransactionHeader
	var prefix EntityPrefix
	var err error
	if prefix.Size, err = r.ReadUint32(); err != nil {
		return h, prefix, fmt.Errorf("decode transaction size: %w", err)
	}
	if err := readFixed(r, h.Signature[:], "signature"); err != nil {
		return h, prefix, err
	}
	if err := readFixed(r, h.SignerPublicKey[:], "signer public key"); err != nil {
		return h, prefix, err
	}
	if h.Version, err = r.ReadUint16(); err != nil {
		return h, prefix, fmt.Errorf("decode version: %w", err)
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return h, prefix, fmt.Errorf("decode entity type: %w", err)
	}
	prefix.Type = EntityType(rawType)
	if h.Fee, err = readUint64[Amount](r, "fee"); err != nil {
		return h, prefix, err
	}
	if h.Deadline, err = readUint64[Timestamp](r, "deadline"); err != nil {
		return h, prefix, err
	}
	return h, prefix, nil
}

func (h LegacyTransactionHeader) Size() int {
	return LegacyTransactionHeaderSize
}

func (h LegacyTransactionHeader) encode(w *codec.Writer, size int, entityType EntityType) {
	w.PutCount32(size)
	w.PutBytes(h.Signature[:])
	w.PutBytes(h.SignerPublicKey[:])
	w.PutUint16(h.Version)
	putEnum16(w, entityType, "entity type")
	w.PutUint64(uint64(h.Fee))
	w.PutUint64(uint64(h.Deadline))
}

// EmbeddedTransactionHeader is the reduced header of a transaction nested in an aggregate
type EmbeddedTransactionHeader struct {
	SignerPublicKey Key
	Version         uint8
	Network         NetworkType
}

// NewEmbeddedTransactionHeaderFromBinary decodes an embedded transaction header from the front of data
func NewEmbeddedTransactionHeaderFromBinary(data []byte) (EmbeddedTransactionHeader, EntityPrefix, error) {
	return decodeEmbeddedTransactionHeader(codec.NewReader(data))
}

func decodeEmbeddedTransactionHeader(r *codec.Reader) (EmbeddedTransactionHeader, EntityPrefix, error) {
	var h EmbeddedTransactionHeader
	var prefix EntityPrefix
	var err error
	if prefix.Size, err = r.ReadUint32(); err != nil {
		return h, prefix, fmt.Errorf("decode embedded transaction size: %w", err)
	}
	// reserved
	if err := r.Skip(4); err != nil {
		return h, prefix, fmt.Errorf("decode embedded transaction header: %w", err)
	}
	if err := readFixed(r, h.SignerPublicKey[:], "signer public key"); err != nil {
		return h, prefix, err
	}
	// reserved
	if err := r.Skip(4); err != nil {
		return h, prefix, fmt.Errorf("decode embedded transaction header: %w", err)
	}
	if h.Version, err = r.ReadUint8(); err != nil {
		return h, prefix, fmt.Errorf("decode version: %w", err)
	}
	if h.Network, err = readEnum8[NetworkType](r, "network type"); err != nil {
		return h, prefix, err
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return h, prefix, fmt.Errorf("decode entity type: %w", err)
	}
	prefix.Type = EntityType(rawType)
	return h, prefix, nil
}

func (h EmbeddedTransactionHeader) Size() int {
	return EmbeddedTransactionHeaderSize
}

func (h EmbeddedTransactionHeader) encode(w *codec.Writer, size int, entityType EntityType) {
	w.PutCount32(size)
	w.PutZeros(4)
	w.PutBytes(h.SignerPublicKey[:])
	w.PutZeros(4)
	w.PutUint8(h.Version)
	putEnum8(w, h.Network, "network type")
	putEnum16(w, entityType, "entity type")
}
