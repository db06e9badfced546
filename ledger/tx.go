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

// TransactionBody is the closed set of transaction bodies. The body determines the
// entity type written to the header.
type TransactionBody interface {
	EntityType() EntityType
	Size() int
	Serialize() ([]byte, error)
	encode(w *codec.Writer)
}

func serializeBody(body TransactionBody) ([]byte, error) {
	w := codec.NewWriter(body.Size())
	body.encode(w)
	return w.ResultSized(body.Size())
}

// entityHeader is implemented by the three header shapes
type entityHeader interface {
	Size() int
	encode(w *codec.Writer, size int, entityType EntityType)
}

func serializeEntity(header entityHeader, body TransactionBody, entity string) ([]byte, error) {
	if body == nil {
		return nil, InvalidConstructionError{Entity: entity, Reason: "missing body"}
	}
	size := header.Size() + body.Size()
	w := codec.NewWriter(size)
	encodeEntity(w, header, body)
	return w.ResultSized(size)
}

func encodeEntity(w *codec.Writer, header entityHeader, body TransactionBody) {
	header.encode(w, header.Size()+body.Size(), body.EntityType())
	body.encode(w)
}

// decodeEntityBody decodes the body that follows an already decoded header. The body
// is bounded to the size declared in the header and must consume all of it.
func decodeEntityBody(
	r *codec.Reader,
	prefix EntityPrefix,
	headerSize int,
	decoders map[EntityType]bodyDecoder,
	entity string,
) (TransactionBody, error) {
	decoder, ok := decoders[prefix.Type]
	if !ok {
		return nil, UnknownEntityTypeError{Type: prefix.Type}
	}
	declared := int(prefix.Size)
	if declared < headerSize {
		return nil, SizeMismatchError{
			Entity:   entity,
			Declared: declared,
			Actual:   headerSize,
		}
	}
	bodyReader, err := r.Sub(declared - headerSize)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", entity, err)
	}
	body, err := decoder(bodyReader)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", prefix.Type, err)
	}
	if bodyReader.Len() != 0 {
		return nil, SizeMismatchError{
			Entity:   entity,
			Declared: declared,
			Actual:   declared - bodyReader.Len(),
		}
	}
	return body, nil
}

// Transaction is a top-level transaction
type Transaction struct {
	Header TransactionHeader
	Body   TransactionBody
}

func NewTransaction(header TransactionHeader, body TransactionBody) *Transaction {
	return &Transaction{Header: header, Body: body}
}

// NewTransactionFromBinary decodes a transaction from the front of data. Bytes beyond
// the declared transaction size are ignored.
func NewTransactionFromBinary(data []byte) (*Transaction, error) {
	r := codec.NewReader(data)
	header, prefix, err := decodeTransactionHeader(r)
	if err != nil {
		return nil, err
	}
	body, err := decodeEntityBody(r, prefix, TransactionHeaderSize, transactionBodyDecoders, "transaction")
	if err != nil {
		return nil, err
	}
	return &Transaction{Header: header, Body: body}, nil
}

func (t *Transaction) Type() EntityType {
	return t.Body.EntityType()
}

func (t *Transaction) Size() int {
	return t.Header.Size() + t.Body.Size()
}

func (t *Transaction) Serialize() ([]byte, error) {
	return serializeEntity(t.Header, t.Body, "transaction")
}

// LegacyTransaction is a top-level transaction using the pre-network-byte header
type LegacyTransaction struct {
	Header LegacyTransactionHeader
	Body   TransactionBody
}

func NewLegacyTransaction(header LegacyTransactionHeader, body TransactionBody) *LegacyTransaction {
	return &LegacyTransaction{Header: header, Body: body}
}

// NewLegacyTransactionFromBinary decodes a legacy-header transaction from the front of data
func NewLegacyTransactionFromBinary(data []byte) (*LegacyTransaction, error) {
	r := codec.NewReader(data)
	header, prefix, err := decodeLegacyTransactionHeader(r)
	if err != nil {
		return nil, err
	}
	body, err := decodeEntityBody(r, prefix, LegacyTransactionHeaderSize, transactionBodyDecoders, "legacy transaction")
	if err != nil {
		return nil, err
	}
	return &LegacyTransaction{Header: header, Body: body}, nil
}

func (t *LegacyTransaction) Type() EntityType {
	return t.Body.EntityType()
}

func (t *LegacyTransaction) Size() int {
	return t.Header.Size() + t.Body.Size()
}

func (t *LegacyTransaction) Serialize() ([]byte, error) {
	return serializeEntity(t.Header, t.Body, "legacy transaction")
}

// EmbeddedTransaction is a transaction nested inside an aggregate
type EmbeddedTransaction struct {
	Header EmbeddedTransactionHeader
	Body   TransactionBody
}

func NewEmbeddedTransaction(header EmbeddedTransactionHeader, body TransactionBody) *EmbeddedTransaction {
	return &EmbeddedTransaction{Header: header, Body: body}
}

// NewEmbeddedTransactionFromBinary decodes a single embedded transaction from the front
// of data. Padding and any other bytes past the declared size are ignored.
func NewEmbeddedTransactionFromBinary(data []byte) (*EmbeddedTransaction, error) {
	return decodeEmbeddedTransaction(codec.NewReader(data))
}

func decodeEmbeddedTransaction(r *codec.Reader) (*EmbeddedTransaction, error) {
	header, prefix, err := decodeEmbeddedTransactionHeader(r)
	if err != nil {
		return nil, err
	}
	body, err := decodeEntityBody(r, prefix, EmbeddedTransactionHeaderSize, embeddedBodyDecoders, "embedded transaction")
	if err != nil {
		return nil, err
	}
	return &EmbeddedTransaction{Header: header, Body: body}, nil
}

func (t *EmbeddedTransaction) Type() EntityType {
	return t.Body.EntityType()
}

// Size returns the unpadded size
func (t *EmbeddedTransaction) Size() int {
	return t.Header.Size() + t.Body.Size()
}

// Serialize returns the unpadded encoding. EncodeEmbeddedTransaction adds the padding
// used inside aggregates.
func (t *EmbeddedTransaction) Serialize() ([]byte, error) {
	return serializeEntity(t.Header, t.Body, "embedded transaction")
}
