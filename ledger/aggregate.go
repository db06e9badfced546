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
	CosignatureSize = 8 + KeySize + SignatureSize

	aggregatePrefixSize = Hash256Size +
		4 + // payload size
		4 // reserved
)

// Cosignature is an additional signature over an aggregate transaction
type Cosignature struct {
	Version         uint64
	SignerPublicKey Key
	Signature       Signature
}

func decodeCosignature(r *codec.Reader) (Cosignature, error) {
	var c Cosignature
	var err error
	if c.Version, err = readUint64[uint64](r, "cosignature version"); err != nil {
		return c, err
	}
	if err = readFixed(r, c.SignerPublicKey[:], "cosignature signer public key"); err != nil {
		return c, err
	}
	if err = readFixed(r, c.Signature[:], "cosignature signature"); err != nil {
		return c, err
	}
	return c, nil
}

func (c Cosignature) encode(w *codec.Writer) {
	w.PutUint64(c.Version)
	w.PutBytes(c.SignerPublicKey[:])
	w.PutBytes(c.Signature[:])
}

// NewCosignaturesFromBinary splits the cosignatures blob of an aggregate into
// individual cosignatures
func NewCosignaturesFromBinary(data []byte) ([]Cosignature, error) {
	if len(data)%CosignatureSize != 0 {
		return nil, SizeMismatchError{
			Entity:   "cosignatures",
			Declared: len(data) - len(data)%CosignatureSize,
			Actual:   len(data),
		}
	}
	r := codec.NewReader(data)
	var ret []Cosignature
	for r.Len() > 0 {
		c, err := decodeCosignature(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}

func SerializeCosignatures(cosignatures []Cosignature) []byte {
	if len(cosignatures) == 0 {
		return nil
	}
	w := codec.NewWriter(len(cosignatures) * CosignatureSize)
	for _, c := range cosignatures {
		c.encode(w)
	}
	// fixed width fields only, nothing can fail
	ret, _ := w.Result()
	return ret
}

// AggregateTransactionBody holds the fields shared by complete and bonded aggregates.
// Cosignatures is kept as the raw trailing bytes of the entity.
type AggregateTransactionBody struct {
	TransactionsHash Hash256
	Transactions     []*EmbeddedTransaction
	Cosignatures     []byte
}

func newAggregateTransactionBody(
	entity string,
	txs []*EmbeddedTransaction,
	cosignatures []Cosignature,
) (AggregateTransactionBody, error) {
	for idx, tx := range txs {
		if tx == nil || tx.Body == nil {
			return AggregateTransactionBody{}, InvalidConstructionError{
				Entity: entity,
				Reason: fmt.Sprintf("embedded transaction %d has no body", idx),
			}
		}
		if !IsEmbeddable(tx.Type()) {
			return AggregateTransactionBody{}, InvalidConstructionError{
				Entity: entity,
				Reason: fmt.Sprintf("embedded transaction %d: %s cannot be embedded", idx, tx.Type()),
			}
		}
	}
	hash, err := CalculateTransactionsHash(txs)
	if err != nil {
		return AggregateTransactionBody{}, err
	}
	return AggregateTransactionBody{
		TransactionsHash: hash,
		Transactions:     txs,
		Cosignatures:     SerializeCosignatures(cosignatures),
	}, nil
}

func decodeAggregateTransactionBody(r *codec.Reader) (AggregateTransactionBody, error) {
	var b AggregateTransactionBody
	if err := readFixed(r, b.TransactionsHash[:], "transactions hash"); err != nil {
		return b, err
	}
	payloadSize, err := readUint32(r, "payload size")
	if err != nil {
		return b, err
	}
	if err := skipReserved(r, 4, "aggregate reserved"); err != nil {
		return b, err
	}
	payload, err := r.Sub(int(payloadSize))
	if err != nil {
		return b, fmt.Errorf("decode aggregate payload: %w", err)
	}
	if b.Transactions, err = decodeEmbeddedTransactions(payload); err != nil {
		return b, err
	}
	b.Cosignatures = r.Rest()
	return b, nil
}

// ParseCosignatures decodes the cosignatures blob
func (b *AggregateTransactionBody) ParseCosignatures() ([]Cosignature, error) {
	return NewCosignaturesFromBinary(b.Cosignatures)
}

func (b *AggregateTransactionBody) Size() int {
	return aggregatePrefixSize +
		EmbeddedTransactionsSize(b.Transactions) +
		len(b.Cosignatures)
}

func (b *AggregateTransactionBody) encode(w *codec.Writer) {
	w.PutBytes(b.TransactionsHash[:])
	w.PutCount32(EmbeddedTransactionsSize(b.Transactions))
	w.PutZeros(4)
	for _, tx := range b.Transactions {
		encodeEmbeddedPadded(w, tx)
	}
	w.PutBytes(b.Cosignatures)
}

// AggregateCompleteTransactionBody is an aggregate whose cosignatures are all present
type AggregateCompleteTransactionBody struct {
	AggregateTransactionBody
}

// NewAggregateCompleteTransactionBody builds an aggregate over txs and fills in the
// transactions hash
func NewAggregateCompleteTransactionBody(
	txs []*EmbeddedTransaction,
	cosignatures []Cosignature,
) (*AggregateCompleteTransactionBody, error) {
	b, err := newAggregateTransactionBody("aggregate complete", txs, cosignatures)
	if err != nil {
		return nil, err
	}
	return &AggregateCompleteTransactionBody{b}, nil
}

func NewAggregateCompleteTransactionBodyFromBinary(data []byte) (*AggregateCompleteTransactionBody, error) {
	return decodeAggregateCompleteTransactionBody(codec.NewReader(data))
}

func decodeAggregateCompleteTransactionBody(r *codec.Reader) (*AggregateCompleteTransactionBody, error) {
	b, err := decodeAggregateTransactionBody(r)
	if err != nil {
		return nil, err
	}
	return &AggregateCompleteTransactionBody{b}, nil
}

func (b *AggregateCompleteTransactionBody) EntityType() EntityType {
	return EntityTypeAggregateComplete
}

func (b *AggregateCompleteTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

// AggregateBondedTransactionBody is an aggregate that collects cosignatures after
// being announced
type AggregateBondedTransactionBody struct {
	AggregateTransactionBody
}

func NewAggregateBondedTransactionBody(
	txs []*EmbeddedTransaction,
	cosignatures []Cosignature,
) (*AggregateBondedTransactionBody, error) {
	b, err := newAggregateTransactionBody("aggregate bonded", txs, cosignatures)
	if err != nil {
		return nil, err
	}
	return &AggregateBondedTransactionBody{b}, nil
}

func NewAggregateBondedTransactionBodyFromBinary(data []byte) (*AggregateBondedTransactionBody, error) {
	return decodeAggregateBondedTransactionBody(codec.NewReader(data))
}

func decodeAggregateBondedTransactionBody(r *codec.Reader) (*AggregateBondedTransactionBody, error) {
	b, err := decodeAggregateTransactionBody(r)
	if err != nil {
		return nil, err
	}
	return &AggregateBondedTransactionBody{b}, nil
}

func (b *AggregateBondedTransactionBody) EntityType() EntityType {
	return EntityTypeAggregateBonded
}

func (b *AggregateBondedTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}
