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
	"maps"
	"slices"

	"github.com/blinklabs-io/catbuffer/codec"
)

// EmbeddedTransactionAlignment is the boundary embedded transactions are padded to
const EmbeddedTransactionAlignment = 8

type bodyDecoder func(r *codec.Reader) (TransactionBody, error)

func bodyDecoderFor[T TransactionBody](decode func(*codec.Reader) (T, error)) bodyDecoder {
	return func(r *codec.Reader) (TransactionBody, error) {
		body, err := decode(r)
		if err != nil {
			return nil, err
		}
		return body, nil
	}
}

// Bodies allowed inside an aggregate
var embeddedBodyDecoders = map[EntityType]bodyDecoder{
	EntityTypeAccountKeyLink:              bodyDecoderFor(decodeAccountKeyLinkTransactionBody),
	EntityTypeNodeKeyLink:                 bodyDecoderFor(decodeNodeKeyLinkTransactionBody),
	EntityTypeVrfKeyLink:                  bodyDecoderFor(decodeVrfKeyLinkTransactionBody),
	EntityTypeHashLock:                    bodyDecoderFor(decodeHashLockTransactionBody),
	EntityTypeSecretLock:                  bodyDecoderFor(decodeSecretLockTransactionBody),
	EntityTypeSecretProof:                 bodyDecoderFor(decodeSecretProofTransactionBody),
	EntityTypeAccountMetadata:             bodyDecoderFor(decodeAccountMetadataTransactionBody),
	EntityTypeMosaicMetadata:              bodyDecoderFor(decodeMosaicMetadataTransactionBody),
	EntityTypeNamespaceMetadata:           bodyDecoderFor(decodeNamespaceMetadataTransactionBody),
	EntityTypeMosaicDefinition:            bodyDecoderFor(decodeMosaicDefinitionTransactionBody),
	EntityTypeMosaicSupplyChange:          bodyDecoderFor(decodeMosaicSupplyChangeTransactionBody),
	EntityTypeMultisigAccountModification: bodyDecoderFor(decodeMultisigAccountModificationTransactionBody),
	EntityTypeNamespaceRegistration:       bodyDecoderFor(decodeNamespaceRegistrationTransactionBody),
	EntityTypeAddressAlias:                bodyDecoderFor(decodeAddressAliasTransactionBody),
	EntityTypeMosaicAlias:                 bodyDecoderFor(decodeMosaicAliasTransactionBody),
	EntityTypeAccountAddressRestriction:   bodyDecoderFor(decodeAccountAddressRestrictionTransactionBody),
	EntityTypeAccountMosaicRestriction:    bodyDecoderFor(decodeAccountMosaicRestrictionTransactionBody),
	EntityTypeAccountOperationRestriction: bodyDecoderFor(decodeAccountOperationRestrictionTransactionBody),
	EntityTypeMosaicAddressRestriction:    bodyDecoderFor(decodeMosaicAddressRestrictionTransactionBody),
	EntityTypeMosaicGlobalRestriction:     bodyDecoderFor(decodeMosaicGlobalRestrictionTransactionBody),
	EntityTypeTransfer:                    bodyDecoderFor(decodeTransferTransactionBody),
}

// Bodies allowed at the top level: everything embeddable plus the aggregates
var transactionBodyDecoders map[EntityType]bodyDecoder

func init() {
	transactionBodyDecoders = maps.Clone(embeddedBodyDecoders)
	transactionBodyDecoders[EntityTypeAggregateComplete] = bodyDecoderFor(decodeAggregateCompleteTransactionBody)
	transactionBodyDecoders[EntityTypeAggregateBonded] = bodyDecoderFor(decodeAggregateBondedTransactionBody)
}

// SupportedEntityTypes returns every entity type with a registered body codec, in
// ascending order
func SupportedEntityTypes() []EntityType {
	return slices.Sorted(maps.Keys(transactionBodyDecoders))
}

// IsEmbeddable reports whether transactions of the given type may appear inside an aggregate
func IsEmbeddable(entityType EntityType) bool {
	_, ok := embeddedBodyDecoders[entityType]
	return ok
}

// EncodeEmbeddedTransaction serializes tx and pads the result with zeros to a multiple
// of EmbeddedTransactionAlignment. Types that cannot be embedded are rejected.
func EncodeEmbeddedTransaction(tx *EmbeddedTransaction) ([]byte, error) {
	if tx == nil {
		return nil, InvalidConstructionError{Entity: "embedded transaction", Reason: "nil transaction"}
	}
	size := paddedSize(tx)
	w := codec.NewWriter(size)
	encodeEmbeddedPadded(w, tx)
	return w.ResultSized(size)
}

func encodeEmbeddedPadded(w *codec.Writer, tx *EmbeddedTransaction) {
	if tx == nil || tx.Body == nil {
		w.Fail(InvalidConstructionError{Entity: "embedded transaction", Reason: "missing body"})
		return
	}
	if !IsEmbeddable(tx.Type()) {
		w.Fail(UnknownEntityTypeError{Type: tx.Type()})
		return
	}
	encodeEntity(w, tx.Header, tx.Body)
	w.PutZeros(codec.PaddingSize(tx.Size(), EmbeddedTransactionAlignment))
}

func paddedSize(tx *EmbeddedTransaction) int {
	if tx == nil || tx.Body == nil {
		return 0
	}
	size := tx.Size()
	return size + codec.PaddingSize(size, EmbeddedTransactionAlignment)
}

// DecodeEmbeddedTransaction reads the embedded header to find the entity type, then
// decodes the whole input from the start with the body codec for that type
func DecodeEmbeddedTransaction(data []byte) (*EmbeddedTransaction, error) {
	_, prefix, err := NewEmbeddedTransactionHeaderFromBinary(data)
	if err != nil {
		return nil, err
	}
	if !IsEmbeddable(prefix.Type) {
		return nil, UnknownEntityTypeError{Type: prefix.Type}
	}
	return NewEmbeddedTransactionFromBinary(data)
}

// EmbeddedTransactionsSize returns the total padded size of txs
func EmbeddedTransactionsSize(txs []*EmbeddedTransaction) int {
	total := 0
	for _, tx := range txs {
		total += paddedSize(tx)
	}
	return total
}

// EncodeEmbeddedTransactions concatenates the padded encodings of txs
func EncodeEmbeddedTransactions(txs []*EmbeddedTransaction) ([]byte, error) {
	size := EmbeddedTransactionsSize(txs)
	w := codec.NewWriter(size)
	for _, tx := range txs {
		encodeEmbeddedPadded(w, tx)
	}
	return w.ResultSized(size)
}

// DecodeEmbeddedTransactions decodes a concatenation of padded embedded transactions
// that fills data exactly
func DecodeEmbeddedTransactions(data []byte) ([]*EmbeddedTransaction, error) {
	return decodeEmbeddedTransactions(codec.NewReader(data))
}

func decodeEmbeddedTransactions(r *codec.Reader) ([]*EmbeddedTransaction, error) {
	var ret []*EmbeddedTransaction
	for r.Len() > 0 {
		tx, err := decodeEmbeddedTransaction(r)
		if err != nil {
			return nil, fmt.Errorf("decode embedded transaction %d: %w", len(ret), err)
		}
		// padding is read but not checked
		if err := r.Skip(codec.PaddingSize(tx.Size(), EmbeddedTransactionAlignment)); err != nil {
			return nil, fmt.Errorf("decode embedded transaction %d padding: %w", len(ret), err)
		}
		ret = append(ret, tx)
	}
	return ret, nil
}
