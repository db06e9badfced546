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

const ReceiptHeaderSize = 4 + 2 + 2

// ReceiptType identifies a receipt and, through it, the shape of the receipt body
type ReceiptType uint16

const ReceiptTypeSize = 2

const (
	ReceiptTypeMosaicRentalFee     ReceiptType = 0x124d
	ReceiptTypeNamespaceRentalFee  ReceiptType = 0x134e
	ReceiptTypeHarvestFee          ReceiptType = 0x2143
	ReceiptTypeLockHashCompleted   ReceiptType = 0x2248
	ReceiptTypeLockHashExpired     ReceiptType = 0x2348
	ReceiptTypeLockSecretCompleted ReceiptType = 0x2252
	ReceiptTypeLockSecretExpired   ReceiptType = 0x2352
	ReceiptTypeLockHashCreated     ReceiptType = 0x3148
	ReceiptTypeLockSecretCreated   ReceiptType = 0x3152
	ReceiptTypeMosaicExpired       ReceiptType = 0x414d
	ReceiptTypeNamespaceExpired    ReceiptType = 0x414e
	ReceiptTypeNamespaceDeleted    ReceiptType = 0x424e
	ReceiptTypeInflation           ReceiptType = 0x5143
)

type receiptKind uint8

const (
	receiptKindBalanceTransfer receiptKind = iota + 1
	receiptKindBalanceChange
	receiptKindInflation
	receiptKindMosaicExpiry
	receiptKindNamespaceExpiry
)

type receiptTypeInfo struct {
	name string
	kind receiptKind
}

var receiptTypes = map[ReceiptType]receiptTypeInfo{
	ReceiptTypeMosaicRentalFee:     {"MosaicRentalFee", receiptKindBalanceTransfer},
	ReceiptTypeNamespaceRentalFee:  {"NamespaceRentalFee", receiptKindBalanceTransfer},
	ReceiptTypeHarvestFee:          {"HarvestFee", receiptKindBalanceChange},
	ReceiptTypeLockHashCompleted:   {"LockHashCompleted", receiptKindBalanceChange},
	ReceiptTypeLockHashExpired:     {"LockHashExpired", receiptKindBalanceChange},
	ReceiptTypeLockSecretCompleted: {"LockSecretCompleted", receiptKindBalanceChange},
	ReceiptTypeLockSecretExpired:   {"LockSecretExpired", receiptKindBalanceChange},
	ReceiptTypeLockHashCreated:     {"LockHashCreated", receiptKindBalanceChange},
	ReceiptTypeLockSecretCreated:   {"LockSecretCreated", receiptKindBalanceChange},
	ReceiptTypeMosaicExpired:       {"MosaicExpired", receiptKindMosaicExpiry},
	ReceiptTypeNamespaceExpired:    {"NamespaceExpired", receiptKindNamespaceExpiry},
	ReceiptTypeNamespaceDeleted:    {"NamespaceDeleted", receiptKindNamespaceExpiry},
	ReceiptTypeInflation:           {"Inflation", receiptKindInflation},
}

func NewReceiptTypeFromBinary(data []byte) (ReceiptType, error) {
	v, err := codec.NewReader(data).ReadUint16()
	if err != nil {
		return 0, fmt.Errorf("decode receipt type: %w", err)
	}
	ret := ReceiptType(v)
	if !ret.Valid() {
		return 0, UnknownReceiptTypeError{Type: ret}
	}
	return ret, nil
}

func (t ReceiptType) Valid() bool {
	_, ok := receiptTypes[t]
	return ok
}

func (t ReceiptType) String() string {
	if info, ok := receiptTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("ReceiptType(%d)", uint16(t))
}

func (t ReceiptType) Size() int {
	return ReceiptTypeSize
}

func (t ReceiptType) Serialize() []byte {
	return []byte{byte(t), byte(t >> 8)}
}

func (t ReceiptType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ReceiptBody is the closed set of receipt bodies
type ReceiptBody interface {
	Size() int
	Serialize() []byte
	kind() receiptKind
	encode(w *codec.Writer)
}

func serializeReceiptBody(body ReceiptBody) []byte {
	w := codec.NewWriter(body.Size())
	body.encode(w)
	// receipt bodies are fixed width
	ret, _ := w.Result()
	return ret
}

// BalanceTransferReceipt records a mosaic moving between two accounts
type BalanceTransferReceipt struct {
	Mosaic           Mosaic
	SenderAddress    Address
	RecipientAddress Address
}

func decodeBalanceTransferReceipt(r *codec.Reader) (ReceiptBody, error) {
	b := &BalanceTransferReceipt{}
	var err error
	if b.Mosaic, err = decodeMosaic(r); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.SenderAddress[:], "sender address"); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.RecipientAddress[:], "recipient address"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BalanceTransferReceipt) Size() int {
	return MosaicSize + AddressSize + AddressSize
}

func (b *BalanceTransferReceipt) Serialize() []byte {
	return serializeReceiptBody(b)
}

func (*BalanceTransferReceipt) kind() receiptKind {
	return receiptKindBalanceTransfer
}

func (b *BalanceTransferReceipt) encode(w *codec.Writer) {
	b.Mosaic.encode(w)
	w.PutBytes(b.SenderAddress[:])
	w.PutBytes(b.RecipientAddress[:])
}

// BalanceChangeReceipt records a mosaic credited to or debited from one account
type BalanceChangeReceipt struct {
	Mosaic        Mosaic
	TargetAddress Address
}

func decodeBalanceChangeReceipt(r *codec.Reader) (ReceiptBody, error) {
	b := &BalanceChangeReceipt{}
	var err error
	if b.Mosaic, err = decodeMosaic(r); err != nil {
		return nil, err
	}
	if err = readFixed(r, b.TargetAddress[:], "target address"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BalanceChangeReceipt) Size() int {
	return MosaicSize + AddressSize
}

func (b *BalanceChangeReceipt) Serialize() []byte {
	return serializeReceiptBody(b)
}

func (*BalanceChangeReceipt) kind() receiptKind {
	return receiptKindBalanceChange
}

func (b *BalanceChangeReceipt) encode(w *codec.Writer) {
	b.Mosaic.encode(w)
	w.PutBytes(b.TargetAddress[:])
}

// InflationReceipt records newly created currency
type InflationReceipt struct {
	Mosaic Mosaic
}

func decodeInflationReceipt(r *codec.Reader) (ReceiptBody, error) {
	m, err := decodeMosaic(r)
	if err != nil {
		return nil, err
	}
	return &InflationReceipt{Mosaic: m}, nil
}

func (b *InflationReceipt) Size() int {
	return MosaicSize
}

func (b *InflationReceipt) Serialize() []byte {
	return serializeReceiptBody(b)
}

func (*InflationReceipt) kind() receiptKind {
	return receiptKindInflation
}

func (b *InflationReceipt) encode(w *codec.Writer) {
	b.Mosaic.encode(w)
}

type MosaicExpiryReceipt struct {
	ArtifactId MosaicId
}

func decodeMosaicExpiryReceipt(r *codec.Reader) (ReceiptBody, error) {
	id, err := readUint64[MosaicId](r, "artifact id")
	if err != nil {
		return nil, err
	}
	return &MosaicExpiryReceipt{ArtifactId: id}, nil
}

func (b *MosaicExpiryReceipt) Size() int {
	return MosaicIdSize
}

func (b *MosaicExpiryReceipt) Serialize() []byte {
	return serializeReceiptBody(b)
}

func (*MosaicExpiryReceipt) kind() receiptKind {
	return receiptKindMosaicExpiry
}

func (b *MosaicExpiryReceipt) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.ArtifactId))
}

type NamespaceExpiryReceipt struct {
	ArtifactId NamespaceId
}

func decodeNamespaceExpiryReceipt(r *codec.Reader) (ReceiptBody, error) {
	id, err := readUint64[NamespaceId](r, "artifact id")
	if err != nil {
		return nil, err
	}
	return &NamespaceExpiryReceipt{ArtifactId: id}, nil
}

func (b *NamespaceExpiryReceipt) Size() int {
	return NamespaceIdSize
}

func (b *NamespaceExpiryReceipt) Serialize() []byte {
	return serializeReceiptBody(b)
}

func (*NamespaceExpiryReceipt) kind() receiptKind {
	return receiptKindNamespaceExpiry
}

func (b *NamespaceExpiryReceipt) encode(w *codec.Writer) {
	w.PutUint64(uint64(b.ArtifactId))
}

var receiptBodyDecoders = map[receiptKind]func(*codec.Reader) (ReceiptBody, error){
	receiptKindBalanceTransfer: decodeBalanceTransferReceipt,
	receiptKindBalanceChange:   decodeBalanceChangeReceipt,
	receiptKindInflation:       decodeInflationReceipt,
	receiptKindMosaicExpiry:    decodeMosaicExpiryReceipt,
	receiptKindNamespaceExpiry: decodeNamespaceExpiryReceipt,
}

// SupportedReceiptTypes returns every receipt type with a registered body codec
func SupportedReceiptTypes() []ReceiptType {
	return slices.Sorted(maps.Keys(receiptTypes))
}

// Receipt is a size-prefixed receipt with a version, a type and a body matching the type
type Receipt struct {
	Version uint16
	Type    ReceiptType
	Body    ReceiptBody
}

func NewReceipt(version uint16, receiptType ReceiptType, body ReceiptBody) *Receipt {
	return &Receipt{Version: version, Type: receiptType, Body: body}
}

// NewReceiptFromBinary decodes a receipt from the front of data. The body must fill
// the declared size exactly.
func NewReceiptFromBinary(data []byte) (*Receipt, error) {
	r := codec.NewReader(data)
	size, err := readUint32(r, "receipt size")
	if err != nil {
		return nil, err
	}
	ret := &Receipt{}
	if ret.Version, err = readUint16(r, "receipt version"); err != nil {
		return nil, err
	}
	rawType, err := readUint16(r, "receipt type")
	if err != nil {
		return nil, err
	}
	ret.Type = ReceiptType(rawType)
	info, ok := receiptTypes[ret.Type]
	if !ok {
		return nil, UnknownReceiptTypeError{Type: ret.Type}
	}
	declared := int(size)
	if declared < ReceiptHeaderSize {
		return nil, SizeMismatchError{Entity: "receipt", Declared: declared, Actual: ReceiptHeaderSize}
	}
	bodyReader, err := r.Sub(declared - ReceiptHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("decode receipt body: %w", err)
	}
	if ret.Body, err = receiptBodyDecoders[info.kind](bodyReader); err != nil {
		return nil, fmt.Errorf("decode %s receipt: %w", ret.Type, err)
	}
	if bodyReader.Len() != 0 {
		return nil, SizeMismatchError{
			Entity:   "receipt",
			Declared: declared,
			Actual:   declared - bodyReader.Len(),
		}
	}
	return ret, nil
}

func (r *Receipt) Size() int {
	if r.Body == nil {
		return ReceiptHeaderSize
	}
	return ReceiptHeaderSize + r.Body.Size()
}

func (r *Receipt) Serialize() ([]byte, error) {
	if r.Body == nil {
		return nil, InvalidConstructionError{Entity: "receipt", Reason: "missing body"}
	}
	info, ok := receiptTypes[r.Type]
	if !ok {
		return nil, UnknownReceiptTypeError{Type: r.Type}
	}
	if info.kind != r.Body.kind() {
		return nil, InvalidConstructionError{
			Entity: "receipt",
			Reason: fmt.Sprintf("body does not match receipt type %s", r.Type),
		}
	}
	size := r.Size()
	w := codec.NewWriter(size)
	w.PutCount32(size)
	w.PutUint16(r.Version)
	w.PutUint16(uint16(r.Type))
	r.Body.encode(w)
	return w.ResultSized(size)
}
