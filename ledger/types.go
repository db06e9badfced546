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
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"

	"github.com/blinklabs-io/catbuffer/codec"
)

const (
	KeySize                = 32
	Hash256Size            = 32
	Hash512Size            = 64
	SignatureSize          = 64
	AddressSize            = 25
	UnresolvedAddressSize  = 25
	AmountSize             = 8
	HeightSize             = 8
	TimestampSize          = 8
	BlockDurationSize      = 8
	MosaicIdSize           = 8
	NamespaceIdSize        = 8
	MosaicNonceSize        = 4
	BlockFeeMultiplierSize = 4
)

func readFixed(r *codec.Reader, dst []byte, name string) error {
	if err := r.ReadInto(dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func fixedFromBinary(data []byte, dst []byte, name string) error {
	return readFixed(codec.NewReader(data), dst, name)
}

func readUint64[T ~uint64](r *codec.Reader, name string) (T, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	return T(v), nil
}

func uint64FromBinary[T ~uint64](data []byte, name string) (T, error) {
	return readUint64[T](codec.NewReader(data), name)
}

func serializeUint64(v uint64) []byte {
	return codec.WriteUint64Pair(codec.PairFromUint64(v))
}

func serializeUint32(v uint32) []byte {
	// 4 is always a supported width
	ret, _ := codec.WriteUint(v, codec.Uint32Size)
	return ret
}

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Key is a 32-byte public key
type Key [KeySize]byte

func NewKeyFromBinary(data []byte) (Key, error) {
	var ret Key
	err := fixedFromBinary(data, ret[:], "public key")
	return ret, err
}

func (v Key) Size() int {
	return KeySize
}

func (v Key) Bytes() []byte {
	return v[:]
}

func (v Key) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v Key) String() string {
	return hex.EncodeToString(v[:])
}

func (v Key) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Hash256 is a 32-byte hash
type Hash256 [Hash256Size]byte

func NewHash256FromBinary(data []byte) (Hash256, error) {
	var ret Hash256
	err := fixedFromBinary(data, ret[:], "hash256")
	return ret, err
}

func (v Hash256) Size() int {
	return Hash256Size
}

func (v Hash256) Bytes() []byte {
	return v[:]
}

func (v Hash256) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v Hash256) String() string {
	return hex.EncodeToString(v[:])
}

func (v Hash256) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Hash512 is a 64-byte hash
type Hash512 [Hash512Size]byte

func NewHash512FromBinary(data []byte) (Hash512, error) {
	var ret Hash512
	err := fixedFromBinary(data, ret[:], "hash512")
	return ret, err
}

func (v Hash512) Size() int {
	return Hash512Size
}

func (v Hash512) Bytes() []byte {
	return v[:]
}

func (v Hash512) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v Hash512) String() string {
	return hex.EncodeToString(v[:])
}

func (v Hash512) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Signature is a 64-byte signature
type Signature [SignatureSize]byte

func NewSignatureFromBinary(data []byte) (Signature, error) {
	var ret Signature
	err := fixedFromBinary(data, ret[:], "signature")
	return ret, err
}

func (v Signature) Size() int {
	return SignatureSize
}

func (v Signature) Bytes() []byte {
	return v[:]
}

func (v Signature) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v Signature) String() string {
	return hex.EncodeToString(v[:])
}

func (v Signature) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Address is a decoded 25-byte account address
type Address [AddressSize]byte

func NewAddressFromBinary(data []byte) (Address, error) {
	var ret Address
	err := fixedFromBinary(data, ret[:], "address")
	return ret, err
}

func (v Address) Size() int {
	return AddressSize
}

func (v Address) Bytes() []byte {
	return v[:]
}

func (v Address) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v Address) String() string {
	return addressEncoding.EncodeToString(v[:])
}

func (v Address) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnresolvedAddress is a 25-byte address that may instead carry a namespace alias
type UnresolvedAddress [UnresolvedAddressSize]byte

func NewUnresolvedAddressFromBinary(data []byte) (UnresolvedAddress, error) {
	var ret UnresolvedAddress
	err := fixedFromBinary(data, ret[:], "unresolved address")
	return ret, err
}

func (v UnresolvedAddress) Size() int {
	return UnresolvedAddressSize
}

func (v UnresolvedAddress) Bytes() []byte {
	return v[:]
}

func (v UnresolvedAddress) Serialize() []byte {
	return slices.Clone(v[:])
}

func (v UnresolvedAddress) String() string {
	return addressEncoding.EncodeToString(v[:])
}

func (v UnresolvedAddress) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Amount is a quantity of mosaic units
type Amount uint64

func NewAmountFromBinary(data []byte) (Amount, error) {
	return uint64FromBinary[Amount](data, "amount")
}

func NewAmountFromPair(pair [2]uint32) Amount {
	return Amount(codec.Uint64FromPair(pair))
}

func (v Amount) Size() int {
	return AmountSize
}

func (v Amount) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v Amount) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v Amount) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Height is a block height
type Height uint64

func NewHeightFromBinary(data []byte) (Height, error) {
	return uint64FromBinary[Height](data, "height")
}

func NewHeightFromPair(pair [2]uint32) Height {
	return Height(codec.Uint64FromPair(pair))
}

func (v Height) Size() int {
	return HeightSize
}

func (v Height) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v Height) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v Height) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Timestamp is a network timestamp in milliseconds
type Timestamp uint64

func NewTimestampFromBinary(data []byte) (Timestamp, error) {
	return uint64FromBinary[Timestamp](data, "timestamp")
}

func NewTimestampFromPair(pair [2]uint32) Timestamp {
	return Timestamp(codec.Uint64FromPair(pair))
}

func (v Timestamp) Size() int {
	return TimestampSize
}

func (v Timestamp) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v Timestamp) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v Timestamp) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// BlockDuration is a number of blocks
type BlockDuration uint64

func NewBlockDurationFromBinary(data []byte) (BlockDuration, error) {
	return uint64FromBinary[BlockDuration](data, "block duration")
}

func NewBlockDurationFromPair(pair [2]uint32) BlockDuration {
	return BlockDuration(codec.Uint64FromPair(pair))
}

func (v BlockDuration) Size() int {
	return BlockDurationSize
}

func (v BlockDuration) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v BlockDuration) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v BlockDuration) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// MosaicId identifies a mosaic
type MosaicId uint64

func NewMosaicIdFromBinary(data []byte) (MosaicId, error) {
	return uint64FromBinary[MosaicId](data, "mosaic id")
}

func NewMosaicIdFromPair(pair [2]uint32) MosaicId {
	return MosaicId(codec.Uint64FromPair(pair))
}

func (v MosaicId) Size() int {
	return MosaicIdSize
}

func (v MosaicId) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v MosaicId) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v MosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(v))
}

// UnresolvedMosaicId identifies a mosaic directly or through a namespace alias
type UnresolvedMosaicId uint64

func NewUnresolvedMosaicIdFromBinary(data []byte) (UnresolvedMosaicId, error) {
	return uint64FromBinary[UnresolvedMosaicId](data, "unresolved mosaic id")
}

func NewUnresolvedMosaicIdFromPair(pair [2]uint32) UnresolvedMosaicId {
	return UnresolvedMosaicId(codec.Uint64FromPair(pair))
}

func (v UnresolvedMosaicId) Size() int {
	return MosaicIdSize
}

func (v UnresolvedMosaicId) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v UnresolvedMosaicId) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v UnresolvedMosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(v))
}

// NamespaceId identifies a namespace
type NamespaceId uint64

func NewNamespaceIdFromBinary(data []byte) (NamespaceId, error) {
	return uint64FromBinary[NamespaceId](data, "namespace id")
}

func NewNamespaceIdFromPair(pair [2]uint32) NamespaceId {
	return NamespaceId(codec.Uint64FromPair(pair))
}

func (v NamespaceId) Size() int {
	return NamespaceIdSize
}

func (v NamespaceId) Serialize() []byte {
	return serializeUint64(uint64(v))
}

// Pair returns the value as [low, high] 32-bit words
func (v NamespaceId) Pair() [2]uint32 {
	return codec.PairFromUint64(uint64(v))
}

func (v NamespaceId) String() string {
	return fmt.Sprintf("%016X", uint64(v))
}

// MosaicNonce is the nonce mixed into a mosaic id
type MosaicNonce uint32

func NewMosaicNonceFromBinary(data []byte) (MosaicNonce, error) {
	v, err := codec.NewReader(data).ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("decode mosaic nonce: %w", err)
	}
	return MosaicNonce(v), nil
}

func (v MosaicNonce) Size() int {
	return MosaicNonceSize
}

func (v MosaicNonce) Serialize() []byte {
	return serializeUint32(uint32(v))
}

// BlockFeeMultiplier scales the fee of transactions included in a block
type BlockFeeMultiplier uint32

func NewBlockFeeMultiplierFromBinary(data []byte) (BlockFeeMultiplier, error) {
	v, err := codec.NewReader(data).ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("decode block fee multiplier: %w", err)
	}
	return BlockFeeMultiplier(v), nil
}

func (v BlockFeeMultiplier) Size() int {
	return BlockFeeMultiplierSize
}

func (v BlockFeeMultiplier) Serialize() []byte {
	return serializeUint32(uint32(v))
}

func readUint8(r *codec.Reader, name string) (uint8, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}

func readUint16(r *codec.Reader, name string) (uint16, error) {
	v, err := r.ReadUint16()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}

func readBlob(r *codec.Reader, size int, name string) ([]byte, error) {
	ret, err := r.ReadBytes(size)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ret, nil
}

func skipReserved(r *codec.Reader, size int, name string) error {
	if err := r.Skip(size); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func readUint32(r *codec.Reader, name string) (uint32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}

// ParseAddress decodes the base32 text form of an address
func ParseAddress(s string) (Address, error) {
	var ret Address
	data, err := addressEncoding.DecodeString(s)
	if err != nil {
		return ret, fmt.Errorf("parse address: %w", err)
	}
	if err := fixedFromBinary(data, ret[:], "address"); err != nil {
		return ret, err
	}
	if len(data) != AddressSize {
		return ret, SizeMismatchError{Entity: "address", Declared: AddressSize, Actual: len(data)}
	}
	return ret, nil
}
