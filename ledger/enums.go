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

type enum8 interface {
	~uint8
	Valid() bool
}

type enum16 interface {
	~uint16
	Valid() bool
}

func readEnum8[T enum8](r *codec.Reader, name string) (T, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	ret := T(v)
	if !ret.Valid() {
		return 0, UnknownEnumValueError{Enum: name, Value: uint64(v)}
	}
	return ret, nil
}

func readEnum16[T enum16](r *codec.Reader, name string) (T, error) {
	v, err := r.ReadUint16()
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", name, err)
	}
	ret := T(v)
	if !ret.Valid() {
		return 0, UnknownEnumValueError{Enum: name, Value: uint64(v)}
	}
	return ret, nil
}

func putEnum8[T enum8](w *codec.Writer, v T, name string) {
	if !v.Valid() {
		w.Fail(UnknownEnumValueError{Enum: name, Value: uint64(v)})
		return
	}
	w.PutUint8(uint8(v))
}

func putEnum16[T enum16](w *codec.Writer, v T, name string) {
	if !v.Valid() {
		w.Fail(UnknownEnumValueError{Enum: name, Value: uint64(v)})
		return
	}
	w.PutUint16(uint16(v))
}

func enumName[T ~uint8 | ~uint16](names map[T]string, v T, typeName string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", typeName, uint64(v))
}

// EntityType is the 16-bit discriminant selecting a transaction body
type EntityType uint16

const EntityTypeSize = 2

const (
	EntityTypeAccountKeyLink              EntityType = 0x414c
	EntityTypeNodeKeyLink                 EntityType = 0x424c
	EntityTypeVrfKeyLink                  EntityType = 0x4243
	EntityTypeAggregateComplete           EntityType = 0x4141
	EntityTypeAggregateBonded             EntityType = 0x4241
	EntityTypeHashLock                    EntityType = 0x4148
	EntityTypeSecretLock                  EntityType = 0x4152
	EntityTypeSecretProof                 EntityType = 0x4252
	EntityTypeAccountMetadata             EntityType = 0x4144
	EntityTypeMosaicMetadata              EntityType = 0x4244
	EntityTypeNamespaceMetadata           EntityType = 0x4344
	EntityTypeMosaicDefinition            EntityType = 0x414d
	EntityTypeMosaicSupplyChange          EntityType = 0x424d
	EntityTypeMultisigAccountModification EntityType = 0x4155
	EntityTypeNamespaceRegistration       EntityType = 0x414e
	EntityTypeAddressAlias                EntityType = 0x424e
	EntityTypeMosaicAlias                 EntityType = 0x434e
	EntityTypeAccountAddressRestriction   EntityType = 0x4150
	EntityTypeAccountMosaicRestriction    EntityType = 0x4250
	EntityTypeAccountOperationRestriction EntityType = 0x4350
	EntityTypeMosaicAddressRestriction    EntityType = 0x4251
	EntityTypeMosaicGlobalRestriction     EntityType = 0x4151
	EntityTypeTransfer                    EntityType = 0x4154
)

var entityTypeNames = map[EntityType]string{
	EntityTypeAccountKeyLink:              "AccountKeyLink",
	EntityTypeNodeKeyLink:                 "NodeKeyLink",
	EntityTypeVrfKeyLink:                  "VrfKeyLink",
	EntityTypeAggregateComplete:           "AggregateComplete",
	EntityTypeAggregateBonded:             "AggregateBonded",
	EntityTypeHashLock:                    "HashLock",
	EntityTypeSecretLock:                  "SecretLock",
	EntityTypeSecretProof:                 "SecretProof",
	EntityTypeAccountMetadata:             "AccountMetadata",
	EntityTypeMosaicMetadata:              "MosaicMetadata",
	EntityTypeNamespaceMetadata:           "NamespaceMetadata",
	EntityTypeMosaicDefinition:            "MosaicDefinition",
	EntityTypeMosaicSupplyChange:          "MosaicSupplyChange",
	EntityTypeMultisigAccountModification: "MultisigAccountModification",
	EntityTypeNamespaceRegistration:       "NamespaceRegistration",
	EntityTypeAddressAlias:                "AddressAlias",
	EntityTypeMosaicAlias:                 "MosaicAlias",
	EntityTypeAccountAddressRestriction:   "AccountAddressRestriction",
	EntityTypeAccountMosaicRestriction:    "AccountMosaicRestriction",
	EntityTypeAccountOperationRestriction: "AccountOperationRestriction",
	EntityTypeMosaicAddressRestriction:    "MosaicAddressRestriction",
	EntityTypeMosaicGlobalRestriction:     "MosaicGlobalRestriction",
	EntityTypeTransfer:                    "Transfer",
}

func NewEntityTypeFromBinary(data []byte) (EntityType, error) {
	return readEnum16[EntityType](codec.NewReader(data), "entity type")
}

func (t EntityType) Valid() bool {
	_, ok := entityTypeNames[t]
	return ok
}

func (t EntityType) String() string {
	return enumName(entityTypeNames, t, "EntityType")
}

func (t EntityType) Size() int {
	return EntityTypeSize
}

func (t EntityType) Serialize() []byte {
	return []byte{byte(t), byte(t >> 8)}
}

func (t EntityType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// LinkAction links or unlinks a key
type LinkAction uint8

const (
	LinkActionUnlink LinkAction = 0
	LinkActionLink   LinkAction = 1
)

var linkActionNames = map[LinkAction]string{
	LinkActionUnlink: "unlink",
	LinkActionLink:   "link",
}

func NewLinkActionFromBinary(data []byte) (LinkAction, error) {
	return readEnum8[LinkAction](codec.NewReader(data), "link action")
}

func (v LinkAction) Valid() bool {
	_, ok := linkActionNames[v]
	return ok
}

func (v LinkAction) String() string {
	return enumName(linkActionNames, v, "LinkAction")
}

func (v LinkAction) Size() int {
	return 1
}

func (v LinkAction) Serialize() []byte {
	return []byte{byte(v)}
}

// AliasAction links or unlinks a namespace alias
type AliasAction uint8

const (
	AliasActionUnlink AliasAction = 0
	AliasActionLink   AliasAction = 1
)

var aliasActionNames = map[AliasAction]string{
	AliasActionUnlink: "unlink",
	AliasActionLink:   "link",
}

func NewAliasActionFromBinary(data []byte) (AliasAction, error) {
	return readEnum8[AliasAction](codec.NewReader(data), "alias action")
}

func (v AliasAction) Valid() bool {
	_, ok := aliasActionNames[v]
	return ok
}

func (v AliasAction) String() string {
	return enumName(aliasActionNames, v, "AliasAction")
}

func (v AliasAction) Size() int {
	return 1
}

func (v AliasAction) Serialize() []byte {
	return []byte{byte(v)}
}

// MosaicSupplyChangeAction selects the direction of a supply change
type MosaicSupplyChangeAction uint8

const (
	MosaicSupplyChangeActionDecrease MosaicSupplyChangeAction = 0
	MosaicSupplyChangeActionIncrease MosaicSupplyChangeAction = 1
)

var mosaicSupplyChangeActionNames = map[MosaicSupplyChangeAction]string{
	MosaicSupplyChangeActionDecrease: "decrease",
	MosaicSupplyChangeActionIncrease: "increase",
}

func NewMosaicSupplyChangeActionFromBinary(data []byte) (MosaicSupplyChangeAction, error) {
	return readEnum8[MosaicSupplyChangeAction](codec.NewReader(data), "mosaic supply change action")
}

func (v MosaicSupplyChangeAction) Valid() bool {
	_, ok := mosaicSupplyChangeActionNames[v]
	return ok
}

func (v MosaicSupplyChangeAction) String() string {
	return enumName(mosaicSupplyChangeActionNames, v, "MosaicSupplyChangeAction")
}

func (v MosaicSupplyChangeAction) Size() int {
	return 1
}

func (v MosaicSupplyChangeAction) Serialize() []byte {
	return []byte{byte(v)}
}

// NamespaceRegistrationType selects between a root and a child namespace
type NamespaceRegistrationType uint8

const (
	NamespaceRegistrationTypeRoot  NamespaceRegistrationType = 0
	NamespaceRegistrationTypeChild NamespaceRegistrationType = 1
)

var namespaceRegistrationTypeNames = map[NamespaceRegistrationType]string{
	NamespaceRegistrationTypeRoot:  "root",
	NamespaceRegistrationTypeChild: "child",
}

func NewNamespaceRegistrationTypeFromBinary(data []byte) (NamespaceRegistrationType, error) {
	return readEnum8[NamespaceRegistrationType](codec.NewReader(data), "namespace registration type")
}

func (v NamespaceRegistrationType) Valid() bool {
	_, ok := namespaceRegistrationTypeNames[v]
	return ok
}

func (v NamespaceRegistrationType) String() string {
	return enumName(namespaceRegistrationTypeNames, v, "NamespaceRegistrationType")
}

func (v NamespaceRegistrationType) Size() int {
	return 1
}

func (v NamespaceRegistrationType) Serialize() []byte {
	return []byte{byte(v)}
}

// LockHashAlgorithm is the hash algorithm of a secret lock
type LockHashAlgorithm uint8

const (
	LockHashAlgorithmSha3_256 LockHashAlgorithm = 0
	LockHashAlgorithmHash160  LockHashAlgorithm = 1
	LockHashAlgorithmHash256  LockHashAlgorithm = 2
)

var lockHashAlgorithmNames = map[LockHashAlgorithm]string{
	LockHashAlgorithmSha3_256: "sha3-256",
	LockHashAlgorithmHash160:  "hash160",
	LockHashAlgorithmHash256:  "hash256",
}

func NewLockHashAlgorithmFromBinary(data []byte) (LockHashAlgorithm, error) {
	return readEnum8[LockHashAlgorithm](codec.NewReader(data), "lock hash algorithm")
}

func (v LockHashAlgorithm) Valid() bool {
	_, ok := lockHashAlgorithmNames[v]
	return ok
}

func (v LockHashAlgorithm) String() string {
	return enumName(lockHashAlgorithmNames, v, "LockHashAlgorithm")
}

func (v LockHashAlgorithm) Size() int {
	return 1
}

func (v LockHashAlgorithm) Serialize() []byte {
	return []byte{byte(v)}
}

// MosaicRestrictionType is the comparison of a mosaic global restriction
type MosaicRestrictionType uint8

const (
	MosaicRestrictionTypeNone MosaicRestrictionType = 0
	MosaicRestrictionTypeEq   MosaicRestrictionType = 1
	MosaicRestrictionTypeNe   MosaicRestrictionType = 2
	MosaicRestrictionTypeLt   MosaicRestrictionType = 3
	MosaicRestrictionTypeLe   MosaicRestrictionType = 4
	MosaicRestrictionTypeGt   MosaicRestrictionType = 5
	MosaicRestrictionTypeGe   MosaicRestrictionType = 6
)

var mosaicRestrictionTypeNames = map[MosaicRestrictionType]string{
	MosaicRestrictionTypeNone: "none",
	MosaicRestrictionTypeEq:   "eq",
	MosaicRestrictionTypeNe:   "ne",
	MosaicRestrictionTypeLt:   "lt",
	MosaicRestrictionTypeLe:   "le",
	MosaicRestrictionTypeGt:   "gt",
	MosaicRestrictionTypeGe:   "ge",
}

func NewMosaicRestrictionTypeFromBinary(data []byte) (MosaicRestrictionType, error) {
	return readEnum8[MosaicRestrictionType](codec.NewReader(data), "mosaic restriction type")
}

func (v MosaicRestrictionType) Valid() bool {
	_, ok := mosaicRestrictionTypeNames[v]
	return ok
}

func (v MosaicRestrictionType) String() string {
	return enumName(mosaicRestrictionTypeNames, v, "MosaicRestrictionType")
}

func (v MosaicRestrictionType) Size() int {
	return 1
}

func (v MosaicRestrictionType) Serialize() []byte {
	return []byte{byte(v)}
}

// MosaicFlags is a set of mosaic properties
type MosaicFlags uint8

const (
	MosaicFlagsNone          MosaicFlags = 0x00
	MosaicFlagsSupplyMutable MosaicFlags = 0x01
	MosaicFlagsTransferable  MosaicFlags = 0x02
	MosaicFlagsRestrictable  MosaicFlags = 0x04

	mosaicFlagsMask = MosaicFlagsSupplyMutable | MosaicFlagsTransferable | MosaicFlagsRestrictable
)

func NewMosaicFlagsFromBinary(data []byte) (MosaicFlags, error) {
	return readEnum8[MosaicFlags](codec.NewReader(data), "mosaic flags")
}

// Valid reports whether only known flags are set
func (f MosaicFlags) Valid() bool {
	return f&^mosaicFlagsMask == 0
}

func (f MosaicFlags) Has(flag MosaicFlags) bool {
	return f&flag == flag
}

func (f MosaicFlags) Size() int {
	return 1
}

func (f MosaicFlags) Serialize() []byte {
	return []byte{byte(f)}
}

// AccountRestrictionFlags selects the kind and direction of an account restriction
type AccountRestrictionFlags uint16

const (
	AccountRestrictionFlagsAddress         AccountRestrictionFlags = 0x0001
	AccountRestrictionFlagsMosaicId        AccountRestrictionFlags = 0x0002
	AccountRestrictionFlagsTransactionType AccountRestrictionFlags = 0x0004
	AccountRestrictionFlagsOutgoing        AccountRestrictionFlags = 0x4000
	AccountRestrictionFlagsBlock           AccountRestrictionFlags = 0x8000

	accountRestrictionFlagsMask = AccountRestrictionFlagsAddress |
		AccountRestrictionFlagsMosaicId |
		AccountRestrictionFlagsTransactionType |
		AccountRestrictionFlagsOutgoing |
		AccountRestrictionFlagsBlock
)

func NewAccountRestrictionFlagsFromBinary(data []byte) (AccountRestrictionFlags, error) {
	return readEnum16[AccountRestrictionFlags](codec.NewReader(data), "account restriction flags")
}

// Valid reports whether only known flags are set
func (f AccountRestrictionFlags) Valid() bool {
	return f&^accountRestrictionFlagsMask == 0
}

func (f AccountRestrictionFlags) Has(flag AccountRestrictionFlags) bool {
	return f&flag == flag
}

func (f AccountRestrictionFlags) Size() int {
	return 2
}

func (f AccountRestrictionFlags) Serialize() []byte {
	return []byte{byte(f), byte(f >> 8)}
}
