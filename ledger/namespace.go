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

// NamespaceRegistration is the variant part of a namespace registration. The same
// eight bytes hold either the rental duration of a root namespace or the parent id
// of a child namespace.
type NamespaceRegistration interface {
	RegistrationType() NamespaceRegistrationType
	slot() uint64
}

type RootNamespace struct {
	Duration BlockDuration
}

func (RootNamespace) RegistrationType() NamespaceRegistrationType {
	return NamespaceRegistrationTypeRoot
}

func (n RootNamespace) slot() uint64 {
	return uint64(n.Duration)
}

type ChildNamespace struct {
	ParentId NamespaceId
}

func (ChildNamespace) RegistrationType() NamespaceRegistrationType {
	return NamespaceRegistrationTypeChild
}

func (n ChildNamespace) slot() uint64 {
	return uint64(n.ParentId)
}

// NamespaceRegistrationTransactionBody registers a root namespace or a child of an
// existing namespace
type NamespaceRegistrationTransactionBody struct {
	Registration NamespaceRegistration
	Id           NamespaceId
	Name         []byte
}

// NewNamespaceRegistrationTransactionBody builds a registration from exactly one of
// duration (root) or parentId (child)
func NewNamespaceRegistrationTransactionBody(
	id NamespaceId,
	name []byte,
	duration *BlockDuration,
	parentId *NamespaceId,
) (*NamespaceRegistrationTransactionBody, error) {
	b := &NamespaceRegistrationTransactionBody{
		Id:   id,
		Name: name,
	}
	switch {
	case duration != nil && parentId != nil:
		return nil, InvalidConstructionError{
			Entity: "namespace registration",
			Reason: "duration and parent id are mutually exclusive",
		}
	case duration != nil:
		b.Registration = RootNamespace{Duration: *duration}
	case parentId != nil:
		b.Registration = ChildNamespace{ParentId: *parentId}
	default:
		return nil, InvalidConstructionError{
			Entity: "namespace registration",
			Reason: "one of duration or parent id is required",
		}
	}
	return b, nil
}

func NewNamespaceRegistrationTransactionBodyFromBinary(
	data []byte,
) (*NamespaceRegistrationTransactionBody, error) {
	return decodeNamespaceRegistrationTransactionBody(codec.NewReader(data))
}

func decodeNamespaceRegistrationTransactionBody(
	r *codec.Reader,
) (*NamespaceRegistrationTransactionBody, error) {
	b := &NamespaceRegistrationTransactionBody{}
	slot, err := readUint64[uint64](r, "namespace registration slot")
	if err != nil {
		return nil, err
	}
	if b.Id, err = readUint64[NamespaceId](r, "namespace id"); err != nil {
		return nil, err
	}
	regType, err := readEnum8[NamespaceRegistrationType](r, "namespace registration type")
	if err != nil {
		return nil, err
	}
	switch regType {
	case NamespaceRegistrationTypeRoot:
		b.Registration = RootNamespace{Duration: BlockDuration(slot)}
	case NamespaceRegistrationTypeChild:
		b.Registration = ChildNamespace{ParentId: NamespaceId(slot)}
	}
	nameSize, err := readUint8(r, "name size")
	if err != nil {
		return nil, err
	}
	if b.Name, err = readBlob(r, int(nameSize), "name"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *NamespaceRegistrationTransactionBody) EntityType() EntityType {
	return EntityTypeNamespaceRegistration
}

func (b *NamespaceRegistrationTransactionBody) Size() int {
	return 8 + // duration or parent id
		NamespaceIdSize +
		1 + // registration type
		1 + // name size
		len(b.Name)
}

func (b *NamespaceRegistrationTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

func (b *NamespaceRegistrationTransactionBody) encode(w *codec.Writer) {
	if b.Registration == nil {
		w.Fail(InvalidConstructionError{
			Entity: "namespace registration",
			Reason: "missing root or child registration",
		})
		return
	}
	w.PutUint64(b.Registration.slot())
	w.PutUint64(uint64(b.Id))
	putEnum8(w, b.Registration.RegistrationType(), "namespace registration type")
	w.PutCount8(len(b.Name))
	w.PutBytes(b.Name)
}
