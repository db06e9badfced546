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

const KeyLinkTransactionBodySize = KeySize + 1

// KeyLinkTransactionBody links or unlinks a public key. It is shared by the account,
// node and VRF key link transactions.
type KeyLinkTransactionBody struct {
	LinkedPublicKey Key
	LinkAction      LinkAction
}

func decodeKeyLinkTransactionBody(r *codec.Reader) (KeyLinkTransactionBody, error) {
	var b KeyLinkTransactionBody
	var err error
	if err = readFixed(r, b.LinkedPublicKey[:], "linked public key"); err != nil {
		return b, err
	}
	if b.LinkAction, err = readEnum8[LinkAction](r, "link action"); err != nil {
		return b, err
	}
	return b, nil
}

func (b *KeyLinkTransactionBody) Size() int {
	return KeyLinkTransactionBodySize
}

func (b *KeyLinkTransactionBody) encode(w *codec.Writer) {
	w.PutBytes(b.LinkedPublicKey[:])
	putEnum8(w, b.LinkAction, "link action")
}

// AccountKeyLinkTransactionBody delegates account importance to a remote key
type AccountKeyLinkTransactionBody struct {
	KeyLinkTransactionBody
}

func NewAccountKeyLinkTransactionBodyFromBinary(data []byte) (*AccountKeyLinkTransactionBody, error) {
	return decodeAccountKeyLinkTransactionBody(codec.NewReader(data))
}

func decodeAccountKeyLinkTransactionBody(r *codec.Reader) (*AccountKeyLinkTransactionBody, error) {
	b, err := decodeKeyLinkTransactionBody(r)
	if err != nil {
		return nil, err
	}
	return &AccountKeyLinkTransactionBody{b}, nil
}

func (b *AccountKeyLinkTransactionBody) EntityType() EntityType {
	return EntityTypeAccountKeyLink
}

func (b *AccountKeyLinkTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

// NodeKeyLinkTransactionBody links an account to a node TLS key
type NodeKeyLinkTransactionBody struct {
	KeyLinkTransactionBody
}

func NewNodeKeyLinkTransactionBodyFromBinary(data []byte) (*NodeKeyLinkTransactionBody, error) {
	return decodeNodeKeyLinkTransactionBody(codec.NewReader(data))
}

func decodeNodeKeyLinkTransactionBody(r *codec.Reader) (*NodeKeyLinkTransactionBody, error) {
	b, err := decodeKeyLinkTransactionBody(r)
	if err != nil {
		return nil, err
	}
	return &NodeKeyLinkTransactionBody{b}, nil
}

func (b *NodeKeyLinkTransactionBody) EntityType() EntityType {
	return EntityTypeNodeKeyLink
}

func (b *NodeKeyLinkTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}

// VrfKeyLinkTransactionBody links an account to a VRF key
type VrfKeyLinkTransactionBody struct {
	KeyLinkTransactionBody
}

func NewVrfKeyLinkTransactionBodyFromBinary(data []byte) (*VrfKeyLinkTransactionBody, error) {
	return decodeVrfKeyLinkTransactionBody(codec.NewReader(data))
}

func decodeVrfKeyLinkTransactionBody(r *codec.Reader) (*VrfKeyLinkTransactionBody, error) {
	b, err := decodeKeyLinkTransactionBody(r)
	if err != nil {
		return nil, err
	}
	return &VrfKeyLinkTransactionBody{b}, nil
}

func (b *VrfKeyLinkTransactionBody) EntityType() EntityType {
	return EntityTypeVrfKeyLink
}

func (b *VrfKeyLinkTransactionBody) Serialize() ([]byte, error) {
	return serializeBody(b)
}
