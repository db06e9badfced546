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
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	namespaceIdFlag uint64 = 1 << 63
	mosaicIdMask    uint64 = namespaceIdFlag - 1
)

// GenerateNamespaceId derives the id of a namespace from its parent id and name. Root
// namespaces use a zero parent.
func GenerateNamespaceId(parent NamespaceId, name string) NamespaceId {
	h := sha3.New256()
	h.Write(binary.LittleEndian.AppendUint64(nil, uint64(parent)))
	h.Write([]byte(name))
	sum := h.Sum(nil)
	return NamespaceId(binary.LittleEndian.Uint64(sum[:8]) | namespaceIdFlag)
}

// GenerateNamespacePath returns the ids of every level of a dotted namespace name,
// starting from the root
func GenerateNamespacePath(names ...string) []NamespaceId {
	ret := make([]NamespaceId, 0, len(names))
	var parent NamespaceId
	for _, name := range names {
		parent = GenerateNamespaceId(parent, name)
		ret = append(ret, parent)
	}
	return ret
}

// GenerateMosaicId derives the id of a mosaic from the definition nonce and the
// owner address
func GenerateMosaicId(nonce MosaicNonce, owner Address) MosaicId {
	h := sha3.New256()
	h.Write(binary.LittleEndian.AppendUint32(nil, uint32(nonce)))
	h.Write(owner[:])
	sum := h.Sum(nil)
	return MosaicId(binary.LittleEndian.Uint64(sum[:8]) & mosaicIdMask)
}

// CalculateTransactionsHash computes the merkle root over the unpadded encodings of
// txs. The last node of an odd level is paired with itself.
func CalculateTransactionsHash(txs []*EmbeddedTransaction) (Hash256, error) {
	var ret Hash256
	if len(txs) == 0 {
		return ret, nil
	}
	level := make([]Hash256, 0, len(txs))
	for idx, tx := range txs {
		if tx == nil {
			return ret, InvalidConstructionError{
				Entity: "transactions hash",
				Reason: fmt.Sprintf("embedded transaction %d is nil", idx),
			}
		}
		data, err := tx.Serialize()
		if err != nil {
			return ret, fmt.Errorf("hash embedded transaction %d: %w", idx, err)
		}
		level = append(level, sha3.Sum256(data))
	}
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]Hash256, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			h := sha3.New256()
			h.Write(level[i][:])
			h.Write(level[i+1][:])
			var node Hash256
			h.Sum(node[:0])
			next = append(next, node)
		}
		level = next
	}
	return level[0], nil
}
