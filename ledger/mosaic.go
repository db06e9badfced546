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

const (
	MosaicSize           = MosaicIdSize + AmountSize
	UnresolvedMosaicSize = MosaicIdSize + AmountSize
)

// Mosaic is an amount of a resolved mosaic
type Mosaic struct {
	MosaicId MosaicId
	Amount   Amount
}

func NewMosaicFromBinary(data []byte) (Mosaic, error) {
	return decodeMosaic(codec.NewReader(data))
}

func decodeMosaic(r *codec.Reader) (Mosaic, error) {
	var err error
	var ret Mosaic
	if ret.MosaicId, err = readUint64[MosaicId](r, "mosaic id"); err != nil {
		return Mosaic{}, err
	}
	if ret.Amount, err = readUint64[Amount](r, "mosaic amount"); err != nil {
		return Mosaic{}, err
	}
	return ret, nil
}

func (m Mosaic) Size() int {
	return MosaicSize
}

func (m Mosaic) Serialize() []byte {
	w := codec.NewWriter(MosaicSize)
	m.encode(w)
	ret, _ := w.Result()
	return ret
}

func (m Mosaic) encode(w *codec.Writer) {
	w.PutUint64(uint64(m.MosaicId))
	w.PutUint64(uint64(m.Amount))
}

// UnresolvedMosaic is an amount of a mosaic that may be referenced through an alias
type UnresolvedMosaic struct {
	MosaicId UnresolvedMosaicId
	Amount   Amount
}

func NewUnresolvedMosaicFromBinary(data []byte) (UnresolvedMosaic, error) {
	return decodeUnresolvedMosaic(codec.NewReader(data))
}

func decodeUnresolvedMosaic(r *codec.Reader) (UnresolvedMosaic, error) {
	var err error
	var ret UnresolvedMosaic
	if ret.MosaicId, err = readUint64[UnresolvedMosaicId](r, "mosaic id"); err != nil {
		return UnresolvedMosaic{}, err
	}
	if ret.Amount, err = readUint64[Amount](r, "mosaic amount"); err != nil {
		return UnresolvedMosaic{}, err
	}
	return ret, nil
}

func (m UnresolvedMosaic) Size() int {
	return UnresolvedMosaicSize
}

func (m UnresolvedMosaic) Serialize() []byte {
	w := codec.NewWriter(UnresolvedMosaicSize)
	m.encode(w)
	ret, _ := w.Result()
	return ret
}

func (m UnresolvedMosaic) encode(w *codec.Writer) {
	w.PutUint64(uint64(m.MosaicId))
	w.PutUint64(uint64(m.Amount))
}
