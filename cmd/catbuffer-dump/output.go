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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blinklabs-io/catbuffer/cbor"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// writeOutput renders v in the selected format
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case formatJson:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatCbor:
		data, err := cbor.Encode(v)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	case formatDiag:
		data, err := cbor.Encode(v)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		diag, err := cbor.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnose cbor: %w", err)
		}
		_, err = fmt.Fprintln(w, diag)
		return err
	case formatMsgpack:
		data, err := msgpack.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
