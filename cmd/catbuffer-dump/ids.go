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
	"fmt"
	"strings"

	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/spf13/cobra"
)

type idView struct {
	Name string    `json:"name"          yaml:"name"          cbor:"name"          msgpack:"name"`
	Id   string    `json:"id"            yaml:"id"            cbor:"id"            msgpack:"id"`
	Pair [2]uint32 `json:"pair"          yaml:"pair,flow"     cbor:"pair"          msgpack:"pair"`
	Hex  string    `json:"hex,omitempty" yaml:"hex,omitempty" cbor:"hex,omitempty" msgpack:"hex,omitempty"`
}

func newNamespaceIdCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "namespace-id <name>",
		Short: "Compute the ids of a dotted namespace name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.Split(args[0], ".")
			for _, part := range parts {
				if part == "" {
					return fmt.Errorf("invalid namespace name: %q", args[0])
				}
			}
			ids := ledger.GenerateNamespacePath(parts...)
			views := make([]idView, 0, len(ids))
			for idx, id := range ids {
				views = append(views, idView{
					Name: strings.Join(parts[:idx+1], "."),
					Id:   id.String(),
					Pair: id.Pair(),
					Hex:  hex.EncodeToString(id.Serialize()),
				})
			}
			return writeOutput(cmd.OutOrStdout(), flags.format, views)
		},
	}
}

func newMosaicIdCmd(flags *globalFlags) *cobra.Command {
	var nonce uint32
	var owner string
	cmd := &cobra.Command{
		Use:   "mosaic-id",
		Short: "Compute a mosaic id from a definition nonce and owner address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ledger.ParseAddress(owner)
			if err != nil {
				return err
			}
			id := ledger.GenerateMosaicId(ledger.MosaicNonce(nonce), addr)
			return writeOutput(
				cmd.OutOrStdout(),
				flags.format,
				idView{
					Name: addr.String(),
					Id:   id.String(),
					Pair: id.Pair(),
					Hex:  hex.EncodeToString(id.Serialize()),
				},
			)
		},
	}
	cmd.Flags().Uint32Var(&nonce, "nonce", 0, "mosaic definition nonce")
	cmd.Flags().StringVar(&owner, "owner", "", "owner address in base32 form")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
