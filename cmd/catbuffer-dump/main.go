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
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	formatJson    = "json"
	formatYaml    = "yaml"
	formatCbor    = "cbor"
	formatDiag    = "diag"
	formatMsgpack = "msgpack"
)

type globalFlags struct {
	format  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "catbuffer-dump",
		Short: "Decode catbuffer entities",
		Long: `Decode hex encoded transactions, embedded transactions and receipts and
print them in a readable form.

Examples:
  catbuffer-dump transaction 9100000000000000...
  catbuffer-dump receipt --format yaml < receipt.hex
  catbuffer-dump namespace-id nem.xem`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.format {
			case formatJson, formatYaml, formatCbor, formatDiag, formatMsgpack:
			default:
				return fmt.Errorf("unsupported output format: %s", flags.format)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&flags.format,
		"format",
		"o",
		formatJson,
		"output format (json, yaml, cbor, diag or msgpack)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flags.verbose,
		"verbose",
		"v",
		false,
		"log decode progress to stderr",
	)
	rootCmd.AddCommand(
		newTransactionCmd(flags),
		newEmbeddedCmd(flags),
		newReceiptCmd(flags),
		newTypesCmd(flags),
		newNamespaceIdCmd(flags),
		newMosaicIdCmd(flags),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command, flags *globalFlags) *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(
			cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: level},
		),
	)
}
