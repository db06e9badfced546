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

	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/spf13/cobra"
)

// entityView is the printed form of a decoded entity
type entityView struct {
	Kind       string `json:"kind"                 yaml:"kind"                 cbor:"kind"                 msgpack:"kind"`
	Type       string `json:"type"                 yaml:"type"                 cbor:"type"                 msgpack:"type"`
	Size       int    `json:"size"                 yaml:"size"                 cbor:"size"                 msgpack:"size"`
	PaddedSize int    `json:"paddedSize,omitempty" yaml:"paddedSize,omitempty" cbor:"paddedSize,omitempty" msgpack:"paddedSize,omitempty"`
	Version    uint16 `json:"version,omitempty"    yaml:"version,omitempty"    cbor:"version,omitempty"    msgpack:"version,omitempty"`
	Header     any    `json:"header,omitempty"     yaml:"header,omitempty"     cbor:"header,omitempty"     msgpack:"header,omitempty"`
	Body       any    `json:"body"                 yaml:"body"                 cbor:"body"                 msgpack:"body"`
}

func newTransactionCmd(flags *globalFlags) *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "transaction [hex]",
		Short: "Decode a top-level transaction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, flags)
			data, err := readPayload(cmd, args)
			if err != nil {
				return err
			}
			logger.Debug("decoding transaction", "bytes", len(data), "legacy", legacy)
			var view entityView
			if legacy {
				tx, err := ledger.NewLegacyTransactionFromBinary(data)
				if err != nil {
					logger.Error("failed to decode legacy transaction", "error", err)
					return err
				}
				view = entityView{
					Kind:   "legacy transaction",
					Type:   tx.Type().String(),
					Size:   tx.Size(),
					Header: tx.Header,
					Body:   tx.Body,
				}
			} else {
				tx, err := ledger.NewTransactionFromBinary(data)
				if err != nil {
					logger.Error("failed to decode transaction", "error", err)
					return err
				}
				view = entityView{
					Kind:   "transaction",
					Type:   tx.Type().String(),
					Size:   tx.Size(),
					Header: tx.Header,
					Body:   tx.Body,
				}
			}
			if view.Size < len(data) {
				logger.Warn("ignored bytes after transaction", "count", len(data)-view.Size)
			}
			logger.Debug("decoded transaction", "type", view.Type, "size", view.Size)
			return writeOutput(cmd.OutOrStdout(), flags.format, view)
		},
	}
	cmd.Flags().BoolVar(
		&legacy,
		"legacy",
		false,
		"decode using the header layout without a network byte",
	)
	return cmd
}

func embeddedView(tx *ledger.EmbeddedTransaction) entityView {
	return entityView{
		Kind:       "embedded transaction",
		Type:       tx.Type().String(),
		Size:       tx.Size(),
		PaddedSize: ledger.EmbeddedTransactionsSize([]*ledger.EmbeddedTransaction{tx}),
		Header:     tx.Header,
		Body:       tx.Body,
	}
}

func newEmbeddedCmd(flags *globalFlags) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "embedded [hex]",
		Short: "Decode an embedded transaction, or a padded list of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, flags)
			data, err := readPayload(cmd, args)
			if err != nil {
				return err
			}
			if !list {
				tx, err := ledger.DecodeEmbeddedTransaction(data)
				if err != nil {
					logger.Error("failed to decode embedded transaction", "error", err)
					return err
				}
				logger.Debug("decoded embedded transaction", "type", tx.Type(), "size", tx.Size())
				return writeOutput(cmd.OutOrStdout(), flags.format, embeddedView(tx))
			}
			txs, err := ledger.DecodeEmbeddedTransactions(data)
			if err != nil {
				logger.Error("failed to decode embedded transactions", "error", err)
				return err
			}
			views := make([]entityView, 0, len(txs))
			for _, tx := range txs {
				views = append(views, embeddedView(tx))
			}
			logger.Debug("decoded embedded transactions", "count", len(views))
			return writeOutput(cmd.OutOrStdout(), flags.format, views)
		},
	}
	cmd.Flags().BoolVar(
		&list,
		"list",
		false,
		"decode a concatenation of padded embedded transactions",
	)
	return cmd
}

func newReceiptCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt [hex]",
		Short: "Decode a receipt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, flags)
			data, err := readPayload(cmd, args)
			if err != nil {
				return err
			}
			receipt, err := ledger.NewReceiptFromBinary(data)
			if err != nil {
				logger.Error("failed to decode receipt", "error", err)
				return err
			}
			logger.Debug("decoded receipt", "type", receipt.Type, "size", receipt.Size())
			return writeOutput(
				cmd.OutOrStdout(),
				flags.format,
				entityView{
					Kind:    "receipt",
					Type:    receipt.Type.String(),
					Size:    receipt.Size(),
					Version: receipt.Version,
					Body:    receipt.Body,
				},
			)
		},
	}
}

type typeView struct {
	Name       string `json:"name"                 yaml:"name"                 cbor:"name"                 msgpack:"name"`
	Code       string `json:"code"                 yaml:"code"                 cbor:"code"                 msgpack:"code"`
	Embeddable bool   `json:"embeddable,omitempty" yaml:"embeddable,omitempty" cbor:"embeddable,omitempty" msgpack:"embeddable,omitempty"`
}

type typesView struct {
	Transactions []typeView `json:"transactions" yaml:"transactions" cbor:"transactions" msgpack:"transactions"`
	Receipts     []typeView `json:"receipts"     yaml:"receipts"     cbor:"receipts"     msgpack:"receipts"`
}

func newTypesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported transaction and receipt types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var view typesView
			for _, t := range ledger.SupportedEntityTypes() {
				view.Transactions = append(view.Transactions, typeView{
					Name:       t.String(),
					Code:       fmt.Sprintf("0x%04X", uint16(t)),
					Embeddable: ledger.IsEmbeddable(t),
				})
			}
			for _, t := range ledger.SupportedReceiptTypes() {
				view.Receipts = append(view.Receipts, typeView{
					Name: t.String(),
					Code: fmt.Sprintf("0x%04X", uint16(t)),
				})
			}
			return writeOutput(cmd.OutOrStdout(), flags.format, view)
		},
	}
}
