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

// Package test_ledger provides sample entities shared by tests across packages
package test_ledger

import (
	"bytes"

	"github.com/blinklabs-io/catbuffer/ledger"
)

func SampleAddress(b byte) ledger.Address {
	var ret ledger.Address
	copy(ret[:], bytes.Repeat([]byte{b}, len(ret)))
	return ret
}

func SampleUnresolvedAddress(b byte) ledger.UnresolvedAddress {
	var ret ledger.UnresolvedAddress
	copy(ret[:], bytes.Repeat([]byte{b}, len(ret)))
	return ret
}

func SampleKey(b byte) ledger.Key {
	var ret ledger.Key
	copy(ret[:], bytes.Repeat([]byte{b}, len(ret)))
	return ret
}

func SampleHash(b byte) ledger.Hash256 {
	var ret ledger.Hash256
	copy(ret[:], bytes.Repeat([]byte{b}, len(ret)))
	return ret
}

func SampleSignature(b byte) ledger.Signature {
	var ret ledger.Signature
	copy(ret[:], bytes.Repeat([]byte{b}, len(ret)))
	return ret
}

// SampleBodies returns one populated body of every embeddable entity type
func SampleBodies() []ledger.TransactionBody {
	duration := ledger.BlockDuration(86400)
	parent := ledger.GenerateNamespaceId(0, "nem")
	root, _ := ledger.NewNamespaceRegistrationTransactionBody(
		parent,
		[]byte("nem"),
		&duration,
		nil,
	)
	child, _ := ledger.NewNamespaceRegistrationTransactionBody(
		ledger.GenerateNamespaceId(parent, "xem"),
		[]byte("xem"),
		nil,
		&parent,
	)
	return []ledger.TransactionBody{
		&ledger.TransferTransactionBody{
			RecipientAddress: SampleUnresolvedAddress(0x98),
			Message:          []byte("\x00hello"),
			Mosaics: []ledger.UnresolvedMosaic{
				{MosaicId: 0x6bed913fa20223f8, Amount: 1000000},
				{MosaicId: 0x85bbea6cc462b244, Amount: 1},
			},
		},
		&ledger.AccountKeyLinkTransactionBody{
			KeyLinkTransactionBody: ledger.KeyLinkTransactionBody{
				LinkedPublicKey: SampleKey(0x11),
				LinkAction:      ledger.LinkActionLink,
			},
		},
		&ledger.NodeKeyLinkTransactionBody{
			KeyLinkTransactionBody: ledger.KeyLinkTransactionBody{
				LinkedPublicKey: SampleKey(0x12),
				LinkAction:      ledger.LinkActionUnlink,
			},
		},
		&ledger.VrfKeyLinkTransactionBody{
			KeyLinkTransactionBody: ledger.KeyLinkTransactionBody{
				LinkedPublicKey: SampleKey(0x13),
				LinkAction:      ledger.LinkActionLink,
			},
		},
		&ledger.HashLockTransactionBody{
			Mosaic:   ledger.UnresolvedMosaic{MosaicId: 0x6bed913fa20223f8, Amount: 10000000},
			Duration: 480,
			Hash:     SampleHash(0x21),
		},
		&ledger.SecretLockTransactionBody{
			RecipientAddress: SampleUnresolvedAddress(0x22),
			Secret:           SampleHash(0x23),
			Mosaic:           ledger.UnresolvedMosaic{MosaicId: 0x6bed913fa20223f8, Amount: 5},
			Duration:         100,
			HashAlgorithm:    ledger.LockHashAlgorithmHash160,
		},
		&ledger.SecretProofTransactionBody{
			RecipientAddress: SampleUnresolvedAddress(0x24),
			Secret:           SampleHash(0x25),
			HashAlgorithm:    ledger.LockHashAlgorithmSha3_256,
			Proof:            []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03},
		},
		&ledger.AccountMetadataTransactionBody{
			MetadataValue: ledger.MetadataValue{
				TargetAddress:     SampleUnresolvedAddress(0x31),
				ScopedMetadataKey: 0xa0b1c2d3e4f50617,
				ValueSizeDelta:    -3,
				Value:             []byte("value"),
			},
		},
		&ledger.MosaicMetadataTransactionBody{
			MetadataValue: ledger.MetadataValue{
				TargetAddress:     SampleUnresolvedAddress(0x32),
				ScopedMetadataKey: 1,
				ValueSizeDelta:    4,
				Value:             []byte("four"),
			},
			TargetMosaicId: 0x85bbea6cc462b244,
		},
		&ledger.NamespaceMetadataTransactionBody{
			MetadataValue: ledger.MetadataValue{
				TargetAddress:     SampleUnresolvedAddress(0x33),
				ScopedMetadataKey: 2,
				ValueSizeDelta:    0,
				Value:             []byte{0xff},
			},
			TargetNamespaceId: parent,
		},
		&ledger.MosaicDefinitionTransactionBody{
			Id:           0x0a0b0c0d0e0f1011,
			Duration:     0,
			Nonce:        0x01020304,
			Flags:        ledger.MosaicFlagsSupplyMutable | ledger.MosaicFlagsTransferable,
			Divisibility: 6,
		},
		&ledger.MosaicSupplyChangeTransactionBody{
			MosaicId: 0x0a0b0c0d0e0f1011,
			Delta:    1000000,
			Action:   ledger.MosaicSupplyChangeActionIncrease,
		},
		&ledger.MultisigAccountModificationTransactionBody{
			MinRemovalDelta:  1,
			MinApprovalDelta: -1,
			AddressAdditions: []ledger.UnresolvedAddress{
				SampleUnresolvedAddress(0x41),
				SampleUnresolvedAddress(0x42),
			},
			AddressDeletions: []ledger.UnresolvedAddress{
				SampleUnresolvedAddress(0x43),
			},
		},
		root,
		child,
		&ledger.AddressAliasTransactionBody{
			NamespaceId: parent,
			Address:     SampleAddress(0x51),
			AliasAction: ledger.AliasActionLink,
		},
		&ledger.MosaicAliasTransactionBody{
			NamespaceId: parent,
			MosaicId:    0x6bed913fa20223f8,
			AliasAction: ledger.AliasActionUnlink,
		},
		&ledger.AccountAddressRestrictionTransactionBody{
			RestrictionFlags: ledger.AccountRestrictionFlagsAddress | ledger.AccountRestrictionFlagsBlock,
			RestrictionAdditions: []ledger.UnresolvedAddress{
				SampleUnresolvedAddress(0x61),
			},
		},
		&ledger.AccountMosaicRestrictionTransactionBody{
			RestrictionFlags:     ledger.AccountRestrictionFlagsMosaicId,
			RestrictionAdditions: []ledger.UnresolvedMosaicId{0x6bed913fa20223f8},
			RestrictionDeletions: []ledger.UnresolvedMosaicId{0x85bbea6cc462b244, 7},
		},
		&ledger.AccountOperationRestrictionTransactionBody{
			RestrictionFlags: ledger.AccountRestrictionFlagsTransactionType | ledger.AccountRestrictionFlagsOutgoing,
			RestrictionAdditions: []ledger.EntityType{
				ledger.EntityTypeTransfer,
				ledger.EntityTypeAggregateBonded,
			},
		},
		&ledger.MosaicAddressRestrictionTransactionBody{
			MosaicId:                 0x0a0b0c0d0e0f1011,
			RestrictionKey:           0xffffffffffffffff,
			PreviousRestrictionValue: 0,
			NewRestrictionValue:      1,
			TargetAddress:            SampleUnresolvedAddress(0x71),
		},
		&ledger.MosaicGlobalRestrictionTransactionBody{
			MosaicId:                 0x0a0b0c0d0e0f1011,
			ReferenceMosaicId:        0,
			RestrictionKey:           12345,
			PreviousRestrictionValue: 0,
			NewRestrictionValue:      2,
			PreviousRestrictionType:  ledger.MosaicRestrictionTypeNone,
			NewRestrictionType:       ledger.MosaicRestrictionTypeGe,
		},
	}
}

// SampleEmbeddedTransactions wraps every sample body in an embedded transaction
func SampleEmbeddedTransactions() []*ledger.EmbeddedTransaction {
	bodies := SampleBodies()
	ret := make([]*ledger.EmbeddedTransaction, 0, len(bodies))
	for idx, body := range bodies {
		ret = append(
			ret,
			ledger.NewEmbeddedTransaction(
				ledger.EmbeddedTransactionHeader{
					SignerPublicKey: SampleKey(byte(idx)),
					Version:         1,
					Network:         ledger.NetworkTypeTestnet,
				},
				body,
			),
		)
	}
	return ret
}

// SampleTransactionHeader returns a populated top-level header
func SampleTransactionHeader() ledger.TransactionHeader {
	return ledger.TransactionHeader{
		Signature:       SampleSignature(0xaa),
		SignerPublicKey: SampleKey(0xbb),
		Version:         1,
		Network:         ledger.NetworkTypeTestnet,
		Fee:             20000,
		Deadline:        0x0000001234567890,
	}
}

// SampleAggregate returns an aggregate complete transaction over the first count
// sample embedded transactions with two cosignatures
func SampleAggregate(count int) *ledger.Transaction {
	txs := SampleEmbeddedTransactions()[:count]
	body, err := ledger.NewAggregateCompleteTransactionBody(
		txs,
		[]ledger.Cosignature{
			{Version: 0, SignerPublicKey: SampleKey(0xc1), Signature: SampleSignature(0xc2)},
			{Version: 0, SignerPublicKey: SampleKey(0xc3), Signature: SampleSignature(0xc4)},
		},
	)
	if err != nil {
		panic(err)
	}
	return ledger.NewTransaction(SampleTransactionHeader(), body)
}

// SampleReceipts returns one receipt of every receipt body kind
func SampleReceipts() []*ledger.Receipt {
	currency := ledger.Mosaic{MosaicId: 0x6bed913fa20223f8, Amount: 1000}
	return []*ledger.Receipt{
		ledger.NewReceipt(1, ledger.ReceiptTypeNamespaceRentalFee, &ledger.BalanceTransferReceipt{
			Mosaic:           currency,
			SenderAddress:    SampleAddress(0x01),
			RecipientAddress: SampleAddress(0x02),
		}),
		ledger.NewReceipt(1, ledger.ReceiptTypeHarvestFee, &ledger.BalanceChangeReceipt{
			Mosaic:        currency,
			TargetAddress: SampleAddress(0x03),
		}),
		ledger.NewReceipt(1, ledger.ReceiptTypeInflation, &ledger.InflationReceipt{
			Mosaic: currency,
		}),
		ledger.NewReceipt(1, ledger.ReceiptTypeMosaicExpired, &ledger.MosaicExpiryReceipt{
			ArtifactId: 0x0a0b0c0d0e0f1011,
		}),
		ledger.NewReceipt(1, ledger.ReceiptTypeNamespaceDeleted, &ledger.NamespaceExpiryReceipt{
			ArtifactId: ledger.GenerateNamespaceId(0, "nem"),
		}),
	}
}
