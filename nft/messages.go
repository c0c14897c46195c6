// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"bytes"
	"encoding/json"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
)

// BlockSize - every outbound payload and every handle or query answer
// is space padded to a multiple of this size so that the length of a
// message cannot betray its content
const BlockSize = 256

// Message - one outbound call to an external contract
//
// the body is already serialized and padded; transports forward it
// verbatim
type Message struct {
	Destination string `json:"destination"` // base58 address of the target contract
	CodeHash    string `json:"code_hash"`   // hex
	Body        []byte `json:"body"`        // padded JSON payload
}

// Transfer - one recipient's bundle inside a batch transfer
type Transfer struct {
	Recipient *account.Account `json:"recipient"` // base58
	TokenIDs  []string         `json:"token_ids"`
	Memo      string           `json:"memo"`
}

// wire shells for the collection operations
// exactly one operation per message, tagged by its field name
type registerReceiveNft struct {
	CodeHash                      string  `json:"code_hash"`
	AlsoImplementsBatchReceiveNft *bool   `json:"also_implements_batch_receive_nft"`
	Padding                       *string `json:"padding"`
}

type registerReceiveNftMsg struct {
	RegisterReceiveNft registerReceiveNft `json:"register_receive_nft"`
}

type setViewingKey struct {
	Key     string  `json:"key"`
	Padding *string `json:"padding"`
}

type setViewingKeyMsg struct {
	SetViewingKey setViewingKey `json:"set_viewing_key"`
}

type batchTransferNft struct {
	Transfers []Transfer `json:"transfers"`
}

type batchTransferNftMsg struct {
	BatchTransferNft batchTransferNft `json:"batch_transfer_nft"`
}

type nftDossier struct {
	TokenID string `json:"token_id"`
}

type nftDossierQuery struct {
	NftDossier nftDossier `json:"nft_dossier"`
}

// NewMessage - serialize one externally tagged operation, pad it and
// wrap it for its destination
//
// the builders below cover the collection operations; other packages
// use this directly for their own destinations
func NewMessage(to ContractInfo, operation interface{}) (Message, error) {
	if nil == to.Address {
		return Message{}, fault.AddressIsNil
	}
	body, err := json.Marshal(operation)
	if nil != err {
		return Message{}, err
	}
	return Message{
		Destination: to.Address.String(),
		CodeHash:    to.CodeHash,
		Body:        SpacePad(body, BlockSize),
	}, nil
}

// RegisterReceive - ask a collection to report transfers to this
// contract through BatchReceiveNft
//
// receiverCodeHash is this contract's own code hash so the collection
// can call back; sent exactly once during instantiation
func RegisterReceive(receiverCodeHash string, to ContractInfo) (Message, error) {
	alsoBatch := true
	return NewMessage(to, registerReceiveNftMsg{
		RegisterReceiveNft: registerReceiveNft{
			CodeHash:                      receiverCodeHash,
			AlsoImplementsBatchReceiveNft: &alsoBatch,
		},
	})
}

// SetViewingKey - set a viewing key with an external collection
func SetViewingKey(key string, to ContractInfo) (Message, error) {
	return NewMessage(to, setViewingKeyMsg{
		SetViewingKey: setViewingKey{
			Key: key,
		},
	})
}

// BatchTransfer - move tokens out of this contract, one entry per
// recipient
func BatchTransfer(transfers []Transfer, to ContractInfo) (Message, error) {
	return NewMessage(to, batchTransferNftMsg{
		BatchTransferNft: batchTransferNft{
			Transfers: transfers,
		},
	})
}

// DossierQuery - padded query body asking a collection for the public
// dossier of a single token
func DossierQuery(tokenID string) ([]byte, error) {
	body, err := json.Marshal(nftDossierQuery{
		NftDossier: nftDossier{
			TokenID: tokenID,
		},
	})
	if nil != err {
		return nil, err
	}
	return SpacePad(body, BlockSize), nil
}

// SpacePad - append ASCII spaces until the buffer length is a multiple
// of blockSize
//
// JSON decoders skip trailing whitespace, so a padded body decodes
// exactly like the unpadded one
func SpacePad(buffer []byte, blockSize int) []byte {
	surplus := len(buffer) % blockSize
	if 0 == surplus {
		return buffer
	}
	return append(buffer, bytes.Repeat([]byte{' '}, blockSize-surplus)...)
}
