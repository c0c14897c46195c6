// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// LogAttribute - one key/value pair attached to a committed message
type LogAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result - everything a committed message produced
//
// Data is the padded answer returned to the caller, Messages are
// outbound calls the node relays only after the commit succeeds
type Result struct {
	Data     []byte
	Messages []nft.Message
	Logs     []LogAttribute
}

const success = "success"

// answer shells mirror the operation names so a caller can tell which
// operation produced the answer
type viewingKeyAnswer struct {
	Key string `json:"key"`
}

type viewingKeyShell struct {
	ViewingKey viewingKeyAnswer `json:"viewing_key"`
}

type adminsListAnswer struct {
	Admins []*account.Account `json:"admins"`
}

type adminsListShell struct {
	AdminsList adminsListAnswer `json:"admins_list"`
}

type statusAnswer struct {
	Status string `json:"status"`
}

type addToWhitelistShell struct {
	AddToWhitelist statusAnswer `json:"add_to_whitelist"`
}

type removeFromWhitelistShell struct {
	RemoveFromWhitelist statusAnswer `json:"remove_from_whitelist"`
}

type revokePermitShell struct {
	RevokePermit statusAnswer `json:"revoke_permit"`
}

type retrieveNftShell struct {
	RetrieveNft statusAnswer `json:"retrieve_nft"`
}

// query answer shells
type adminsQueryShell struct {
	Admins adminsListAnswer `json:"admins"`
}

type countsShell struct {
	Counts tokenpool.Counts `json:"counts"`
}

type nftContractShell struct {
	NftContract nft.ContractInfo `json:"nft_contract"`
}

type nftListingDisplayAnswer struct {
	NftInfo            nft.Dossier      `json:"nft_info"`
	NftContractAddress *account.Account `json:"nft_contract_address"`
	Mintable           bool             `json:"mintable"`
}

type nftListingDisplayShell struct {
	NftListingDisplay nftListingDisplayAnswer `json:"nft_listing_display"`
}

// serialize an answer and pad it so its length hides nothing
func padAnswer(answer interface{}) ([]byte, error) {
	buffer, err := json.Marshal(answer)
	if nil != err {
		return nil, err
	}
	return nft.SpacePad(buffer, nft.BlockSize), nil
}
