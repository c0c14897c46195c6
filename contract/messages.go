// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/permit"
)

// InitMsg - one-time instantiation parameters
type InitMsg struct {
	NftContract nft.ContractInfo `json:"nft_contract"` // the collection this machine dispenses from
	Entropy     string           `json:"entropy"`      // seeds the distribution PRNG
}

// HandleMsg - externally tagged union of every executable operation
//
// exactly one field may be set; the JSON tag selects the operation
type HandleMsg struct {
	BatchReceiveNft             *BatchReceiveNft             `json:"batch_receive_nft,omitempty"`
	ReceiveNft                  *ReceiveNft                  `json:"receive_nft,omitempty"`
	Mint                        *Mint                        `json:"mint,omitempty"`
	CreateListing               *CreateListing               `json:"create_listing,omitempty"`
	RegisterListing             *RegisterListing             `json:"register_listing,omitempty"`
	AddAdmins                   *AdminsUpdate                `json:"add_admins,omitempty"`
	RemoveAdmins                *AdminsUpdate                `json:"remove_admins,omitempty"`
	AddToWhitelist              *WhitelistUpdate             `json:"add_to_whitelist,omitempty"`
	RemoveFromWhitelist         *WhitelistUpdate             `json:"remove_from_whitelist,omitempty"`
	CreateViewingKey            *CreateViewingKey            `json:"create_viewing_key,omitempty"`
	SetViewingKey               *SetViewingKey               `json:"set_viewing_key,omitempty"`
	RevokePermit                *RevokePermit                `json:"revoke_permit,omitempty"`
	SetViewingKeyWithCollection *SetViewingKeyWithCollection `json:"set_viewing_key_with_collection,omitempty"`
	RetrieveNft                 *RetrieveNft                 `json:"retrieve_nft,omitempty"`
}

// BatchReceiveNft - deposit callback for collections that batch
//
// Sender is the forwarding contract and is ignored; authorization
// rests on From, the owner who released the tokens
type BatchReceiveNft struct {
	Sender   *account.Account `json:"sender"`
	From     *account.Account `json:"from"`
	TokenIDs []string         `json:"token_ids"`
	Msg      json.RawMessage  `json:"msg"` // ignored
}

// ReceiveNft - deposit callback for collections that send one at a
// time
type ReceiveNft struct {
	Sender  *account.Account `json:"sender"`
	TokenID string           `json:"token_id"`
	Msg     json.RawMessage  `json:"msg"` // ignored
}

// Mint - dispense one random token per buyer
type Mint struct {
	Buyers  []*account.Account `json:"buyers"`
	Entropy string             `json:"entropy"`
}

// CreateListing - ask a factory to instantiate a sale listing
type CreateListing struct {
	Label           string           `json:"label"`
	PaymentAddress  *account.Account `json:"payment_address"` // nil pays the creator
	FactoryContract nft.ContractInfo `json:"factory_contract"`
	BuyContract     nft.ContractInfo `json:"buy_contract"`
	BatchSend       bool             `json:"batch_send"`
	Price           uint64           `json:"price,string"`
	ClosesAt        uint64           `json:"closes_at"`
	Description     *string          `json:"description"`
	Entropy         string           `json:"entropy"`
}

// RegisterListing - factory callback completing the listing handshake
type RegisterListing struct {
	ListingAddress *account.Account `json:"listing_address"`
}

// AdminsUpdate - grow or shrink the admin list
type AdminsUpdate struct {
	Admins  []*account.Account `json:"admins"`
	Padding *string            `json:"padding"`
}

// WhitelistUpdate - grow or shrink the single-mint whitelist
type WhitelistUpdate struct {
	Addresses []*account.Account `json:"addresses"`
	Padding   *string            `json:"padding"`
}

// CreateViewingKey - derive a fresh viewing key for the sender
type CreateViewingKey struct {
	Entropy string  `json:"entropy"`
	Padding *string `json:"padding"`
}

// SetViewingKey - store a caller supplied viewing key
type SetViewingKey struct {
	Key     string  `json:"key"`
	Padding *string `json:"padding"`
}

// RevokePermit - void every permit of this name signed by the sender
type RevokePermit struct {
	PermitName string  `json:"permit_name"`
	Padding    *string `json:"padding"`
}

// SetViewingKeyWithCollection - recovery: set this machine's viewing
// key on a foreign collection holding accidental deposits
type SetViewingKeyWithCollection struct {
	NftContract nft.ContractInfo `json:"nft_contract"`
	ViewingKey  string           `json:"viewing_key"`
}

// RetrieveNft - recovery: pull accidental deposits out of a foreign
// collection
type RetrieveNft struct {
	NftContract nft.ContractInfo `json:"nft_contract"`
	TokenIDs    []string         `json:"token_ids"`
}

// pick the single supplied operation
func (msg HandleMsg) operation() (interface{}, error) {
	var op interface{}
	count := 0

	if nil != msg.BatchReceiveNft {
		op = msg.BatchReceiveNft
		count += 1
	}
	if nil != msg.ReceiveNft {
		op = msg.ReceiveNft
		count += 1
	}
	if nil != msg.Mint {
		op = msg.Mint
		count += 1
	}
	if nil != msg.CreateListing {
		op = msg.CreateListing
		count += 1
	}
	if nil != msg.RegisterListing {
		op = msg.RegisterListing
		count += 1
	}
	if nil != msg.AddAdmins {
		op = addAdmins{msg.AddAdmins}
		count += 1
	}
	if nil != msg.RemoveAdmins {
		op = removeAdmins{msg.RemoveAdmins}
		count += 1
	}
	if nil != msg.AddToWhitelist {
		op = addToWhitelist{msg.AddToWhitelist}
		count += 1
	}
	if nil != msg.RemoveFromWhitelist {
		op = removeFromWhitelist{msg.RemoveFromWhitelist}
		count += 1
	}
	if nil != msg.CreateViewingKey {
		op = msg.CreateViewingKey
		count += 1
	}
	if nil != msg.SetViewingKey {
		op = msg.SetViewingKey
		count += 1
	}
	if nil != msg.RevokePermit {
		op = msg.RevokePermit
		count += 1
	}
	if nil != msg.SetViewingKeyWithCollection {
		op = msg.SetViewingKeyWithCollection
		count += 1
	}
	if nil != msg.RetrieveNft {
		op = msg.RetrieveNft
		count += 1
	}

	switch count {
	case 0:
		return nil, fault.NoOperationVariant
	case 1:
		return op, nil
	default:
		return nil, fault.TooManyOperationVariants
	}
}

// add and remove share payload types, so dispatch needs distinct
// wrappers
type addAdmins struct{ *AdminsUpdate }
type removeAdmins struct{ *AdminsUpdate }
type addToWhitelist struct{ *WhitelistUpdate }
type removeFromWhitelist struct{ *WhitelistUpdate }

// QueryMsg - externally tagged union of every read-only query
type QueryMsg struct {
	Admins            *AdminsQuery            `json:"admins,omitempty"`
	NftListingDisplay *NftListingDisplayQuery `json:"nft_listing_display,omitempty"`
	Counts            *CountsQuery            `json:"counts,omitempty"`
	NftContract       *NftContractQuery       `json:"nft_contract,omitempty"`
}

// AdminsQuery - authenticated admin list query
//
// authentication is by permit when one is supplied, otherwise by
// viewing key
type AdminsQuery struct {
	Viewer *ViewerInfo    `json:"viewer"`
	Permit *permit.Permit `json:"permit"`
}

// ViewerInfo - address plus viewing key authentication pair
type ViewerInfo struct {
	Address    *account.Account `json:"address"`
	ViewingKey string           `json:"viewing_key"`
}

// NftListingDisplayQuery - sale display data for listing sites
type NftListingDisplayQuery struct{}

// CountsQuery - pool occupancy
type CountsQuery struct{}

// NftContractQuery - the collection this machine dispenses from
type NftContractQuery struct{}

// pick the single supplied query
func (msg QueryMsg) operation() (interface{}, error) {
	var op interface{}
	count := 0

	if nil != msg.Admins {
		op = msg.Admins
		count += 1
	}
	if nil != msg.NftListingDisplay {
		op = msg.NftListingDisplay
		count += 1
	}
	if nil != msg.Counts {
		op = msg.Counts
		count += 1
	}
	if nil != msg.NftContract {
		op = msg.NftContract
		count += 1
	}

	switch count {
	case 0:
		return nil, fault.NoOperationVariant
	case 1:
		return op, nil
	default:
		return nil, fault.TooManyOperationVariants
	}
}
