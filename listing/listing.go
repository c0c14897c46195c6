// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - sale contracts created through a trusted factory
//
// an admin dispatches a CreateListing to the factory; the factory
// instantiates the listing and calls back RegisterListing.  between
// those two calls the factory's address is held in the expected slot,
// and only the armed factory may register.  a second CreateListing
// simply re-arms the slot (last writer wins).  registered listings are
// durable and may request mints forever.
package listing

import (
	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
)

// OptionID - the minting option this machine offers to every listing
const OptionID = "Gumball"

// expected-factory slot in the config pool
var expectedKey = []byte("expected")

// registry rows only record presence
var present = []byte{0x01}

// CreateListing - everything the factory needs to instantiate a
// listing for this machine
type CreateListing struct {
	Label                     string           `json:"label"`
	Creator                   *account.Account `json:"creator"`         // base58
	PaymentAddress            *account.Account `json:"payment_address"` // base58, nil pays the creator
	QuantityForSale           uint32           `json:"quantity_for_sale"`
	MinterContract            nft.ContractInfo `json:"minter_contract"` // this machine
	OptionID                  string           `json:"option_id"`
	BuyContract               nft.ContractInfo `json:"buy_contract"` // purchase token
	BatchSend                 bool             `json:"batch_send"`   // purchase token implements BatchSend
	Price                     uint64           `json:"price,string"` // number as string, in smallest token unit
	ClosesAt                  uint64           `json:"closes_at"`    // seconds since epoch
	Description               *string          `json:"description"`
	Entropy                   string           `json:"entropy"` // for the listing's viewing keys
	NftContractAddress        *account.Account `json:"nft_contract_address"`
	ImplementsRegisterListing bool             `json:"implements_register_listing"`
}

// wire shell for the factory call
type createMinterListingMsg struct {
	CreateMinterListing CreateListing `json:"create_minter_listing"`
}

// FactoryMessage - outbound CreateListing call to the factory
func FactoryMessage(params CreateListing, factory nft.ContractInfo) (nft.Message, error) {
	return nft.NewMessage(factory, createMinterListingMsg{
		CreateMinterListing: params,
	})
}

// SetExpectedFactory - arm the handshake slot with the factory's
// canonical address; an armed slot is overwritten
func SetExpectedFactory(trx storage.Transaction, config *storage.PoolHandle, factory []byte) {
	trx.Put(config, expectedKey, factory)
}

// ExpectedFactory - the armed factory address, nil while idle
func ExpectedFactory(trx storage.Transaction, config *storage.PoolHandle) []byte {
	return trx.Get(config, expectedKey)
}

// ClearExpectedFactory - disarm the slot after a registration
func ClearExpectedFactory(trx storage.Transaction, config *storage.PoolHandle) {
	trx.Delete(config, expectedKey)
}

// Register - record a listing address; registry entries are never
// removed
func Register(trx storage.Transaction, listings *storage.PoolHandle, listing []byte) {
	trx.Put(listings, listing, present)
}

// IsRegistered - membership test used to classify mint callers
func IsRegistered(trx storage.Transaction, listings *storage.PoolHandle, caller []byte) bool {
	return trx.Has(listings, caller)
}
