// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/listing"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// ask a factory to instantiate a sale listing for this machine
//
// arms the expected-factory slot so only that factory's callback can
// complete the handshake; a second create before the callback simply
// re-arms the slot for its own factory
func tryCreateListing(trx storage.Transaction, env Env, params *CreateListing) (*Result, error) {
	dir := globalData.dir

	_, _, err := requireAdmin(trx, env)
	if nil != err {
		return nil, err
	}

	collection, err := loadCollection(trx)
	if nil != err {
		return nil, err
	}
	collectionDisplay, err := collection.ToDisplay(dir)
	if nil != err {
		return nil, err
	}

	factoryRaw, err := dir.Canonical(params.FactoryContract.Address)
	if nil != err {
		return nil, err
	}
	listing.SetExpectedFactory(trx, storage.Pool.Config, factoryRaw)

	counts, err := tokenpool.LoadCounts(trx, storage.Pool.Config)
	if nil != err {
		return nil, err
	}

	message, err := listing.FactoryMessage(listing.CreateListing{
		Label:                     params.Label,
		Creator:                   env.Sender,
		PaymentAddress:            params.PaymentAddress,
		QuantityForSale:           counts.Available,
		MinterContract:            env.Contract,
		OptionID:                  listing.OptionID,
		BuyContract:               params.BuyContract,
		BatchSend:                 params.BatchSend,
		Price:                     params.Price,
		ClosesAt:                  params.ClosesAt,
		Description:               params.Description,
		Entropy:                   params.Entropy,
		NftContractAddress:        collectionDisplay.Address,
		ImplementsRegisterListing: true,
	}, params.FactoryContract)
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("create listing: %q via factory: %s", params.Label, params.FactoryContract.Address)

	return &Result{Messages: []nft.Message{message}}, nil
}

// factory callback completing the handshake
//
// only the armed factory may register, and registering disarms the
// slot so the callback cannot be repeated
func tryRegisterListing(trx storage.Transaction, env Env, listingAddress *account.Account) (*Result, error) {
	dir := globalData.dir

	expected := listing.ExpectedFactory(trx, storage.Pool.Config)
	if nil == expected {
		return nil, fault.ExpectedFactoryAbsent
	}

	senderRaw, err := dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(senderRaw, expected) {
		return nil, fault.ExpectedFactoryMismatch
	}

	if nil == listingAddress || listingAddress.IsZero() {
		return nil, fault.AddressIsNil
	}
	listingRaw, err := dir.Canonical(listingAddress)
	if nil != err {
		return nil, err
	}
	listing.Register(trx, storage.Pool.Listings, listingRaw)
	listing.ClearExpectedFactory(trx, storage.Pool.Config)

	globalData.log.Infof("registered listing: %s", listingAddress)

	return &Result{}, nil
}
