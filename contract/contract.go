// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/random"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// Init - one-time instantiation
//
// stores the machine's identity, seeds the PRNG, makes the sender the
// first admin and registers the deposit callback with the collection
func Init(env Env, msg InitMsg) (*Result, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == env.Sender || env.Sender.IsZero() {
		return nil, fault.AddressIsNil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	result, err := provision(trx, env, msg)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return result, nil
}

func provision(trx storage.Transaction, env Env, msg InitMsg) (*Result, error) {
	dir := globalData.dir

	if trx.Has(storage.Pool.Config, selfKey) {
		return nil, fault.AlreadyInitialised
	}

	selfStored, err := env.Contract.ToStored(dir)
	if nil != err {
		return nil, err
	}
	err = storeSelf(trx, selfStored)
	if nil != err {
		return nil, err
	}

	collectionStored, err := msg.NftContract.ToStored(dir)
	if nil != err {
		return nil, err
	}
	err = storeCollection(trx, collectionStored)
	if nil != err {
		return nil, err
	}

	// the instantiating account is the only admin until it appoints
	// more
	senderRaw, err := dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}
	err = storeAdmins(trx, [][]byte{senderRaw})
	if nil != err {
		return nil, err
	}

	storeSeed(trx, random.NewSeed([]byte(msg.Entropy)))

	err = tokenpool.StoreCounts(trx, storage.Pool.Config, &tokenpool.Counts{})
	if nil != err {
		return nil, err
	}

	register, err := nft.RegisterReceive(env.Contract.CodeHash, msg.NftContract)
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("provisioned for collection: %s", msg.NftContract.Address)

	return &Result{Messages: []nft.Message{register}}, nil
}

// Handle - execute one message
//
// the whole message runs inside a single storage transaction: an
// error discards every write and no outbound message is released
func Handle(env Env, body []byte) (*Result, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == env.Sender || env.Sender.IsZero() {
		return nil, fault.AddressIsNil
	}
	if 0 == len(body) {
		return nil, fault.MessageIsEmpty
	}

	msg := HandleMsg{}
	err := json.Unmarshal(body, &msg)
	if nil != err {
		return nil, err
	}
	op, err := msg.operation()
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	result, err := dispatch(trx, env, op)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}
	return result, nil
}

func dispatch(trx storage.Transaction, env Env, op interface{}) (*Result, error) {
	switch payload := op.(type) {

	case *BatchReceiveNft:
		return tryBatchReceive(trx, env, payload.From, payload.TokenIDs)

	case *ReceiveNft:
		return tryBatchReceive(trx, env, payload.Sender, []string{payload.TokenID})

	case *Mint:
		return tryMint(trx, env, payload.Buyers, payload.Entropy)

	case *CreateListing:
		return tryCreateListing(trx, env, payload)

	case *RegisterListing:
		return tryRegisterListing(trx, env, payload.ListingAddress)

	case addAdmins:
		return tryAddAdmins(trx, env, payload.Admins)

	case removeAdmins:
		return tryRemoveAdmins(trx, env, payload.Admins)

	case addToWhitelist:
		return tryUpdateWhitelist(trx, env, payload.Addresses, true)

	case removeFromWhitelist:
		return tryUpdateWhitelist(trx, env, payload.Addresses, false)

	case *CreateViewingKey:
		return tryCreateKey(trx, env, payload.Entropy)

	case *SetViewingKey:
		return trySetKey(trx, env, payload.Key)

	case *RevokePermit:
		return tryRevokePermit(trx, env, payload.PermitName)

	case *SetViewingKeyWithCollection:
		return trySetKeyWithCollection(trx, env, payload.NftContract, payload.ViewingKey)

	case *RetrieveNft:
		return tryRetrieveNft(trx, env, payload.NftContract, payload.TokenIDs)

	default:
		return nil, fault.NoOperationVariant
	}
}
