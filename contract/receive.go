// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// deposit callback: the collection notifies the machine that tokens
// were transferred to it
//
// the message sender must be the primary collection itself and the
// account that released the tokens must be an admin; anything else is
// either a spoof or an accident and is rejected so the transfer rolls
// back with the message
func tryBatchReceive(trx storage.Transaction, env Env, from *account.Account, tokenIDs []string) (*Result, error) {
	dir := globalData.dir

	collection, err := loadCollection(trx)
	if nil != err {
		return nil, err
	}

	senderRaw, err := dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(senderRaw, collection.Address) {
		return nil, fault.SpoofedSender
	}

	if nil == from || from.IsZero() {
		return nil, fault.AddressIsNil
	}
	fromRaw, err := dir.Canonical(from)
	if nil != err {
		return nil, err
	}
	admins, err := loadAdmins(trx)
	if nil != err {
		return nil, err
	}
	if !isAdmin(admins, fromRaw) {
		return nil, fault.Unauthorized
	}

	// an empty deposit is legal and changes nothing
	if 0 == len(tokenIDs) {
		return &Result{}, nil
	}

	counts, err := tokenpool.LoadCounts(trx, storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	firstDeposit := 0 == counts.Available

	err = tokenpool.Append(trx, storage.Pool.Tokens, counts, tokenIDs)
	if nil != err {
		return nil, err
	}
	err = tokenpool.StoreCounts(trx, storage.Pool.Config, counts)
	if nil != err {
		return nil, err
	}

	// tokens entering an empty machine refresh the example dossier
	// shown by the listing display; the collection query is best
	// effort and an unreachable collection just leaves it empty
	if firstDeposit {
		err = refreshExample(trx, collection, tokenIDs[0])
		if nil != err {
			return nil, err
		}
	}

	globalData.log.Infof("deposit: %d tokens from: %s", len(tokenIDs), from)

	return &Result{}, nil
}

func refreshExample(trx storage.Transaction, collection nft.StoredContractInfo, tokenID string) error {
	dir := globalData.dir

	dossier := nft.Dossier{}
	if nil != globalData.querier {
		display, err := collection.ToDisplay(dir)
		if nil != err {
			return err
		}
		d, err := globalData.querier.NftDossier(display, tokenID)
		if nil == err && nil != d {
			dossier = *d
		} else if nil != err {
			globalData.log.Warnf("example dossier unavailable: %s", err)
		}
	}

	stored, err := dossier.ToStored(dir)
	if nil != err {
		return err
	}
	return storeExample(trx, stored)
}
