// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"fmt"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/listing"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/random"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// caller classes, checked in fixed order
type callerClass int

const (
	callerAdmin callerClass = iota
	callerListing
	callerWhitelist
)

// dispense one uniformly drawn token per buyer
//
// callable by registered listings, whitelisted accounts (exactly one
// token, once) and admins.  every draw consumes PRNG output keyed by
// the rolling seed, so the winners are unpredictable before the block
// and identical on every replay of it
func tryMint(trx storage.Transaction, env Env, buyers []*account.Account, entropy string) (*Result, error) {
	dir := globalData.dir

	senderRaw, err := dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}

	class := callerAdmin
	if listing.IsRegistered(trx, storage.Pool.Listings, senderRaw) {
		class = callerListing
	} else if trx.Has(storage.Pool.Whitelist, senderRaw) {
		// whitelist entries are single use; the removal is part of
		// this transaction and rolls back with a failed mint
		class = callerWhitelist
		trx.Delete(storage.Pool.Whitelist, senderRaw)
	} else {
		admins, err := loadAdmins(trx)
		if nil != err {
			return nil, err
		}
		if !isAdmin(admins, senderRaw) {
			return nil, fault.Unauthorized
		}
	}

	if callerWhitelist == class && 1 != len(buyers) {
		return nil, fault.WhitelistBatchSizeInvalid
	}

	counts, err := tokenpool.LoadCounts(trx, storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	if uint64(len(buyers)) > uint64(counts.Available) {
		return nil, fault.ProcessError(fmt.Sprintf(
			"Trying to mint %d tokens, but only %d are available",
			len(buyers),
			counts.Available,
		))
	}

	seed, err := loadSeed(trx)
	if nil != err {
		return nil, err
	}
	source, err := random.NewSource(seed, random.ExtendEntropy(
		env.BlockHeight,
		env.BlockTime,
		env.TxIndex,
		[]byte(env.Sender.String()),
		[]byte(entropy),
	))
	if nil != err {
		return nil, err
	}

	memo := "Distributed from gumball contract " + env.Contract.Address.String()
	if callerListing == class {
		memo = "Purchased from listing " + env.Sender.String()
	}

	transfers := make([]nft.Transfer, 0, len(buyers))
	distributed := make([]string, 0, len(buyers))

drawing:
	for _, buyer := range buyers {
		if nil == buyer || buyer.IsZero() {
			return nil, fault.AddressIsNil
		}
		winner, err := tokenpool.Draw(trx, storage.Pool.Tokens, counts, source)
		if nil != err {
			return nil, err
		}
		distributed = append(distributed, winner)

		// one transfer per distinct recipient
		for i := range transfers {
			if transfers[i].Recipient.SameAs(buyer) {
				transfers[i].TokenIDs = append(transfers[i].TokenIDs, winner)
				continue drawing
			}
		}
		transfers = append(transfers, nft.Transfer{
			Recipient: buyer,
			TokenIDs:  []string{winner},
			Memo:      memo,
		})
	}

	err = tokenpool.StoreCounts(trx, storage.Pool.Config, counts)
	if nil != err {
		return nil, err
	}

	// roll the seed so the next message sees a fresh keystream
	storeSeed(trx, source.RandBytes())

	collection, err := loadCollection(trx)
	if nil != err {
		return nil, err
	}
	collectionDisplay, err := collection.ToDisplay(dir)
	if nil != err {
		return nil, err
	}
	message, err := nft.BatchTransfer(transfers, collectionDisplay)
	if nil != err {
		return nil, err
	}

	distributedList, err := json.Marshal(distributed)
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("mint: %d tokens for: %s", len(distributed), env.Sender)

	return &Result{
		Messages: []nft.Message{message},
		Logs: []LogAttribute{
			{Key: "distributed", Value: string(distributedList)},
		},
	}, nil
}
