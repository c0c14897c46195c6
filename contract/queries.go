// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"fmt"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/permit"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
	"github.com/gumball-inc/gumballd/viewingkey"
)

// Query - answer one read-only query from committed state
//
// queries never open a transaction and may run while a message is in
// flight; they only ever see the last commit.  every answer is padded
// to the standard block size
func Query(body []byte) ([]byte, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if 0 == len(body) {
		return nil, fault.MessageIsEmpty
	}

	msg := QueryMsg{}
	err := json.Unmarshal(body, &msg)
	if nil != err {
		return nil, err
	}
	op, err := msg.operation()
	if nil != err {
		return nil, err
	}

	switch query := op.(type) {

	case *AdminsQuery:
		return queryAdmins(query)

	case *NftListingDisplayQuery:
		return queryListingDisplay()

	case *CountsQuery:
		return queryCounts()

	case *NftContractQuery:
		return queryNftContract()

	default:
		return nil, fault.NoOperationVariant
	}
}

// authenticated admin list
//
// a permit outranks a viewing key when both are supplied; either way
// the proven account must itself be an admin
func queryAdmins(query *AdminsQuery) ([]byte, error) {
	dir := globalData.dir

	var querierRaw []byte

	switch {
	case nil != query.Permit:
		selfStored, err := readSelf(storage.Pool.Config)
		if nil != err {
			return nil, err
		}
		self, err := selfStored.ToDisplay(dir)
		if nil != err {
			return nil, err
		}
		signer, err := permit.Validate(storage.Pool.Permits, query.Permit, self.Address.String())
		if nil != err {
			return nil, err
		}
		if !query.Permit.HasPermission(permit.Owner) {
			return nil, fault.InvalidError(fmt.Sprintf(
				"Owner permission is required for gumball queries, got permissions %v",
				query.Permit.Params.Permissions,
			))
		}
		querierRaw, err = dir.Canonical(signer)
		if nil != err {
			return nil, err
		}

	case nil != query.Viewer && nil != query.Viewer.Address:
		raw, err := dir.Canonical(query.Viewer.Address)
		if nil != err {
			return nil, err
		}
		if !viewingkey.Key(query.Viewer.ViewingKey).Check(storage.Pool.Keys.Get(raw)) {
			return nil, fault.Unauthorized
		}
		querierRaw = raw

	default:
		return nil, fault.Unauthorized
	}

	admins, err := readAdmins(storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	if !isAdmin(admins, querierRaw) {
		return nil, fault.Unauthorized
	}

	display, err := displayAdmins(admins)
	if nil != err {
		return nil, err
	}
	return padAnswer(adminsQueryShell{
		Admins: adminsListAnswer{Admins: display},
	})
}

// sale display data for listing sites: the example dossier, the
// collection address and whether anything is left to win
func queryListingDisplay() ([]byte, error) {
	dir := globalData.dir

	collection, err := readCollection(storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	collectionDisplay, err := collection.ToDisplay(dir)
	if nil != err {
		return nil, err
	}

	counts, err := tokenpool.ReadCounts(storage.Pool.Config)
	if nil != err {
		return nil, err
	}

	example, err := readExample(storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	exampleDisplay, err := example.ToDisplay(dir)
	if nil != err {
		return nil, err
	}

	return padAnswer(nftListingDisplayShell{
		NftListingDisplay: nftListingDisplayAnswer{
			NftInfo:            exampleDisplay,
			NftContractAddress: collectionDisplay.Address,
			Mintable:           counts.Available > 0,
		},
	})
}

// pool occupancy
func queryCounts() ([]byte, error) {
	counts, err := tokenpool.ReadCounts(storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	return padAnswer(countsShell{Counts: *counts})
}

// the collection this machine dispenses from
func queryNftContract() ([]byte, error) {
	collection, err := readCollection(storage.Pool.Config)
	if nil != err {
		return nil, err
	}
	collectionDisplay, err := collection.ToDisplay(globalData.dir)
	if nil != err {
		return nil, err
	}
	return padAnswer(nftContractShell{NftContract: collectionDisplay})
}
