// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
)

// handlers hold the write lock, so messages execute strictly one at a
// time; queries share the read lock and only see committed state
var globalData struct {
	sync.RWMutex
	log     *logger.L
	dir     nft.Directory
	querier nft.Querier

	// set once during initialise
	initialised bool
}

// Initialise - start the contract core
//
// dir converts between display and canonical address forms; querier
// may be nil, in which case the example dossier stays empty
func Initialise(dir nft.Directory, querier nft.Querier) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("contract")
	globalData.log.Info("starting…")

	if nil == dir {
		return fault.MissingParameters
	}

	globalData.dir = dir
	globalData.querier = querier

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the contract core
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.dir = nil
	globalData.querier = nil
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// IsProvisioned - whether instantiation already stored the machine's
// identity
//
// a node runs Init exactly once, on its first start against an empty
// database
func IsProvisioned() bool {
	return storage.Pool.Config.Has(selfKey)
}
