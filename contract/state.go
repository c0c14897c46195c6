// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"encoding/json"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
)

// config pool singletons
var (
	selfKey       = []byte("self")
	collectionKey = []byte("collection")
	adminsKey     = []byte("admins")
	seedKey       = []byte("seed")
	exampleKey    = []byte("example")
)

// whitelist rows only record presence
var present = []byte{0x01}

// machine identity
// ----------------

func storeSelf(trx storage.Transaction, stored nft.StoredContractInfo) error {
	buffer, err := json.Marshal(stored)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Config, selfKey, buffer)
	return nil
}

func readSelf(config storage.Handle) (nft.StoredContractInfo, error) {
	return unpackContractInfo(config.Get(selfKey))
}

// primary collection
// ------------------

func storeCollection(trx storage.Transaction, stored nft.StoredContractInfo) error {
	buffer, err := json.Marshal(stored)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Config, collectionKey, buffer)
	return nil
}

func loadCollection(trx storage.Transaction) (nft.StoredContractInfo, error) {
	return unpackContractInfo(trx.Get(storage.Pool.Config, collectionKey))
}

func readCollection(config storage.Handle) (nft.StoredContractInfo, error) {
	return unpackContractInfo(config.Get(collectionKey))
}

func unpackContractInfo(buffer []byte) (nft.StoredContractInfo, error) {
	info := nft.StoredContractInfo{}
	if nil == buffer {
		return info, fault.CorruptState
	}
	err := json.Unmarshal(buffer, &info)
	if nil != err {
		return info, fault.CorruptState
	}
	return info, nil
}

// admin list
// ----------
//
// stored as an ordered JSON array of canonical addresses; order is
// part of the observable state so every replay lists admins the same
// way

func storeAdmins(trx storage.Transaction, admins [][]byte) error {
	buffer, err := json.Marshal(admins)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Config, adminsKey, buffer)
	return nil
}

func loadAdmins(trx storage.Transaction) ([][]byte, error) {
	return unpackAdmins(trx.Get(storage.Pool.Config, adminsKey))
}

func readAdmins(config storage.Handle) ([][]byte, error) {
	return unpackAdmins(config.Get(adminsKey))
}

func unpackAdmins(buffer []byte) ([][]byte, error) {
	if nil == buffer {
		return nil, fault.CorruptState
	}
	admins := [][]byte{}
	err := json.Unmarshal(buffer, &admins)
	if nil != err {
		return nil, fault.CorruptState
	}
	return admins, nil
}

func isAdmin(admins [][]byte, candidate []byte) bool {
	for _, admin := range admins {
		if bytes.Equal(admin, candidate) {
			return true
		}
	}
	return false
}

// PRNG seed
// ---------
//
// rolled forward after every mint so no two draws ever share a
// keystream

func storeSeed(trx storage.Transaction, seed []byte) {
	trx.Put(storage.Pool.Config, seedKey, seed)
}

func loadSeed(trx storage.Transaction) ([]byte, error) {
	seed := trx.Get(storage.Pool.Config, seedKey)
	if nil == seed {
		return nil, fault.CorruptState
	}
	return seed, nil
}

// example dossier
// ---------------
//
// captured from the collection when an empty machine first receives
// tokens; missing simply means no deposit has happened yet

func storeExample(trx storage.Transaction, stored nft.StoredDossier) error {
	buffer, err := json.Marshal(stored)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Config, exampleKey, buffer)
	return nil
}

func readExample(config storage.Handle) (nft.StoredDossier, error) {
	stored := nft.StoredDossier{}
	buffer := config.Get(exampleKey)
	if nil == buffer {
		return stored, nil
	}
	err := json.Unmarshal(buffer, &stored)
	if nil != err {
		return stored, fault.CorruptState
	}
	return stored, nil
}
