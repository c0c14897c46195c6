// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/gumball-inc/gumballd/fault"
)

// Transaction - buffered write access to the pools
//
// nothing reaches the database until Commit and a failed message
// handler calls Abort to discard all of its writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolHandle, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type TransactionData struct {
	sync.Mutex
	inUse      bool
	dataAccess []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionData{
		inUse:      false,
		dataAccess: access,
	}
}

func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInProgress
	}

	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// InUse - check whether a transaction is currently open
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

func (t *TransactionData) Put(pool *PoolHandle, key []byte, value []byte) {
	pool.put(key, value)
}

func (t *TransactionData) PutN(pool *PoolHandle, key []byte, value uint64) {
	pool.putN(key, value)
}

func (t *TransactionData) Delete(pool *PoolHandle, key []byte) {
	pool.remove(key)
}

func (t *TransactionData) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *TransactionData) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	return pool.GetN(key)
}

func (t *TransactionData) GetNB(pool *PoolHandle, key []byte) (uint64, []byte) {
	return pool.GetNB(key)
}

func (t *TransactionData) Has(pool *PoolHandle, key []byte) bool {
	return pool.Has(key)
}

func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionIsNotInProgress
	}

	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			return err
		}
	}

	t.abort()
	return nil
}

// Abort - discard all buffered changes
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.abort()
}

// caller must hold the lock
func (t *TransactionData) abort() {
	for _, access := range t.dataAccess {
		access.Abort()
	}
	t.inUse = false
}
