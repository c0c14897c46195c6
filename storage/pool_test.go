// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/storage"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(testingDirName, 0700)
	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestPoolPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))

	// reads inside the transaction observe buffered writes
	assert.Equal(t, []byte("data-one"), trx.Get(p, []byte("key-one")), "wrong buffered value")
	assert.True(t, trx.Has(p, []byte("key-two")), "wrong buffered has")

	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	// reads through the handle observe committed records
	assert.Equal(t, []byte("data-one"), p.Get([]byte("key-one")), "wrong committed value")
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "wrong committed value")
	assert.Nil(t, p.Get([]byte("key-none")), "missing key should read nil")
}

func TestPoolDeleteInsideTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Put(p, []byte("key-remove-me"), []byte("to be deleted"))
	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Delete(p, []byte("key-remove-me"))

	// a delete buffered by the transaction reads as missing
	assert.Nil(t, trx.Get(p, []byte("key-remove-me")), "deleted key should read nil")
	assert.False(t, trx.Has(p, []byte("key-remove-me")), "deleted key should report missing")

	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	assert.Nil(t, p.Get([]byte("key-remove-me")), "wrong value after delete commit")
}

func TestTransactionAbortDiscardsWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Put(p, []byte("key-abandoned"), []byte("data"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("key-abandoned")), "aborted write must not persist")

	// transaction is free again after abort
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "wrong begin error after abort")
	trx.Abort()
}

func TestTransactionExclusive(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInProgress, err, "wrong error for nested begin")

	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "wrong begin error after commit")
	trx.Abort()
}

func TestPoolPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.PutN(p, []byte("counter"), uint64(0x123456789abcdef0))
	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	n, found := p.GetN([]byte("counter"))
	assert.True(t, found, "wrong GetN found")
	assert.Equal(t, uint64(0x123456789abcdef0), n, "wrong GetN value")

	_, found = p.GetN([]byte("no-counter"))
	assert.False(t, found, "missing counter should not be found")
}

func TestPoolLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Put(p, []byte{0x00, 0x00, 0x00, 0x01}, []byte("one"))
	trx.Put(p, []byte{0x00, 0x00, 0x00, 0x02}, []byte("two"))
	trx.Put(p, []byte{0x00, 0x00, 0x00, 0x03}, []byte("three"))
	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	element, found := p.LastElement()
	assert.True(t, found, "wrong LastElement found")
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03}, element.Key, "wrong last key")
	assert.Equal(t, []byte("three"), element.Value, "wrong last value")

	// other pools stay isolated by their prefix byte
	_, found = storage.Pool.Config.LastElement()
	assert.False(t, found, "empty pool should have no last element")
}

func TestPersistenceAcrossRestart(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction begin error")

	trx.Put(p, []byte("key-keep"), []byte("data-keep"))
	err = trx.Commit()
	assert.Nil(t, err, "wrong commit error")

	// restart the store and check the record survived
	storage.Finalise()
	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "wrong re-initialise error")

	assert.Equal(t, []byte("data-keep"), storage.Pool.TestData.Get([]byte("key-keep")), "wrong value after restart")
}
