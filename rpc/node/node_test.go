// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/chain"
	"github.com/gumball-inc/gumballd/counter"
	"github.com/gumball-inc/gumballd/mode"
	"github.com/gumball-inc/gumballd/rpc/fixtures"
	"github.com/gumball-inc/gumballd/rpc/node"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

const databaseFileName = "test"

func setup(t *testing.T) {
	removeFiles()
	fixtures.SetupTestLogger()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = mode.Initialise(chain.Testing)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	mode.Set(mode.Normal)
}

func teardown() {
	_ = mode.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
}

func storeCounts(t *testing.T, counts tokenpool.Counts) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = tokenpool.StoreCounts(trx, storage.Pool.Config, &counts)
	if nil != err {
		trx.Abort()
		t.Fatalf("store counts error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestNodeInfo(t *testing.T) {
	setup(t)
	defer teardown()

	storeCounts(t, tokenpool.Counts{Available: 11, Released: 4})

	now := time.Now()
	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"1",
		&ctr,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")

	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.False(t, reply.Provisioned, "wrong provisioned")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "empty uptime")
	if assert.NotNil(t, reply.Counts, "missing counts") {
		assert.Equal(t, uint32(11), reply.Counts.Available, "wrong available")
		assert.Equal(t, uint64(4), reply.Counts.Released, "wrong released")
	}
}

func TestNodeInfoWhenUnprovisioned(t *testing.T) {
	setup(t)
	defer teardown()

	now := time.Now()
	ctr := counter.Counter(0)
	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"1",
		&ctr,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Nil(t, reply.Counts, "counts should be absent")
	assert.False(t, reply.Provisioned, "wrong provisioned")
}
