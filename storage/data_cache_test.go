// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func setupTestCache() Cache {
	return newCache()
}

func TestCacheWriteThenRead(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, _, found := cache.Get(key)
	if found {
		t.Errorf("error key %s already exist value %v\n", key, actual)
	}

	cache.Set(dbPut, key, expected)
	actual, op, found := cache.Get(key)

	if !found || dbPut != op || !bytes.Equal(actual, expected) {
		t.Errorf("error set key %s, expect %v but get %v\n", key, expected, actual)
	}
}

func TestCacheClear(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Clear()

	_, _, found := cache.Get(key)
	if found {
		t.Errorf("error Clear not working, expect cache is empty but not")
	}
}

func TestCacheReadDeleteOperation(t *testing.T) {
	cache := setupTestCache()

	key := "test"

	cache.Set(dbDelete, key, []byte{})

	value, op, found := cache.Get(key)
	if !found {
		t.Errorf("delete operation should stay visible")
	}
	if dbDelete != op {
		t.Errorf("wrong operation for deleted key, expect %d but get %d", dbDelete, op)
	}
	if 0 != len(value) {
		t.Errorf("deleted key should carry no value but get %v", value)
	}
}

func TestCacheOverwriteDeleteWithPut(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	data := []byte{'x'}

	cache.Set(dbDelete, key, []byte{})
	cache.Set(dbPut, key, data)

	value, op, found := cache.Get(key)
	if !found || dbPut != op || !bytes.Equal(data, value) {
		t.Errorf("put after delete should read back value, get op: %d value: %v", op, value)
	}
}
