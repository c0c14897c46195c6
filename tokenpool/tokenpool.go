// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenpool - the dense pool of token ids waiting to be won
//
// ids occupy little endian u32 keys 0..available-1 with no gaps; a
// draw moves the last id into the winner's slot and trims the tail so
// the pool stays dense across any sequence of deposits and draws
package tokenpool

import (
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/random"
	"github.com/gumball-inc/gumballd/storage"
)

// Counts - pool occupancy record
//
// available counts ids still in the pool, released counts every id
// ever dispensed
type Counts struct {
	Available uint32 `json:"available"`
	Released  uint64 `json:"released"`
}

// config pool key for the counts record
var countsKey = []byte("counts")

// little endian key of a pool slot
func keyFor(index uint32) []byte {
	key := make([]byte, 4)
	binary.LittleEndian.PutUint32(key, index)
	return key
}

// Append - store token ids at the end of the pool
//
// counts is updated in place, the caller is responsible for saving it
func Append(trx storage.Transaction, tokens *storage.PoolHandle, counts *Counts, tokenIDs []string) error {
	if uint64(counts.Available)+uint64(len(tokenIDs)) > math.MaxUint32 {
		return fault.PoolFull
	}

	for _, tokenID := range tokenIDs {
		trx.Put(tokens, keyFor(counts.Available), []byte(tokenID))
		counts.Available += 1
	}
	return nil
}

// Draw - remove and return one uniformly selected token id
//
// counts is updated in place, the caller is responsible for saving it
func Draw(trx storage.Transaction, tokens *storage.PoolHandle, counts *Counts, source *random.Source) (string, error) {
	if 0 == counts.Available {
		return "", fault.InvalidCount
	}

	winnerIndex := uint32(source.NextUint64() % uint64(counts.Available))
	lastIndex := counts.Available - 1

	winnerKey := keyFor(winnerIndex)
	winner := trx.Get(tokens, winnerKey)
	if nil == winner {
		return "", fault.PoolCorrupt
	}

	// keep the pool dense: the tail id takes the winner's slot
	if winnerIndex != lastIndex {
		last := trx.Get(tokens, keyFor(lastIndex))
		if nil == last {
			return "", fault.PoolCorrupt
		}
		trx.Put(tokens, winnerKey, last)
	}
	trx.Delete(tokens, keyFor(lastIndex))

	if counts.Available > 0 {
		counts.Available -= 1
	}
	if counts.Released < math.MaxUint64 {
		counts.Released += 1
	}

	return string(winner), nil
}

// LoadCounts - read the counts record inside a transaction
func LoadCounts(trx storage.Transaction, config *storage.PoolHandle) (*Counts, error) {
	return unpackCounts(trx.Get(config, countsKey))
}

// StoreCounts - write the counts record
func StoreCounts(trx storage.Transaction, config *storage.PoolHandle, counts *Counts) error {
	buffer, err := json.Marshal(counts)
	if nil != err {
		return err
	}
	trx.Put(config, countsKey, buffer)
	return nil
}

// ReadCounts - read the counts record from committed state
func ReadCounts(config storage.Handle) (*Counts, error) {
	return unpackCounts(config.Get(countsKey))
}

func unpackCounts(buffer []byte) (*Counts, error) {
	if nil == buffer {
		return nil, fault.CorruptState
	}
	counts := &Counts{}
	err := json.Unmarshal(buffer, counts)
	if nil != err {
		return nil, fault.CorruptState
	}
	return counts, nil
}
