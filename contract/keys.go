// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/gumball-inc/gumballd/permit"
	"github.com/gumball-inc/gumballd/random"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/viewingkey"
)

// derive a fresh viewing key for the sender
//
// the key is drawn from the distribution PRNG but the stored seed is
// not rolled: key creation must never shift upcoming mint outcomes
func tryCreateKey(trx storage.Transaction, env Env, entropy string) (*Result, error) {
	senderRaw, err := globalData.dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
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

	key := viewingkey.New(source)
	trx.Put(storage.Pool.Keys, senderRaw, key.Hash())

	data, err := padAnswer(viewingKeyShell{
		ViewingKey: viewingKeyAnswer{Key: string(key)},
	})
	if nil != err {
		return nil, err
	}
	return &Result{Data: data}, nil
}

// store a caller supplied viewing key verbatim
func trySetKey(trx storage.Transaction, env Env, key string) (*Result, error) {
	senderRaw, err := globalData.dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}

	trx.Put(storage.Pool.Keys, senderRaw, viewingkey.Key(key).Hash())

	data, err := padAnswer(viewingKeyShell{
		ViewingKey: viewingKeyAnswer{Key: key},
	})
	if nil != err {
		return nil, err
	}
	return &Result{Data: data}, nil
}

// void every permit of this name the sender ever signed
func tryRevokePermit(trx storage.Transaction, env Env, name string) (*Result, error) {
	senderRaw, err := globalData.dir.Canonical(env.Sender)
	if nil != err {
		return nil, err
	}

	permit.Revoke(trx, storage.Pool.Permits, senderRaw, name)

	data, err := padAnswer(revokePermitShell{
		RevokePermit: statusAnswer{Status: success},
	})
	if nil != err {
		return nil, err
	}
	return &Result{Data: data}, nil
}
