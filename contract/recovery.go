// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/storage"
)

// recovery operations free tokens accidentally sent from foreign
// collections.  the primary collection is off limits: its deposits
// are prize stock and leave only through mints

// admin check plus the primary-collection lock shared by both
// recovery operations
func requireForeignCollection(trx storage.Transaction, env Env, target nft.ContractInfo) error {
	_, _, err := requireAdmin(trx, env)
	if nil != err {
		return err
	}

	collection, err := loadCollection(trx)
	if nil != err {
		return err
	}
	targetRaw, err := globalData.dir.Canonical(target.Address)
	if nil != err {
		return err
	}
	if bytes.Equal(targetRaw, collection.Address) {
		return fault.NotPrimaryCollection
	}
	return nil
}

// set this machine's viewing key on a foreign collection so an admin
// can enumerate what landed there
func trySetKeyWithCollection(trx storage.Transaction, env Env, target nft.ContractInfo, key string) (*Result, error) {
	err := requireForeignCollection(trx, env, target)
	if nil != err {
		return nil, err
	}

	message, err := nft.SetViewingKey(key, target)
	if nil != err {
		return nil, err
	}

	data, err := padAnswer(viewingKeyShell{
		ViewingKey: viewingKeyAnswer{Key: key},
	})
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("recovery key set on: %s", target.Address)

	return &Result{Data: data, Messages: []nft.Message{message}}, nil
}

// pull accidental deposits out of a foreign collection and hand them
// to the calling admin
func tryRetrieveNft(trx storage.Transaction, env Env, target nft.ContractInfo, tokenIDs []string) (*Result, error) {
	err := requireForeignCollection(trx, env, target)
	if nil != err {
		return nil, err
	}

	message, err := nft.BatchTransfer([]nft.Transfer{{
		Recipient: env.Sender,
		TokenIDs:  tokenIDs,
		Memo:      "Retrieved from gumball: " + env.Contract.Address.String(),
	}}, target)
	if nil != err {
		return nil, err
	}

	data, err := padAnswer(retrieveNftShell{
		RetrieveNft: statusAnswer{Status: success},
	})
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("retrieved %d tokens from: %s", len(tokenIDs), target.Address)

	return &Result{Data: data, Messages: []nft.Message{message}}, nil
}
