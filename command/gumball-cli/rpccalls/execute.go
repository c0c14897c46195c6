// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/rpc/gumball"
)

// Execute - sign and run one contract message
//
// the node has no chain in front of it so the client fills the
// envelope itself; height and time only feed the entropy mix
func (client *Client) Execute(machine nft.ContractInfo, owner *account.PrivateKey, message contract.HandleMsg) (*gumball.ExecuteReply, error) {

	if account.ED25519 != owner.KeyType() {
		return nil, fault.InvalidKeyType
	}

	body, err := json.Marshal(message)
	if nil != err {
		return nil, err
	}

	now := uint64(time.Now().Unix())
	arguments := gumball.ExecuteArguments{
		BlockHeight: now,
		BlockTime:   now,
		Sender:      owner.Account(),
		Signature:   ed25519.Sign(owner.PrivateKeyBytes(), body),
		Contract:    machine,
		Message:     body,
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "message: %s\n", body)
	}

	var reply gumball.ExecuteReply
	err = client.client.Call("Gumball.Execute", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	return &reply, nil
}

// Provision - one-time machine setup
func (client *Client) Provision(machine nft.ContractInfo, collection nft.ContractInfo, owner *account.PrivateKey, entropy string) (*gumball.ExecuteReply, error) {

	now := uint64(time.Now().Unix())
	arguments := gumball.InitArguments{
		BlockHeight: now,
		BlockTime:   now,
		Sender:      owner.Account(),
		Contract:    machine,
		NftContract: collection,
		Entropy:     entropy,
	}

	var reply gumball.ExecuteReply
	err := client.client.Call("Gumball.Init", &arguments, &reply)
	if nil != err {
		return nil, err
	}

	return &reply, nil
}
