// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/nft"
)

// Env - ledger context delivered alongside one message
//
// the transport layer has already verified the sender's signature, so
// handlers trust Sender completely
type Env struct {
	BlockHeight uint64           // height of the block carrying the message
	BlockTime   uint64           // seconds since epoch
	TxIndex     *uint32          // position within the block, when the ledger provides one
	Sender      *account.Account // verified message sender
	Contract    nft.ContractInfo // this machine's own identity
}
