// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the gumball machine itself
//
// a machine is instantiated once against a single NFT collection and
// then processes messages one at a time.  each message runs inside one
// storage transaction: every write the handler makes, including
// whitelist consumption and the PRNG seed roll, commits atomically or
// not at all, and outbound calls to other contracts are only released
// after the commit.  replaying the same messages over the same ledger
// context therefore reproduces the same state and the same winners on
// every node.
//
// authorization is a three step lattice checked in fixed order:
// registered listings mint freely, whitelisted accounts mint exactly
// one token exactly once, admins do everything else.  deposits are
// only accepted from the machine's own collection and only when an
// admin released the tokens.
//
// queries bypass the transaction machinery entirely and answer from
// the last committed state; the sensitive ones authenticate through
// viewing keys or signed permits.  every answer, handle or query, is
// space padded to a fixed block size so its length reveals nothing
// about its content.
package contract
