// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"github.com/gumball-inc/gumballd/account"
)

// Directory - address form converter
//
// accounts arrive parsed from their base58 display strings and are
// persisted as canonical bytes; a Directory converts in both
// directions and rejects accounts from the wrong network.
// account.NewDirectory supplies the standard implementation
type Directory interface {

	// canonical bytes of a display account
	Canonical(acc *account.Account) ([]byte, error)

	// parse canonical bytes back to a display account
	Display(stored []byte) (*account.Account, error)
}
