// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/gumball-inc/gumballd/fault"
)

// Directory - converts accounts between their parsed display form and
// their canonical byte form, bound to one network
//
// the two forms must never be compared against each other; convert
// first, then compare like with like
type Directory struct {
	testnet bool
}

// NewDirectory - create a converter for either the live or the test network
func NewDirectory(testnet bool) *Directory {
	return &Directory{
		testnet: testnet,
	}
}

// Canonical - canonical bytes of an account after checking it belongs
// to this directory's network
func (directory *Directory) Canonical(acc *Account) ([]byte, error) {
	if nil == acc || nil == acc.AccountInterface {
		return nil, fault.AddressIsNil
	}
	if acc.IsTesting() != directory.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return acc.Bytes(), nil
}

// Display - parse canonical bytes back to an account for display
func (directory *Directory) Display(stored []byte) (*Account, error) {
	acc, err := AccountFromBytes(stored)
	if nil != err {
		return nil, err
	}
	if acc.IsTesting() != directory.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return acc, nil
}
