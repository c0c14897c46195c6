// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"github.com/gumball-inc/gumballd/account"
)

// ContractInfo - code hash and address locating an external contract
type ContractInfo struct {
	CodeHash string           `json:"code_hash"` // hex
	Address  *account.Account `json:"address"`   // base58
}

// StoredContractInfo - storage form of ContractInfo
type StoredContractInfo struct {
	CodeHash string `json:"code_hash"`
	Address  []byte `json:"address"` // canonical bytes
}

// ToStored - storage form of a contract locator
func (info ContractInfo) ToStored(dir Directory) (StoredContractInfo, error) {
	address, err := dir.Canonical(info.Address)
	if nil != err {
		return StoredContractInfo{}, err
	}
	return StoredContractInfo{
		CodeHash: info.CodeHash,
		Address:  address,
	}, nil
}

// ToDisplay - display form of a stored contract locator
func (stored StoredContractInfo) ToDisplay(dir Directory) (ContractInfo, error) {
	address, err := dir.Display(stored.Address)
	if nil != err {
		return ContractInfo{}, err
	}
	return ContractInfo{
		CodeHash: stored.CodeHash,
		Address:  address,
	}, nil
}
