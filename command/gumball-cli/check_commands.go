// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
)

var (
	ErrRequiredAddress         = fault.InvalidError("at least one address is required")
	ErrRequiredAuthentication  = fault.InvalidError("viewing key or permit file is required")
	ErrRequiredCodeHash        = fault.InvalidError("contract code hash is required")
	ErrRequiredContractAddress = fault.InvalidError("contract address is required")
	ErrRequiredFileName        = fault.InvalidError("file name is required")
	ErrRequiredLabel           = fault.InvalidError("listing label is required")
	ErrRequiredPermitName      = fault.InvalidError("permit name is required")
	ErrRequiredPrice           = fault.InvalidError("price must not be zero")
	ErrRequiredTokenId         = fault.InvalidError("at least one token id is required")
	ErrRequiredViewingKey      = fault.InvalidError("viewing key is required")
)

// a single base58 account on the right network
func checkAccount(address string, testnet bool) (*account.Account, error) {
	if "" == address {
		return nil, ErrRequiredAddress
	}

	acc, err := account.AccountFromBase58(address)
	if nil != err {
		return nil, err
	}
	if acc.IsTesting() != testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	return acc, nil
}

// one or more base58 accounts, all on the right network
func checkAccounts(addresses []string, testnet bool) ([]*account.Account, error) {
	if 0 == len(addresses) {
		return nil, ErrRequiredAddress
	}

	accounts := make([]*account.Account, len(addresses))
	for i, address := range addresses {
		acc, err := checkAccount(address, testnet)
		if nil != err {
			return nil, err
		}
		accounts[i] = acc
	}

	return accounts, nil
}

// address and code hash locating an external contract
func checkContract(address string, codeHash string, testnet bool) (nft.ContractInfo, error) {
	if "" == address {
		return nft.ContractInfo{}, ErrRequiredContractAddress
	}
	if "" == codeHash {
		return nft.ContractInfo{}, ErrRequiredCodeHash
	}

	acc, err := checkAccount(address, testnet)
	if nil != err {
		return nft.ContractInfo{}, err
	}

	return nft.ContractInfo{
		CodeHash: codeHash,
		Address:  acc,
	}, nil
}

// check for non-blank token ids
func checkTokenIds(ids []string) ([]string, error) {
	if 0 == len(ids) {
		return nil, ErrRequiredTokenId
	}
	for _, id := range ids {
		if "" == id {
			return nil, ErrRequiredTokenId
		}
	}

	return ids, nil
}

// check for non-blank listing label
func checkLabel(label string) (string, error) {
	if "" == label {
		return "", ErrRequiredLabel
	}

	return label, nil
}

// check for non-blank viewing key
func checkViewingKey(key string) (string, error) {
	if "" == key {
		return "", ErrRequiredViewingKey
	}

	return key, nil
}

// check for non-blank permit name
func checkPermitName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredPermitName
	}

	return name, nil
}

// check for non-zero price
func checkPrice(price uint64) (uint64, error) {
	if 0 == price {
		return 0, ErrRequiredPrice
	}

	return price, nil
}
