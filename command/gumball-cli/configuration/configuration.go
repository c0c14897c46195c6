// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/configuration"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/nft"
)

// ContractConfig - locator of a contract the client talks about
type ContractConfig struct {
	Address  string `gluamapper:"address" json:"address"`
	CodeHash string `gluamapper:"code_hash" json:"code_hash"`
}

// Configuration - configuration file data format
//
// the private key stays in the file in plain base58, so the file must
// be protected the same way as an ssh key
type Configuration struct {
	Connect    string         `gluamapper:"connect" json:"connect"`
	TestNet    bool           `gluamapper:"testnet" json:"testnet"`
	PrivateKey string         `gluamapper:"private_key" json:"private_key"`
	Machine    ContractConfig `gluamapper:"machine" json:"machine"`
	Collection ContractConfig `gluamapper:"collection" json:"collection"`
}

// Load - read and verify the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	options := &Configuration{}
	err = configuration.ParseConfigurationFile(filename, options)
	if nil != err {
		return nil, err
	}

	if "" == options.Connect {
		return nil, fault.MissingParameters
	}

	return options, nil
}

// OwnerKey - the signing key from the configuration
//
// the key network must agree with the testnet flag so a mainnet key
// cannot accidentally drive a test machine
func (config *Configuration) OwnerKey() (*account.PrivateKey, error) {
	privateKey, err := account.PrivateKeyFromBase58(config.PrivateKey)
	if nil != err {
		return nil, err
	}
	if config.TestNet != privateKey.IsTesting() {
		return nil, fault.WrongNetworkForPublicKey
	}
	return privateKey, nil
}

// MachineInfo - locator of the gumball machine contract
func (config *Configuration) MachineInfo() (nft.ContractInfo, error) {
	return config.Machine.contractInfo()
}

// CollectionInfo - locator of the primary collection contract
func (config *Configuration) CollectionInfo() (nft.ContractInfo, error) {
	return config.Collection.contractInfo()
}

func (c ContractConfig) contractInfo() (nft.ContractInfo, error) {
	address, err := account.AccountFromBase58(c.Address)
	if nil != err {
		return nft.ContractInfo{}, err
	}
	return nft.ContractInfo{
		CodeHash: c.CodeHash,
		Address:  address,
	}, nil
}
