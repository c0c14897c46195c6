// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic identities shared by package tests
var (
	AdminAccount      *account.Account
	AdminKey          ed25519.PrivateKey
	CollectionAccount *account.Account
	FactoryAccount    *account.Account
	BuyerAccount      *account.Account
	BuyerKey          ed25519.PrivateKey
)

func init() {
	AdminAccount, AdminKey = MakeAccount(0x01)
	CollectionAccount, _ = MakeAccount(0x02)
	FactoryAccount, _ = MakeAccount(0x03)
	BuyerAccount, BuyerKey = MakeAccount(0x04)
}

// MakeAccount - testnet identity derived from a single tag byte
//
// the same tag always produces the same account so expected values
// can be written into test data
func MakeAccount(tag byte) (*account.Account, ed25519.PrivateKey) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = tag
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: []byte(pub),
		},
	}
	return acc, priv
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
