// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.GenerateKeys(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
	}

	generated := struct {
		PrivateKey *account.PrivateKey `json:"private_key"`
		Account    *account.Account    `json:"account"`
		TestNet    bool                `json:"testnet"`
	}{
		PrivateKey: privateKey,
		Account:    privateKey.Account(),
		TestNet:    m.testnet,
	}

	printJson(m.w, generated)
	return nil
}
