// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/command/gumball-cli/rpccalls"
	"github.com/gumball-inc/gumballd/contract"
)

func runRetrieve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	foreign, err := checkContract(c.String("collection-address"), c.String("collection-code-hash"), m.testnet)
	if nil != err {
		return err
	}

	tokenIds, err := checkTokenIds(c.StringSlice("token"))
	if nil != err {
		return err
	}

	owner, err := m.config.OwnerKey()
	if nil != err {
		return err
	}

	machine, err := m.config.MachineInfo()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "collection: %s\n", foreign.Address)
		fmt.Fprintf(m.e, "tokens: %v\n", tokenIds)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(machine, owner, contract.HandleMsg{
		RetrieveNft: &contract.RetrieveNft{
			NftContract: foreign,
			TokenIDs:    tokenIds,
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
