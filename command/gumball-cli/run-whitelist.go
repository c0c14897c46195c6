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

func runWhitelistAdd(c *cli.Context) error {
	return runWhitelistUpdate(c, true)
}

func runWhitelistRemove(c *cli.Context) error {
	return runWhitelistUpdate(c, false)
}

// add and remove only differ in the operation tag
func runWhitelistUpdate(c *cli.Context, add bool) error {

	m := c.App.Metadata["config"].(*metadata)

	addresses, err := checkAccounts(c.StringSlice("address"), m.testnet)
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
		fmt.Fprintf(m.e, "addresses: %v\n", c.StringSlice("address"))
	}

	update := &contract.WhitelistUpdate{
		Addresses: addresses,
	}
	message := contract.HandleMsg{}
	if add {
		message.AddToWhitelist = update
	} else {
		message.RemoveFromWhitelist = update
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(machine, owner, message)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
