// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/command/gumball-cli/rpccalls"
	"github.com/gumball-inc/gumballd/contract"
)

// ask the machine to derive a fresh viewing key; the key comes back in
// the response data
func runCreateKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.config.OwnerKey()
	if nil != err {
		return err
	}

	machine, err := m.config.MachineInfo()
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(machine, owner, contract.HandleMsg{
		CreateViewingKey: &contract.CreateViewingKey{
			Entropy: c.String("entropy"),
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	viewingKey, err := checkViewingKey(c.String("key"))
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

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(machine, owner, contract.HandleMsg{
		SetViewingKey: &contract.SetViewingKey{
			Key: viewingKey,
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
