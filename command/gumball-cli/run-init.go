// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/command/gumball-cli/rpccalls"
)

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.config.OwnerKey()
	if nil != err {
		return err
	}

	machine, err := m.config.MachineInfo()
	if nil != err {
		return err
	}

	collection, err := m.config.CollectionInfo()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "machine: %s\n", machine.Address)
		fmt.Fprintf(m.e, "collection: %s\n", collection.Address)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Provision(machine, collection, owner, c.String("entropy"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
