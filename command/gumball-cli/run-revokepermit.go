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

func runRevokePermit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkPermitName(c.String("name"))
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
		RevokePermit: &contract.RevokePermit{
			PermitName: name,
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
