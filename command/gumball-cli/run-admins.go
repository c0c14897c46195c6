// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/command/gumball-cli/rpccalls"
	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/permit"
)

func runAdminsAdd(c *cli.Context) error {
	return runAdminsUpdate(c, true)
}

func runAdminsRemove(c *cli.Context) error {
	return runAdminsUpdate(c, false)
}

// add and remove only differ in the operation tag
func runAdminsUpdate(c *cli.Context, add bool) error {

	m := c.App.Metadata["config"].(*metadata)

	admins, err := checkAccounts(c.StringSlice("address"), m.testnet)
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
		fmt.Fprintf(m.e, "admins: %v\n", c.StringSlice("address"))
	}

	update := &contract.AdminsUpdate{
		Admins: admins,
	}
	message := contract.HandleMsg{}
	if add {
		message.AddAdmins = update
	} else {
		message.RemoveAdmins = update
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

// the admin list is only revealed to an authenticated admin, either by
// viewing key or by a signed permit
func runAdminsShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	query := &contract.AdminsQuery{}

	permitFile := c.String("permit-file")
	viewingKey := c.String("viewing-key")
	switch {
	case "" != permitFile:
		b, err := ioutil.ReadFile(permitFile)
		if nil != err {
			return err
		}
		p := &permit.Permit{}
		err = json.Unmarshal(b, p)
		if nil != err {
			return err
		}
		query.Permit = p

	case "" != viewingKey:
		owner, err := m.config.OwnerKey()
		if nil != err {
			return err
		}
		query.Viewer = &contract.ViewerInfo{
			Address:    owner.Account(),
			ViewingKey: viewingKey,
		}

	default:
		return ErrRequiredAuthentication
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	answer, err := client.Query(contract.QueryMsg{Admins: query})
	if nil != err {
		return err
	}

	printJson(m.w, answer)
	return nil
}
