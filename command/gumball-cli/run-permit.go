// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/permit"
)

// sign a query permit entirely offline; the output can be saved to a
// file and supplied to authenticated queries until it is revoked
func runPermit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkPermitName(c.String("name"))
	if nil != err {
		return err
	}

	audiences := c.StringSlice("audience")
	if 0 == len(audiences) {
		machine, err := m.config.MachineInfo()
		if nil != err {
			return err
		}
		audiences = []string{machine.Address.String()}
	} else {
		// audiences must be valid accounts on the right network
		_, err := checkAccounts(audiences, m.testnet)
		if nil != err {
			return err
		}
	}

	owner, err := m.config.OwnerKey()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "audiences: %v\n", audiences)
	}

	signed, err := permit.Sign(permit.Params{
		Name:        name,
		Audiences:   audiences,
		Permissions: []permit.Permission{permit.Owner},
	}, owner)
	if nil != err {
		return err
	}

	printJson(m.w, signed)
	return nil
}
