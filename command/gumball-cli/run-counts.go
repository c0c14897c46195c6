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

func runCounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	answer, err := client.Query(contract.QueryMsg{Counts: &contract.CountsQuery{}})
	if nil != err {
		return err
	}

	printJson(m.w, answer)
	return nil
}
