// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/command/gumball-cli/rpccalls"
	"github.com/gumball-inc/gumballd/contract"
)

func runListingCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	label, err := checkLabel(c.String("label"))
	if nil != err {
		return err
	}

	factory, err := checkContract(c.String("factory-address"), c.String("factory-code-hash"), m.testnet)
	if nil != err {
		return err
	}

	buy, err := checkContract(c.String("buy-address"), c.String("buy-code-hash"), m.testnet)
	if nil != err {
		return err
	}

	price, err := checkPrice(c.Uint64("price"))
	if nil != err {
		return err
	}

	var paymentAddress *account.Account
	if payment := c.String("payment-address"); "" != payment {
		paymentAddress, err = checkAccount(payment, m.testnet)
		if nil != err {
			return err
		}
	}

	var description *string
	if d := c.String("description"); "" != d {
		description = &d
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
		fmt.Fprintf(m.e, "label: %s\n", label)
		fmt.Fprintf(m.e, "factory: %s\n", factory.Address)
		fmt.Fprintf(m.e, "price: %d\n", price)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Execute(machine, owner, contract.HandleMsg{
		CreateListing: &contract.CreateListing{
			Label:           label,
			PaymentAddress:  paymentAddress,
			FactoryContract: factory,
			BuyContract:     buy,
			BatchSend:       c.Bool("batch-send"),
			Price:           price,
			ClosesAt:        c.Uint64("closes-at"),
			Description:     description,
			Entropy:         c.String("entropy"),
		},
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
