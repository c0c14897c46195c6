// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/gumball-inc/gumballd/command/gumball-cli/configuration"
	"github.com/gumball-inc/gumballd/version"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {

	app := cli.NewApp()
	app.Name = "gumball-cli"
	// app.Usage = ""
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/gumball-cli/gumball-cli.conf]",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate a testnet key (generate only, other commands use the config)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "init",
			Usage:     "provision the machine with its collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "entropy, e",
					Value: "",
					Usage: " extra seed material `STRING`",
				},
			},
			Action: runInit,
		},
		{
			Name:      "mint",
			Usage:     "dispense one random token per buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "buyer, b",
					Usage: "*buyer `ACCOUNT` to receive a token (repeatable)",
				},
				cli.StringFlag{
					Name:  "entropy, e",
					Value: "",
					Usage: " extra seed material `STRING`",
				},
			},
			Action: runMint,
		},
		{
			Name:  "whitelist",
			Usage: "manage the single-mint whitelist",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "whitelist addresses for one free mint each",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringSliceFlag{
							Name:  "address, a",
							Usage: "*`ACCOUNT` to whitelist (repeatable)",
						},
					},
					Action: runWhitelistAdd,
				},
				{
					Name:      "remove",
					Usage:     "remove addresses from the whitelist",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringSliceFlag{
							Name:  "address, a",
							Usage: "*`ACCOUNT` to remove (repeatable)",
						},
					},
					Action: runWhitelistRemove,
				},
			},
		},
		{
			Name:  "admins",
			Usage: "manage the admin list",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "append admins to the admin list",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringSliceFlag{
							Name:  "address, a",
							Usage: "*admin `ACCOUNT` to add (repeatable)",
						},
					},
					Action: runAdminsAdd,
				},
				{
					Name:      "remove",
					Usage:     "remove admins from the admin list",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringSliceFlag{
							Name:  "address, a",
							Usage: "*admin `ACCOUNT` to remove (repeatable)",
						},
					},
					Action: runAdminsRemove,
				},
				{
					Name:      "show",
					Usage:     "display the admin list (authenticated query)",
					ArgsUsage: "\n   (* = required, + = select one)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "viewing-key, k",
							Value: "",
							Usage: "+viewing key `STRING` of the config identity",
						},
						cli.StringFlag{
							Name:  "permit-file, p",
							Value: "",
							Usage: "+signed permit JSON `FILE`",
						},
					},
					Action: runAdminsShow,
				},
			},
		},
		{
			Name:  "listing",
			Usage: "manage sale listings",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "ask a factory to instantiate a sale listing",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "label, l",
							Value: "",
							Usage: "*short listing `LABEL` used in transfer memos",
						},
						cli.StringFlag{
							Name:  "factory-address, f",
							Value: "",
							Usage: "*listing factory `ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "factory-code-hash, F",
							Value: "",
							Usage: "*listing factory `CODEHASH`",
						},
						cli.StringFlag{
							Name:  "buy-address, b",
							Value: "",
							Usage: "*payment token contract `ACCOUNT`",
						},
						cli.StringFlag{
							Name:  "buy-code-hash, B",
							Value: "",
							Usage: "*payment token contract `CODEHASH`",
						},
						cli.Uint64Flag{
							Name:  "price, p",
							Value: 0,
							Usage: "*price per mint `AMOUNT` in the payment token's base unit",
						},
						cli.Uint64Flag{
							Name:  "closes-at, C",
							Value: 0,
							Usage: " sale close time `SECONDS` since epoch",
						},
						cli.StringFlag{
							Name:  "description, d",
							Value: "",
							Usage: " listing description `STRING`",
						},
						cli.StringFlag{
							Name:  "payment-address, P",
							Value: "",
							Usage: " `ACCOUNT` to receive sale proceeds [creator]",
						},
						cli.BoolFlag{
							Name:  "batch-send",
							Usage: " listing delivers tokens with batch sends",
						},
						cli.StringFlag{
							Name:  "entropy, e",
							Value: "",
							Usage: " extra seed material `STRING`",
						},
					},
					Action: runListingCreate,
				},
			},
		},
		{
			Name:      "retrieve",
			Usage:     "recover tokens deposited into the wrong collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection-address, a",
					Value: "",
					Usage: "*foreign collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "collection-code-hash, C",
					Value: "",
					Usage: "*foreign collection `CODEHASH`",
				},
				cli.StringSliceFlag{
					Name:  "token, T",
					Usage: "*token `ID` to pull back (repeatable)",
				},
			},
			Action: runRetrieve,
		},
		{
			Name:      "recovery-key",
			Usage:     "set this machine's viewing key on a foreign collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection-address, a",
					Value: "",
					Usage: "*foreign collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "collection-code-hash, C",
					Value: "",
					Usage: "*foreign collection `CODEHASH`",
				},
				cli.StringFlag{
					Name:  "viewing-key, k",
					Value: "",
					Usage: "*viewing key `STRING` to set",
				},
			},
			Action: runRecoveryKey,
		},
		{
			Name:      "create-key",
			Usage:     "derive a fresh viewing key for the config identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "entropy, e",
					Value: "",
					Usage: " extra seed material `STRING`",
				},
			},
			Action: runCreateKey,
		},
		{
			Name:      "set-key",
			Usage:     "store a caller supplied viewing key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*viewing key `STRING` to store",
				},
			},
			Action: runSetKey,
		},
		{
			Name:      "revoke-permit",
			Usage:     "void every permit of this name signed by the config identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*permit `NAME` to revoke",
				},
			},
			Action: runRevokePermit,
		},
		{
			Name:      "permit",
			Usage:     "sign a query permit offline",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*permit `NAME`",
				},
				cli.StringSliceFlag{
					Name:  "audience, a",
					Usage: " contract `ACCOUNT` the permit applies to [machine address]",
				},
			},
			Action: runPermit,
		},
		{
			Name:   "counts",
			Usage:  "display pool occupancy",
			Action: runCounts,
		},
		{
			Name:   "display",
			Usage:  "display the sale listing data",
			Action: runDisplay,
		},
		{
			Name:   "collection",
			Usage:  "display the collection this machine dispenses from",
			Action: runCollection,
		},
		{
			Name:   "info",
			Usage:  "display gumballd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display gumball-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "generate":
			c.App.Metadata["config"] = &metadata{
				testnet: c.GlobalBool("testnet"),
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("no --config and XDG_CONFIG_HOME environment is not set")
			}
			file = path.Join(p, app.Name, app.Name+".conf")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
