// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/projectpai/datashare/chain"
	"github.com/projectpai/datashare/configuration"
	"github.com/projectpai/datashare/pai"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	testnet bool
	verbose bool
	logging bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that work without a node
var offline = map[string]bool{
	"":        true,
	"help":    true,
	"h":       true,
	"version": true,
	"pack":    true,
	"unpack":  true,
	"decode":  true,
}

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "paicoin-data"
	app.Usage = "store and retrieve data in PAI Coin transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [defaults and paicoin.conf]",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " use the testing chain",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "pack",
			Usage:     "pack a PAI message to hex",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operation, o",
					Value: "",
					Usage: " operation `NAME` [grant|revoke|add_tracker|remove_tracker|nop]",
				},
				cli.StringFlag{
					Name:  "storage, s",
					Value: "",
					Usage: " storage method `NAME` [nst]",
				},
				cli.StringFlag{
					Name:  "operand1, 1",
					Value: "",
					Usage: " first operand `HEX`",
				},
				cli.StringFlag{
					Name:  "operand2, 2",
					Value: "",
					Usage: " second operand `HEX`",
				},
				cli.IntFlag{
					Name:  "protocol, p",
					Value: pai.DefaultVersion,
					Usage: " protocol version `BYTE`",
				},
			},
			Action: runPack,
		},
		{
			Name:      "unpack",
			Usage:     "unpack a hex PAI message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, k",
					Value: "",
					Usage: "*packed message `HEX`",
				},
				cli.IntFlag{
					Name:  "protocol, p",
					Value: pai.DefaultVersion,
					Usage: " expected protocol version `BYTE`",
				},
			},
			Action: runUnpack,
		},
		{
			Name:      "decode",
			Usage:     "decode a raw transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tx, x",
					Value: "",
					Usage: "*raw transaction `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "send",
			Usage:     "pay an address with optional metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*destination `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*amount in `COINS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " metadata `STRING`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: " metadata `HEX`",
				},
			},
			Action: runSend,
		},
		{
			Name:      "store",
			Usage:     "store data as a chain of transactions",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "+data `STRING`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+data from `FILE`",
				},
			},
			Action: runStore,
		},
		{
			Name:      "retrieve",
			Usage:     "retrieve data from a reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*`REF` as HEIGHT-TAG",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " maximum `COUNT` of results",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the first result to `FILE`",
				},
			},
			Action: runRetrieve,
		},
		{
			Name:  "version",
			Usage: "display paicoin-data version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		testnet := c.GlobalBool("testnet")

		m := &metadata{
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		command := c.Args().Get(0)
		if offline[command] {
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %q\n", file)
		}

		theConfiguration, err := configuration.GetConfiguration(file, testnet)
		if nil != err {
			return err
		}

		err = logger.Initialise(theConfiguration.Logging)
		if nil != err {
			return err
		}

		m.file = file
		m.config = theConfiguration
		m.testnet = testnet || chain.Paicoin != theConfiguration.Chain
		m.logging = true

		if verbose {
			fmt.Fprintf(e, "chain: %s  node: %s\n", theConfiguration.Chain, theConfiguration.Node.URL)
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
