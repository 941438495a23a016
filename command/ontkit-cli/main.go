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

	"github.com/bitmark-inc/ontkit/configuration"
	"github.com/bitmark-inc/ontkit/fault"
	"github.com/bitmark-inc/ontkit/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	log     *logger.L
	store   bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "ontkit-cli"
	app.Usage = "Ontology keys, addresses and transactions"
	app.Version = version
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
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new mnemonic",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "bits, b",
					Value: 128,
					Usage: " entropy `BITS` [128|160|192|224|256]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "derive accounts from a mnemonic",
			ArgsUsage: "\n   (* = required)",
			Flags: append(mnemonicFlags(),
				cli.StringFlag{
					Name:  "path, p",
					Value: "",
					Usage: " derivation `PATH` [default from configuration]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of consecutive accounts `COUNT`",
				},
				cli.BoolFlag{
					Name:  "private, k",
					Usage: " also output private keys",
				},
				cli.StringFlag{
					Name:  "label, l",
					Value: "",
					Usage: " store the first account under `LABEL`",
				},
				cli.BoolFlag{
					Name:  "save, s",
					Usage: " store the accounts in the database",
				},
			),
			Action: runDerive,
		},
		{
			Name:      "xkey",
			Usage:     "inspect an extended key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*extended key `XKEY`",
				},
				cli.StringFlag{
					Name:  "path, p",
					Value: "m",
					Usage: " derive the key at relative `PATH`",
				},
			},
			Action: runXKey,
		},
		{
			Name:      "address",
			Usage:     "address of one or more public keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "publickey, p",
					Usage: "*hex public `KEY` (repeat for multisig)",
				},
				cli.IntFlag{
					Name:  "threshold, m",
					Value: 1,
					Usage: " signatures required `M`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "transfer",
			Usage:     "build and sign an ONT or ONG transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: append(mnemonicFlags(),
				cli.StringFlag{
					Name:  "path, p",
					Value: "",
					Usage: " sender derivation `PATH` [default from configuration]",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "ont",
					Usage: " `TOKEN` to transfer [ont|ong]",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount in base units `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "gas-price",
					Value: 0,
					Usage: " `PRICE` [default from configuration]",
				},
				cli.Uint64Flag{
					Name:  "gas-limit",
					Value: 0,
					Usage: " `LIMIT` [default from configuration]",
				},
				cli.BoolFlag{
					Name:  "compact",
					Usage: " write signatures in the compact layout",
				},
			),
			Action: runTransfer,
		},
		{
			Name:      "decode",
			Usage:     "decode a serialised transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*transaction `HEX`",
				},
				cli.BoolFlag{
					Name:  "compact",
					Usage: " signatures are in the compact layout",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "invoke",
			Usage:     "build NeoVM invocation code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, a",
					Value: "",
					Usage: "*contract `ADDRESS` (base58 or reversed hex)",
				},
				cli.StringFlag{
					Name:  "method, f",
					Value: "",
					Usage: "*`METHOD` name",
				},
				cli.StringFlag{
					Name:  "params, j",
					Value: "[]",
					Usage: " JSON array of typed parameters `JSON`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: " wrap in an unsigned transaction paid by `ADDRESS`",
				},
			},
			Action: runInvoke,
		},
		{
			Name:   "accounts",
			Usage:  "list stored accounts",
			Action: runAccounts,
		},
		{
			Name:  "version",
			Usage: "display ontkit-cli version",
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

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file, config, err := readConfiguration(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "configuration: %q\n", file)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}
		log := logger.New("main")
		log.Infof("starting: %s  version: %s  command: %s", app.Name, version, command)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// release the database and logger
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.store {
			storage.Finalise()
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}

func mnemonicFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "mnemonic, m",
			Value:  "",
			EnvVar: "ONTKIT_MNEMONIC",
			Usage:  "*BIP39 `WORDS`",
		},
		cli.StringFlag{
			Name:   "passphrase, P",
			Value:  "",
			EnvVar: "ONTKIT_PASSPHRASE",
			Usage:  " optional mnemonic `PASSPHRASE`",
		},
	}
}
