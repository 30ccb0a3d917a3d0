// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type globalFlags struct {
	verbose  bool
	database string
	family   string
	identity string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "vehicle-cli"
	app.Usage = "local operator tool for the vehicle ledger database"
	app.Version = version
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "database, d",
			Value:       "",
			Usage:       "*LevelDB database directory",
			Destination: &globals.database,
		},
		cli.StringFlag{
			Name:        "family, f",
			Value:       "vehicle",
			Usage:       " ledger family name [vehicle]",
			Destination: &globals.family,
		},
		cli.StringFlag{
			Name:        "identity, i",
			Value:       "",
			Usage:       "*signer identity, base58",
			Destination: &globals.identity,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a vehicle to the signer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*vehicle text: registration,make,model,colour",
				},
			},
			Action: func(c *cli.Context) error {
				return runAction(c, globals, "create")
			},
		},
		{
			Name:      "transfer",
			Usage:     "propose a new owner for a vehicle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*vehicle text: registration,make,model,colour",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*proposed owner identity, base58",
				},
			},
			Action: func(c *cli.Context) error {
				return runAction(c, globals, "transfer")
			},
		},
		{
			Name:      "accept",
			Usage:     "accept a pending transfer as the proposed owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*vehicle text: registration,make,model,colour",
				},
			},
			Action: func(c *cli.Context) error {
				return runAction(c, globals, "accept")
			},
		},
		{
			Name:      "reject",
			Usage:     "refuse a pending transfer as the proposed owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*vehicle text: registration,make,model,colour",
				},
			},
			Action: func(c *cli.Context) error {
				return runAction(c, globals, "reject")
			},
		},
		{
			Name:      "show",
			Usage:     "print the vehicle and pending transfer records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "registration, r",
					Value: "",
					Usage: "*registration number",
				},
			},
			Action: func(c *cli.Context) error {
				return runShow(c, globals)
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
