// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/dispatch"
	"github.com/bitmark-inc/vehicled/engine"
	"github.com/bitmark-inc/vehicled/family"
	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/storage"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

// the library loggers must be live before any pool or engine is
// created; the CLI has no interest in the output
func quietLogging() error {
	return logger.Initialise(logger.Configuration{
		Directory: os.TempDir(),
		File:      "vehicle-cli.log",
		Size:      1048576,
		Count:     2,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// identities travel as base58 text; the ledger core treats them as
// opaque so the check lives here at the boundary
func verifyIdentity(s string) (vehiclerecord.Identity, error) {
	if "" == s {
		return "", fault.InvalidIdentity
	}
	if _, err := base58.Decode(s); nil != err {
		return "", fault.InvalidIdentity
	}
	return vehiclerecord.Identity(s), nil
}

// runAction - dispatch one lifecycle action against the local database
func runAction(c *cli.Context, globals globalFlags, action string) error {

	signer, err := verifyIdentity(globals.identity)
	if nil != err {
		return err
	}

	asset := c.String("asset")
	if "" == asset {
		return fmt.Errorf("asset is required")
	}

	request := dispatch.Request{
		Action: action,
		Asset:  asset,
	}
	if "transfer" == action {
		owner, err := verifyIdentity(c.String("owner"))
		if nil != err {
			return err
		}
		request.Owner = string(owner)
	}

	if err := quietLogging(); nil != err {
		return err
	}
	defer logger.Finalise()

	pool, err := storage.OpenPool(globals.database)
	if nil != err {
		return err
	}
	defer pool.Close()

	e := engine.New(family.New(globals.family))

	writes, err := dispatch.Dispatch(request, signer, e, pool)
	if nil != err {
		return err
	}
	if err := pool.Set(writes); nil != err {
		return err
	}

	if globals.verbose {
		fmt.Printf("%s: committed %d write(s)\n", action, len(writes))
	}
	return nil
}

// printable form of the two records of one registration
type showResult struct {
	Registration string                        `json:"registration"`
	Vehicle      *vehiclerecord.VehicleRecord  `json:"vehicle"`
	Transfer     *vehiclerecord.TransferRecord `json:"transfer"`
}

// runShow - print the current state of a registration number
func runShow(c *cli.Context, globals globalFlags) error {

	registration := c.String("registration")
	if "" == registration {
		return fmt.Errorf("registration is required")
	}

	if err := quietLogging(); nil != err {
		return err
	}
	defer logger.Finalise()

	pool, err := storage.OpenPool(globals.database)
	if nil != err {
		return err
	}
	defer pool.Close()

	f := family.New(globals.family)
	vehicleAddress := f.VehicleAddress(registration)
	transferAddress := f.TransferAddress(registration)

	values, err := pool.Get([]family.Address{vehicleAddress, transferAddress})
	if nil != err {
		return err
	}

	vehicle, err := vehiclerecord.UnpackVehicle(values[vehicleAddress])
	if nil != err {
		return err
	}
	transfer, err := vehiclerecord.UnpackTransfer(values[transferAddress])
	if nil != err {
		return err
	}

	result, err := json.MarshalIndent(showResult{
		Registration: registration,
		Vehicle:      vehicle,
		Transfer:     transfer,
	}, "", "  ")
	if nil != err {
		return err
	}
	fmt.Printf("%s\n", result)
	return nil
}
