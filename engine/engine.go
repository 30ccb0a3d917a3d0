// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/family"
	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/storage"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

// Engine - state transitions for one ledger family
type Engine struct {
	log    *logger.L
	family family.Family
}

// New - create an engine bound to a family namespace
func New(f family.Family) *Engine {
	return &Engine{
		log:    logger.New("engine"),
		family: f,
	}
}

// Family - the namespace this engine operates in
func (engine *Engine) Family() family.Family {
	return engine.family
}

// Create - register a vehicle to the signer
//
// fails with VehicleAlreadyRegistered if a live record already
// occupies the vehicle address
func (engine *Engine) Create(
	descriptor vehiclerecord.Descriptor,
	signer vehiclerecord.Identity,
	store storage.Store,
) (storage.WriteSet, error) {

	vehicleAddress := engine.family.VehicleAddress(descriptor.Registration)

	values, err := store.Get([]family.Address{vehicleAddress})
	if nil != err {
		return nil, err
	}
	if len(values[vehicleAddress]) > 0 {
		return nil, fault.VehicleAlreadyRegistered
	}

	record := vehiclerecord.VehicleRecord{
		Descriptor: descriptor,
		Owner:      signer,
	}
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}

	engine.log.Debugf("create: %q  owner: %s", descriptor.Registration, signer)

	return storage.WriteSet{
		vehicleAddress: packed,
	}, nil
}

// Transfer - propose a new owner for a vehicle
//
// only the current recorded owner may propose; a pending transfer is
// silently overwritten: the last proposal wins
func (engine *Engine) Transfer(
	descriptor vehiclerecord.Descriptor,
	proposedOwner vehiclerecord.Identity,
	signer vehiclerecord.Identity,
	store storage.Store,
) (storage.WriteSet, error) {

	vehicleAddress := engine.family.VehicleAddress(descriptor.Registration)
	transferAddress := engine.family.TransferAddress(descriptor.Registration)

	values, err := store.Get([]family.Address{vehicleAddress})
	if nil != err {
		return nil, err
	}

	current, err := vehiclerecord.UnpackVehicle(values[vehicleAddress])
	if nil != err {
		return nil, err
	}
	if nil == current {
		return nil, fault.VehicleNotFound
	}
	if signer != current.Owner {
		return nil, fault.NotVehicleOwner
	}

	record := vehiclerecord.TransferRecord{
		Descriptor:    descriptor,
		ProposedOwner: proposedOwner,
	}
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}

	engine.log.Debugf("transfer: %q  owner: %s  proposed: %s", descriptor.Registration, signer, proposedOwner)

	return storage.WriteSet{
		transferAddress: packed,
	}, nil
}

// Accept - complete a pending transfer
//
// only the proposed owner may accept; the transfer slot is
// tombstoned and the vehicle reassigned in the one write set so both
// commit together or not at all
func (engine *Engine) Accept(
	descriptor vehiclerecord.Descriptor,
	signer vehiclerecord.Identity,
	store storage.Store,
) (storage.WriteSet, error) {

	transferAddress, err := engine.pendingTransfer(descriptor, signer, store)
	if nil != err {
		return nil, err
	}

	record := vehiclerecord.VehicleRecord{
		Descriptor: descriptor,
		Owner:      signer,
	}
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}

	engine.log.Debugf("accept: %q  new owner: %s", descriptor.Registration, signer)

	return storage.WriteSet{
		transferAddress: []byte{},
		engine.family.VehicleAddress(descriptor.Registration): packed,
	}, nil
}

// Reject - refuse a pending transfer
//
// only the proposed owner may reject; the transfer slot is
// tombstoned and the vehicle record is untouched
func (engine *Engine) Reject(
	descriptor vehiclerecord.Descriptor,
	signer vehiclerecord.Identity,
	store storage.Store,
) (storage.WriteSet, error) {

	transferAddress, err := engine.pendingTransfer(descriptor, signer, store)
	if nil != err {
		return nil, err
	}

	engine.log.Debugf("reject: %q  signer: %s", descriptor.Registration, signer)

	return storage.WriteSet{
		transferAddress: []byte{},
	}, nil
}

// common precondition of Accept and Reject: a live transfer record
// whose proposed owner is the signer
func (engine *Engine) pendingTransfer(
	descriptor vehiclerecord.Descriptor,
	signer vehiclerecord.Identity,
	store storage.Store,
) (family.Address, error) {

	transferAddress := engine.family.TransferAddress(descriptor.Registration)

	values, err := store.Get([]family.Address{transferAddress})
	if nil != err {
		return transferAddress, err
	}

	pending, err := vehiclerecord.UnpackTransfer(values[transferAddress])
	if nil != err {
		return transferAddress, err
	}
	if nil == pending {
		return transferAddress, fault.NoPendingTransfer
	}
	if signer != pending.ProposedOwner {
		return transferAddress, fault.NotProposedOwner
	}
	return transferAddress, nil
}
