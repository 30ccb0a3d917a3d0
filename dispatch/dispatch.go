// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - route verified requests to their state transition
//
// A pure routing layer: it validates the action tag, parses the
// delimited vehicle text once, forwards to the engine and propagates
// any failure unchanged.  It performs no state reads or writes of its
// own.
package dispatch

import (
	"github.com/bitmark-inc/vehicled/engine"
	"github.com/bitmark-inc/vehicled/storage"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

// Request - the request shape handed over by the host runtime
//
// the host has already verified the envelope signature and extracted
// the signer before this is seen
type Request struct {
	Action string `json:"action"`          // create | transfer | accept | reject
	Asset  string `json:"asset"`           // delimited vehicle text
	Owner  string `json:"owner,omitempty"` // counterparty, used by transfer
}

// Dispatch - route one request to the engine
//
// an unknown action fails before any descriptor parsing or store
// access so the rejection is visible with zero side effects
func Dispatch(
	request Request,
	signer vehiclerecord.Identity,
	e *engine.Engine,
	store storage.Store,
) (storage.WriteSet, error) {

	action, err := ActionFromString(request.Action)
	if nil != err {
		return nil, err
	}

	descriptor := vehiclerecord.Parse(request.Asset)

	switch action {
	case Create:
		return e.Create(descriptor, signer, store)
	case Transfer:
		return e.Transfer(descriptor, vehiclerecord.Identity(request.Owner), signer, store)
	case Accept:
		return e.Accept(descriptor, signer, store)
	default: // Reject: ActionFromString allows nothing else through
		return e.Reject(descriptor, signer, store)
	}
}
