// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/vehicled/family"
)

// WriteSet - the addresses and values produced by one state transition
//
// committed as a single atomic unit; an empty value writes the
// tombstone for that address
type WriteSet map[family.Address][]byte

// Store - the host state store contract
type Store interface {

	// Get - read the current values at the given addresses
	//
	// the result omits addresses that have never been written;
	// callers treat a missing address and an empty value identically
	Get(addresses []family.Address) (map[family.Address][]byte, error)

	// Set - commit a write set
	//
	// atomic across all addresses in the one call: either every
	// write is applied or none is
	Set(writes WriteSet) error
}
