// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the key-value state store collaborator
//
// The state-transition core never talks to a database directly: it
// reads through Store.Get and hands back a WriteSet which the caller
// commits through Store.Set.  Set is atomic across every address in
// one call, which is what makes a two-write transition (clear the
// transfer slot, reassign the vehicle) all-or-nothing.
//
// Two implementations:
//
//	MemoryStore  map backed, for tests and zero-host operation
//	PoolStore    LevelDB backed, one prefix byte per family to
//	             spread the keys, batch write for atomic Set
//
// An empty byte value is the tombstone convention for "deleted";
// callers never distinguish a zero-length value from a missing key.
package storage
