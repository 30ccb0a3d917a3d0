// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the four vehicle lifecycle state transitions
//
// Each handler reads a snapshot of the affected addresses, checks its
// preconditions and the signer's authority, and returns either the
// complete write set for the transition or a single fault from the
// request-level taxonomy.  Nothing is written here: the caller
// commits the write set through the store, so a failure never leaves
// partial effects.
//
// There is no internal concurrency and no state held across calls;
// the host runtime is responsible for serialising transitions that
// touch overlapping addresses.
package engine
