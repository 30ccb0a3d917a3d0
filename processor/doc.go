// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the connection to the host ledger runtime
//
// A single REP socket accepts one JSON envelope per request.  The
// host runtime has already verified the transaction signature; the
// envelope carries the extracted signer identity alongside the
// request itself.  Each envelope is rate limited, dispatched, and the
// resulting write set committed atomically before the reply is sent.
//
// The host may retransmit an envelope it did not see a reply for, so
// replies are cached for a short period keyed by the envelope nonce
// and retransmissions receive the previously computed reply instead
// of re-running the transition.
package processor
