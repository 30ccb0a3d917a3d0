// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vehiclerecord - the records of the vehicle ledger
//
// A vehicle is described by a comma-delimited text supplied by the
// submitter; the first field is the registration number which is the
// vehicle's natural key.  The text is parsed exactly once at the
// boundary into a typed Descriptor and all further code operates on
// the named fields.
//
// Two record kinds are persisted in the host state store:
//
//	VehicleRecord   current ownership of a vehicle
//	TransferRecord  a pending proposal to change that ownership
//
// Records pack to canonical bytes: fields are emitted in fixed
// lexicographic key order so that two logically equal records always
// pack byte-identically.  An empty byte value is the tombstone for
// "no record" and unpacks to nil without error.
package vehiclerecord
