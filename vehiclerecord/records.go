// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vehiclerecord

// Packed - packed records are just a byte slice
type Packed []byte

// VehicleRecord - current ownership of a registered vehicle
//
// exactly one live record per registration number; absence means the
// vehicle was never created
type VehicleRecord struct {
	Descriptor Descriptor `json:"descriptor"`
	Owner      Identity   `json:"owner"`
}

// TransferRecord - a pending ownership transfer proposal
//
// lives in the transfer slot of the same registration number; a
// non-empty value at that address is the sole indicator that a
// transfer is in flight
type TransferRecord struct {
	Descriptor    Descriptor `json:"descriptor"`
	ProposedOwner Identity   `json:"proposedOwner"`
}
