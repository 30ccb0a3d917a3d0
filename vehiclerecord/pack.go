// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vehiclerecord

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/vehicled/fault"
)

// canonical encoding: JSON with struct fields declared in
// lexicographic key order, so equal records pack byte-identically

// Pack - canonical bytes of a vehicle record
func (record *VehicleRecord) Pack() (Packed, error) {
	packed, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}
	return Packed(packed), nil
}

// Pack - canonical bytes of a transfer record
func (record *TransferRecord) Pack() (Packed, error) {
	packed, err := json.Marshal(record)
	if nil != err {
		return nil, err
	}
	return Packed(packed), nil
}

// UnpackVehicle - decode stored bytes to a vehicle record
//
// an empty value is the tombstone convention: it unpacks to nil
// record and nil error; anything else that fails to decode is a
// malformed record
func UnpackVehicle(buffer []byte) (*VehicleRecord, error) {
	if 0 == len(buffer) {
		return nil, nil
	}
	record := &VehicleRecord{}
	if err := unpack(buffer, record); nil != err {
		return nil, err
	}
	return record, nil
}

// UnpackTransfer - decode stored bytes to a transfer record
//
// tombstone handling as for UnpackVehicle
func UnpackTransfer(buffer []byte) (*TransferRecord, error) {
	if 0 == len(buffer) {
		return nil, nil
	}
	record := &TransferRecord{}
	if err := unpack(buffer, record); nil != err {
		return nil, err
	}
	return record, nil
}

// strict decode: unknown fields or trailing data mean the stored
// bytes were not produced by Pack
func unpack(buffer []byte, record interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(record); nil != err {
		return fault.MalformedRecord
	}
	if decoder.More() {
		return fault.MalformedRecord
	}
	return nil
}
