// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vehiclerecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

func TestVehicleRecordRoundTrip(t *testing.T) {
	record := &vehiclerecord.VehicleRecord{
		Descriptor: vehiclerecord.Parse("ABC 123,Honda,CB500,red"),
		Owner:      "owner-one",
	}

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")
	assert.NotEmpty(t, packed, "empty packed record")

	unpacked, err := vehiclerecord.UnpackVehicle(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, record, unpacked, "record round trip mismatch")
}

func TestTransferRecordRoundTrip(t *testing.T) {
	record := &vehiclerecord.TransferRecord{
		Descriptor:    vehiclerecord.Parse("ABC 123,Honda,CB500,red"),
		ProposedOwner: "owner-two",
	}

	packed, err := record.Pack()
	assert.Nil(t, err, "pack error")

	unpacked, err := vehiclerecord.UnpackTransfer(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, record, unpacked, "record round trip mismatch")
}

// logically equal records must pack byte-identically
func TestPackIsCanonical(t *testing.T) {
	one := &vehiclerecord.VehicleRecord{
		Descriptor: vehiclerecord.Parse("ABC 123,Honda,CB500,red"),
		Owner:      "owner-one",
	}
	two := &vehiclerecord.VehicleRecord{
		Descriptor: vehiclerecord.Descriptor{
			Colour:       "red",
			Make:         "Honda",
			Model:        "CB500",
			Registration: "ABC 123",
		},
		Owner: "owner-one",
	}

	packedOne, err := one.Pack()
	assert.Nil(t, err, "pack error")
	packedTwo, err := two.Pack()
	assert.Nil(t, err, "pack error")

	assert.Equal(t, packedOne, packedTwo, "equal records packed differently")
}

func TestUnpackTombstone(t *testing.T) {
	record, err := vehiclerecord.UnpackVehicle(nil)
	assert.Nil(t, err, "tombstone is not an error")
	assert.Nil(t, record, "tombstone is not a record")

	record, err = vehiclerecord.UnpackVehicle([]byte{})
	assert.Nil(t, err, "empty value is not an error")
	assert.Nil(t, record, "empty value is not a record")

	transfer, err := vehiclerecord.UnpackTransfer([]byte{})
	assert.Nil(t, err, "empty value is not an error")
	assert.Nil(t, transfer, "empty value is not a record")
}

func TestUnpackMalformed(t *testing.T) {
	testList := [][]byte{
		[]byte("not json at all"),
		[]byte(`{"descriptor":`),
		[]byte(`{"descriptor":{},"owner":"x","extra":true}`),
		[]byte(`{"descriptor":{},"owner":"x"}{"trailing":1}`),
		[]byte(`[1,2,3]`),
	}

	for i, buffer := range testList {
		_, err := vehiclerecord.UnpackVehicle(buffer)
		assert.Equal(t, fault.MalformedRecord, err, "%d: expected malformed record for: %q", i, buffer)
	}

	_, err := vehiclerecord.UnpackTransfer([]byte("garbage"))
	assert.Equal(t, fault.MalformedRecord, err, "expected malformed record")
}
