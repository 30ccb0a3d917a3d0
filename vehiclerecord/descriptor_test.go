// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vehiclerecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

func TestParse(t *testing.T) {
	testList := []struct {
		text     string
		expected vehiclerecord.Descriptor
	}{
		{
			text: "ABC 123,Honda,CB500,red",
			expected: vehiclerecord.Descriptor{
				Registration: "ABC 123",
				Make:         "Honda",
				Model:        "CB500",
				Colour:       "red",
			},
		},
		{
			text: "ABC 123, Honda , CB500 , red ",
			expected: vehiclerecord.Descriptor{
				Registration: "ABC 123",
				Make:         "Honda",
				Model:        "CB500",
				Colour:       "red",
			},
		},
		{ // short text leaves trailing fields empty
			text: "ABC 123,Honda",
			expected: vehiclerecord.Descriptor{
				Registration: "ABC 123",
				Make:         "Honda",
			},
		},
		{ // extra fields are ignored
			text: "ABC 123,Honda,CB500,red,1972,spare",
			expected: vehiclerecord.Descriptor{
				Registration: "ABC 123",
				Make:         "Honda",
				Model:        "CB500",
				Colour:       "red",
			},
		},
		{ // degenerate but well-defined
			text:     "",
			expected: vehiclerecord.Descriptor{},
		},
		{
			text: ",,,",
			expected: vehiclerecord.Descriptor{
				Registration: "",
				Make:         "",
				Model:        "",
				Colour:       "",
			},
		},
	}

	for i, item := range testList {
		descriptor := vehiclerecord.Parse(item.text)
		assert.Equal(t, item.expected, descriptor, "%d: parse: %q", i, item.text)
	}
}

func TestString(t *testing.T) {
	descriptor := vehiclerecord.Parse("ABC 123,Honda,CB500,red")
	assert.Equal(t, "ABC 123,Honda,CB500,red", descriptor.String(), "wrong text form")

	// parse of the text form is stable
	assert.Equal(t, descriptor, vehiclerecord.Parse(descriptor.String()), "text round trip changed the descriptor")
}
