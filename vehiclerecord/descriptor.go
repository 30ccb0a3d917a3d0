// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vehiclerecord

import (
	"strings"
)

// field separator of the delimited descriptor text
const fieldSeparator = ","

// Identity - an opaque token for the cryptographically verified
// submitter of a request
//
// established by the host runtime, never parsed here, only compared
// for equality
type Identity string

// Descriptor - the typed form of the delimited vehicle text
//
// field order within the struct is lexicographic by JSON key; this is
// what makes the packed encoding canonical, so keep it sorted
type Descriptor struct {
	Colour       string `json:"colour"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
}

// Parse - split delimited vehicle text into a Descriptor
//
// positional fields: registration,make,model,colour
//
// never fails: missing fields are left empty, extra fields are
// ignored, so an empty or short text yields a degenerate but
// well-defined descriptor
func Parse(s string) Descriptor {
	fields := strings.Split(s, fieldSeparator)
	return Descriptor{
		Registration: field(fields, 0),
		Make:         field(fields, 1),
		Model:        field(fields, 2),
		Colour:       field(fields, 3),
	}
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// String - rejoin the descriptor to its delimited text form
func (descriptor Descriptor) String() string {
	return strings.Join([]string{
		descriptor.Registration,
		descriptor.Make,
		descriptor.Model,
		descriptor.Colour,
	}, fieldSeparator)
}
