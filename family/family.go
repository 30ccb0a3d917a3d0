// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package family - deterministic state store addressing
//
// Every record lives in the host runtime's key-value store under a
// fixed-length hex address.  Addresses are namespaced by a family
// prefix so that several ledger families can share one store without
// collision, then tagged by record kind, then filled with a truncated
// digest of the registration number.
//
// Layout of an address (70 hex characters):
//
//	prefix   6  SHA3-512(family name) truncated
//	tag      2  "00" vehicle record, "01" transfer record
//	digest  62  SHA3-512(registration number) truncated
package family

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// lengths in hex characters
const (
	PrefixLength  = 6
	tagLength     = 2
	digestLength  = 62
	AddressLength = PrefixLength + tagLength + digestLength
)

// record kind tags
const (
	vehicleTag  = "00"
	transferTag = "01"
)

// Address - a fixed-length hex key into the host state store
type Address string

// Family - an address namespace derived from a family name
//
// the zero value is unusable; always create with New
type Family struct {
	name   string
	prefix string
}

// New - create a family namespace from its name
func New(name string) Family {
	return Family{
		name:   name,
		prefix: digest(name)[:PrefixLength],
	}
}

// Name - the family name this namespace was derived from
func (family Family) Name() string {
	return family.name
}

// Prefix - the six character namespace prefix
//
// published to the host runtime so it can route addresses under this
// prefix to this handler and to no other
func (family Family) Prefix() string {
	return family.prefix
}

// VehicleAddress - the address of the vehicle record for a registration number
func (family Family) VehicleAddress(registration string) Address {
	return family.address(vehicleTag, registration)
}

// TransferAddress - the address of the pending transfer slot for a registration number
func (family Family) TransferAddress(registration string) Address {
	return family.address(transferTag, registration)
}

// pure function of (prefix, tag, registration): identical inputs
// always yield identical addresses
func (family Family) address(tag string, registration string) Address {
	return Address(family.prefix + tag + digest(registration)[:digestLength])
}

// hex of the full SHA3-512; truncation by the callers leaves 248 bits
// which is far beyond any plausible collision across registrations
func digest(s string) string {
	d := sha3.Sum512([]byte(s))
	return hex.EncodeToString(d[:])
}
