// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"fmt"

	"github.com/bitmark-inc/vehicled/fault"
)

// Action - action tag enumeration
type Action uint64

// possible action values
const (
	Nothing      Action = iota // this must be the first value
	Create       Action = iota
	Transfer     Action = iota
	Accept       Action = iota
	Reject       Action = iota
	maximumValue Action = iota // this must be the last value
)

// ActionFromString - convert an incoming action tag
//
// exact, case-sensitive match; anything else is InvalidAction and the
// whole request is rejected without touching the engine
func ActionFromString(s string) (Action, error) {
	switch s {
	case "create":
		return Create, nil
	case "transfer":
		return Transfer, nil
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	default:
		return Nothing, fault.InvalidAction
	}
}

// String - convert an action to its tag for the fmt package (for %s)
func (action Action) String() string {
	switch action {
	case Create:
		return "create"
	case Transfer:
		return "transfer"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return ""
	}
}

// GoString - action enum value and tag, for debugging
func (action Action) GoString() string {
	return fmt.Sprintf("<Action#%d:%q>", uint64(action), action.String())
}
