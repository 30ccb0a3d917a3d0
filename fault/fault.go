// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// ExistsError - to allow for different classes of errors
type ExistsError GenericError

// InvalidError - class of invalid errors
type InvalidError GenericError

// LengthError - class of length errors
type LengthError GenericError

// NotFoundError - class of not found errors
type NotFoundError GenericError

// ProcessError - class of process errors
type ProcessError GenericError

// RecordError - class of record errors
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ProcessError("already initialised")
	InvalidAction            = InvalidError("action is not recognised")
	InvalidIdentity          = InvalidError("identity is invalid")
	InvalidRequestEnvelope   = InvalidError("request envelope is invalid")
	MalformedRecord          = RecordError("stored record is malformed")
	MissingDatabaseName      = InvalidError("missing database name")
	MissingFamilyName        = InvalidError("missing family name")
	NoPendingTransfer        = NotFoundError("no pending transfer")
	NotInitialised           = ProcessError("not initialised")
	NotProposedOwner         = InvalidError("signer is not the proposed owner")
	NotVehicleOwner          = InvalidError("signer is not the current owner")
	RateLimiting             = ProcessError("rate limiting active")
	VehicleAlreadyRegistered = ExistsError("vehicle already registered")
	VehicleNotFound          = NotFoundError("vehicle record not found")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - check if invalid error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - check if length error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - check if not found error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - check if process error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - check if record error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
