// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"strconv"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// the two top level failures reported by the record store
type AccountError GenericError
type PostError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccount                  = AccountError("account error")
	ErrAccountAlreadyInUse      = ExistsError("account already in use")
	ErrAccountDataSize          = LengthError("account data size mismatch")
	ErrAccountNotFound          = NotFoundError("account not found")
	ErrAirdropNotAllowed        = ProcessError("airdrop not allowed on this chain")
	ErrAirdropTooLarge          = InvalidError("airdrop amount too large")
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrAlreadyProcessed         = ExistsError("transaction already processed")
	ErrAddressMismatch          = InvalidError("derived address does not match")
	ErrBlockhashNotFound        = NotFoundError("blockhash not found")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCannotDecodeSeed         = InvalidError("cannot decode seed")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrCertificateFileNotFound  = NotFoundError("certificate file not found")
	ErrConfigurationNotFound    = NotFoundError("configuration file not found")
	ErrConnectionRefused        = ProcessError("connection refused")
	ErrCorruptIndex             = RecordError("corrupt index record")
	ErrDatabaseVersion          = InvalidError("database version mismatch")
	ErrExternalDataModified     = InvalidError("instruction modified data of an account it does not own")
	ErrIdentityAlreadyExists    = ExistsError("identity already exists")
	ErrIncorrectOwner           = InvalidError("account does not have the correct program id")
	ErrIndexNotFound            = NotFoundError("index not found")
	ErrInsufficientFunds        = ProcessError("insufficient funds")
	ErrInsufficientFundsForRent = ProcessError("insufficient funds for rent")
	ErrInvalidBlockhash         = InvalidError("invalid blockhash")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidInstruction       = RecordError("invalid instruction data")
	ErrInvalidKeyLength         = LengthError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLocation          = InvalidError("invalid location")
	ErrInvalidLocationLength    = LengthError("invalid location length")
	ErrInvalidPassword          = InvalidError("invalid password")
	ErrInvalidPortNumber        = InvalidError("invalid port number")
	ErrInvalidPasswordLength    = LengthError("invalid password length")
	ErrInvalidSaltLength        = LengthError("invalid salt length")
	ErrInvalidSeed              = LengthError("seed exceeds maximum length")
	ErrInvalidSeedHeader        = InvalidError("invalid seed header")
	ErrInvalidSeedLength        = LengthError("invalid seed length")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidTransaction       = RecordError("invalid transaction")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrMissingSignature         = InvalidError("missing required signature")
	ErrNotEnoughAccounts        = InvalidError("not enough account keys")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPrivateKey            = InvalidError("not a private key")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrPasswordMismatch         = InvalidError("password mismatch")
	ErrPayloadTooLong           = LengthError("payload too long")
	ErrPost                     = PostError("post error")
	ErrProgramAlreadyRegistered = ExistsError("program already registered")
	ErrRateLimiting             = ProcessError("rate limiting")
	ErrReadOnlyAccount          = InvalidError("instruction modified a read-only account")
	ErrRecordInvalidUTF8        = RecordError("record payload is not valid UTF-8")
	ErrRecordTrailingBytes      = RecordError("record has trailing bytes")
	ErrRecordTruncated          = RecordError("record is truncated")
	ErrTooManyInstructions      = LengthError("too many instructions")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrTransactionNotInUse      = ProcessError("transaction not in use")
	ErrUnknownIdentity          = NotFoundError("unknown identity")
	ErrUnknownInstruction       = InvalidError("unknown instruction")
	ErrUnknownProgram           = NotFoundError("unknown program")
	ErrWrongChecksum            = InvalidError("wrong checksum")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
func (e AccountError) Error() string  { return string(e) }
func (e PostError) Error() string     { return string(e) }

// determine the class of an error
// a wrapped error matches the class of any error in its chain
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
func IsErrAccount(e error) bool  { var x AccountError; return errors.As(e, &x) }
func IsErrPost(e error) bool     { var x PostError; return errors.As(e, &x) }

// MissingItemError - an item record inside the index range could
// not be read or decoded
type MissingItemError struct {
	ID    uint32
	Cause error
}

// Error - message includes the item id
func (e *MissingItemError) Error() string {
	s := "missing item: " + strconv.FormatUint(uint64(e.ID), 10)
	if nil != e.Cause {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap - access the underlying read or decode failure
func (e *MissingItemError) Unwrap() error { return e.Cause }

// Is - every missing item error is a record class error
func (e *MissingItemError) Is(target error) bool {
	_, ok := target.(*MissingItemError)
	return ok
}

// As - allow the record class to be extracted
func (e *MissingItemError) As(target interface{}) bool {
	if p, ok := target.(*RecordError); ok {
		*p = RecordError("missing item")
		return true
	}
	return false
}

// IsErrMissingItem - returns the id of the missing item if present
func IsErrMissingItem(e error) (uint32, bool) {
	var m *MissingItemError
	if errors.As(e, &m) {
		return m.ID, true
	}
	return 0, false
}

// classified - a class error carrying the underlying cause
type classified struct {
	class error
	cause error
}

// Wrap - attach a class error to a lower level cause so that both
// errors.Is(err, class) and errors.Is(err, cause) hold
func Wrap(class error, cause error) error {
	if nil == cause {
		return class
	}
	return &classified{
		class: class,
		cause: cause,
	}
}

func (e *classified) Error() string {
	return e.class.Error() + ": " + e.cause.Error()
}

func (e *classified) Unwrap() error { return e.cause }

func (e *classified) Is(target error) bool {
	return e.class == target
}

func (e *classified) As(target interface{}) bool {
	return errors.As(e.class, target)
}
