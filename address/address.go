// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage locations
//
// a location is derived from an owner identity, a seed string and a
// program namespace so that no directory is needed to find a record:
//
//   location = SHA3-256(owner || seed || program)
//
// owner and program are fixed length arrays so the variable length
// seed between them needs no framing
//
// the index for an owner uses IndexSeed and the Nth item uses
// ItemSeed(N), so an item is located directly from its position
package address

import (
	"bytes"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// LocationLength - size of a location in bytes
const LocationLength = 32

// MaximumSeedLength - longest seed the ledger accepts
const MaximumSeedLength = 32

// seeds
const (
	IndexSeed      = "postly_index"
	ItemSeedPrefix = "postly_account"
)

// Location - a storage address
type Location [LocationLength]byte

// Derive - compute the location of seed under owner and program
func Derive(owner Location, seed string, program Location) (Location, error) {
	if len(seed) > MaximumSeedLength {
		return Location{}, fault.ErrInvalidSeed
	}

	h := sha3.New256()
	h.Write(owner[:])
	h.Write([]byte(seed))
	h.Write(program[:])

	var loc Location
	copy(loc[:], h.Sum(nil))
	return loc, nil
}

// ItemSeed - the seed of the item at position n
func ItemSeed(n uint32) string {
	return ItemSeedPrefix + "_" + strconv.FormatUint(uint64(n), 10)
}

// Index - location of the owner's index record
func Index(owner Location, program Location) (Location, error) {
	return Derive(owner, IndexSeed, program)
}

// Item - location of the owner's item record at position n
func Item(owner Location, n uint32, program Location) (Location, error) {
	return Derive(owner, ItemSeed(n), program)
}

// New - location from a 32 byte slice
func New(b []byte) (Location, error) {
	var loc Location
	if LocationLength != len(b) {
		return loc, fault.ErrInvalidLocationLength
	}
	copy(loc[:], b)
	return loc, nil
}

// FromBase58 - location from its text form
func FromBase58(s string) (Location, error) {
	b := util.FromBase58(s)
	if 0 == len(b) {
		return Location{}, fault.ErrInvalidLocation
	}
	return New(b)
}

// Bytes - location as a byte slice
func (loc *Location) Bytes() []byte {
	return loc[:]
}

// IsZero - true for the unset location
func (loc Location) IsZero() bool {
	return loc == Location{}
}

// Compare - byte order of two locations
func (loc Location) Compare(other Location) int {
	return bytes.Compare(loc[:], other[:])
}

// String - base58 text
func (loc Location) String() string {
	return util.ToBase58(loc[:])
}

// GoString - for %#v
func (loc Location) GoString() string {
	return "<location:" + loc.String() + ">"
}

// MarshalText - convert to base58 for JSON
func (loc Location) MarshalText() ([]byte, error) {
	return []byte(loc.String()), nil
}

// UnmarshalText - convert from base58
func (loc *Location) UnmarshalText(s []byte) error {
	l, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*loc = l
	return nil
}
