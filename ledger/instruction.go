// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// AccountMeta - an account referenced by an instruction
type AccountMeta struct {
	Location address.Location `json:"location"`
	Signer   bool             `json:"signer"`
	Writable bool             `json:"writable"`
}

// Instruction - one call to a program
type Instruction struct {
	Program  address.Location `json:"program"`
	Accounts []AccountMeta    `json:"accounts"`
	Data     []byte           `json:"data"`
}

// system instruction tags
type systemTag uint64

const (
	createAccountWithSeedTag systemTag = 1
	transferTag              systemTag = 2
)

// createAccountWithSeed - decoded system instruction
type createAccountWithSeed struct {
	base     address.Location
	seed     string
	lamports uint64
	space    uint64
	owner    address.Location
}

// transfer - decoded system instruction
type transfer struct {
	lamports uint64
}

// CreateAccountWithSeed - system instruction to allocate the account
// derived from (base, seed, owner) funded by from
//
// accounts: from(signer, writable), to(writable), base(signer)
func CreateAccountWithSeed(from address.Location, to address.Location, base address.Location, seed string, lamports uint64, space uint64, owner address.Location) Instruction {

	data := util.ToVarint64(uint64(createAccountWithSeedTag))
	data = append(data, base[:]...)
	data = appendString(data, seed)
	data = append(data, util.ToVarint64(lamports)...)
	data = append(data, util.ToVarint64(space)...)
	data = append(data, owner[:]...)

	metas := []AccountMeta{
		{Location: from, Signer: true, Writable: true},
		{Location: to, Signer: false, Writable: true},
	}
	if base != from {
		metas = append(metas, AccountMeta{Location: base, Signer: true, Writable: false})
	}
	return Instruction{
		Program:  SystemProgram,
		Accounts: metas,
		Data:     data,
	}
}

// Transfer - system instruction to move lamports
//
// accounts: from(signer, writable), to(writable)
func Transfer(from address.Location, to address.Location, lamports uint64) Instruction {
	data := util.ToVarint64(uint64(transferTag))
	data = append(data, util.ToVarint64(lamports)...)

	return Instruction{
		Program: SystemProgram,
		Accounts: []AccountMeta{
			{Location: from, Signer: true, Writable: true},
			{Location: to, Signer: false, Writable: true},
		},
		Data: data,
	}
}

// unpackSystem - decode a system instruction
func unpackSystem(data []byte) (interface{}, error) {
	tag, n := util.FromVarint64(data)
	if 0 == n {
		return nil, fault.ErrInvalidInstruction
	}

	switch systemTag(tag) {

	case createAccountWithSeedTag:
		c := &createAccountWithSeed{}

		b, k := takeLocation(data[n:])
		if 0 == k {
			return nil, fault.ErrInvalidInstruction
		}
		c.base = b
		n += k

		seed, k := takeString(data[n:])
		if 0 == k {
			return nil, fault.ErrInvalidInstruction
		}
		c.seed = seed
		n += k

		lamports, k := util.FromVarint64(data[n:])
		if 0 == k {
			return nil, fault.ErrInvalidInstruction
		}
		c.lamports = lamports
		n += k

		space, k := util.FromVarint64(data[n:])
		if 0 == k {
			return nil, fault.ErrInvalidInstruction
		}
		c.space = space
		n += k

		o, k := takeLocation(data[n:])
		if 0 == k {
			return nil, fault.ErrInvalidInstruction
		}
		c.owner = o
		n += k

		if n != len(data) {
			return nil, fault.ErrInvalidInstruction
		}
		return c, nil

	case transferTag:
		lamports, k := util.FromVarint64(data[n:])
		if 0 == k || n+k != len(data) {
			return nil, fault.ErrInvalidInstruction
		}
		return &transfer{lamports: lamports}, nil

	default:
		return nil, fault.ErrUnknownInstruction
	}
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append a byte slice to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// read a Varint64(length) prefixed string, returns 0 bytes used on error
func takeString(buffer []byte) (string, int) {
	b, n := takeBytes(buffer)
	return string(b), n
}

// read a Varint64(length) prefixed byte slice, returns 0 bytes used on error
func takeBytes(buffer []byte) ([]byte, int) {
	length, n := util.FromVarint64(buffer)
	if 0 == n || length > uint64(len(buffer)-n) {
		return nil, 0
	}
	end := n + int(length)
	return buffer[n:end], end
}

// read a fixed size location
func takeLocation(buffer []byte) (address.Location, int) {
	var loc address.Location
	if len(buffer) < address.LocationLength {
		return loc, 0
	}
	copy(loc[:], buffer)
	return loc, address.LocationLength
}
