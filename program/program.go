// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the ledger side of the record store
//
// instruction accounts:
//   0. index  (writable, owned by the program)
//   1. item   (writable, owned by the program, freshly allocated)
//   2. owner  (signer)
//
// instruction data is the packed item record.  Both locations must be
// the ones derived for the signing owner, so only an owner can advance
// its own index.
package program

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/record"
)

// Postly - the program handler
type Postly struct {
	log *logger.L
}

// New - create the handler
func New() *Postly {
	return &Postly{
		log: logger.New("program"),
	}
}

// Process - append one item under an index
func (p *Postly) Process(ctx *ledger.InvokeContext, programID address.Location, accounts []*ledger.AccountInfo, data []byte) error {

	if len(accounts) < 3 {
		return fault.ErrNotEnoughAccounts
	}
	index := accounts[0]
	item := accounts[1]
	owner := accounts[2]

	if index.Owner != programID || item.Owner != programID {
		p.log.Warn("account does not have the correct program id")
		return fault.ErrIncorrectOwner
	}
	if !index.Writable || !item.Writable {
		return fault.ErrReadOnlyAccount
	}
	if index.Location == item.Location {
		return fault.ErrAddressMismatch
	}

	idx, err := record.Packed(index.Data).UnpackIndex()
	if nil != err {
		return fault.Wrap(fault.ErrCorruptIndex, err)
	}
	id := idx.Count

	err = checkLocations(ctx, programID, owner, index.Location, item.Location, id)
	if nil != err {
		return err
	}

	for _, b := range item.Data {
		if 0 != b {
			return fault.ErrAccountAlreadyInUse
		}
	}

	post, err := record.Packed(data).UnpackItem()
	if nil != err {
		return fault.Wrap(fault.ErrInvalidInstruction, err)
	}
	packed, err := post.Pack()
	if nil != err {
		return err
	}
	if len(packed) != len(item.Data) {
		return fault.ErrAccountDataSize
	}

	if ^uint32(0) == idx.Count {
		return fault.ErrInvalidCount
	}
	idx.Count += 1

	// index first, then the item
	copy(index.Data, idx.Pack())
	copy(item.Data, packed)

	ctx.Logf("Index: %d! My Post: %s!", idx.Count, post.Payload)
	p.log.Infof("Index: %d! My Post: %s!", idx.Count, post.Payload)

	return nil
}

// checkLocations - the index and item must be derived from the signing owner
func checkLocations(ctx *ledger.InvokeContext, programID address.Location, owner *ledger.AccountInfo, index address.Location, item address.Location, id uint32) error {
	if !owner.Signer || !ctx.IsSigner(owner.Location) {
		return fault.ErrMissingSignature
	}

	expected, err := address.Index(owner.Location, programID)
	if nil != err {
		return err
	}
	if expected != index {
		return fault.ErrAddressMismatch
	}

	expected, err = address.Item(owner.Location, id, programID)
	if nil != err {
		return err
	}
	if expected != item {
		return fault.ErrAddressMismatch
	}
	return nil
}

// Instruction - build the append instruction
func Instruction(programID address.Location, owner address.Location, index address.Location, item address.Location, post record.Item) (ledger.Instruction, error) {
	data, err := post.Pack()
	if nil != err {
		return ledger.Instruction{}, err
	}
	return ledger.Instruction{
		Program: programID,
		Accounts: []ledger.AccountMeta{
			{Location: index, Signer: false, Writable: true},
			{Location: item, Signer: false, Writable: true},
			{Location: owner, Signer: true, Writable: false},
		},
		Data: data,
	}, nil
}
