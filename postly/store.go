// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package postly - keyed record store
//
// every owner has one index record holding a count and a sequence of
// item records 0..count-1.  Nothing records where an item is: its
// location is derived from the owner, the program and its position,
// so the index is just the count.
package postly

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/program"
	"github.com/bitmark-inc/postly/record"
)

// Ledger - the ledger operations used by the store
type Ledger interface {
	GetAccount(address.Location) (*ledger.Account, error)
	MinimumBalance(int) (uint64, error)
	RecentBlockhash() (ledger.Blockhash, error)
	Submit(*ledger.Transaction) (*ledger.Receipt, error)
}

// Store - records of every owner under one program
type Store struct {
	log     *logger.L
	ledger  Ledger
	program address.Location
}

// Post - an item and its position
type Post struct {
	ID      uint32 `json:"id"`
	Payload string `json:"payload"`
}

// New - store over a ledger
func New(l Ledger, programID address.Location) *Store {
	return &Store{
		log:     logger.New("postly"),
		ledger:  l,
		program: programID,
	}
}

// Program - the program namespace of the store
func (s *Store) Program() address.Location {
	return s.program
}

// Append - add one item for the owner and return its id
//
// the owner pays for and signs both allocations.  A missing index is
// provisioned by a separate transaction first, then the item
// allocation, item write and index increment are submitted together
func (s *Store) Append(owner *account.PrivateKey, content string) (uint32, error) {

	ownerLocation := owner.Account().Location()

	indexLocation, err := address.Index(ownerLocation, s.program)
	if nil != err {
		return 0, fault.Wrap(fault.ErrAccount, err)
	}

	index, err := s.readIndex(indexLocation)
	if fault.IsErrNotFound(err) {
		err = s.provision(owner, indexLocation)
		if nil != err {
			return 0, err
		}
		index = &record.Index{Count: 0}
	} else if nil != err {
		return 0, err
	}

	id := index.Count

	itemLocation, err := address.Item(ownerLocation, id, s.program)
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	post := record.Item{Payload: content}
	packed, err := post.Pack()
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	lamports, err := s.ledger.MinimumBalance(len(packed))
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	invoke, err := program.Instruction(s.program, ownerLocation, indexLocation, itemLocation, post)
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	blockhash, err := s.ledger.RecentBlockhash()
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	tx := ledger.NewTransaction(
		ownerLocation,
		blockhash,
		ledger.CreateAccountWithSeed(ownerLocation, itemLocation, ownerLocation, address.ItemSeed(id), lamports, uint64(len(packed)), s.program),
		invoke,
	)
	err = tx.Sign(owner)
	if nil != err {
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	receipt, err := s.ledger.Submit(tx)
	if nil != err {
		s.log.Warnf("append: owner: %s  id: %d  error: %s", ownerLocation, id, err)
		return 0, fault.Wrap(fault.ErrPost, err)
	}

	s.log.Infof("append: owner: %s  id: %d  tx: %s  slot: %d", ownerLocation, id, receipt.Signature, receipt.Slot)
	return id, nil
}

// provision - allocate an empty index
func (s *Store) provision(owner *account.PrivateKey, indexLocation address.Location) error {

	ownerLocation := owner.Account().Location()

	lamports, err := s.ledger.MinimumBalance(record.IndexLength)
	if nil != err {
		return fault.Wrap(fault.ErrAccount, err)
	}

	blockhash, err := s.ledger.RecentBlockhash()
	if nil != err {
		return fault.Wrap(fault.ErrAccount, err)
	}

	tx := ledger.NewTransaction(
		ownerLocation,
		blockhash,
		ledger.CreateAccountWithSeed(ownerLocation, indexLocation, ownerLocation, address.IndexSeed, lamports, record.IndexLength, s.program),
	)
	err = tx.Sign(owner)
	if nil != err {
		return fault.Wrap(fault.ErrAccount, err)
	}

	receipt, err := s.ledger.Submit(tx)
	if nil != err {
		s.log.Warnf("provision: owner: %s  error: %s", ownerLocation, err)
		return fault.Wrap(fault.ErrAccount, err)
	}

	s.log.Infof("provision: owner: %s  index: %s  tx: %s", ownerLocation, indexLocation, receipt.Signature)
	return nil
}

// Index - the owner's index record
func (s *Store) Index(owner address.Location) (*record.Index, error) {
	indexLocation, err := address.Index(owner, s.program)
	if nil != err {
		return nil, fault.Wrap(fault.ErrAccount, err)
	}
	return s.readIndex(indexLocation)
}

// readIndex - absence is reported as ErrIndexNotFound, a record that
// does not decode as ErrCorruptIndex
func (s *Store) readIndex(indexLocation address.Location) (*record.Index, error) {
	acc, err := s.ledger.GetAccount(indexLocation)
	if fault.IsErrNotFound(err) {
		return nil, fault.Wrap(fault.ErrIndexNotFound, err)
	} else if nil != err {
		return nil, fault.Wrap(fault.ErrAccount, err)
	}

	if acc.Owner != s.program {
		return nil, fault.Wrap(fault.ErrAccount, fault.ErrIncorrectOwner)
	}

	index, err := record.Packed(acc.Data).UnpackIndex()
	if nil != err {
		return nil, fault.Wrap(fault.ErrCorruptIndex, err)
	}
	return index, nil
}

// Get - the owner's item at position id
func (s *Store) Get(owner address.Location, id uint32) (*record.Item, error) {
	itemLocation, err := address.Item(owner, id, s.program)
	if nil != err {
		return nil, &fault.MissingItemError{ID: id, Cause: err}
	}

	acc, err := s.ledger.GetAccount(itemLocation)
	if nil != err {
		return nil, &fault.MissingItemError{ID: id, Cause: err}
	}
	if acc.Owner != s.program {
		return nil, &fault.MissingItemError{ID: id, Cause: fault.ErrIncorrectOwner}
	}

	item, err := record.Packed(acc.Data).UnpackItem()
	if nil != err {
		return nil, &fault.MissingItemError{ID: id, Cause: err}
	}
	return item, nil
}

// ListAll - every item of the owner in order
//
// the index is read once, the items are read as the cursor advances
func (s *Store) ListAll(owner address.Location) (*Cursor, error) {
	index, err := s.Index(owner)
	if nil != err {
		return nil, err
	}
	return &Cursor{
		store: s,
		owner: owner,
		count: index.Count,
	}, nil
}

// All - collect every item, the first failure aborts
func (s *Store) All(owner address.Location) ([]Post, error) {
	cursor, err := s.ListAll(owner)
	if nil != err {
		return nil, err
	}
	posts := make([]Post, 0, cursor.Count())
	for cursor.Next() {
		posts = append(posts, cursor.Post())
	}
	if err := cursor.Err(); nil != err {
		return nil, err
	}
	return posts, nil
}
