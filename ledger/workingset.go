// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/storage"
)

// workingSet - accounts loaded and modified by one transaction
type workingSet struct {
	trx      storage.Transaction
	accounts map[address.Location]*Account
	dirty    map[address.Location]struct{}
	order    []address.Location
}

func newWorkingSet(trx storage.Transaction) *workingSet {
	return &workingSet{
		trx:      trx,
		accounts: make(map[address.Location]*Account),
		dirty:    make(map[address.Location]struct{}),
	}
}

// get - current state, an absent account reads as empty
func (ws *workingSet) get(loc address.Location) *Account {
	if a, ok := ws.accounts[loc]; ok {
		return a
	}

	a := &Account{}
	buffer := ws.trx.Get(storage.Pool.Accounts, loc[:])
	if nil != buffer {
		var err error
		a, err = UnpackAccount(buffer)
		logger.PanicIfError("ledger.workingSet.get", err)
	}
	ws.accounts[loc] = a
	return a
}

// put - replace the state of an account
func (ws *workingSet) put(loc address.Location, a *Account) {
	ws.accounts[loc] = a
	if _, ok := ws.dirty[loc]; !ok {
		ws.dirty[loc] = struct{}{}
		ws.order = append(ws.order, loc)
	}
}

// flush - write modified accounts into the storage transaction,
// empty accounts are removed
func (ws *workingSet) flush() {
	for _, loc := range ws.order {
		a := ws.accounts[loc]
		if a.InUse() {
			ws.trx.Put(storage.Pool.Accounts, loc[:], a.Pack())
		} else {
			ws.trx.Delete(storage.Pool.Accounts, loc[:])
		}
	}
}
