// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - an atomic group of writes across pools
//
// reads inside the transaction see its own pending writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) *transactionData {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(handle.prefixKey(key), buffer)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.Delete(handle.prefixKey(key))
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transactionData) Has(handle *PoolHandle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}
