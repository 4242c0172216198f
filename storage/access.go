// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/postly/fault"
)

// Access - for Database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a leveldb batch with a read-through cache of its contents
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - start a batch, only one may be open
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}
	d.inUse = true
	return nil
}

// Put - add a key/value to the batch
func (d *AccessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

// Delete - add a deletion to the batch
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and close it
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// Get - read pending data first then the database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, cached, deleted := d.cache.Get(string(key))
	if deleted {
		return nil, leveldb.ErrNotFound
	}
	if cached {
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Has - check pending data first then the database
func (d *AccessData) Has(key []byte) (bool, error) {
	_, cached, deleted := d.cache.Get(string(key))
	if deleted {
		return false, nil
	}
	if cached {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// InUse - true while a batch is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
