// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/fixtures"
	"github.com/bitmark-inc/postly/storage"
)

// configure for testing
func setup(t *testing.T) string {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "postly-storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

// post test cleanup
func teardown(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
}

func TestInitialiseTwice(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	assert.True(t, storage.IsInitialised(), "initialised")
	err := storage.Initialise(filepath.Join(dir, "other.leveldb"), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestTransactionCommit(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "single transaction")

	trx.Put(storage.Pool.TestData, []byte("key-one"), []byte("data-one"))
	trx.PutN(storage.Pool.TestData, []byte("key-n"), 42)

	assert.Equal(t, []byte("data-one"), trx.Get(storage.Pool.TestData, []byte("key-one")), "pending visible inside")
	assert.True(t, trx.Has(storage.Pool.TestData, []byte("key-one")), "pending has")
	assert.Nil(t, storage.Pool.TestData.Get([]byte("key-one")), "pending invisible outside")
	assert.False(t, storage.Pool.TestData.Has([]byte("key-one")), "pending has outside")

	n, found := trx.GetN(storage.Pool.TestData, []byte("key-n"))
	assert.True(t, found, "pending n")
	assert.Equal(t, uint64(42), n, "pending n value")

	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")), "committed")
	n, found = storage.Pool.TestData.GetN([]byte("key-n"))
	assert.True(t, found, "committed n")
	assert.Equal(t, uint64(42), n, "committed n value")

	// pools are disjoint
	assert.Nil(t, storage.Pool.Accounts.Get([]byte("key-one")), "other pool")
}

func TestTransactionAbort(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("keep"), []byte("yes"))
	assert.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin again")
	trx.Put(storage.Pool.TestData, []byte("drop"), []byte("no"))
	trx.Delete(storage.Pool.TestData, []byte("keep"))
	assert.False(t, trx.Has(storage.Pool.TestData, []byte("keep")), "pending delete")
	assert.Nil(t, trx.Get(storage.Pool.TestData, []byte("keep")), "pending delete get")
	trx.Abort()

	assert.Equal(t, []byte("yes"), storage.Pool.TestData.Get([]byte("keep")), "delete discarded")
	assert.Nil(t, storage.Pool.TestData.Get([]byte("drop")), "put discarded")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	assert.Nil(t, trx.Get(storage.Pool.TestData, []byte("drop")), "cache cleared")
	trx.Abort()
}

func TestCursor(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	keys := []string{"key-five", "key-four", "key-one", "key-seven", "key-six", "key-three", "key-two"}

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	for _, k := range keys {
		trx.Put(storage.Pool.TestData, []byte(k), []byte("data-"+k))
	}
	trx.Put(storage.Pool.Accounts, []byte("not-test-data"), []byte("x"))
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.TestData.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch 1")
	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch 2")
	end, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch 3")
	assert.Equal(t, 0, len(end), "exhausted")

	all := append(first, rest...)
	assert.Equal(t, len(keys), len(all), "count")
	for i, e := range all {
		assert.Equal(t, keys[i], string(e.Key), "%d: key order", i)
		assert.Equal(t, "data-"+keys[i], string(e.Value), "%d: value", i)
	}

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	tail, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-s")).Fetch(10)
	assert.Nil(t, err, "seek")
	assert.Equal(t, 4, len(tail), "keys from key-s onwards")
	assert.Equal(t, "key-seven", string(tail[0].Key), "first key after seek")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func TestReopen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "postly-storage")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)
	name := filepath.Join(dir, "reopen.leveldb")

	assert.Nil(t, storage.Initialise(name, storage.ReadWrite), "create")
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("persist"), []byte("me"))
	assert.Nil(t, trx.Commit(), "commit")
	storage.Finalise()

	assert.Nil(t, storage.Pool.TestData.Get([]byte("persist")), "closed pool reads nothing")

	assert.Nil(t, storage.Initialise(name, storage.ReadOnly), "reopen read only")
	assert.Equal(t, []byte("me"), storage.Pool.TestData.Get([]byte("persist")), "persisted")
	storage.Finalise()
}
