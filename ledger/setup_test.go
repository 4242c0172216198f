// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/postly/fixtures"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/storage"
)

// configure for testing
func setup(t *testing.T, chainName string) (string, *ledger.Ledger) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "postly-ledger")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	l, err := ledger.New(ledger.Configuration{
		Chain:          chainName,
		AirdropMaximum: 5000000000,
		AirdropRate:    1,
		AirdropBurst:   3,
	})
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}
	return dir, l
}

// post test cleanup
func teardown(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
}
