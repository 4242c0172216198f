// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/fixtures"
	"github.com/bitmark-inc/postly/keypair"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/storage"
)

func TestGenerateProgramID(t *testing.T) {
	var buffer bytes.Buffer
	err := generateProgramID(&buffer, true)
	assert.Nil(t, err, "wrong generate")

	raw := keypair.RawKeyPair{}
	err = json.Unmarshal(buffer.Bytes(), &raw)
	assert.Nil(t, err, "wrong JSON")

	loc, err := address.FromBase58(raw.Location)
	assert.Nil(t, err, "wrong location")

	again, _, err := keypair.MakeRawKeyPairFromSeed(raw.Seed)
	assert.Nil(t, err, "wrong seed")
	assert.Equal(t, loc.String(), again.Location, "seed does not reproduce the location")
}

func TestDumpAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "postlyd-dump")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	l, err := ledger.New(ledger.Configuration{Chain: chain.Local})
	if nil != err {
		t.Fatalf("ledger error: %s", err)
	}

	owner := fixtures.Owner.Account().Location()
	_, err = l.Airdrop(owner, 12345)
	assert.Nil(t, err, "wrong airdrop")

	var buffer bytes.Buffer
	err = dumpAccount(&buffer, l, owner.String())
	assert.Nil(t, err, "wrong dump")

	dumped := struct {
		Location address.Location `json:"location"`
		Lamports uint64           `json:"lamports"`
		Owner    address.Location `json:"owner"`
	}{}
	err = json.Unmarshal(buffer.Bytes(), &dumped)
	assert.Nil(t, err, "wrong JSON")
	assert.Equal(t, owner, dumped.Location, "wrong location")
	assert.Equal(t, uint64(12345), dumped.Lamports, "wrong lamports")
	assert.Equal(t, ledger.SystemProgram, dumped.Owner, "wrong owner")

	other := fixtures.Other.Account().Location()
	err = dumpAccount(&buffer, l, other.String())
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %s", err)

	err = dumpAccount(&buffer, l, "0OIl")
	assert.NotNil(t, err, "invalid address accepted")
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.crt", getFilenameWithDirectory(nil, "rpc.crt"), "wrong default")
	assert.Equal(t, filepath.Join("/tmp", "rpc.key"), getFilenameWithDirectory([]string{"/tmp", "10.0.0.1"}, "rpc.key"), "wrong directory")
}
