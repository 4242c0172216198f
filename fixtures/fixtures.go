// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed identities so that test locations are reproducible
var (
	Owner   *account.PrivateKey
	Other   *account.PrivateKey
	Program *account.PrivateKey

	ProgramID address.Location
)

func init() {
	Owner = mustKey(0x11)
	Other = mustKey(0x22)
	Program = mustKey(0x33)
	ProgramID = Program.Account().Location()
}

func mustKey(b byte) *account.PrivateKey {
	seed, err := account.PackSeed(bytes.Repeat([]byte{b}, account.SeedKeyLength), true)
	if nil != err {
		panic(err)
	}
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
