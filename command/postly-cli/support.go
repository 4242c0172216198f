// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/command/postly-cli/configuration"
	"github.com/bitmark-inc/postly/command/postly-cli/rpccalls"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/keypair"
	"github.com/bitmark-inc/postly/util"
)

func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case chain.Postly, "live":
		return chain.Postly, nil
	case chain.Testing, "test":
		return chain.Testing, nil
	case chain.Local, "regression", "":
		return chain.Local, nil
	default:
		return "", fmt.Errorf("network: %q can only be postly/testing/local", network)
	}
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.ErrUnknownIdentity
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ErrMissingParameters
	}
	return util.CanonicalIPandPort(connect)
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.ErrMissingParameters
	}
	return description, nil
}

func checkProgram(program string) (string, error) {
	if "" == program {
		return "", fault.ErrMissingParameters
	}
	loc, err := address.FromBase58(program)
	if nil != err {
		return "", err
	}
	return loc.String(), nil
}

// blank means make a new one
func checkSeed(seed string, testnet bool) (string, error) {
	if "" == seed {
		return keypair.NewSeed(testnet)
	}
	if _, err := account.PrivateKeyFromBase58Seed(seed); nil != err {
		return "", err
	}
	return seed, nil
}

// identity name or account, blank is the default identity
func checkOwner(owner string, config *configuration.Configuration) (string, *account.Account, error) {
	if "" == owner {
		owner = config.DefaultIdentity
	}

	acc, err := config.Account(owner)
	if nil == err {
		return owner, acc, nil
	}

	acc, err = account.AccountFromBase58(owner)
	if nil != err {
		return "", nil, fault.ErrUnknownIdentity
	}
	return owner, acc, nil
}

// the identity selected by the global flag or the default one
func identityName(c globalStringer, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

type globalStringer interface {
	GlobalString(string) string
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}

// check if file exists, and whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
