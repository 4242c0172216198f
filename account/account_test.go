// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/fault"
)

// Test account functionality

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

type invalid struct {
	account string
	err     error
}

var testInvalidAccount = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount},
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCk", fault.ErrWrongChecksum},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: decode failed", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: network", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "%d: public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: round trip", index)

		loc := acc.Location()
		assert.True(t, bytes.Equal(test.publicKey, loc.Bytes()), "%d: location", index)
	}
}

func TestFromPublicKey(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromPublicKey(test.publicKey, test.testnet)
		assert.Nil(t, err, "%d: from public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: encoding", index)
	}

	_, err := account.FromPublicKey([]byte{1, 2, 3}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccount {
		_, err := account.AccountFromBase58(test.account)
		assert.Equal(t, test.err, err, "%d: %q", index, test.account)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner *account.Account `json:"owner"`
	}
	acc, err := account.AccountFromBase58(testAccount[1].base58Account)
	assert.Nil(t, err, "decode")

	buffer, err := json.Marshal(holder{Owner: acc})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+testAccount[1].base58Account+`"}`, string(buffer), "json")

	var h holder
	err = json.Unmarshal(buffer, &h)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, acc, h.Owner, "account")
}
