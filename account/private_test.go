// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

func TestSeedRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, account.SeedKeyLength)

	seed, err := account.PackSeed(secret, true)
	assert.Nil(t, err, "pack")

	key1, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "unpack")
	assert.True(t, key1.IsTesting(), "test network")

	key2, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "unpack again")
	assert.Equal(t, key1.PrivateKeyBytes(), key2.PrivateKeyBytes(), "deterministic key")

	live, err := account.PackSeed(secret, false)
	assert.Nil(t, err, "pack live")
	key3, err := account.PrivateKeyFromBase58Seed(live)
	assert.Nil(t, err, "unpack live")
	assert.False(t, key3.IsTesting(), "live network")
	assert.Equal(t, key1.PrivateKeyBytes(), key3.PrivateKeyBytes(), "network flag does not change key")
}

func TestSignAndVerify(t *testing.T) {
	seed, err := account.PackSeed(bytes.Repeat([]byte{0x07}, account.SeedKeyLength), false)
	assert.Nil(t, err, "pack")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "unpack")

	message := []byte("Index: 1! My Post: hello!")
	signature := key.Sign(message)

	acc := key.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")

	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal")
	var s account.Signature
	assert.Nil(t, s.UnmarshalText(text), "unmarshal")
	assert.Equal(t, signature, s, "signature text round trip")
}

func TestInvalidSeeds(t *testing.T) {
	good, err := account.PackSeed(bytes.Repeat([]byte{0x01}, account.SeedKeyLength), false)
	assert.Nil(t, err, "pack")

	raw := util.FromBase58(good)

	badChecksum := append([]byte{}, raw...)
	badChecksum[len(badChecksum)-1] ^= 0xff

	badHeader := append([]byte{}, raw...)
	badHeader[0] = 0x00

	_, err = account.PrivateKeyFromBase58Seed("")
	assert.Equal(t, fault.ErrCannotDecodeSeed, err, "empty")

	_, err = account.PrivateKeyFromBase58Seed(util.ToBase58(raw[:20]))
	assert.Equal(t, fault.ErrInvalidSeedLength, err, "short")

	_, err = account.PrivateKeyFromBase58Seed(util.ToBase58(badHeader))
	assert.Equal(t, fault.ErrInvalidSeedHeader, err, "header")

	_, err = account.PrivateKeyFromBase58Seed(util.ToBase58(badChecksum))
	assert.Equal(t, fault.ErrWrongChecksum, err, "checksum")

	_, err = account.PackSeed([]byte{1}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short secret")
}
