// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/fault"
)

// KeyPair - structure to hold the private key and the seed
// that was used to generate it
type KeyPair struct {
	Seed       string
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	Location   string `json:"location"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	seedCore := make([]byte, account.SeedKeyLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if account.SeedKeyLength != n {
		return "", fault.ErrInvalidKeyLength
	}
	return account.PackSeed(seedCore, test)
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := NewSeed(test)
	if err != nil {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	acc := privateKey.Account()

	keyPair := KeyPair{
		Seed:       seed,
		PrivateKey: privateKey,
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Account:    acc.String(),
		Location:   acc.Location().String(),
		PublicKey:  hex.EncodeToString(acc.PublicKeyBytes()),
		PrivateKey: hex.EncodeToString(privateKey.PrivateKeyBytes()),
	}

	return &rawKeyPair, &keyPair, nil
}
