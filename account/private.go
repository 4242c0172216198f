// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// seed parameters
var (
	SeedHeader = []byte{0x5a, 0xfe, 0x01}

	seedNonce = [24]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	authSeedIndex = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

// seed layout: header(3) || network(1) || secret key(32) || checksum(4)
const (
	seedHeaderLength   = 3
	seedPrefixLength   = 1
	SeedKeyLength      = 32
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedPrefixLength + SeedKeyLength + seedChecksumLength
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromBase58Seed - this converts a Base58 encoded seed
// string and returns a private key
//
// the ed25519 key is generated from the secretbox of a fixed index
// under the seed's secret key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.ErrCannotDecodeSeed
	}

	if seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	if !bytes.Equal(SeedHeader, seed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	checksumStart := len(seed) - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrWrongChecksum
	}

	var secretKey [SeedKeyLength]byte
	copy(secretKey[:], seed[seedHeaderLength+seedPrefixLength:checksumStart])

	// first byte of prefix is test/live indication
	isTest := 0x01 == seed[seedHeaderLength]

	encrypted := secretbox.Seal([]byte{}, authSeedIndex[:], &seedNonce, &secretKey)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(encrypted))
	if nil != err {
		return nil, err
	}

	privateKey := &PrivateKey{
		Test:       isTest,
		PrivateKey: priv,
	}
	return privateKey, nil
}

// PackSeed - build the base58 seed from a secret key
func PackSeed(secretKey []byte, test bool) (string, error) {
	if SeedKeyLength != len(secretKey) {
		return "", fault.ErrInvalidKeyLength
	}
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := append([]byte{}, SeedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, secretKey...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)

	return util.ToBase58(packedSeed), nil
}

// Account - the public side of the key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.PrivateKey, message))
}

// IsTesting - return whether the private key is in test mode or not
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}
