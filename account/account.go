// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - owner identities
//
// an account is an ed25519 public key plus a network flag, its text
// form is base58(keyVariant || publicKey || checksum) where the
// checksum is the first four bytes of sha3-256 over the preceding
// bytes
package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode  = 0x01
	testKeyCode    = 0x02
	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 owner identity
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// FromPublicKey - wrap a raw public key
func FromPublicKey(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Account{
		Test:      test,
		PublicKey: append(ed25519.PublicKey{}, publicKey...),
	}, nil
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrWrongChecksum
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return FromPublicKey(accountBytes[keyVariantLength:], isTest)
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// Location - the ledger address of the account itself
func (account *Account) Location() address.Location {
	var loc address.Location
	copy(loc[:], account.PublicKey)
	return loc
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
