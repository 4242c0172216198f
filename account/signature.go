// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// Signature - the type for an ed25519 signature
type Signature []byte

// SignatureFromBase58 - decode the text form of a signature
func SignatureFromBase58(s string) (Signature, error) {
	b := util.FromBase58(s)
	if ed25519.SignatureSize != len(b) {
		return nil, fault.ErrInvalidSignature
	}
	return Signature(b), nil
}

// String - base58 text, this is also the transaction id
func (signature Signature) String() string {
	return util.ToBase58(signature)
}

// GoString - for the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + util.ToBase58(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(util.ToBase58(signature)), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromBase58(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
