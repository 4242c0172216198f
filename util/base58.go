// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode binary data using the bitcoin alphabet
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 - decode a base58 string, returns an empty slice
// on invalid input
func FromBase58(s string) []byte {
	b, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return b
}
