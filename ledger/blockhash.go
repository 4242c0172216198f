// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// BlockhashLength - size of a blockhash in bytes
const BlockhashLength = 32

// Blockhash - identifies a slot, transactions carry a recent one
type Blockhash [BlockhashLength]byte

// genesisBlockhash - the blockhash of slot zero for a chain
func genesisBlockhash(chainName string) Blockhash {
	return Blockhash(sha3.Sum256([]byte("postly genesis " + chainName)))
}

// next - the blockhash that follows this one at slot
func (b Blockhash) next(slot uint64) Blockhash {
	buffer := make([]byte, BlockhashLength+8)
	copy(buffer, b[:])
	binary.BigEndian.PutUint64(buffer[BlockhashLength:], slot)
	return Blockhash(sha3.Sum256(buffer))
}

// String - base58 text
func (b Blockhash) String() string {
	return util.ToBase58(b[:])
}

// MarshalText - base58 for JSON
func (b Blockhash) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText - from base58
func (b *Blockhash) UnmarshalText(s []byte) error {
	buffer := util.FromBase58(string(s))
	if BlockhashLength != len(buffer) {
		return fault.ErrInvalidBlockhash
	}
	copy(b[:], buffer)
	return nil
}

// recent blockhashes that transactions may reference
const maximumRecentBlockhashes = 150

type blockRing struct {
	slot   uint64
	hashes []Blockhash
	next   int
}

func newBlockRing(slot uint64, current Blockhash) *blockRing {
	r := &blockRing{
		slot:   slot,
		hashes: make([]Blockhash, 0, maximumRecentBlockhashes),
	}
	r.hashes = append(r.hashes, current)
	r.next = 1
	return r
}

// latest - current blockhash
func (r *blockRing) latest() Blockhash {
	return r.hashes[(r.next+len(r.hashes)-1)%len(r.hashes)]
}

// push - advance to the next slot
func (r *blockRing) push() (uint64, Blockhash) {
	r.slot += 1
	h := r.latest().next(r.slot)
	if len(r.hashes) < maximumRecentBlockhashes {
		r.hashes = append(r.hashes, h)
		r.next = len(r.hashes) % maximumRecentBlockhashes
	} else {
		r.hashes[r.next] = h
		r.next = (r.next + 1) % maximumRecentBlockhashes
	}
	return r.slot, h
}

// has - true if the blockhash is recent
func (r *blockRing) has(b Blockhash) bool {
	for _, h := range r.hashes {
		if h == b {
			return true
		}
	}
	return false
}
