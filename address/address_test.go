// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
)

var (
	owner   = address.Location{0x01, 0x02, 0x03}
	other   = address.Location{0x09}
	program = address.Location{0xfe, 0xed}
)

func TestDeriveIsSHA3(t *testing.T) {
	loc, err := address.Derive(owner, "postly_index", program)
	assert.Nil(t, err, "derive")

	buffer := append([]byte{}, owner[:]...)
	buffer = append(buffer, "postly_index"...)
	buffer = append(buffer, program[:]...)
	expected := sha3.Sum256(buffer)

	assert.Equal(t, address.Location(expected), loc, "sha3(owner||seed||program)")
}

func TestDeriveDeterministic(t *testing.T) {
	a, err := address.Index(owner, program)
	assert.Nil(t, err, "first")
	b, err := address.Index(owner, program)
	assert.Nil(t, err, "second")
	assert.Equal(t, a, b, "same inputs give same location")

	c, err := address.Index(other, program)
	assert.Nil(t, err, "other owner")
	assert.NotEqual(t, a, c, "owners are disjoint")

	d, err := address.Index(owner, other)
	assert.Nil(t, err, "other program")
	assert.NotEqual(t, a, d, "programs are disjoint")
}

func TestItemLocations(t *testing.T) {
	assert.Equal(t, "postly_account_0", address.ItemSeed(0), "seed 0")
	assert.Equal(t, "postly_account_17", address.ItemSeed(17), "seed 17")
	assert.Equal(t, "postly_account_4294967295", address.ItemSeed(^uint32(0)), "largest seed")

	seen := make(map[address.Location]uint32)
	for i := uint32(0); i < 100; i += 1 {
		loc, err := address.Item(owner, i, program)
		assert.Nil(t, err, "item %d", i)
		if j, ok := seen[loc]; ok {
			t.Fatalf("item %d collides with item %d", i, j)
		}
		seen[loc] = i

		again, err := address.Derive(owner, address.ItemSeed(i), program)
		assert.Nil(t, err, "derive %d", i)
		assert.Equal(t, loc, again, "item %d", i)
	}

	index, err := address.Index(owner, program)
	assert.Nil(t, err, "index")
	_, ok := seen[index]
	assert.False(t, ok, "index is distinct from items")
}

func TestSeedLength(t *testing.T) {
	_, err := address.Derive(owner, strings.Repeat("x", address.MaximumSeedLength), program)
	assert.Nil(t, err, "maximum length accepted")

	_, err = address.Derive(owner, strings.Repeat("x", address.MaximumSeedLength+1), program)
	assert.Equal(t, fault.ErrInvalidSeed, err, "too long")
}

func TestText(t *testing.T) {
	loc, err := address.Index(owner, program)
	assert.Nil(t, err, "derive")

	decoded, err := address.FromBase58(loc.String())
	assert.Nil(t, err, "decode")
	assert.Equal(t, loc, decoded, "round trip")

	buffer, err := json.Marshal(map[string]address.Location{"l": loc})
	assert.Nil(t, err, "json")

	var m map[string]address.Location
	assert.Nil(t, json.Unmarshal(buffer, &m), "unmarshal")
	assert.Equal(t, loc, m["l"], "json round trip")

	_, err = address.FromBase58("")
	assert.Equal(t, fault.ErrInvalidLocation, err, "empty")

	_, err = address.FromBase58("3MvykBZzN")
	assert.Equal(t, fault.ErrInvalidLocationLength, err, "short")

	assert.True(t, address.Location{}.IsZero(), "zero")
	assert.False(t, loc.IsZero(), "not zero")
}
