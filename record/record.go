// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - binary format of the stored records
//
// all integers are little endian
//
//   Index: count(u32)                       4 bytes
//   Item:  length(u32) || payload(UTF-8)    4 + length bytes
//
// an unpack must consume the whole buffer
package record

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/bitmark-inc/postly/fault"
)

// IndexLength - packed size of an index
const IndexLength = 4

// lengthPrefix - size of a string length field
const lengthPrefix = 4

// Packed - type for packed records
type Packed []byte

// Index - number of items appended for an owner
type Index struct {
	Count uint32 `json:"count"`
}

// Item - a single post
type Item struct {
	Payload string `json:"payload"`
}

// Pack - index to bytes
func (index Index) Pack() Packed {
	buffer := make(Packed, IndexLength)
	binary.LittleEndian.PutUint32(buffer, index.Count)
	return buffer
}

// Pack - item to bytes
func (item Item) Pack() (Packed, error) {
	if uint64(len(item.Payload)) > math.MaxUint32 {
		return nil, fault.ErrPayloadTooLong
	}
	if !utf8.ValidString(item.Payload) {
		return nil, fault.ErrRecordInvalidUTF8
	}
	buffer := make(Packed, lengthPrefix, lengthPrefix+len(item.Payload))
	binary.LittleEndian.PutUint32(buffer, uint32(len(item.Payload)))
	return append(buffer, item.Payload...), nil
}

// PackedLength - size of the packed item
func (item Item) PackedLength() int {
	return lengthPrefix + len(item.Payload)
}

// UnpackIndex - bytes to index
func (record Packed) UnpackIndex() (*Index, error) {
	if len(record) < IndexLength {
		return nil, fault.ErrRecordTruncated
	}
	if len(record) > IndexLength {
		return nil, fault.ErrRecordTrailingBytes
	}
	return &Index{
		Count: binary.LittleEndian.Uint32(record),
	}, nil
}

// UnpackItem - bytes to item
func (record Packed) UnpackItem() (*Item, error) {
	if len(record) < lengthPrefix {
		return nil, fault.ErrRecordTruncated
	}
	n := uint64(binary.LittleEndian.Uint32(record))
	rest := uint64(len(record) - lengthPrefix)
	if n > rest {
		return nil, fault.ErrRecordTruncated
	}
	if n < rest {
		return nil, fault.ErrRecordTrailingBytes
	}
	payload := record[lengthPrefix:]
	if !utf8.Valid(payload) {
		return nil, fault.ErrRecordInvalidUTF8
	}
	return &Item{
		Payload: string(payload),
	}, nil
}
