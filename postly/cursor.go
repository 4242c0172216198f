// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package postly

import (
	"github.com/bitmark-inc/postly/address"
)

// Cursor - iterate over an owner's items
//
//   cursor, err := store.ListAll(owner)
//   for cursor.Next() {
//       post := cursor.Post()
//   }
//   err = cursor.Err()
//
// iteration stops at the first item that cannot be read
type Cursor struct {
	store *Store
	owner address.Location
	count uint32
	next  uint32
	post  Post
	err   error
}

// Next - read the next item, false at the end or on error
func (c *Cursor) Next() bool {
	if nil != c.err || c.next >= c.count {
		return false
	}

	id := c.next
	item, err := c.store.Get(c.owner, id)
	if nil != err {
		c.err = err
		return false
	}

	c.post = Post{
		ID:      id,
		Payload: item.Payload,
	}
	c.next += 1
	return true
}

// Post - the item read by the last successful Next
func (c *Cursor) Post() Post {
	return c.post
}

// Err - the failure that stopped iteration
func (c *Cursor) Err() error {
	return c.err
}

// Count - number of items in the index when the cursor was created
func (c *Cursor) Count() uint32 {
	return c.count
}

// Reset - restart from the first item
func (c *Cursor) Reset() {
	c.next = 0
	c.post = Post{}
	c.err = nil
}
