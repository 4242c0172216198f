// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter tracks open client connections.
package counter

import (
	"sync/atomic"
)

// Counter - connection gauge shared between a listener and the node service
type Counter uint64

// Increment - one more open connection, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - one connection closed, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current number of open connections
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
