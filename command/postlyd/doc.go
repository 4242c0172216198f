// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// postlyd - ledger node hosting the postly program
//
// reads a Lua configuration file, opens the leveldb account store,
// advances slots in the background and serves JSON-RPC over TLS
// to postly-cli
package main
