// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc serves the ledger to clients as JSON-RPC over TLS.
//
// Two services are registered:
//
//   Ledger  account queries, rent, blockhash, transaction submission,
//           airdrop and program account listing
//   Node    chain, slot and version information
package rpc
