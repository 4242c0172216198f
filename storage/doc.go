// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. location     = 32 byte ledger address
// 4. signature    = 64 byte ed25519 transaction signature
// 5. slot         = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ location              - ledger account
//                                data: lamports(8) ++ owner program(32) ++ data
//
// Signatures:
//
//   S ++ signature             - processed transactions
//                                data: slot
//
// Chain:
//
//   C ++ "slot"                - current slot
//                                data: slot ++ blockhash(32)
//
// Testing:
//   Z ++ key                   - testing data
//
// All writes go through the single Transaction: puts are batched and
// held in a read-through cache until Commit writes the batch
// atomically, Abort discards them
package storage
