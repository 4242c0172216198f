// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - account storage and transaction execution
//
// the ledger holds accounts keyed by location, each with a balance,
// an owning program and a data area.  A transaction is an ordered
// list of instructions signed by every account marked as a signer;
// it either applies completely or not at all.
//
// programs are registered by id.  The system program (the zero
// location) creates and funds accounts, every other program may only
// change the data of writable accounts it owns and may not resize
// them.
//
// slots advance on a timer, each producing a new blockhash; a
// transaction must reference one of the recent blockhashes
package ledger
