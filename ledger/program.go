// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/postly/address"
)

// Program - handler for instructions addressed to a program id
//
// the handler may change Data of the accounts passed to it, the ledger
// checks the changes against the account rules after it returns
type Program interface {
	Process(ctx *InvokeContext, program address.Location, accounts []*AccountInfo, data []byte) error
}

// AccountInfo - an account as seen by a program
type AccountInfo struct {
	Location address.Location
	Owner    address.Location
	Lamports uint64
	Data     []byte
	Signer   bool
	Writable bool
}

// InvokeContext - per transaction state visible to programs
type InvokeContext struct {
	slot    uint64
	signers map[address.Location]struct{}
	logs    []string
}

// NewInvokeContext - context for a transaction signed by signers
func NewInvokeContext(slot uint64, signers []address.Location) *InvokeContext {
	ctx := &InvokeContext{
		slot:    slot,
		signers: make(map[address.Location]struct{}, len(signers)),
		logs:    []string{},
	}
	for _, s := range signers {
		ctx.signers[s] = struct{}{}
	}
	return ctx
}

// Slot - the slot the transaction executes in
func (ctx *InvokeContext) Slot() uint64 {
	return ctx.slot
}

// IsSigner - true if the transaction was signed by loc
func (ctx *InvokeContext) IsSigner(loc address.Location) bool {
	_, ok := ctx.signers[loc]
	return ok
}

// Logf - add a line to the transaction logs
func (ctx *InvokeContext) Logf(format string, arguments ...interface{}) {
	ctx.logs = append(ctx.logs, fmt.Sprintf(format, arguments...))
}

// Logs - lines logged so far
func (ctx *InvokeContext) Logs() []string {
	return ctx.logs
}
