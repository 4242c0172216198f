// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
)

// systemProgram - account creation and transfers
type systemProgram struct{}

// Process - executes directly against the account infos, ownership
// rules do not apply to the system program
func (systemProgram) Process(ctx *InvokeContext, program address.Location, accounts []*AccountInfo, data []byte) error {

	ins, err := unpackSystem(data)
	if nil != err {
		return err
	}

	if len(accounts) < 2 {
		return fault.ErrNotEnoughAccounts
	}
	from := accounts[0]
	to := accounts[1]

	if !from.Signer {
		return fault.ErrMissingSignature
	}
	if !from.Writable || !to.Writable {
		return fault.ErrReadOnlyAccount
	}

	// only plain balance accounts can fund
	if from.Owner != SystemProgram || 0 != len(from.Data) {
		return fault.ErrIncorrectOwner
	}

	switch i := ins.(type) {

	case *createAccountWithSeed:
		if !ctx.IsSigner(i.base) {
			return fault.ErrMissingSignature
		}

		expected, err := address.Derive(i.base, i.seed, i.owner)
		if nil != err {
			return err
		}
		if expected != to.Location {
			return fault.ErrAddressMismatch
		}

		if 0 != to.Lamports || 0 != len(to.Data) || to.Owner != SystemProgram {
			return fault.ErrAccountAlreadyInUse
		}

		if i.space > MaximumAccountSize {
			return fault.ErrAccountDataSize
		}
		minimum, err := MinimumBalance(int(i.space))
		if nil != err {
			return err
		}
		if i.lamports < minimum {
			return fault.ErrInsufficientFundsForRent
		}

		if from.Location == to.Location {
			return fault.ErrAccountAlreadyInUse
		}
		if from.Lamports < i.lamports {
			return fault.ErrInsufficientFunds
		}

		from.Lamports -= i.lamports
		to.Lamports = i.lamports
		to.Owner = i.owner
		to.Data = make([]byte, i.space)

		ctx.Logf("create account: %s space: %d owner: %s", to.Location, i.space, i.owner)
		return nil

	case *transfer:
		if from.Lamports < i.lamports {
			return fault.ErrInsufficientFunds
		}
		if from.Location == to.Location {
			return nil
		}
		if to.Lamports+i.lamports < to.Lamports {
			return fault.ErrInvalidCount
		}
		from.Lamports -= i.lamports
		to.Lamports += i.lamports
		return nil

	default:
		return fault.ErrUnknownInstruction
	}
}
