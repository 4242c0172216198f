// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
)

// SystemProgram - the program that owns plain balance accounts
var SystemProgram = address.Location{}

// packed layout: lamports(8, big endian) ++ owner(32) ++ data
const accountHeaderLength = 8 + address.LocationLength

// Account - a ledger account
type Account struct {
	Lamports uint64           `json:"lamports"`
	Owner    address.Location `json:"owner"`
	Data     []byte           `json:"data"`
}

// KeyedAccount - an account with its location
type KeyedAccount struct {
	Location address.Location `json:"location"`
	Account  *Account         `json:"account"`
}

// AccountsPage - one window of an account scan
type AccountsPage struct {
	Accounts []KeyedAccount   `json:"accounts"`
	Next     address.Location `json:"next"` // start of the following window
	Done     bool             `json:"done"`
}

// InUse - an account that holds anything cannot be created again
func (account *Account) InUse() bool {
	return 0 != account.Lamports || 0 != len(account.Data) || account.Owner != SystemProgram
}

// Pack - account to storage bytes
func (account *Account) Pack() []byte {
	buffer := make([]byte, accountHeaderLength, accountHeaderLength+len(account.Data))
	binary.BigEndian.PutUint64(buffer, account.Lamports)
	copy(buffer[8:], account.Owner[:])
	return append(buffer, account.Data...)
}

// UnpackAccount - storage bytes to account
func UnpackAccount(buffer []byte) (*Account, error) {
	if len(buffer) < accountHeaderLength {
		return nil, fault.ErrRecordTruncated
	}
	account := &Account{
		Lamports: binary.BigEndian.Uint64(buffer),
		Data:     make([]byte, len(buffer)-accountHeaderLength),
	}
	copy(account.Owner[:], buffer[8:accountHeaderLength])
	copy(account.Data, buffer[accountHeaderLength:])
	return account, nil
}

// clone - deep copy
func (account *Account) clone() *Account {
	return &Account{
		Lamports: account.Lamports,
		Owner:    account.Owner,
		Data:     append([]byte{}, account.Data...),
	}
}
