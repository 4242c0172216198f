// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	core "github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/rpc/ratelimit"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - the ledger operations served over RPC
type Ledger interface {
	GetAccount(address.Location) (*core.Account, error)
	MinimumBalance(int) (uint64, error)
	RecentBlockhash() (core.Blockhash, error)
	Slot() uint64
	Submit(*core.Transaction) (*core.Receipt, error)
	Airdrop(address.Location, uint64) (*core.Receipt, error)
	ProgramAccounts(address.Location, address.Location, int) (*core.AccountsPage, error)
}

// Service - type for RPC calls, registered as "Ledger"
type Service struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the service
func New(log *logger.L, l Ledger) *Service {
	return &Service{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Ledger:  l,
	}
}

// ---

// AccountArguments - arguments for Account
type AccountArguments struct {
	Location address.Location `json:"location"`
}

// AccountReply - result from Account
//
// absence is a normal reply so that clients can tell it apart from
// a failure
type AccountReply struct {
	Found   bool          `json:"found"`
	Account *core.Account `json:"account,omitempty"`
}

// Account - read the committed state of an account
func (s *Service) Account(arguments *AccountArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	acc, err := s.Ledger.GetAccount(arguments.Location)
	if fault.IsErrNotFound(err) {
		reply.Found = false
		return nil
	} else if nil != err {
		return err
	}

	reply.Found = true
	reply.Account = acc
	return nil
}

// ---

// MinimumBalanceArguments - arguments for MinimumBalance
type MinimumBalanceArguments struct {
	Size int `json:"size"`
}

// MinimumBalanceReply - result from MinimumBalance
type MinimumBalanceReply struct {
	Lamports uint64 `json:"lamports,string"`
}

// MinimumBalance - lamports needed to create an account of Size bytes
func (s *Service) MinimumBalance(arguments *MinimumBalanceArguments, reply *MinimumBalanceReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	lamports, err := s.Ledger.MinimumBalance(arguments.Size)
	if nil != err {
		return err
	}
	reply.Lamports = lamports
	return nil
}

// ---

// RecentBlockhashArguments - empty arguments for RecentBlockhash
type RecentBlockhashArguments struct{}

// RecentBlockhashReply - result from RecentBlockhash
type RecentBlockhashReply struct {
	Blockhash core.Blockhash `json:"blockhash"`
	Slot      uint64         `json:"slot,string"`
}

// RecentBlockhash - blockhash to put in a new transaction
func (s *Service) RecentBlockhash(_ *RecentBlockhashArguments, reply *RecentBlockhashReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	blockhash, err := s.Ledger.RecentBlockhash()
	if nil != err {
		return err
	}
	reply.Blockhash = blockhash
	reply.Slot = s.Ledger.Slot()
	return nil
}

// ---

// SubmitArguments - arguments for Submit
type SubmitArguments struct {
	Transaction *core.Transaction `json:"transaction"`
}

// SubmitReply - result from Submit
type SubmitReply struct {
	Receipt *core.Receipt `json:"receipt"`
}

// Submit - apply a signed transaction
func (s *Service) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Transaction {
		return fault.ErrInvalidTransaction
	}

	receipt, err := s.Ledger.Submit(arguments.Transaction)
	if nil != err {
		s.Log.Infof("submit: payer: %s  error: %s", arguments.Transaction.Payer, err)
		return err
	}

	s.Log.Debugf("submit: tx: %s  slot: %d", receipt.Signature, receipt.Slot)
	reply.Receipt = receipt
	return nil
}

// ---

// AirdropArguments - arguments for Airdrop
type AirdropArguments struct {
	Location address.Location `json:"location"`
	Lamports uint64           `json:"lamports,string"`
}

// AirdropReply - result from Airdrop
type AirdropReply struct {
	Receipt *core.Receipt `json:"receipt"`
}

// Airdrop - request test funds
func (s *Service) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	receipt, err := s.Ledger.Airdrop(arguments.Location, arguments.Lamports)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	return nil
}

// ---

// MaximumAccountsCount - largest scan window for one ProgramAccounts call
const MaximumAccountsCount = 100

// ProgramAccountsArguments - arguments for ProgramAccounts
type ProgramAccountsArguments struct {
	Program address.Location `json:"program"`
	Start   address.Location `json:"start"` // Next from the previous reply
	Count   int              `json:"count"` // accounts to scan
}

// ProgramAccountsReply - result from ProgramAccounts
type ProgramAccountsReply struct {
	Accounts []core.KeyedAccount `json:"accounts"`
	Next     address.Location    `json:"next"`
	Done     bool                `json:"done"`
}

// ProgramAccounts - one window of the accounts owned by a program
//
// the limiter is charged for every account scanned
func (s *Service) ProgramAccounts(arguments *ProgramAccountsArguments, reply *ProgramAccountsReply) error {

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, MaximumAccountsCount); nil != err {
		return err
	}

	page, err := s.Ledger.ProgramAccounts(arguments.Program, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Accounts = page.Accounts
	reply.Next = page.Next
	reply.Done = page.Done
	return nil
}
