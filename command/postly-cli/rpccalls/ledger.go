// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	core "github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/rpc/ledger"
)

// GetAccount - fetch one account, absent accounts give fault.ErrAccountNotFound
func (client *Client) GetAccount(loc address.Location) (*core.Account, error) {
	args := ledger.AccountArguments{
		Location: loc,
	}
	client.printJson("Account Request", args)

	var reply ledger.AccountReply
	if err := client.client.Call("Ledger.Account", &args, &reply); nil != err {
		return nil, err
	}
	client.printJson("Account Reply", reply)

	if !reply.Found || nil == reply.Account {
		return nil, fault.ErrAccountNotFound
	}
	return reply.Account, nil
}

// MinimumBalance - rent exempt balance for an account of size bytes
func (client *Client) MinimumBalance(size int) (uint64, error) {
	args := ledger.MinimumBalanceArguments{
		Size: size,
	}

	var reply ledger.MinimumBalanceReply
	if err := client.client.Call("Ledger.MinimumBalance", &args, &reply); nil != err {
		return 0, err
	}
	return reply.Lamports, nil
}

// RecentBlockhash - blockhash to sign the next transaction with
func (client *Client) RecentBlockhash() (core.Blockhash, error) {
	var reply ledger.RecentBlockhashReply
	if err := client.client.Call("Ledger.RecentBlockhash", &ledger.RecentBlockhashArguments{}, &reply); nil != err {
		return core.Blockhash{}, err
	}
	return reply.Blockhash, nil
}

// Submit - send a signed transaction
func (client *Client) Submit(tx *core.Transaction) (*core.Receipt, error) {
	args := ledger.SubmitArguments{
		Transaction: tx,
	}
	client.printJson("Submit Request", args)

	var reply ledger.SubmitReply
	if err := client.client.Call("Ledger.Submit", &args, &reply); nil != err {
		return nil, err
	}
	client.printJson("Submit Reply", reply)

	return reply.Receipt, nil
}

// Airdrop - request test funds
func (client *Client) Airdrop(loc address.Location, lamports uint64) (*core.Receipt, error) {
	args := ledger.AirdropArguments{
		Location: loc,
		Lamports: lamports,
	}
	client.printJson("Airdrop Request", args)

	var reply ledger.AirdropReply
	if err := client.client.Call("Ledger.Airdrop", &args, &reply); nil != err {
		return nil, err
	}
	client.printJson("Airdrop Reply", reply)

	return reply.Receipt, nil
}

// ProgramAccounts - every account owned by a program, gathered one
// scan window at a time
func (client *Client) ProgramAccounts(program address.Location) ([]core.KeyedAccount, error) {
	args := ledger.ProgramAccountsArguments{
		Program: program,
		Count:   ledger.MaximumAccountsCount,
	}

	accounts := make([]core.KeyedAccount, 0)
	for {
		var reply ledger.ProgramAccountsReply
		if err := client.client.Call("Ledger.ProgramAccounts", &args, &reply); nil != err {
			return nil, err
		}
		accounts = append(accounts, reply.Accounts...)
		if reply.Done {
			return accounts, nil
		}
		args.Start = reply.Next
	}
}
