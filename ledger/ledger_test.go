// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/fixtures"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/storage"
)

// program that writes its instruction data into the first account
type writer struct{}

func (writer) Process(ctx *ledger.InvokeContext, program address.Location, accounts []*ledger.AccountInfo, data []byte) error {
	if 0 == len(accounts) {
		return fault.ErrNotEnoughAccounts
	}
	copy(accounts[0].Data, data)
	ctx.Logf("wrote: %d", len(data))
	return nil
}

// program that always fails
type failing struct{}

func (failing) Process(ctx *ledger.InvokeContext, program address.Location, accounts []*ledger.AccountInfo, data []byte) error {
	return fault.ErrInvalidInstruction
}

// program that tries to move lamports out of an account
type thief struct{}

func (thief) Process(ctx *ledger.InvokeContext, program address.Location, accounts []*ledger.AccountInfo, data []byte) error {
	accounts[0].Lamports -= 1
	return nil
}

func submit(t *testing.T, l *ledger.Ledger, signer *account.PrivateKey, instructions ...ledger.Instruction) (*ledger.Receipt, error) {
	blockhash, err := l.RecentBlockhash()
	if nil != err {
		t.Fatalf("blockhash error: %s", err)
	}
	tx := ledger.NewTransaction(signer.Account().Location(), blockhash, instructions...)
	err = tx.Sign(signer)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return l.Submit(tx)
}

// allocate size bytes owned by program at the location derived from seed
func allocate(t *testing.T, l *ledger.Ledger, seed string, size int, program address.Location) address.Location {
	owner := fixtures.Owner.Account().Location()
	loc, err := address.Derive(owner, seed, program)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	lamports, _ := ledger.MinimumBalance(size)
	_, err = submit(t, l, fixtures.Owner, ledger.CreateAccountWithSeed(owner, loc, owner, seed, lamports, uint64(size), program))
	if nil != err {
		t.Fatalf("allocate error: %s", err)
	}
	return loc
}

func TestNewInvalidChain(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := ledger.New(ledger.Configuration{Chain: "nowhere"})
	assert.Equal(t, fault.ErrInvalidChain, err, "invalid chain")

	_, err = ledger.New(ledger.Configuration{Chain: chain.Local})
	assert.Equal(t, fault.ErrNotInitialised, err, "storage not initialised")
}

func TestAirdrop(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()

	receipt, err := l.Airdrop(owner, 1000)
	assert.Nil(t, err, "airdrop")
	assert.Equal(t, 1, len(receipt.Logs), "receipt logs")

	_, err = l.Airdrop(owner, 500)
	assert.Nil(t, err, "second airdrop")

	_, err = l.Airdrop(owner, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero airdrop")

	_, err = l.Airdrop(owner, 5000000001)
	assert.Equal(t, fault.ErrAirdropTooLarge, err, "large airdrop")

	_, err = l.Airdrop(owner, 1)
	assert.Nil(t, err, "third airdrop")

	// burst of three used
	_, err = l.Airdrop(owner, 1)
	assert.Equal(t, fault.ErrRateLimiting, err, "rate limited")

	acc, err := l.GetAccount(owner)
	assert.Nil(t, err, "account")
	assert.Equal(t, uint64(1501), acc.Lamports, "lamports")
	assert.Equal(t, ledger.SystemProgram, acc.Owner, "owner")
	assert.Equal(t, 0, len(acc.Data), "data")
}

func TestAirdropNotAllowed(t *testing.T) {
	dir, l := setup(t, chain.Postly)
	defer teardown(dir)

	_, err := l.Airdrop(fixtures.Owner.Account().Location(), 1000)
	assert.Equal(t, fault.ErrAirdropNotAllowed, err, "airdrop on live chain")
}

func TestGetAccountNotFound(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	_, err := l.GetAccount(fixtures.Other.Account().Location())
	assert.Equal(t, fault.ErrAccountNotFound, err, "absent")
}

func TestTransfer(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	other := fixtures.Other.Account().Location()

	_, err := l.Airdrop(owner, 1000)
	assert.Nil(t, err, "airdrop")

	receipt, err := submit(t, l, fixtures.Owner, ledger.Transfer(owner, other, 400))
	assert.Nil(t, err, "transfer")
	assert.Equal(t, l.Slot(), receipt.Slot, "slot")
	assert.NotNil(t, receipt.Signature, "signature")

	a, _ := l.GetAccount(owner)
	assert.Equal(t, uint64(600), a.Lamports, "from")
	b, _ := l.GetAccount(other)
	assert.Equal(t, uint64(400), b.Lamports, "to")

	_, err = submit(t, l, fixtures.Owner, ledger.Transfer(owner, other, 601))
	assert.True(t, errors.Is(err, fault.ErrInsufficientFunds), "overdraw: %s", err)

	// emptied accounts are removed
	_, err = submit(t, l, fixtures.Owner, ledger.Transfer(owner, other, 600))
	assert.Nil(t, err, "empty")
	_, err = l.GetAccount(owner)
	assert.Equal(t, fault.ErrAccountNotFound, err, "removed")
}

func TestCreateAccountWithSeed(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	_, err := l.Airdrop(owner, 100000000)
	assert.Nil(t, err, "airdrop")

	loc := allocate(t, l, "some_seed", 10, fixtures.ProgramID)

	acc, err := l.GetAccount(loc)
	assert.Nil(t, err, "allocated")
	minimum, _ := ledger.MinimumBalance(10)
	assert.Equal(t, minimum, acc.Lamports, "rent")
	assert.Equal(t, fixtures.ProgramID, acc.Owner, "owner")
	assert.Equal(t, make([]byte, 10), acc.Data, "zeroed")

	// re-allocation is rejected
	_, err = submit(t, l, fixtures.Owner, ledger.CreateAccountWithSeed(owner, loc, owner, "some_seed", minimum, 10, fixtures.ProgramID))
	assert.True(t, errors.Is(err, fault.ErrAccountAlreadyInUse), "again: %s", err)

	// wrong seed for the location
	_, err = submit(t, l, fixtures.Owner, ledger.CreateAccountWithSeed(owner, loc, owner, "other_seed", minimum, 10, fixtures.ProgramID))
	assert.True(t, errors.Is(err, fault.ErrAddressMismatch), "mismatch: %s", err)

	// under funded
	next, _ := address.Derive(owner, "next_seed", fixtures.ProgramID)
	_, err = submit(t, l, fixtures.Owner, ledger.CreateAccountWithSeed(owner, next, owner, "next_seed", minimum-1, 10, fixtures.ProgramID))
	assert.True(t, errors.Is(err, fault.ErrInsufficientFundsForRent), "rent: %s", err)

	// seed too long
	long := "0123456789012345678901234567890123456789"
	_, err = submit(t, l, fixtures.Owner, ledger.CreateAccountWithSeed(owner, next, owner, long, minimum, 10, fixtures.ProgramID))
	assert.True(t, errors.Is(err, fault.ErrInvalidSeed), "seed: %s", err)
}

func TestSubmitChecks(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	other := fixtures.Other.Account().Location()
	_, err := l.Airdrop(owner, 1000)
	assert.Nil(t, err, "airdrop")

	_, err = l.Submit(nil)
	assert.Equal(t, fault.ErrInvalidTransaction, err, "nil")

	blockhash, _ := l.RecentBlockhash()

	// unsigned
	tx := ledger.NewTransaction(owner, blockhash, ledger.Transfer(owner, other, 1))
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned")

	// signed by the wrong key
	err = tx.Sign(fixtures.Other)
	assert.Equal(t, fault.ErrMissingSignature, err, "wrong key")

	// signature over different content
	err = tx.Sign(fixtures.Owner)
	assert.Nil(t, err, "sign")
	tx.Instructions[0] = ledger.Transfer(owner, other, 2)
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered")

	// duplicate
	tx = ledger.NewTransaction(owner, blockhash, ledger.Transfer(owner, other, 3))
	assert.Nil(t, tx.Sign(fixtures.Owner), "sign")
	_, err = l.Submit(tx)
	assert.Nil(t, err, "first")
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrAlreadyProcessed, err, "duplicate")

	// unknown blockhash
	tx = ledger.NewTransaction(owner, ledger.Blockhash{1}, ledger.Transfer(owner, other, 4))
	assert.Nil(t, tx.Sign(fixtures.Owner), "sign")
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrBlockhashNotFound, err, "stale")

	// unknown program
	_, err = submit(t, l, fixtures.Owner, ledger.Instruction{Program: fixtures.ProgramID})
	assert.True(t, errors.Is(err, fault.ErrUnknownProgram), "program: %s", err)

	// too many
	many := make([]ledger.Instruction, ledger.MaximumInstructions+1)
	for i := range many {
		many[i] = ledger.Transfer(owner, other, 1)
	}
	_, err = submit(t, l, fixtures.Owner, many...)
	assert.Equal(t, fault.ErrTooManyInstructions, err, "too many")
}

func TestSubmitIsAtomic(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	other := fixtures.Other.Account().Location()
	_, err := l.Airdrop(owner, 1000)
	assert.Nil(t, err, "airdrop")

	assert.Nil(t, l.Register(fixtures.ProgramID, failing{}), "register")
	assert.Equal(t, fault.ErrProgramAlreadyRegistered, l.Register(fixtures.ProgramID, failing{}), "register twice")

	_, err = submit(t, l, fixtures.Owner,
		ledger.Transfer(owner, other, 100),
		ledger.Instruction{Program: fixtures.ProgramID},
	)
	assert.True(t, errors.Is(err, fault.ErrInvalidInstruction), "failed: %s", err)

	a, _ := l.GetAccount(owner)
	assert.Equal(t, uint64(1000), a.Lamports, "from unchanged")
	_, err = l.GetAccount(other)
	assert.Equal(t, fault.ErrAccountNotFound, err, "to untouched")
}

func TestProgramAccountRules(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	_, err := l.Airdrop(owner, 100000000)
	assert.Nil(t, err, "airdrop")

	writerID := fixtures.ProgramID
	thiefID := fixtures.Other.Account().Location()
	assert.Nil(t, l.Register(writerID, writer{}), "register writer")
	assert.Nil(t, l.Register(thiefID, thief{}), "register thief")

	mine := allocate(t, l, "mine", 4, writerID)
	theirs := allocate(t, l, "theirs", 4, thiefID)

	receipt, err := submit(t, l, fixtures.Owner, ledger.Instruction{
		Program:  writerID,
		Accounts: []ledger.AccountMeta{{Location: mine, Writable: true}},
		Data:     []byte{1, 2, 3, 4},
	})
	assert.Nil(t, err, "write own")
	assert.Contains(t, receipt.Logs, "wrote: 4", "logs")
	acc, _ := l.GetAccount(mine)
	assert.Equal(t, []byte{1, 2, 3, 4}, acc.Data, "written")

	_, err = submit(t, l, fixtures.Owner, ledger.Instruction{
		Program:  writerID,
		Accounts: []ledger.AccountMeta{{Location: mine, Writable: false}},
		Data:     []byte{5, 6, 7, 8},
	})
	assert.True(t, errors.Is(err, fault.ErrReadOnlyAccount), "read only: %s", err)

	_, err = submit(t, l, fixtures.Owner, ledger.Instruction{
		Program:  writerID,
		Accounts: []ledger.AccountMeta{{Location: theirs, Writable: true}},
		Data:     []byte{5, 6, 7, 8},
	})
	assert.True(t, errors.Is(err, fault.ErrExternalDataModified), "external: %s", err)

	_, err = submit(t, l, fixtures.Owner, ledger.Instruction{
		Program:  thiefID,
		Accounts: []ledger.AccountMeta{{Location: theirs, Writable: true}},
	})
	assert.True(t, errors.Is(err, fault.ErrReadOnlyAccount), "lamports: %s", err)

	_, err = submit(t, l, fixtures.Owner, ledger.Instruction{
		Program:  writerID,
		Accounts: []ledger.AccountMeta{{Location: owner, Signer: true, Writable: true}},
	})
	assert.Nil(t, err, "unchanged account")

	page, err := l.ProgramAccounts(writerID, address.Location{}, 100)
	assert.Nil(t, err, "program accounts")
	assert.True(t, page.Done, "single page")
	assert.Equal(t, address.Location{}, page.Next, "no next after done")
	assert.Equal(t, 1, len(page.Accounts), "count")
	assert.Equal(t, mine, page.Accounts[0].Location, "location")
	assert.Equal(t, []byte{1, 2, 3, 4}, page.Accounts[0].Account.Data, "data")

	_, err = l.ProgramAccounts(writerID, address.Location{}, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestProgramAccountsPaging(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	// the airdrop burst allows three system owned accounts
	funded := make(map[address.Location]struct{})
	for i := byte(1); i <= 3; i += 1 {
		loc := address.Location{0: i}
		_, err := l.Airdrop(loc, 1000)
		assert.Nil(t, err, "airdrop: %d", i)
		funded[loc] = struct{}{}
	}

	seen := make(map[address.Location]struct{})
	start := address.Location{}
	pages := 0
	for {
		page, err := l.ProgramAccounts(ledger.SystemProgram, start, 2)
		assert.Nil(t, err, "page: %d", pages)
		pages += 1
		for _, a := range page.Accounts {
			_, dup := seen[a.Location]
			assert.False(t, dup, "repeated: %s", a.Location)
			seen[a.Location] = struct{}{}
		}
		if page.Done {
			break
		}
		start = page.Next
	}
	assert.Equal(t, funded, seen, "all accounts visited once")
	assert.Equal(t, 2, pages, "one full page then a short one")
}

func TestAdvance(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	owner := fixtures.Owner.Account().Location()
	_, err := l.Airdrop(owner, 1000)
	assert.Nil(t, err, "airdrop")

	first, _ := l.RecentBlockhash()
	assert.Equal(t, uint64(0), l.Slot(), "genesis slot")

	slot, err := l.Advance()
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(1), slot, "slot")
	second, _ := l.RecentBlockhash()
	assert.NotEqual(t, first, second, "new blockhash")

	// older blockhash is still accepted
	tx := ledger.NewTransaction(owner, first, ledger.Transfer(owner, fixtures.Other.Account().Location(), 1))
	assert.Nil(t, tx.Sign(fixtures.Owner), "sign")
	receipt, err := l.Submit(tx)
	assert.Nil(t, err, "recent")
	assert.Equal(t, uint64(1), receipt.Slot, "receipt slot")

	for i := 0; i < 150; i += 1 {
		_, err := l.Advance()
		assert.Nil(t, err, "advance: %d", i)
	}

	tx = ledger.NewTransaction(owner, first, ledger.Transfer(owner, fixtures.Other.Account().Location(), 2))
	assert.Nil(t, tx.Sign(fixtures.Owner), "sign")
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrBlockhashNotFound, err, "expired")
}

func TestSlotSurvivesRestart(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	for i := 0; i < 3; i += 1 {
		_, err := l.Advance()
		assert.Nil(t, err, "advance")
	}
	hash, _ := l.RecentBlockhash()

	storage.Finalise()
	err := storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	assert.Nil(t, err, "reopen")

	again, err := ledger.New(ledger.Configuration{Chain: chain.Local})
	assert.Nil(t, err, "new")
	assert.Equal(t, uint64(3), again.Slot(), "slot")
	restored, _ := again.RecentBlockhash()
	assert.Equal(t, hash, restored, "blockhash")
}

func TestRun(t *testing.T) {
	dir, l := setup(t, chain.Local)
	defer teardown(dir)

	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		l.Run(nil, shutdown)
		close(done)
	}()
	close(shutdown)
	<-done
}
