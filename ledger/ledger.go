// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/storage"
)

// defaults
const (
	DefaultSlotInterval   = 400 * time.Millisecond
	DefaultAirdropMaximum = 10 * 1000000000
	DefaultAirdropRate    = 1.0
	DefaultAirdropBurst   = 5
)

// key of the chain state in the Chain pool
var slotKey = []byte("slot")

// Configuration - ledger settings
type Configuration struct {
	Chain          string
	SlotInterval   time.Duration
	AirdropMaximum uint64
	AirdropRate    float64 // requests per second
	AirdropBurst   int
}

// Ledger - accounts, programs and the transaction processor
type Ledger struct {
	sync.Mutex

	log      *logger.L
	chain    string
	testing  bool
	interval time.Duration
	programs map[address.Location]Program
	recent   *blockRing

	airdropMaximum uint64
	airdropLimiter *rate.Limiter
}

// New - open the ledger over the initialised storage
func New(configuration Configuration) (*Ledger, error) {

	if !chain.Valid(configuration.Chain) {
		return nil, fault.ErrInvalidChain
	}
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}

	log := logger.New("ledger")

	interval := configuration.SlotInterval
	if interval <= 0 {
		interval = DefaultSlotInterval
	}
	maximum := configuration.AirdropMaximum
	if 0 == maximum {
		maximum = DefaultAirdropMaximum
	}
	r := configuration.AirdropRate
	if r <= 0 {
		r = DefaultAirdropRate
	}
	burst := configuration.AirdropBurst
	if burst <= 0 {
		burst = DefaultAirdropBurst
	}

	l := &Ledger{
		log:      log,
		chain:    configuration.Chain,
		testing:  chain.IsTesting(configuration.Chain),
		interval: interval,
		programs: map[address.Location]Program{
			SystemProgram: systemProgram{},
		},
		airdropMaximum: maximum,
		airdropLimiter: rate.NewLimiter(rate.Limit(r), burst),
	}

	slot, hash, err := l.loadSlot()
	if nil != err {
		return nil, err
	}
	l.recent = newBlockRing(slot, hash)

	log.Infof("chain: %s  slot: %d  blockhash: %s", l.chain, slot, hash)
	return l, nil
}

// read the chain state, creating the genesis slot on first use
func (l *Ledger) loadSlot() (uint64, Blockhash, error) {
	raw := storage.Pool.Chain.Get(slotKey)
	if nil != raw {
		if 8+BlockhashLength != len(raw) {
			return 0, Blockhash{}, fault.ErrRecordTruncated
		}
		var hash Blockhash
		copy(hash[:], raw[8:])
		return binary.BigEndian.Uint64(raw), hash, nil
	}

	hash := genesisBlockhash(l.chain)
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, Blockhash{}, err
	}
	putSlot(trx, 0, hash)
	err = trx.Commit()
	if nil != err {
		return 0, Blockhash{}, err
	}
	return 0, hash, nil
}

// slot(8) ++ blockhash(32)
func putSlot(trx storage.Transaction, slot uint64, hash Blockhash) {
	buffer := make([]byte, 8, 8+BlockhashLength)
	binary.BigEndian.PutUint64(buffer, slot)
	trx.Put(storage.Pool.Chain, slotKey, append(buffer, hash[:]...))
}

// Register - attach a program handler to a program id
func (l *Ledger) Register(program address.Location, handler Program) error {
	l.Lock()
	defer l.Unlock()

	if _, ok := l.programs[program]; ok {
		return fault.ErrProgramAlreadyRegistered
	}
	l.programs[program] = handler
	l.log.Infof("registered program: %s", program)
	return nil
}

// Chain - name of the chain
func (l *Ledger) Chain() string {
	return l.chain
}

// GetAccount - committed state of an account
func (l *Ledger) GetAccount(loc address.Location) (*Account, error) {
	buffer := storage.Pool.Accounts.Get(loc[:])
	if nil == buffer {
		return nil, fault.ErrAccountNotFound
	}
	return UnpackAccount(buffer)
}

// MinimumBalance - balance needed to create an account of size bytes
func (l *Ledger) MinimumBalance(size int) (uint64, error) {
	return MinimumBalance(size)
}

// RecentBlockhash - the latest blockhash
func (l *Ledger) RecentBlockhash() (Blockhash, error) {
	l.Lock()
	defer l.Unlock()
	return l.recent.latest(), nil
}

// Slot - the current slot
func (l *Ledger) Slot() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.recent.slot
}

// Submit - verify and apply a transaction atomically
func (l *Ledger) Submit(tx *Transaction) (*Receipt, error) {
	if nil == tx || 0 == len(tx.Instructions) {
		return nil, fault.ErrInvalidTransaction
	}
	if len(tx.Instructions) > MaximumInstructions {
		return nil, fault.ErrTooManyInstructions
	}

	err := tx.Verify()
	if nil != err {
		return nil, err
	}
	id := tx.ID()

	l.Lock()
	defer l.Unlock()

	if !l.recent.has(tx.Blockhash) {
		return nil, fault.ErrBlockhashNotFound
	}
	if storage.Pool.Signatures.Has(id) {
		return nil, fault.ErrAlreadyProcessed
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	ws := newWorkingSet(trx)
	ctx := NewInvokeContext(l.recent.slot, tx.Signers())

	for i, ins := range tx.Instructions {
		err := l.execute(ctx, ws, ins)
		if nil != err {
			trx.Abort()
			l.log.Warnf("tx: %s  instruction: %d  error: %s", id, i, err)
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}

	ws.flush()
	trx.PutN(storage.Pool.Signatures, id, l.recent.slot)
	err = trx.Commit()
	if nil != err {
		l.log.Errorf("tx: %s  commit error: %s", id, err)
		return nil, err
	}

	l.log.Debugf("tx: %s  slot: %d  instructions: %d", id, l.recent.slot, len(tx.Instructions))

	return &Receipt{
		Signature: id,
		Slot:      l.recent.slot,
		Logs:      ctx.Logs(),
	}, nil
}

// execute - run one instruction against the working set
func (l *Ledger) execute(ctx *InvokeContext, ws *workingSet, ins Instruction) error {

	handler, ok := l.programs[ins.Program]
	if !ok {
		return fault.ErrUnknownProgram
	}

	// one info per distinct account so that repeated metas alias
	infos := make([]*AccountInfo, len(ins.Accounts))
	byLocation := make(map[address.Location]*AccountInfo, len(ins.Accounts))
	before := make(map[address.Location]*Account, len(ins.Accounts))
	for i, meta := range ins.Accounts {
		if info, ok := byLocation[meta.Location]; ok {
			info.Writable = info.Writable || meta.Writable
			infos[i] = info
			continue
		}
		if meta.Signer && !ctx.IsSigner(meta.Location) {
			return fault.ErrMissingSignature
		}
		a := ws.get(meta.Location)
		before[meta.Location] = a
		info := &AccountInfo{
			Location: meta.Location,
			Owner:    a.Owner,
			Lamports: a.Lamports,
			Data:     append([]byte{}, a.Data...),
			Signer:   meta.Signer,
			Writable: meta.Writable,
		}
		byLocation[meta.Location] = info
		infos[i] = info
	}

	ctx.Logf("Program %s invoke", ins.Program)
	err := handler.Process(ctx, ins.Program, infos, ins.Data)
	if nil != err {
		ctx.Logf("Program %s failed: %s", ins.Program, err)
		return err
	}

	// check the changes then write them back
	system := SystemProgram == ins.Program
	for loc, info := range byLocation {
		a := before[loc]
		changed := a.Lamports != info.Lamports || a.Owner != info.Owner || !bytes.Equal(a.Data, info.Data)
		if !changed {
			continue
		}
		if !info.Writable {
			return fault.ErrReadOnlyAccount
		}
		if !system {
			if a.Lamports != info.Lamports || a.Owner != info.Owner {
				return fault.ErrReadOnlyAccount
			}
			if a.Owner != ins.Program {
				return fault.ErrExternalDataModified
			}
			if len(a.Data) != len(info.Data) {
				return fault.ErrAccountDataSize
			}
		}
		ws.put(loc, &Account{
			Lamports: info.Lamports,
			Owner:    info.Owner,
			Data:     info.Data,
		})
	}
	ctx.Logf("Program %s success", ins.Program)
	return nil
}

// Airdrop - credit test funds
func (l *Ledger) Airdrop(to address.Location, lamports uint64) (*Receipt, error) {
	if !l.testing {
		return nil, fault.ErrAirdropNotAllowed
	}
	if 0 == lamports {
		return nil, fault.ErrInvalidCount
	}
	if lamports > l.airdropMaximum {
		return nil, fault.ErrAirdropTooLarge
	}
	if !l.airdropLimiter.Allow() {
		return nil, fault.ErrRateLimiting
	}

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	ws := newWorkingSet(trx)
	a := ws.get(to).clone()
	if a.Lamports+lamports < a.Lamports {
		trx.Abort()
		return nil, fault.ErrInvalidCount
	}
	a.Lamports += lamports
	ws.put(to, a)
	ws.flush()

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	l.log.Infof("airdrop: %d lamports to: %s", lamports, to)

	return &Receipt{
		Slot: l.recent.slot,
		Logs: []string{fmt.Sprintf("airdrop: %d lamports to: %s", lamports, to)},
	}, nil
}

// ProgramAccounts - scan up to count accounts from start and return
// those owned by program
//
// count bounds the accounts examined, not those returned, so a page
// may be empty while the scan is not Done
func (l *Ledger) ProgramAccounts(program address.Location, start address.Location, count int) (*AccountsPage, error) {
	elements, err := storage.Pool.Accounts.NewFetchCursor().Seek(start[:]).Fetch(count)
	if nil != err {
		return nil, err
	}

	page := &AccountsPage{
		Accounts: make([]KeyedAccount, 0, len(elements)),
		Done:     len(elements) < count,
	}

	for _, e := range elements {
		loc, err := address.New(e.Key)
		if nil != err {
			return nil, err
		}
		a, err := UnpackAccount(e.Value)
		if nil != err {
			return nil, err
		}
		page.Next = loc
		if a.Owner == program {
			page.Accounts = append(page.Accounts, KeyedAccount{
				Location: loc,
				Account:  a,
			})
		}
	}

	if !page.Done {
		next, ok := successor(page.Next)
		page.Next = next
		page.Done = !ok
	}
	if page.Done {
		page.Next = address.Location{}
	}
	return page, nil
}

// successor - the location immediately after loc, false at the end
// of the key space
func successor(loc address.Location) (address.Location, bool) {
	for i := len(loc) - 1; i >= 0; i -= 1 {
		loc[i] += 1
		if 0 != loc[i] {
			return loc, true
		}
	}
	return loc, false
}

// Advance - move to the next slot
func (l *Ledger) Advance() (uint64, error) {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	slot := l.recent.slot + 1
	putSlot(trx, slot, l.recent.latest().next(slot))
	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	_, hash := l.recent.push()

	l.log.Debugf("slot: %d  blockhash: %s", slot, hash)
	return slot, nil
}

// Run - background process that advances slots
func (l *Ledger) Run(args interface{}, shutdown <-chan struct{}) {

	log := l.log
	log.Infof("slot interval: %s", l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			_, err := l.Advance()
			if nil != err {
				log.Errorf("advance error: %s", err)
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
