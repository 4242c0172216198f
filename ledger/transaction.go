// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// MaximumInstructions - limit per transaction
const MaximumInstructions = 64

// message tag
const transactionTag = 0x50

// account meta flags in the signed message
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// Transaction - ordered instructions that apply atomically
type Transaction struct {
	Payer        address.Location    `json:"payer"`
	Blockhash    Blockhash           `json:"blockhash"`
	Instructions []Instruction       `json:"instructions"`
	Signatures   []account.Signature `json:"signatures"`
}

// Receipt - result of an applied transaction
type Receipt struct {
	Signature account.Signature `json:"signature,omitempty"`
	Slot      uint64            `json:"slot"`
	Logs      []string          `json:"logs"`
}

// NewTransaction - unsigned transaction
func NewTransaction(payer address.Location, blockhash Blockhash, instructions ...Instruction) *Transaction {
	return &Transaction{
		Payer:        payer,
		Blockhash:    blockhash,
		Instructions: instructions,
	}
}

// Signers - every location that must sign, payer first, in order of
// first appearance
func (tx *Transaction) Signers() []address.Location {
	signers := []address.Location{tx.Payer}
	seen := map[address.Location]struct{}{
		tx.Payer: {},
	}
	for _, ins := range tx.Instructions {
		for _, meta := range ins.Accounts {
			if !meta.Signer {
				continue
			}
			if _, ok := seen[meta.Location]; ok {
				continue
			}
			seen[meta.Location] = struct{}{}
			signers = append(signers, meta.Location)
		}
	}
	return signers
}

// Message - the bytes covered by the signatures
//
// Varint64(tag) ++ payer ++ blockhash ++ Varint64(count) ++ instructions
// where each instruction is
// program ++ Varint64(count) ++ (location ++ flags)... ++ Varint64(length) ++ data
func (tx *Transaction) Message() []byte {
	message := util.ToVarint64(transactionTag)
	message = append(message, tx.Payer[:]...)
	message = append(message, tx.Blockhash[:]...)
	message = append(message, util.ToVarint64(uint64(len(tx.Instructions)))...)

	for _, ins := range tx.Instructions {
		message = append(message, ins.Program[:]...)
		message = append(message, util.ToVarint64(uint64(len(ins.Accounts)))...)
		for _, meta := range ins.Accounts {
			flags := byte(0)
			if meta.Signer {
				flags |= signerFlag
			}
			if meta.Writable {
				flags |= writableFlag
			}
			message = append(message, meta.Location[:]...)
			message = append(message, flags)
		}
		message = appendBytes(message, ins.Data)
	}
	return message
}

// Sign - add signatures from the keys, there must be a key for every signer
func (tx *Transaction) Sign(keys ...*account.PrivateKey) error {
	message := tx.Message()

	byLocation := make(map[address.Location]*account.PrivateKey, len(keys))
	for _, k := range keys {
		byLocation[k.Account().Location()] = k
	}

	signers := tx.Signers()
	signatures := make([]account.Signature, len(signers))
	for i, s := range signers {
		k, ok := byLocation[s]
		if !ok {
			return fault.ErrMissingSignature
		}
		signatures[i] = k.Sign(message)
	}
	tx.Signatures = signatures
	return nil
}

// Verify - check every required signature
func (tx *Transaction) Verify() error {
	signers := tx.Signers()
	if len(signers) != len(tx.Signatures) {
		return fault.ErrMissingSignature
	}

	message := tx.Message()
	for i, s := range signers {
		acc, err := account.FromPublicKey(s[:], false)
		if nil != err {
			return err
		}
		err = acc.CheckSignature(message, tx.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}

// ID - the payer signature identifies the transaction
func (tx *Transaction) ID() account.Signature {
	if 0 == len(tx.Signatures) {
		return nil
	}
	return tx.Signatures[0]
}
