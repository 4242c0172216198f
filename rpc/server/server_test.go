// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/counter"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/fixtures"
	core "github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/mode"
	"github.com/bitmark-inc/postly/rpc/ledger"
	"github.com/bitmark-inc/postly/rpc/mocks"
	"github.com/bitmark-inc/postly/rpc/node"
	"github.com/bitmark-inc/postly/rpc/server"
)

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	mode.Initialise(chain.Local)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockLedger(ctl)
	c := counter.Counter(1)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", fixtures.ProgramID, &c, m)

	serverSide, clientSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	client := jsonrpc.NewClient(clientSide)
	defer client.Close()

	owner := fixtures.Owner.Account().Location()
	acc := &core.Account{Lamports: 1234567890123, Owner: fixtures.ProgramID, Data: []byte("data")}

	m.EXPECT().GetAccount(owner).Return(acc, nil).Times(1)
	m.EXPECT().Airdrop(owner, uint64(5)).Return(nil, fault.ErrAirdropNotAllowed).Times(1)
	m.EXPECT().RecentBlockhash().Return(core.Blockhash{3}, nil).Times(1)
	m.EXPECT().Slot().Return(uint64(8)).Times(1)

	var reply ledger.AccountReply
	err := client.Call("Ledger.Account", &ledger.AccountArguments{Location: owner}, &reply)
	assert.Nil(t, err, "wrong Account")
	assert.True(t, reply.Found, "wrong found")
	assert.Equal(t, acc, reply.Account, "wrong account over the wire")

	var airdrop ledger.AirdropReply
	err = client.Call("Ledger.Airdrop", &ledger.AirdropArguments{Location: owner, Lamports: 5}, &airdrop)
	assert.NotNil(t, err, "wrong Airdrop")
	assert.Equal(t, fault.ErrAirdropNotAllowed.Error(), err.Error(), "wrong error text")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Local, info.Chain, "wrong chain")
	assert.Equal(t, uint64(8), info.Slot, "wrong slot")
	assert.Equal(t, core.Blockhash{3}, info.Blockhash, "wrong blockhash")
	assert.Equal(t, fixtures.ProgramID, info.Program, "wrong program")
}
