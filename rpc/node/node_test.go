// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/counter"
	"github.com/bitmark-inc/postly/fixtures"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/mode"
	"github.com/bitmark-inc/postly/rpc/mocks"
	"github.com/bitmark-inc/postly/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mode.Initialise(chain.Testing)
	defer mode.Finalise()

	s := mocks.NewMockStatus(ctl)

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		fixtures.ProgramID,
		&c,
		s,
	)

	s.EXPECT().RecentBlockhash().Return(ledger.Blockhash{7}, nil).Times(1)
	s.EXPECT().Slot().Return(uint64(42)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(42), reply.Slot, "wrong slot")
	assert.Equal(t, ledger.Blockhash{7}, reply.Blockhash, "wrong blockhash")
	assert.Equal(t, fixtures.ProgramID, reply.Program, "wrong program")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
}
