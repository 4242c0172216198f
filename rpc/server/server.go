// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/counter"
	"github.com/bitmark-inc/postly/rpc/ledger"
	"github.com/bitmark-inc/postly/rpc/node"
)

// Create - RPC server with the Ledger and Node services
func Create(log *logger.L, version string, program address.Location, rpcCount *counter.Counter, l ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.RegisterName("Ledger", ledger.New(log, l))
	_ = server.Register(node.New(log, start, version, program, rpcCount, l))

	return server
}
