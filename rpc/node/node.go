// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/counter"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/mode"
	"github.com/bitmark-inc/postly/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - the chain state reported by Info
type Status interface {
	Slot() uint64
	RecentBlockhash() (ledger.Blockhash, error)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Program address.Location
	Status  Status
	counter *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, program address.Location, counter *counter.Counter, status Status) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Program: program,
		Status:  status,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string           `json:"chain"`
	Mode      string           `json:"mode"`
	Slot      uint64           `json:"slot,string"`
	Blockhash ledger.Blockhash `json:"blockhash"`
	Program   address.Location `json:"program"`
	RPCs      uint64           `json:"rpcs"`
	Version   string           `json:"version"`
	Uptime    string           `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	blockhash, err := node.Status.RecentBlockhash()
	if nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Slot = node.Status.Slot()
	reply.Blockhash = blockhash
	reply.Program = node.Program
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
