// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - daemon run state and chain selection
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/fault"
)

// Mode - daemon run state
type Mode int

// run states in startup order
const (
	Stopped Mode = iota
	Starting
	Serving
	maximum
)

var names = [...]string{
	Stopped:  "Stopped",
	Starting: "Starting",
	Serving:  "Serving",
}

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool
	chain   string

	initialised bool
}

// Initialise - select the chain and enter the Starting state
func Initialise(chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("mode")

	if !chain.Valid(chainName) {
		log.Criticalf("unsupported chain: %q", chainName)
		return fault.ErrInvalidChain
	}

	globalData.log = log
	globalData.chain = chainName
	globalData.testing = chain.IsTesting(chainName)
	globalData.mode = Starting
	globalData.initialised = true

	log.Infof("chain: %s  testing: %t", chainName, globalData.testing)

	return nil
}

// Finalise - return to Stopped
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.mode = Stopped
	globalData.initialised = false

	globalData.log.Info("stopped")
	globalData.log.Flush()

	return nil
}

// Set - change the run state, out of range values are ignored
func Set(mode Mode) {
	globalData.Lock()
	defer globalData.Unlock()

	if mode < Stopped || mode >= maximum {
		globalData.log.Errorf("ignore invalid mode: %d", mode)
		return
	}
	if mode != globalData.mode {
		globalData.log.Infof("%s -> %s", globalData.mode, mode)
	}
	globalData.mode = mode
}

// Is - compare with the current run state
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsTesting - true on chains that allow airdrops
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current run state as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - run state as a string
func (m Mode) String() string {
	if m < Stopped || m >= maximum {
		return "*Unknown*"
	}
	return names[m]
}
