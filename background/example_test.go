// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/postly/background"
)

type ticker struct {
	ticks int64
}

func Example() {

	proc := &ticker{}

	p := background.Start(background.Processes{proc}, time.Millisecond)
	for 0 == atomic.LoadInt64(&proc.ticks) {
		time.Sleep(time.Millisecond)
	}
	p.Stop()

	fmt.Println("stopped")
	// Output: stopped
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	interval := args.(time.Duration)
	t := time.NewTicker(interval)
	defer t.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-t.C:
			atomic.AddInt64(&state.ticks, 1)
		}
	}
}
