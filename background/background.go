// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived goroutines with orderly shutdown
package background

// Process - a background process runs until shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for one process
type control struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	c []control
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		c: make([]control, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.c[i].shutdown = shutdown
		register.c[i].finished = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, c := range t.c {
		close(c.shutdown)
	}

	for _, c := range t.c {
		<-c.finished
	}
}
