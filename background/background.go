// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - any type that implements Run is a background process
//
// Run is expected to loop until the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop
type T struct {
	finished  chan struct{}
	shutdown  chan struct{}
	processes Processes
}

// Start - start up a set of background processes
//
// all processes are passed the same args value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished:  make(chan struct{}),
		shutdown:  make(chan struct{}),
		processes: processes,
	}

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for finished
	for range t.processes {
		<-t.finished
	}
}
