// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/gumball-inc/gumballd/background"
)

type heartbeat struct {
	beats int
}

func (state *heartbeat) Run(args interface{}, shutdown <-chan struct{}) {

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.beats += 1
		time.Sleep(time.Millisecond)
	}
}

func Example() {

	hb := &heartbeat{}

	processes := background.Processes{
		hb,
	}

	p := background.Start(processes, nil)
	time.Sleep(100 * time.Millisecond)
	p.Stop()

	fmt.Printf("beats > 0: %t\n", hb.beats > 0)
	// Output: beats > 0: true
}
