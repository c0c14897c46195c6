// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a goroutine safe counter
package counter

import (
	"sync/atomic"
)

// Counter - a counter that can be incremented and decremented from
// concurrent connection handlers
type Counter uint64

// Increment - add one, returns the new value
func (counter *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(counter), 1)
}

// Decrement - subtract one, returns the new value
//
// decrementing past zero wraps, so callers must pair every decrement
// with an earlier increment
func (counter *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(counter), ^uint64(0))
}

// Uint64 - the current value
func (counter *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(counter))
}

// IsZero - check if zero
func (counter *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(counter))
}
