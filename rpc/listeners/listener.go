// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

// Listener - start serving on all configured addresses
//
// Serve returns after the accept loops are started
type Listener interface {
	Serve() error
}
