// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues connecting the contract core to the
// daemons that relay its output
//
// committed outbound contract calls travel the Outbound queue to the
// publisher, while observational events fan out over the Broadcast
// queue to every subscriber; repeated broadcast events are suppressed
// for a while so restarts do not spam subscribers
package messagebus
