// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/counter"
	"github.com/gumball-inc/gumballd/mode"
	"github.com/gumball-inc/gumballd/rpc/gumball"
	"github.com/gumball-inc/gumballd/rpc/node"
)

// Create - make a server with all the RPC services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(gumball.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
