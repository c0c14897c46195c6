// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/counter"
	"github.com/gumball-inc/gumballd/mode"
	"github.com/gumball-inc/gumballd/rpc/ratelimit"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *counter.Counter
}

func New(log *logger.L, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string            `json:"chain"`
	Mode        string            `json:"mode"`
	Provisioned bool              `json:"provisioned"`
	Counts      *tokenpool.Counts `json:"counts,omitempty"`
	RPCs        uint64            `json:"rpcs"`
	Version     string            `json:"version"`
	Uptime      string            `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Provisioned = contract.IsProvisioned()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	// counts are absent until the machine is provisioned
	if config := storage.Pool.Config; nil != config {
		counts, err := tokenpool.ReadCounts(config)
		if nil == err {
			reply.Counts = counts
		}
	}

	return nil
}
