// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gumball

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/messagebus"
	"github.com/gumball-inc/gumballd/mode"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/rpc/ratelimit"
)

const (
	rateLimitGumball = 200
	rateBurstGumball = 100
)

// Gumball - the RPC entry for contract execution and queries
type Gumball struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
) *Gumball {
	return &Gumball{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitGumball, rateBurstGumball),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// ExecuteArguments - a contract call relayed by the chain node
//
// the envelope fields mirror what the chain attaches to every call;
// the message is the verbatim contract payload
//
// a relay on a trusted socket omits the signature; remote clients
// must sign the exact message bytes with the sender key
type ExecuteArguments struct {
	BlockHeight uint64            `json:"block_height"`
	BlockTime   uint64            `json:"block_time"`
	TxIndex     *uint32           `json:"tx_index,omitempty"`
	Sender      *account.Account  `json:"sender"`
	Signature   account.Signature `json:"signature,omitempty"`
	Contract    nft.ContractInfo  `json:"contract"`
	Message     json.RawMessage   `json:"message"`
}

// ExecuteReply - result from a contract call
//
// the answer keeps the contract's padding so relays cannot infer
// anything from its length
type ExecuteReply struct {
	Answer   []byte                  `json:"answer,omitempty"`
	Messages []nft.Message           `json:"messages,omitempty"`
	Logs     []contract.LogAttribute `json:"logs,omitempty"`
}

// Execute - run one contract message
//
// outbound collection calls and event logs reach the publisher only
// after the state transaction has committed
func (g *Gumball) Execute(arguments *ExecuteArguments, reply *ExecuteReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Sender {
		return fault.InvalidItem
	}

	log := g.Log
	log.Infof("Gumball.Execute: height: %d  sender: %s", arguments.BlockHeight, arguments.Sender)

	if !g.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if arguments.Sender.IsTesting() != g.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	if 0 != len(arguments.Signature) {
		err := arguments.Sender.CheckSignature(arguments.Message, arguments.Signature)
		if nil != err {
			return err
		}
	}

	env := contract.Env{
		BlockHeight: arguments.BlockHeight,
		BlockTime:   arguments.BlockTime,
		TxIndex:     arguments.TxIndex,
		Sender:      arguments.Sender,
		Contract:    arguments.Contract,
	}

	result, err := contract.Handle(env, arguments.Message)
	if nil != err {
		return err
	}

	relay(result)

	reply.Answer = result.Data
	reply.Messages = result.Messages
	reply.Logs = result.Logs
	return nil
}

// InitArguments - provision the machine
type InitArguments struct {
	BlockHeight uint64           `json:"block_height"`
	BlockTime   uint64           `json:"block_time"`
	Sender      *account.Account `json:"sender"`
	Contract    nft.ContractInfo `json:"contract"`
	NftContract nft.ContractInfo `json:"nft_contract"`
	Entropy     string           `json:"entropy"`
}

// Init - one-time provisioning call
func (g *Gumball) Init(arguments *InitArguments, reply *ExecuteReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Sender {
		return fault.InvalidItem
	}

	log := g.Log
	log.Infof("Gumball.Init: height: %d  sender: %s", arguments.BlockHeight, arguments.Sender)

	if !g.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if arguments.Sender.IsTesting() != g.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	env := contract.Env{
		BlockHeight: arguments.BlockHeight,
		BlockTime:   arguments.BlockTime,
		Sender:      arguments.Sender,
		Contract:    arguments.Contract,
	}

	result, err := contract.Init(env, contract.InitMsg{
		NftContract: arguments.NftContract,
		Entropy:     arguments.Entropy,
	})
	if nil != err {
		return err
	}

	relay(result)

	reply.Answer = result.Data
	reply.Messages = result.Messages
	reply.Logs = result.Logs
	return nil
}

// QueryArguments - a read-only query payload
type QueryArguments struct {
	Message json.RawMessage `json:"message"`
}

// QueryReply - the padded query answer
type QueryReply struct {
	Answer []byte `json:"answer"`
}

// Query - run one read-only query against committed state
func (g *Gumball) Query(arguments *QueryArguments, reply *QueryReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	answer, err := contract.Query(arguments.Message)
	if nil != err {
		return err
	}

	reply.Answer = answer
	return nil
}

// hand committed messages to the publisher queue and events to the
// broadcast queue
func relay(result *contract.Result) {
	for _, message := range result.Messages {
		messagebus.Bus.Outbound.Send(
			"message",
			[]byte(message.Destination),
			[]byte(message.CodeHash),
			message.Body,
		)
	}
	for _, attribute := range result.Logs {
		messagebus.Bus.Broadcast.Send(attribute.Key, []byte(attribute.Value))
	}
}
