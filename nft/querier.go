// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"encoding/json"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/gumball-inc/gumballd/fault"
)

// Querier - read-only window onto an external collection contract
//
// the deposit path uses this to fetch the public dossier of the first
// token entering an empty machine; callers treat every error as soft
// and fall back to the empty dossier
type Querier interface {
	NftDossier(collection ContractInfo, tokenID string) (*Dossier, error)
}

// RemoteQuerier - Querier over a ZeroMQ REQ socket
//
// one connect-request-reply cycle per call; dossier queries only
// happen when an empty machine receives its first tokens, so there is
// nothing to gain from keeping a connection open
type RemoteQuerier struct {
	endpoint string
	timeout  time.Duration
}

// NewRemoteQuerier - create a querier for the collection host at the
// given ZeroMQ endpoint
func NewRemoteQuerier(endpoint string, timeout time.Duration) *RemoteQuerier {
	return &RemoteQuerier{
		endpoint: endpoint,
		timeout:  timeout,
	}
}

// NftDossier - fetch the public dossier of a single token
//
// the request carries the collection address, its code hash and the
// padded query body as separate frames; the reply is a single JSON
// frame
func (querier *RemoteQuerier) NftDossier(collection ContractInfo, tokenID string) (*Dossier, error) {
	if nil == collection.Address {
		return nil, fault.AddressIsNil
	}
	body, err := DossierQuery(tokenID)
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.REQ)
	if nil != err {
		return nil, err
	}
	defer socket.Close()

	err = socket.SetLinger(0)
	if nil != err {
		return nil, err
	}
	err = socket.SetReqCorrelate(1)
	if nil != err {
		return nil, err
	}
	err = socket.SetReqRelaxed(1)
	if nil != err {
		return nil, err
	}
	if 0 != querier.timeout {
		err = socket.SetSndtimeo(querier.timeout)
		if nil != err {
			return nil, err
		}
		err = socket.SetRcvtimeo(querier.timeout)
		if nil != err {
			return nil, err
		}
	}
	err = socket.Connect(querier.endpoint)
	if nil != err {
		return nil, err
	}

	_, err = socket.Send(collection.Address.String(), zmq.SNDMORE)
	if nil != err {
		return nil, err
	}
	_, err = socket.Send(collection.CodeHash, zmq.SNDMORE)
	if nil != err {
		return nil, err
	}
	_, err = socket.SendBytes(body, 0)
	if nil != err {
		return nil, err
	}

	frames, err := socket.RecvMessageBytes(0)
	if nil != err {
		return nil, err
	}
	if 0 == len(frames) {
		return nil, fault.MessageIsEmpty
	}

	var reply DossierReply
	err = json.Unmarshal(frames[0], &reply)
	if nil != err {
		return nil, err
	}
	return &reply.NftDossier, nil
}
