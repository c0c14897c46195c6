// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/gumball-inc/gumballd/messagebus"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heartbeat"
)

type broadcaster struct {
	log     *logger.L
	version string
	sockets []*zmq.Socket
}

// initialise the broadcaster
//
// bind one PUB socket per configured endpoint; addresses use the
// canonical ZeroMQ form, e.g. "tcp://*:2135"
func (brdc *broadcaster) initialise(addresses []string, version string) error {

	log := logger.New("broadcaster")
	brdc.log = log
	brdc.version = version

	log.Info("initialising…")

	sockets := make([]*zmq.Socket, 0, len(addresses))

	for _, address := range addresses {

		socket, err := zmq.NewSocket(zmq.PUB)
		if nil != err {
			log.Errorf("create socket error: %s", err)
			closeSockets(sockets)
			return err
		}

		_ = socket.SetLinger(0)

		err = socket.Bind(address)
		if nil != err {
			log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			closeSockets(sockets)
			return err
		}

		log.Infof("publishing on: %q", address)
		sockets = append(sockets, socket)
	}

	brdc.sockets = sockets

	return nil
}

// Run - publish queued messages and events
//
// drains the outbound queue of committed contract messages and the
// broadcast queue of events, and sends a heartbeat when idle so
// subscribers can detect a stalled publisher
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	outbound := messagebus.Bus.Outbound.Chan()
	events := messagebus.Bus.Broadcast.Chan(0)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-outbound:
			log.Infof("publish: %s", item.Command)
			brdc.publish(item.Command, item.Parameters)

		case item := <-events:
			log.Debugf("publish event: %s", item.Command)
			brdc.publish(item.Command, item.Parameters)

		case <-time.After(heartbeatInterval):
			brdc.publish(heartbeatCommand, [][]byte{[]byte(brdc.version)})
		}
	}

	log.Info("shutting down…")
	closeSockets(brdc.sockets)
	brdc.sockets = nil
	log.Info("stopped")
}

// send one multi-frame message on every bound socket
//
// the command is the first frame so subscribers can filter on it
func (brdc *broadcaster) publish(command string, parameters [][]byte) {

	last := len(parameters) - 1

sending:
	for _, socket := range brdc.sockets {

		flag := zmq.SNDMORE
		if last < 0 {
			flag = 0
		}
		_, err := socket.Send(command, flag|zmq.DONTWAIT)
		if nil != err {
			brdc.log.Errorf("send command: %q  error: %s", command, err)
			continue sending
		}

		for i, parameter := range parameters {
			flag = zmq.SNDMORE
			if i == last {
				flag = 0
			}
			_, err = socket.SendBytes(parameter, flag|zmq.DONTWAIT)
			if nil != err {
				brdc.log.Errorf("send frame: %d  error: %s", i, err)
				continue sending
			}
		}
	}
}

func closeSockets(sockets []*zmq.Socket) {
	for _, socket := range sockets {
		socket.Close()
	}
}
