// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	netrpc "net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/counter"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/rpc/certificate"
	"github.com/gumball-inc/gumballd/rpc/handler"
	"github.com/gumball-inc/gumballd/rpc/listeners"
	"github.com/gumball-inc/gumballd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count shared by all listeners
var connectionCountRPC counter.Counter

// Initialise - start the client RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &connectionCountRPC)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, s, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the HTTPS status server; an empty listen list disables it
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, s *netrpc.Server, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return err
	}

	return httpsListener.Serve()
}
