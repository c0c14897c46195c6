// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/counter"
	"github.com/gumball-inc/gumballd/mode"
	"github.com/gumball-inc/gumballd/storage"
	"github.com/gumball-inc/gumballd/tokenpool"
)

// Handler - the HTTPS side of the RPC system
type Handler interface {
	SetAllow(allow map[string][]*net.IPNet)
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Connections(w http.ResponseWriter, r *http.Request)
	Counts(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	count              counter.Counter
}

func New(log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the allowed networks per endpoint
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// Root - matches anything not matched elsewhere and returns an error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// details reply
type detailsReply struct {
	Chain       string            `json:"chain"`
	Mode        string            `json:"mode"`
	Provisioned bool              `json:"provisioned"`
	Counts      *tokenpool.Counts `json:"counts,omitempty"`
	RPCs        uint64            `json:"rpcs"`
	Version     string            `json:"version"`
	Uptime      string            `json:"uptime"`
}

// Details - node state for a GET request, same data as the Node.Info RPC
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("details", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	h.count.Increment()
	defer h.count.Decrement()

	reply := detailsReply{
		Chain:       mode.ChainName(),
		Mode:        mode.String(),
		Provisioned: contract.IsProvisioned(),
		RPCs:        h.count.Uint64(),
		Version:     h.version,
		Uptime:      time.Since(h.start).String(),
	}

	// counts appear once the machine is provisioned
	if config := storage.Pool.Config; nil != config {
		counts, err := tokenpool.ReadCounts(config)
		if nil == err {
			reply.Counts = counts
		}
	}

	sendReply(w, reply)
}

// connections reply
type connectionsReply struct {
	Clients uint64 `json:"clients"`
	Maximum uint64 `json:"maximum"`
}

// Connections - current connection count for a GET request
func (h *handler) Connections(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("connections", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	h.count.Increment()
	defer h.count.Decrement()

	sendReply(w, connectionsReply{
		Clients: h.count.Uint64(),
		Maximum: h.maximumConnections,
	})
}

// Counts - token pool counters for a GET request
//
// a quick operator view of the machine without an RPC round trip
func (h *handler) Counts(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("counts", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	h.count.Increment()
	defer h.count.Decrement()

	config := storage.Pool.Config
	if nil == config {
		sendInternalServerError(w)
		return
	}
	counts, err := tokenpool.ReadCounts(config)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	sendReply(w, counts)
}

// check the remote address against the allowed networks of an endpoint
func (h *handler) isAllowed(endpoint string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}

	addr := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(addr)
	if nil == ip {
		return false
	}

	nets, ok := h.allow[endpoint]
	if !ok {
		return false
	}

	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
