// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// handlerFunc answers one JSON-RPC method. A nil result with a nil error is
// sent as {"result":null,"error":null}.
type handlerFunc func(params []json.RawMessage) (interface{}, *btcjson.RPCError)

// fakeNode is a minimal bitcoind stand-in speaking JSON-RPC 1.0 over HTTP.
type fakeNode struct {
	mu       sync.Mutex
	requests []Request
	headers  []http.Header
	handlers map[string]handlerFunc

	user, pass string
}

func newFakeNode(t *testing.T) (*fakeNode, *httptest.Server) {
	node := &fakeNode{handlers: make(map[string]handlerFunc)}
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)
	return node, srv
}

func (n *fakeNode) handle(method string, h handlerFunc) {
	n.mu.Lock()
	n.handlers[method] = h
	n.mu.Unlock()
}

// respond registers a handler that always returns result.
func (n *fakeNode) respond(method string, result interface{}) {
	n.handle(method, func([]json.RawMessage) (interface{}, *btcjson.RPCError) {
		return result, nil
	})
}

// fail registers a handler that always returns the given RPC error.
func (n *fakeNode) fail(method string, code btcjson.RPCErrorCode, msg string) {
	n.handle(method, func([]json.RawMessage) (interface{}, *btcjson.RPCError) {
		return nil, btcjson.NewRPCError(code, msg)
	})
}

func (n *fakeNode) calls() []Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Request(nil), n.requests...)
}

func (n *fakeNode) methods() []string {
	var methods []string
	for _, req := range n.calls() {
		methods = append(methods, req.Method)
	}
	return methods
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if n.user != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != n.user || pass != n.pass {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.requests = append(n.requests, req)
	n.headers = append(n.headers, r.Header.Clone())
	h, ok := n.handlers[req.Method]
	n.mu.Unlock()

	var (
		result interface{}
		rpcErr *btcjson.RPCError
	)
	if ok {
		result, rpcErr = h(req.Params)
	} else {
		rpcErr = btcjson.NewRPCError(btcjson.ErrRPCMethodNotFound, "Method not found")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"result": result,
		"error":  rpcErr,
		"id":     req.ID,
	})
}

// waitCounter replaces the retry delay and records how often it ran.
type waitCounter struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (w *waitCounter) wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.waits = append(w.waits, d)
	w.mu.Unlock()
	return ctx.Err()
}

func (w *waitCounter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waits)
}

// newTestClient builds a client for url with instant retries.
func newTestClient(t *testing.T, url string, mutate ...func(*ConnConfig)) (*Client, *waitCounter) {
	cfg := &ConnConfig{
		URL:           url,
		Auth:          NoAuth(),
		RetryInterval: 10 * time.Millisecond,
	}
	for _, m := range mutate {
		m(cfg)
	}

	client, err := New(cfg)
	require.NoError(t, err)

	counter := &waitCounter{}
	client.wait = counter.wait
	return client, counter
}

// paramsOf decodes the raw params of a recorded request into plain values.
func paramsOf(t *testing.T, req Request) []interface{} {
	out := make([]interface{}, len(req.Params))
	for i, p := range req.Params {
		require.NoError(t, json.Unmarshal(p, &out[i]))
	}
	return out
}
