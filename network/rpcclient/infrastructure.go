// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/btcsuite/go-socks/socks"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// Client is a JSON-RPC client for bitcoind. It is safe for concurrent use.
// Copies made with Clone share the request id counter and the underlying
// HTTP connection pool.
type Client struct {
	id *atomic.Uint64

	config     *ConnConfig
	httpClient *http.Client

	// authHeader is the precomputed Authorization value, empty for NoAuth.
	authHeader string

	// wait blocks between attempts. Replaced in tests.
	wait func(ctx context.Context, d time.Duration) error
}

// New creates a client for the given configuration. Credentials are resolved
// once here; a cookie file that is missing or malformed fails construction.
func New(config *ConnConfig) (*Client, error) {
	if config == nil {
		return nil, newError(KindBuilder, errors.New("nil connection config"))
	}

	u, err := url.Parse(config.URL)
	if err != nil {
		return nil, newError(KindBuilder, errors.Wrap(err, "parse rpc url"))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newError(KindBuilder,
			errors.Errorf("unsupported url scheme %q", u.Scheme))
	}

	user, pass, ok, err := config.Auth.resolve()
	if err != nil {
		return nil, err
	}

	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		id:         new(atomic.Uint64),
		config:     config,
		httpClient: httpClient,
		wait:       sleepCtx,
	}
	if ok {
		client.authHeader = "Basic " +
			base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
	}

	log.Debug().Str("url", u.Redacted()).Stringer("auth", config.Auth).
		Int("max_retries", config.maxRetries()).
		Dur("retry_interval", config.retryInterval()).
		Msg("created bitcoind rpc client")
	return client, nil
}

// newHTTPClient returns a new http client that is configured according to the
// proxy settings in the associated connection configuration. Redirects are
// refused.
func newHTTPClient(config *ConnConfig) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
	}

	if config.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     config.Proxy,
			Username: config.ProxyUser,
			Password: config.ProxyPass,
		}
		transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return proxy.Dial(network, addr)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return ErrRedirect
		},
	}, nil
}

// Clone returns a client that shares the id counter, the configuration and
// the connection pool with c.
func (c *Client) Clone() *Client {
	clone := *c
	return &clone
}

// NextID returns the next id to use when sending a JSON-RPC message. Ids are
// unique across the client and all of its clones.
func (c *Client) NextID() uint64 {
	return c.id.Add(1)
}

// Config returns the connection configuration the client was built with.
func (c *Client) Config() ConnConfig {
	return *c.config
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call sends method with already encoded params and decodes the result into
// result, which may be nil when the caller does not need it.
func (c *Client) Call(ctx context.Context, method string, params []json.RawMessage, result interface{}) error {
	started := time.Now()

	raw, err := c.do(ctx, method, params)
	if err == nil && result != nil {
		if uerr := json.Unmarshal(raw, result); uerr != nil {
			err = newError(KindParse, errors.Wrapf(uerr, "decode %s result", method))
		}
	}

	c.config.Metrics.observeCall(method, started, err)
	return err
}

// RawRequest sends method with already encoded params and returns the raw
// result. It is meant for commands the typed methods do not cover.
func (c *Client) RawRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, method, params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// sendCmd encodes the command params and calls it. An encoding failure is
// returned before any request is made.
func (c *Client) sendCmd(ctx context.Context, cmd btcjson.Cmd, result interface{}) error {
	params, err := marshalParams(cmd.Params())
	if err != nil {
		c.config.Metrics.observeCall(cmd.Method(), time.Now(), err)
		return err
	}
	return c.Call(ctx, cmd.Method(), params, result)
}

// do runs the retry loop for a single logical call. Every attempt uses a
// fresh id. Only retryable kinds are repeated, up to MaxRetries times.
func (c *Client) do(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	var (
		retries    int
		maxRetries = c.config.maxRetries()
		interval   = c.config.retryInterval()
	)

	for {
		id := c.NextID()
		log.Trace().Str("method", method).Uint64("id", id).Int("retries", retries).
			Stringer("params", logClosure(func() string {
				return string(bytes.Join(rawParams(params), []byte(",")))
			})).Msg("calling bitcoind")

		result, err := c.sendPost(ctx, id, method, params)
		if err == nil {
			return result, nil
		}

		kind, ok := KindOf(err)
		if !ok || !kind.Retryable() {
			log.Debug().Str("method", method).Uint64("id", id).Err(err).
				Msg("rpc call failed")
			return nil, err
		}

		retries++
		if retries > maxRetries {
			log.Error().Str("method", method).Int("max_retries", maxRetries).Err(err).
				Msg("rpc call gave up")
			return nil, &Error{Kind: KindMaxRetries, MaxRetries: maxRetries, Err: err}
		}

		log.Warn().Str("method", method).Uint64("id", id).Stringer("kind", kind).
			Int("retry", retries).Dur("interval", interval).Err(err).
			Msg("retrying rpc call")
		c.config.Metrics.observeRetry(method, kind)

		if werr := c.wait(ctx, interval); werr != nil {
			return nil, newError(KindCanceled, werr)
		}
	}
}

// sendPost performs a single attempt.
func (c *Client) sendPost(ctx context.Context, id uint64, method string, params []json.RawMessage) (json.RawMessage, error) {
	body, err := json.Marshal(NewRequest(id, method, params))
	if err != nil {
		return nil, newError(KindParam, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindBuilder, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		httpReq.Header.Set("Authorization", c.authHeader)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newError(KindCanceled, ctxErr)
		}
		return nil, newError(ClassifyTransportError(err), err)
	}
	defer httpResp.Body.Close()

	respBytes, readErr := readBody(httpResp.Body, c.config.maxBodySize())

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		// bitcoind reports RPC failures on legacy requests with a 4xx/5xx
		// status and a regular error envelope. Keep the structured error
		// when there is one.
		if readErr == nil {
			var resp Response
			if json.Unmarshal(respBytes, &resp) == nil && resp.Error != nil {
				return nil, &Error{
					Kind:    KindServer,
					Code:    resp.Error.Code,
					Message: resp.Error.Message,
				}
			}
		}
		return nil, &Error{
			Kind:       KindStatus,
			StatusCode: httpResp.StatusCode,
			Status:     statusReason(httpResp),
		}
	}

	if readErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newError(KindCanceled, ctxErr)
		}
		return nil, newError(ClassifyBodyError(readErr), readErr)
	}

	log.Trace().Uint64("id", id).Int("bytes", len(respBytes)).Msg("response received")
	return decodeResponse(respBytes)
}

// readBody reads at most limit bytes and fails with ErrBodyTooLarge when the
// body is longer.
func readBody(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

func rawParams(params []json.RawMessage) [][]byte {
	out := make([][]byte, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

// statusReason returns the reason phrase for a response status, taking it
// from the status line when the code is not a standard one.
func statusReason(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return "Unknown Status"
	}
	return reason
}
