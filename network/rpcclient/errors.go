// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// ErrorKind is the closed set of failure classes a call can end with.
type ErrorKind int

const (
	// KindConnection means the peer was unreachable or reset the connection.
	KindConnection ErrorKind = iota
	KindTimeout
	// KindRequest covers transmission failures not classified otherwise.
	KindRequest
	// KindDecode is a transport level body decode failure, e.g. a
	// malformed chunked encoding.
	KindDecode
	KindBody
	KindStatus
	KindBuilder
	KindRedirect
	KindServer
	KindParse
	KindEmptyResponse
	KindMaxRetries
	KindParam
	// KindCanceled is returned when the caller's context ends the call.
	KindCanceled

	numErrorKinds
)

var errorKindStrings = map[ErrorKind]string{
	KindConnection:    "KindConnection",
	KindTimeout:       "KindTimeout",
	KindRequest:       "KindRequest",
	KindDecode:        "KindDecode",
	KindBody:          "KindBody",
	KindStatus:        "KindStatus",
	KindBuilder:       "KindBuilder",
	KindRedirect:      "KindRedirect",
	KindServer:        "KindServer",
	KindParse:         "KindParse",
	KindEmptyResponse: "KindEmptyResponse",
	KindMaxRetries:    "KindMaxRetries",
	KindParam:         "KindParam",
	KindCanceled:      "KindCanceled",
}

// String returns the ErrorKind as a human-readable name.
func (k ErrorKind) String() string {
	if s := errorKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorKind (%d)", int(k))
}

// Retryable reports whether a fresh attempt of the same call may succeed.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindConnection, KindTimeout, KindRequest, KindDecode:
		return true
	default:
		return false
	}
}

var (
	// ErrRedirect is returned by the transport when the server answers with
	// a redirect. Redirects are never followed.
	ErrRedirect = errors.New("redirects are not followed")

	// ErrBodyTooLarge is returned when a response exceeds the body limit.
	ErrBodyTooLarge = errors.New("response body exceeds limit")
)

// Error is the single error type returned by the client. Only the fields
// relevant to Kind are set.
type Error struct {
	Kind ErrorKind

	// KindStatus
	StatusCode int
	Status     string

	// KindServer
	Code    btcjson.RPCErrorCode
	Message string

	// KindMaxRetries
	MaxRetries int

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("http status %d %s", e.StatusCode, e.Status)
	case KindServer:
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	case KindMaxRetries:
		if e.Err != nil {
			return fmt.Sprintf("max retries exceeded (%d): %v", e.MaxRetries, e.Err)
		}
		return fmt.Sprintf("max retries exceeded (%d)", e.MaxRetries)
	case KindEmptyResponse:
		return "empty response: neither result nor error is set"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// RPCError returns the structured server error of a KindServer error.
func (e *Error) RPCError() *btcjson.RPCError {
	if e.Kind != KindServer {
		return nil
	}
	return btcjson.NewRPCError(e.Code, e.Message)
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of a client error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsRetryable reports whether err is a client error of a retryable kind.
func IsRetryable(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind.Retryable()
}

// IsServerError reports whether err carries the given JSON-RPC error code.
func IsServerError(err error, code btcjson.RPCErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServer && e.Code == code
}

type timeout interface {
	Timeout() bool
}

// ClassifyTransportError maps an error returned by the HTTP round trip to an
// ErrorKind. It does not look at the caller's context.
func ClassifyTransportError(err error) ErrorKind {
	var t timeout
	switch {
	case errors.Is(err, ErrRedirect):
		return KindRedirect
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &t) && t.Timeout():
		return KindTimeout
	case isConnectionError(err):
		return KindConnection
	case isDecodeError(err):
		return KindDecode
	}
	return KindRequest
}

// ClassifyBodyError maps an error raised while reading the response body.
func ClassifyBodyError(err error) ErrorKind {
	var t timeout
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return KindBody
	case errors.As(err, &t) && t.Timeout():
		return KindTimeout
	case isDecodeError(err):
		return KindDecode
	}
	return KindBody
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.EOF) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isDecodeError(err error) bool {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	// net/http keeps its chunked reader errors unexported.
	msg := err.Error()
	return strings.Contains(msg, "chunked") || strings.Contains(msg, "chunk length")
}
