// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxRetries is used when ConnConfig.MaxRetries is zero.
	DefaultMaxRetries = 3
	// DefaultRetryInterval is used when ConnConfig.RetryInterval is zero.
	DefaultRetryInterval = time.Second
	// DefaultMaxBodySize caps the response body read per attempt.
	DefaultMaxBodySize = 64 << 20
)

type authKind int

const (
	authNone authKind = iota
	authUserPass
	authCookieFile
)

// Auth selects how the client authenticates. It is resolved once, when the
// client is created.
type Auth struct {
	kind       authKind
	user       string
	pass       string
	cookiePath string
}

// NoAuth sends no Authorization header.
func NoAuth() Auth { return Auth{kind: authNone} }

// UserPass uses static basic auth credentials.
func UserPass(user, pass string) Auth {
	return Auth{kind: authUserPass, user: user, pass: pass}
}

// CookieFile reads "user:pass" from the first line of the file at path.
func CookieFile(path string) Auth {
	return Auth{kind: authCookieFile, cookiePath: path}
}

// resolve returns the credentials. ok is false for NoAuth.
func (a Auth) resolve() (user, pass string, ok bool, err error) {
	switch a.kind {
	case authUserPass:
		return a.user, a.pass, true, nil
	case authCookieFile:
		user, pass, err = readCookieFile(a.cookiePath)
		if err != nil {
			return "", "", false, err
		}
		return user, pass, true, nil
	default:
		return "", "", false, nil
	}
}

func (a Auth) String() string {
	switch a.kind {
	case authUserPass:
		return "userpass(" + a.user + ")"
	case authCookieFile:
		return "cookie(" + a.cookiePath + ")"
	default:
		return "none"
	}
}

// readCookieFile reads bitcoind's cookie file. Only the first line is used
// and it is split on the first colon.
func readCookieFile(path string) (username, password string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", errors.Wrap(err, "open cookie file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			return "", "", errors.Wrap(err, "read cookie file")
		}
		return "", "", errors.Errorf("cookie file %s is empty", path)
	}

	username, password, found := strings.Cut(scanner.Text(), ":")
	if !found {
		return "", "", errors.Errorf("cookie file %s has no colon", path)
	}
	return username, password, nil
}

// ConnConfig describes the connection configuration parameters for the
// client.
type ConnConfig struct {
	// URL is the full endpoint of the RPC server, including scheme and
	// optionally a /wallet/<name> path.
	URL string

	Auth Auth

	// MaxRetries bounds how many times a retryable failure is retried.
	// Zero selects DefaultMaxRetries.
	MaxRetries int

	// RetryInterval is the fixed delay between attempts. Zero selects
	// DefaultRetryInterval.
	RetryInterval time.Duration

	// Timeout limits a single HTTP attempt. Zero means no limit beyond the
	// caller's context.
	Timeout time.Duration

	// MaxBodySize caps the response body. Zero selects DefaultMaxBodySize.
	MaxBodySize int64

	// Proxy specifies to connect through a SOCKS 5 proxy server.  It may
	// be an empty string if a proxy is not required.
	Proxy string

	// ProxyUser is an optional username to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyUser string

	// ProxyPass is an optional password to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyPass string

	// XPrivRetrievable permits GetXPriv to ask the wallet for its private
	// descriptors. When false GetXPriv returns nil without any request.
	XPrivRetrievable bool

	// Metrics, if set, receives per call counters.
	Metrics *Metrics
}

func (config *ConnConfig) maxRetries() int {
	if config.MaxRetries <= 0 {
		return DefaultMaxRetries
	}
	return config.MaxRetries
}

func (config *ConnConfig) retryInterval() time.Duration {
	if config.RetryInterval <= 0 {
		return DefaultRetryInterval
	}
	return config.RetryInterval
}

func (config *ConnConfig) maxBodySize() int64 {
	if config.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}
	return config.MaxBodySize
}
