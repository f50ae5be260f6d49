// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"fmt"
)

// DecodeKind identifies the domain value a DecodeError was raised for.
type DecodeKind int

const (
	KindAmount DecodeKind = iota
	KindSignedAmount
	KindHash
	KindTransaction
	KindBlockHeader
	KindBlock
	KindFeeRate
	KindPSBT
	KindAddress
	KindOutputSpec
	KindChain
)

var decodeKindStrings = map[DecodeKind]string{
	KindAmount:       "amount",
	KindSignedAmount: "signed amount",
	KindHash:         "hash",
	KindTransaction:  "transaction",
	KindBlockHeader:  "block header",
	KindBlock:        "block",
	KindFeeRate:      "fee rate",
	KindPSBT:         "psbt",
	KindAddress:      "address",
	KindOutputSpec:   "output spec",
	KindChain:        "chain",
}

func (k DecodeKind) String() string {
	if s, ok := decodeKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown DecodeKind (%d)", int(k))
}

var (
	ErrNotNumber      = errors.New("value is not a JSON number")
	ErrNotString      = errors.New("value is not a JSON string")
	ErrNotFinite      = errors.New("value is not finite")
	ErrNegative       = errors.New("value is negative")
	ErrTooPrecise     = errors.New("value has more than 8 decimal places")
	ErrOutOfRange     = errors.New("value is out of range")
	ErrHashLength     = errors.New("hash must be exactly 64 hex characters")
	ErrTrailingBytes  = errors.New("trailing bytes after consensus record")
	ErrUnknownNetwork = errors.New("address does not match any known network")
	ErrWrongNetwork   = errors.New("address is not valid for the requested network")
	ErrAmbiguousShape = errors.New("output spec must hold exactly one address or data entry")
	ErrUnknownChain   = errors.New("unsupported chain name")
)

// DecodeError is returned by every decoder in this package. Value holds the
// offending input, truncated for long payloads.
type DecodeError struct {
	Kind  DecodeKind
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

const maxErrValueLen = 96

func decodeErr(kind DecodeKind, value string, err error) *DecodeError {
	if len(value) > maxErrValueLen {
		value = value[:maxErrValueLen] + "..."
	}
	return &DecodeError{Kind: kind, Value: value, Err: err}
}
