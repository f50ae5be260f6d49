// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

const maxDecimals = 8

// maxSatoshiFloat is the first float64 that no longer fits into int64.
const maxSatoshiFloat = float64(1 << 63)

// AmountFromBTC converts a non-negative bitcoin value into satoshis.
func AmountFromBTC(btc float64) (btcutil.Amount, error) {
	return fromBTC(btc, KindAmount)
}

// SignedAmountFromBTC converts a bitcoin value into satoshis. Negative
// values are allowed and preserve their sign.
func SignedAmountFromBTC(btc float64) (btcutil.Amount, error) {
	return fromBTC(btc, KindSignedAmount)
}

func fromBTC(btc float64, kind DecodeKind) (btcutil.Amount, error) {
	raw := strconv.FormatFloat(btc, 'g', -1, 64)
	switch {
	case math.IsNaN(btc), math.IsInf(btc, 0):
		return 0, decodeErr(kind, raw, ErrNotFinite)
	case kind != KindSignedAmount && btc < 0:
		return 0, decodeErr(kind, raw, ErrNegative)
	case decimalPlaces(btc) > maxDecimals:
		return 0, decodeErr(kind, raw, ErrTooPrecise)
	}

	sat := math.Round(btc * btcutil.SatoshiPerBitcoin)
	if sat >= maxSatoshiFloat || sat < -maxSatoshiFloat {
		return 0, decodeErr(kind, raw, ErrOutOfRange)
	}
	return btcutil.Amount(sat), nil
}

// decimalPlaces reports the number of fractional digits of the shortest
// decimal representation of f.
func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// DecodeAmount decodes a JSON number denominated in BTC.
func DecodeAmount(data []byte) (btcutil.Amount, error) {
	btc, err := jsonFloat(data, KindAmount)
	if err != nil {
		return 0, err
	}
	return AmountFromBTC(btc)
}

// DecodeSignedAmount decodes a JSON number denominated in BTC that may be
// negative, as wallet transaction entries are.
func DecodeSignedAmount(data []byte) (btcutil.Amount, error) {
	btc, err := jsonFloat(data, KindSignedAmount)
	if err != nil {
		return 0, err
	}
	return SignedAmountFromBTC(btc)
}

// jsonFloat accepts only the JSON number grammar. Quoted numbers, null and
// booleans are rejected.
func jsonFloat(data []byte, kind DecodeKind) (float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return 0, decodeErr(kind, string(data), ErrNotNumber)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, decodeErr(kind, string(data), ErrOutOfRange)
		}
		return 0, decodeErr(kind, string(data), ErrNotNumber)
	}
	return f, nil
}

// EncodeAmount renders the amount as an exact decimal BTC JSON number,
// computed from the integer value.
func EncodeAmount(a btcutil.Amount) json.RawMessage {
	var (
		buf = make([]byte, 0, 24)
		abs = uint64(a)
	)
	if a < 0 {
		buf = append(buf, '-')
		abs = uint64(-(a + 1)) + 1
	}

	buf = strconv.AppendUint(buf, abs/btcutil.SatoshiPerBitcoin, 10)
	frac := strconv.FormatUint(abs%btcutil.SatoshiPerBitcoin, 10)
	buf = append(buf, '.')
	for i := len(frac); i < maxDecimals; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, frac...)
	return buf
}

// BTC is a JSON field holding a non-negative amount denominated in BTC.
type BTC btcutil.Amount

func (b BTC) Amount() btcutil.Amount { return btcutil.Amount(b) }

func (b BTC) MarshalJSON() ([]byte, error) {
	return EncodeAmount(btcutil.Amount(b)), nil
}

func (b *BTC) UnmarshalJSON(data []byte) error {
	a, err := DecodeAmount(data)
	if err != nil {
		return err
	}
	*b = BTC(a)
	return nil
}

// SignedBTC is a JSON field holding a possibly negative BTC amount.
type SignedBTC btcutil.Amount

func (b SignedBTC) Amount() btcutil.Amount { return btcutil.Amount(b) }

func (b SignedBTC) MarshalJSON() ([]byte, error) {
	return EncodeAmount(btcutil.Amount(b)), nil
}

func (b *SignedBTC) UnmarshalJSON(data []byte) error {
	a, err := DecodeSignedAmount(data)
	if err != nil {
		return err
	}
	*b = SignedBTC(a)
	return nil
}
