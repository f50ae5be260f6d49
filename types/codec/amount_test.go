// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
)

func TestDecodeAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		signed  bool
		want    btcutil.Amount
		wantErr error
	}{
		{name: "whole", in: "21000000", want: 21000000 * btcutil.SatoshiPerBitcoin},
		{name: "fraction", in: "1.5", want: 150_000_000},
		{name: "one sat", in: "0.00000001", want: 1},
		{name: "fixed point", in: "0.00010000", want: 10_000},
		{name: "exponent", in: "1e-05", want: 1000},
		{name: "zero", in: "0", want: 0},
		{name: "negative unsigned", in: "-1", wantErr: ErrNegative},
		{name: "negative signed", in: "-0.25", signed: true, want: -25_000_000},
		{name: "quoted", in: `"1.0"`, wantErr: ErrNotNumber},
		{name: "null", in: "null", wantErr: ErrNotNumber},
		{name: "bool", in: "true", wantErr: ErrNotNumber},
		{name: "empty", in: "", wantErr: ErrNotNumber},
		{name: "nine decimals", in: "0.000000001", wantErr: ErrTooPrecise},
		{name: "nine decimals signed", in: "-1.000000001", signed: true, wantErr: ErrTooPrecise},
		{name: "overflow float", in: "1e400", wantErr: ErrOutOfRange},
		{name: "overflow int64", in: "100000000000", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			decode := DecodeAmount
			if tt.signed {
				decode = DecodeSignedAmount
			}

			got, err := decode([]byte(tt.in))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got error %v", err)
				var decErr *DecodeError
				assert.True(t, errors.As(err, &decErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountFromBTCNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := AmountFromBTC(v)
		assert.True(t, errors.Is(err, ErrNotFinite))
		_, err = SignedAmountFromBTC(v)
		assert.True(t, errors.Is(err, ErrNotFinite))
	}
}

func TestEncodeAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   btcutil.Amount
		want string
	}{
		{0, "0.00000000"},
		{1, "0.00000001"},
		{150_000_000, "1.50000000"},
		{-250, "-0.00000250"},
		{2_100_000_000_000_000, "21000000.00000000"},
		{math.MinInt64, "-92233720368.54775808"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(EncodeAmount(tt.in)))
	}
}

func TestAmountRoundTrip(t *testing.T) {
	amounts := []btcutil.Amount{0, 1, 99, 546, 10_000, 123_456_789, 2_100_000_000_000_000}
	for _, a := range amounts {
		got, err := DecodeAmount(EncodeAmount(a))
		assert.NoError(t, err)
		assert.Equal(t, a, got)

		got, err = DecodeSignedAmount(EncodeAmount(-a))
		assert.NoError(t, err)
		assert.Equal(t, -a, got)
	}
}

func TestBTCField(t *testing.T) {
	var v struct {
		Fee    BTC       `json:"fee"`
		Amount SignedBTC `json:"amount"`
	}

	err := jsonUnmarshal(`{"fee":0.0001,"amount":-1.25}`, &v)
	assert.NoError(t, err)
	assert.Equal(t, btcutil.Amount(10_000), v.Fee.Amount())
	assert.Equal(t, btcutil.Amount(-125_000_000), v.Amount.Amount())

	err = jsonUnmarshal(`{"fee":-0.0001}`, &v)
	assert.True(t, errors.Is(err, ErrNegative))

	err = jsonUnmarshal(`{"fee":"0.0001"}`, &v)
	assert.True(t, errors.Is(err, ErrNotNumber))
}
