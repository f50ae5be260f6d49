// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
)

const testPSBT = "cHNidP8BAHUCAAAAASaBcTce3/KF6Tet7qSze3gADAVmy7OtZGQXE8pCFxv2AAAAAAD+////AtPf9QUAAAAAGXapFNDFmQPFusKGh2DpD9UhpGZap2UgiKwA4fUFAAAAABepFDVF5uM7gyxHBQ8k0+65PJwDlIvHh7MuEwAAAQD9pQEBAAAAAAECiaPHHqtNIOA3G7ukzGmPopXJRjr6Ljl/hTPMti+VZ+UBAAAAFxYAFL4Y0VKpsBIDna89p95PUzSe7LmF/////4b4qkOnHf8USIk6UwpyN+9rRgi7st0tAXHmOuxqSJC0AQAAABcWABT+Pp7xp0XpdNkCxDVZQ6vLNL1TU/////8CAMLrCwAAAAAZdqkUhc/xCX/Z4Ai7NK9wnGIZeziXikiIrHL++E4sAAAAF6kUM5cluiHv1irHU6m80GfWx6ajnQWHAkcwRAIgJxK+IuAnDzlPVoMR3HyppolwuAJf3TskAinwf4pfOiQCIAGLONfc0xTnNMkna9b7QPZzMlvEuqFEyADS8vAtsnZcASED0uFWdJQbrUqZY3LLh+GFbTZSYG2YVi/jnF6efkE/IQUCSDBFAiEA0SuFLYXc2WHS9fSrZgZU327tzHlMDDPOXMMJ/7X85Y0CIGczio4OFyXBl/saiK9Z9R5E5CVbIBZ8hoQDHAXR8lkqASECI7cr7vCWXRC+B3jv7NYfysb3mk6haTkzgHNEZPhPKrMAAAAAAAAA"

const (
	mainnetP2PKH  = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	mainnetBech32 = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testnetBech32 = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
)

func TestDecodePSBT(t *testing.T) {
	t.Parallel()

	packet, err := DecodePSBT(testPSBT)
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, packet.UnsignedTx.TxIn, 1)
	assert.Len(t, packet.UnsignedTx.TxOut, 2)

	encoded, err := EncodePSBT(packet)
	assert.NoError(t, err)
	again, err := DecodePSBT(encoded)
	assert.NoError(t, err)
	assert.Equal(t, packet.UnsignedTx.TxHash(), again.UnsignedTx.TxHash())

	for _, bad := range []string{"", "not base64!", "aGVsbG8gd29ybGQ="} {
		_, err = DecodePSBT(bad)
		var decErr *DecodeError
		assert.True(t, errors.As(err, &decErr), bad)
	}
}

func TestOptionalPSBT(t *testing.T) {
	t.Parallel()

	var v struct {
		PSBT     OptionalPSBT `json:"psbt"`
		Complete bool         `json:"complete"`
	}

	for _, in := range []string{`{"complete":true}`, `{"psbt":null}`, `{"psbt":""}`} {
		v.PSBT = OptionalPSBT{}
		assert.NoError(t, jsonUnmarshal(in, &v), in)
		assert.False(t, v.PSBT.Present(), in)
	}

	assert.NoError(t, jsonUnmarshal(`{"psbt":"`+testPSBT+`"}`, &v))
	assert.True(t, v.PSBT.Present())

	assert.Error(t, jsonUnmarshal(`{"psbt":"garbage"}`, &v))
}

func TestDecodeAddress(t *testing.T) {
	t.Parallel()

	addr, err := DecodeAddress(mainnetBech32)
	if !assert.NoError(t, err) {
		return
	}
	assert.True(t, addr.IsValidForNetwork(&chaincfg.MainNetParams))
	assert.False(t, addr.IsValidForNetwork(&chaincfg.TestNet3Params))

	checked, err := addr.RequireNetwork(&chaincfg.MainNetParams)
	assert.NoError(t, err)
	assert.Equal(t, mainnetBech32, checked.EncodeAddress())

	_, err = addr.RequireNetwork(&chaincfg.RegressionNetParams)
	assert.True(t, errors.Is(err, ErrWrongNetwork))

	testnet, err := DecodeAddress(testnetBech32)
	assert.NoError(t, err)
	assert.True(t, testnet.IsValidForNetwork(&chaincfg.TestNet3Params))
	assert.False(t, testnet.IsValidForNetwork(&chaincfg.MainNetParams))
	assert.Equal(t, testnetBech32, testnet.AssumeChecked().EncodeAddress())

	legacy, err := DecodeAddress(mainnetP2PKH)
	assert.NoError(t, err)
	assert.True(t, legacy.IsValidForNetwork(&chaincfg.MainNetParams))

	_, err = DecodeAddress("not-an-address")
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
}

func TestOutputSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec OutputSpec
		wire string
	}{
		{
			name: "address",
			spec: AddressOutput(mainnetBech32, 150_000_000),
			wire: `{"` + mainnetBech32 + `":1.50000000}`,
		},
		{
			name: "data",
			spec: DataOutput([]byte{0xde, 0xad, 0xbe, 0xef}),
			wire: `{"data":"deadbeef"}`,
		},
	}

	for _, tt := range tests {
		out, err := json.Marshal(tt.spec)
		assert.NoError(t, err, tt.name)
		assert.Equal(t, tt.wire, string(out), tt.name)

		var got OutputSpec
		assert.NoError(t, json.Unmarshal(out, &got), tt.name)
		assert.Equal(t, tt.spec, got, tt.name)
	}

	var long OutputSpec
	err := jsonUnmarshal(`{"address":"`+mainnetBech32+`","amount":0.5}`, &long)
	assert.NoError(t, err)
	assert.Equal(t, AddressOutput(mainnetBech32, btcutil.Amount(50_000_000)), long)
	assert.False(t, long.IsData())

	var bad OutputSpec
	err = jsonUnmarshal(`{"a":1,"b":2}`, &bad)
	assert.True(t, errors.Is(err, ErrAmbiguousShape))

	err = jsonUnmarshal(`{"data":"xyz"}`, &bad)
	assert.Error(t, err)
}

func TestFeeRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    FeeRate
		wantErr error
	}{
		{in: "2", want: 2},
		{in: "2.4", want: 2},
		{in: "2.5", want: 3},
		{in: "0.1", want: 0},
		{in: "-1", wantErr: ErrNegative},
		{in: `"5"`, wantErr: ErrNotNumber},
		{in: "1e400", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		got, err := DecodeFeeRate([]byte(tt.in))
		if tt.wantErr != nil {
			assert.True(t, errors.Is(err, tt.wantErr), tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	rate, err := FeeRateFromBTCPerKVB(0.00001)
	assert.NoError(t, err)
	assert.Equal(t, FeeRate(1), rate)

	rate, err = FeeRateFromBTCPerKVB(0.0002)
	assert.NoError(t, err)
	assert.Equal(t, FeeRate(20), rate)
	assert.Equal(t, uint64(20_000), rate.SatPerKVByte())

	// values whose float product falls just below the exact satoshi count
	for btc, want := range map[float64]FeeRate{0.00007: 7, 0.00013: 13, 0.00029: 29} {
		rate, err = FeeRateFromBTCPerKVB(btc)
		assert.NoError(t, err)
		assert.Equal(t, want, rate, btc)
	}

	// partial sat/vB rounds up
	rate, err = FeeRateFromBTCPerKVB(0.00001001)
	assert.NoError(t, err)
	assert.Equal(t, FeeRate(2), rate)

	_, err = FeeRateFromBTCPerKVB(-0.0001)
	assert.True(t, errors.Is(err, ErrNegative))
}
