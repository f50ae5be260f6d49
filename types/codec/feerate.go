// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"math"
	"strconv"
)

// FeeRate is a fee density in satoshis per virtual byte.
type FeeRate uint64

// DefaultFeeRate is returned by fee estimation when the node has no data.
const DefaultFeeRate FeeRate = 1

func (r FeeRate) SatPerVByte() uint64  { return uint64(r) }
func (r FeeRate) SatPerKVByte() uint64 { return uint64(r) * 1000 }

func (r FeeRate) String() string {
	return strconv.FormatUint(uint64(r), 10) + " sat/vB"
}

// FeeRateFromSatPerVByte rounds a sat/vB value to the nearest integer.
func FeeRateFromSatPerVByte(v float64) (FeeRate, error) {
	raw := strconv.FormatFloat(v, 'g', -1, 64)
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return 0, decodeErr(KindFeeRate, raw, ErrNotFinite)
	case v < 0:
		return 0, decodeErr(KindFeeRate, raw, ErrNegative)
	}

	rounded := math.Round(v)
	if rounded >= math.MaxUint64 {
		return 0, decodeErr(KindFeeRate, raw, ErrOutOfRange)
	}
	return FeeRate(rounded), nil
}

// FeeRateFromBTCPerKVB converts a BTC/kvB estimate, as returned by
// estimatesmartfee, to sat/vB. A partial sat/vB rounds up.
func FeeRateFromBTCPerKVB(v float64) (FeeRate, error) {
	satPerKVB, err := fromBTC(v, KindFeeRate)
	if err != nil {
		return 0, err
	}
	return FeeRate((uint64(satPerKVB) + 999) / 1000), nil
}

// DecodeFeeRate decodes a JSON number already expressed in sat/vB.
func DecodeFeeRate(data []byte) (FeeRate, error) {
	v, err := jsonFloat(data, KindFeeRate)
	if err != nil {
		return 0, err
	}
	return FeeRateFromSatPerVByte(v)
}

func (r FeeRate) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(r), 10), nil
}

func (r *FeeRate) UnmarshalJSON(data []byte) error {
	v, err := DecodeFeeRate(data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
