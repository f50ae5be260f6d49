// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
)

const dataKey = "data"

// OutputSpec is one entry of the outputs array accepted by
// createrawtransaction, walletcreatefundedpsbt and psbtbumpfee. It either
// pays an amount to an address or carries an OP_RETURN payload.
type OutputSpec struct {
	Address string
	Amount  btcutil.Amount
	Data    []byte

	isData bool
}

func AddressOutput(address string, amount btcutil.Amount) OutputSpec {
	return OutputSpec{Address: address, Amount: amount}
}

func DataOutput(data []byte) OutputSpec {
	return OutputSpec{Data: data, isData: true}
}

func (o OutputSpec) IsData() bool { return o.isData }

func (o OutputSpec) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if o.isData {
		buf.WriteString(`"data":`)
		v, _ := json.Marshal(hex.EncodeToString(o.Data))
		buf.Write(v)
	} else {
		k, err := json.Marshal(o.Address)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(EncodeAmount(o.Amount))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts {"<address>": btc}, {"data": "<hex>"} and the
// long form {"address": "...", "amount": btc}.
func (o *OutputSpec) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return decodeErr(KindOutputSpec, string(data), err)
	}

	if addr, ok := fields["address"]; ok && len(fields) == 2 {
		amount, ok := fields["amount"]
		if !ok {
			return decodeErr(KindOutputSpec, string(data), ErrAmbiguousShape)
		}
		s, err := jsonString(addr, KindOutputSpec)
		if err != nil {
			return err
		}
		a, err := DecodeAmount(amount)
		if err != nil {
			return err
		}
		*o = AddressOutput(s, a)
		return nil
	}

	if len(fields) != 1 {
		return decodeErr(KindOutputSpec, string(data), ErrAmbiguousShape)
	}

	for key, value := range fields {
		if key == dataKey {
			s, err := jsonString(value, KindOutputSpec)
			if err != nil {
				return err
			}
			payload, err := hexBytes(s, KindOutputSpec)
			if err != nil {
				return err
			}
			*o = DataOutput(payload)
			return nil
		}

		a, err := DecodeAmount(value)
		if err != nil {
			return err
		}
		*o = AddressOutput(key, a)
	}
	return nil
}
