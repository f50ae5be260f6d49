// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// knownNetworks is the order DecodeAddress tries network encoding rules in.
var knownNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
	&chaincfg.SimNetParams,
}

// UncheckedAddress is a syntactically valid address whose network has not
// been confirmed yet. Call RequireNetwork before paying to it.
type UncheckedAddress struct {
	raw  string
	addr btcutil.Address
}

// DecodeAddress parses s against the encoding rules of every known network.
func DecodeAddress(s string) (UncheckedAddress, error) {
	for _, params := range knownNetworks {
		addr, err := btcutil.DecodeAddress(s, params)
		if err != nil || !addr.IsForNet(params) {
			continue
		}
		return UncheckedAddress{raw: s, addr: addr}, nil
	}
	return UncheckedAddress{}, decodeErr(KindAddress, s, ErrUnknownNetwork)
}

func (a UncheckedAddress) String() string { return a.raw }

func (a UncheckedAddress) IsZero() bool { return a.addr == nil }

// IsValidForNetwork reports whether the address encoding belongs to params.
func (a UncheckedAddress) IsValidForNetwork(params *chaincfg.Params) bool {
	if a.addr == nil {
		return false
	}
	addr, err := btcutil.DecodeAddress(a.raw, params)
	return err == nil && addr.IsForNet(params)
}

// RequireNetwork returns the address checked against params.
func (a UncheckedAddress) RequireNetwork(params *chaincfg.Params) (btcutil.Address, error) {
	if !a.IsValidForNetwork(params) {
		return nil, decodeErr(KindAddress, a.raw, ErrWrongNetwork)
	}
	return btcutil.DecodeAddress(a.raw, params)
}

// AssumeChecked skips the network check. The returned address carries the
// network it was first decoded with.
func (a UncheckedAddress) AssumeChecked() btcutil.Address { return a.addr }

func (a UncheckedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}

func (a *UncheckedAddress) UnmarshalJSON(data []byte) error {
	s, err := jsonString(data, KindAddress)
	if err != nil {
		return err
	}
	v, err := DecodeAddress(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
