// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// NetworkFromChain maps the chain name reported by getblockchaininfo to its
// network parameters. Both the short names bitcoind uses and the parameter
// names of btcd are accepted.
func NetworkFromChain(chain string) (*chaincfg.Params, error) {
	switch chain {
	case "main", chaincfg.MainNetParams.Name:
		return &chaincfg.MainNetParams, nil
	case "test", "testnet", chaincfg.TestNet3Params.Name:
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	}
	return nil, decodeErr(KindChain, chain, ErrUnknownChain)
}
