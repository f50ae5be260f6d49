// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/btcsuite/btcd/chaincfg"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// ChainParams returns the parameters of the network the node is expected to
// run. Tools compare it against Client.Network before doing anything else.
func (cfg *Config) ChainParams() (*chaincfg.Params, error) {
	return codec.NetworkFromChain(cfg.Network)
}
