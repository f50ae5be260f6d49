// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// *****************************
// Transaction Listing Functions
// *****************************

// GetTransaction returns detailed information about a wallet transaction.
func (c *Client) GetTransaction(ctx context.Context, txid *chainhash.Hash) (*btcjson.GetTransactionResult, error) {
	var res btcjson.GetTransactionResult
	if err := c.sendCmd(ctx, btcjson.NewGetTransactionCmd(txid.String()), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListTransactions returns the most recent wallet transactions. A nil count
// keeps the server default.
func (c *Client) ListTransactions(ctx context.Context, count *int) ([]btcjson.ListTransactionsResult, error) {
	var res []btcjson.ListTransactionsResult
	if err := c.sendCmd(ctx, btcjson.NewListTransactionsCmd(count), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetUTXOs returns every unspent output with the server defaults of
// listunspent.
func (c *Client) GetUTXOs(ctx context.Context) ([]btcjson.ListUnspentResult, error) {
	var res []btcjson.ListUnspentResult
	if err := c.Call(ctx, "listunspent", nil, &res); err != nil {
		return nil, err
	}
	log.Trace().Int("count", len(res)).Msg("got utxos")
	return res, nil
}

// ListUnspent returns unspent outputs filtered by confirmations, addresses and
// query options. Nil arguments select the defaults: 1 to 9999999
// confirmations, every address, unsafe outputs included.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf *int, addresses []btcutil.Address,
	includeUnsafe *bool, queryOptions *btcjson.ListUnspentQueryOptions) ([]btcjson.ListUnspentResult, error) {

	addrStrs := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		addrStrs = append(addrStrs, addr.EncodeAddress())
	}

	cmd := btcjson.NewListUnspentCmd(minConf, maxConf, addrStrs, includeUnsafe, queryOptions)
	var res []btcjson.ListUnspentResult
	if err := c.sendCmd(ctx, cmd, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListWallets returns the names of the currently loaded wallets.
func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	var res []string
	if err := c.sendCmd(ctx, btcjson.NewListWalletsCmd(), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ***********************
// Transaction Composition
// ***********************

// CreateRawTransaction returns a new unsigned transaction spending the given
// inputs to the given outputs.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []btcjson.TransactionInput,
	outputs []codec.OutputSpec) (*wire.MsgTx, error) {

	var tx codec.Tx
	if err := c.sendCmd(ctx, btcjson.NewCreateRawTransactionCmd(inputs, outputs), &tx); err != nil {
		return nil, err
	}
	return tx.MsgTx, nil
}

// WalletCreateFundedPSBT creates and funds a PSBT with the wallet's coins.
func (c *Client) WalletCreateFundedPSBT(ctx context.Context, inputs []btcjson.TransactionInput,
	outputs []codec.OutputSpec, locktime *uint32, options *btcjson.WalletCreateFundedPSBTOpts,
	bip32Derivs *bool) (*btcjson.WalletCreateFundedPSBTResult, error) {

	cmd := btcjson.NewWalletCreateFundedPSBTCmd(inputs, outputs, locktime, options, bip32Derivs)
	var res btcjson.WalletCreateFundedPSBTResult
	if err := c.sendCmd(ctx, cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// *************************
// Address Handling Functions
// *************************

// GetNewAddress returns a new address from the wallet. The address is taken
// as valid for the node's network without a further check.
func (c *Client) GetNewAddress(ctx context.Context) (btcutil.Address, error) {
	var addr codec.UncheckedAddress
	if err := c.sendCmd(ctx, btcjson.NewGetNewAddressCmd(), &addr); err != nil {
		return nil, err
	}
	return addr.AssumeChecked(), nil
}

// GetAddressInfo returns information about the given address.
func (c *Client) GetAddressInfo(ctx context.Context, address btcutil.Address) (*btcjson.GetAddressInfoResult, error) {
	var res btcjson.GetAddressInfoResult
	if err := c.sendCmd(ctx, btcjson.NewGetAddressInfoCmd(address.EncodeAddress()), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
