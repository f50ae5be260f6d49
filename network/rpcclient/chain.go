// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// defaultFeeRateBTCPerKVB is used when estimatesmartfee has no estimate. It
// is the default minimum relay fee of bitcoind.
const defaultFeeRateBTCPerKVB = 0.00001

// EstimateSmartFee returns the fee rate, in sat/vB, needed to confirm within
// confTarget blocks.
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget uint16) (codec.FeeRate, error) {
	var res btcjson.EstimateSmartFeeResult
	if err := c.sendCmd(ctx, btcjson.NewEstimateSmartFeeCmd(confTarget), &res); err != nil {
		return 0, err
	}

	btcPerKVB := defaultFeeRateBTCPerKVB
	if res.FeeRate != nil {
		btcPerKVB = *res.FeeRate
	} else {
		log.Debug().Uint16("conf_target", confTarget).Strs("errors", res.Errors).
			Msg("no fee estimate, using relay minimum")
	}

	rate, err := codec.FeeRateFromBTCPerKVB(btcPerKVB)
	if err != nil {
		return 0, newError(KindParse, err)
	}
	return rate, nil
}

// GetBlockHeader returns the header of the block with the given hash.
func (c *Client) GetBlockHeader(ctx context.Context, hash *chainhash.Hash) (*wire.BlockHeader, error) {
	var headerHex string
	cmd := btcjson.NewGetBlockHeaderCmd(hash.String(), false)
	if err := c.sendCmd(ctx, cmd, &headerHex); err != nil {
		return nil, err
	}

	header, err := codec.DecodeBlockHeader(headerHex)
	if err != nil {
		return nil, newError(KindParse, err)
	}
	return header, nil
}

// GetBlock returns the raw block with the given hash.
func (c *Client) GetBlock(ctx context.Context, hash *chainhash.Hash) (*wire.MsgBlock, error) {
	var blockHex string
	cmd := btcjson.NewGetBlockCmd(hash.String(), btcjson.Int(0))
	if err := c.sendCmd(ctx, cmd, &blockHex); err != nil {
		return nil, err
	}

	block, err := codec.DecodeBlock(blockHex)
	if err != nil {
		return nil, newError(KindParse, err)
	}
	return block, nil
}

// GetBlockHeight returns the height of the block with the given hash.
func (c *Client) GetBlockHeight(ctx context.Context, hash *chainhash.Hash) (uint64, error) {
	var res btcjson.GetBlockVerboseResult
	if err := c.sendCmd(ctx, btcjson.NewGetBlockCmd(hash.String(), nil), &res); err != nil {
		return 0, err
	}
	return res.Height, nil
}

// GetBlockHeaderAt resolves the hash at height and then fetches its header.
func (c *Client) GetBlockHeaderAt(ctx context.Context, height uint64) (*wire.BlockHeader, error) {
	hash, err := c.GetBlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	return c.GetBlockHeader(ctx, hash)
}

// GetBlockAt resolves the hash at height and then fetches the block.
func (c *Client) GetBlockAt(ctx context.Context, height uint64) (*wire.MsgBlock, error) {
	hash, err := c.GetBlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	return c.GetBlock(ctx, hash)
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount(ctx context.Context) (uint64, error) {
	var count uint64
	if err := c.sendCmd(ctx, btcjson.NewGetBlockCountCmd(), &count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetBlockHash returns the hash of the block in the best block chain at the
// given height.
func (c *Client) GetBlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	var hash codec.Hash
	if err := c.sendCmd(ctx, btcjson.NewGetBlockHashCmd(height), &hash); err != nil {
		return nil, err
	}
	h := hash.Hash()
	return &h, nil
}

// GetBestBlockHash returns the hash of the best block in the longest block
// chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (*chainhash.Hash, error) {
	var hash codec.Hash
	if err := c.sendCmd(ctx, btcjson.NewGetBestBlockHashCmd(), &hash); err != nil {
		return nil, err
	}
	h := hash.Hash()
	return &h, nil
}

// GetBlockChainInfo returns information related to the processing state of
// various chain-specific details such as the current difficulty from the tip
// of the main chain.
func (c *Client) GetBlockChainInfo(ctx context.Context) (*btcjson.GetBlockChainInfoResult, error) {
	var res btcjson.GetBlockChainInfoResult
	if err := c.sendCmd(ctx, btcjson.NewGetBlockChainInfoCmd(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetCurrentTimestamp returns the timestamp of the best block.
func (c *Client) GetCurrentTimestamp(ctx context.Context) (uint32, error) {
	hash, err := c.GetBestBlockHash(ctx)
	if err != nil {
		return 0, err
	}
	header, err := c.GetBlockHeader(ctx, hash)
	if err != nil {
		return 0, err
	}
	return uint32(header.Timestamp.Unix()), nil
}

// GetRawMempool returns the hashes of all transactions in the memory pool.
func (c *Client) GetRawMempool(ctx context.Context) ([]chainhash.Hash, error) {
	var txids []codec.Hash
	if err := c.sendCmd(ctx, btcjson.NewGetRawMempoolCmd(nil), &txids); err != nil {
		return nil, err
	}

	hashes := make([]chainhash.Hash, len(txids))
	for i, txid := range txids {
		hashes[i] = txid.Hash()
	}
	return hashes, nil
}

// GetRawMempoolVerbose returns a map of transaction hashes to an associated
// data structure with information about the transaction for all transactions
// in the memory pool.
func (c *Client) GetRawMempoolVerbose(ctx context.Context) (btcjson.GetRawMempoolVerboseResult, error) {
	var res btcjson.GetRawMempoolVerboseResult
	if err := c.sendCmd(ctx, btcjson.NewGetRawMempoolCmd(btcjson.Bool(true)), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetMempoolInfo returns the state of the memory pool.
func (c *Client) GetMempoolInfo(ctx context.Context) (*btcjson.GetMempoolInfoResult, error) {
	var res btcjson.GetMempoolInfoResult
	if err := c.sendCmd(ctx, btcjson.NewGetMempoolInfoCmd(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRawTransaction returns a transaction given its hash.
func (c *Client) GetRawTransaction(ctx context.Context, txid *chainhash.Hash) (*wire.MsgTx, error) {
	var tx codec.Tx
	if err := c.sendCmd(ctx, btcjson.NewGetRawTransactionCmd(txid.String(), 0), &tx); err != nil {
		return nil, err
	}
	return tx.MsgTx, nil
}

// GetRawTransactionVerbose returns information about a transaction given
// its hash.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txid *chainhash.Hash) (*btcjson.GetRawTransactionVerboseResult, error) {
	var res btcjson.GetRawTransactionVerboseResult
	if err := c.sendCmd(ctx, btcjson.NewGetRawTransactionCmd(txid.String(), 1), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetTxOut returns the transaction output info if it's unspent. A spent or
// unknown output comes back as a KindEmptyResponse error.
func (c *Client) GetTxOut(ctx context.Context, txid *chainhash.Hash, vout uint32, includeMempool bool) (*btcjson.GetTxOutResult, error) {
	var res btcjson.GetTxOutResult
	cmd := btcjson.NewGetTxOutCmd(txid.String(), vout, includeMempool)
	if err := c.sendCmd(ctx, cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Network returns the parameters of the chain the node runs on.
func (c *Client) Network(ctx context.Context) (*chaincfg.Params, error) {
	info, err := c.GetBlockChainInfo(ctx)
	if err != nil {
		return nil, err
	}

	params, err := codec.NetworkFromChain(info.Chain)
	if err != nil {
		return nil, newError(KindParse, err)
	}
	return params, nil
}
