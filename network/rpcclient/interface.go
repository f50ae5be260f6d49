// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// Reader is the read-only chain and mempool view of a node.
type Reader interface {
	// EstimateSmartFee returns the estimated fee rate to confirm within
	// confTarget blocks. Nodes without an estimate yield the relay minimum.
	EstimateSmartFee(ctx context.Context, confTarget uint16) (codec.FeeRate, error)
	GetBlockHeader(ctx context.Context, hash *chainhash.Hash) (*wire.BlockHeader, error)
	GetBlock(ctx context.Context, hash *chainhash.Hash) (*wire.MsgBlock, error)
	GetBlockHeight(ctx context.Context, hash *chainhash.Hash) (uint64, error)
	GetBlockHeaderAt(ctx context.Context, height uint64) (*wire.BlockHeader, error)
	GetBlockAt(ctx context.Context, height uint64) (*wire.MsgBlock, error)
	GetBlockCount(ctx context.Context) (uint64, error)
	GetBlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error)
	GetBestBlockHash(ctx context.Context) (*chainhash.Hash, error)
	GetBlockChainInfo(ctx context.Context) (*btcjson.GetBlockChainInfoResult, error)
	// GetCurrentTimestamp is the header time of the chain tip.
	GetCurrentTimestamp(ctx context.Context) (uint32, error)
	GetRawMempool(ctx context.Context) ([]chainhash.Hash, error)
	GetRawMempoolVerbose(ctx context.Context) (btcjson.GetRawMempoolVerboseResult, error)
	GetMempoolInfo(ctx context.Context) (*btcjson.GetMempoolInfoResult, error)
	GetRawTransaction(ctx context.Context, txid *chainhash.Hash) (*wire.MsgTx, error)
	GetRawTransactionVerbose(ctx context.Context, txid *chainhash.Hash) (*btcjson.GetRawTransactionVerboseResult, error)
	GetTxOut(ctx context.Context, txid *chainhash.Hash, vout uint32, includeMempool bool) (*btcjson.GetTxOutResult, error)
	Network(ctx context.Context) (*chaincfg.Params, error)
}

// Broadcaster submits transactions to the node.
type Broadcaster interface {
	// SendRawTransaction returns the txid of tx. A transaction the node
	// already has in the chain counts as sent.
	SendRawTransaction(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error)
	TestMempoolAccept(ctx context.Context, tx *wire.MsgTx) ([]btcjson.TestMempoolAcceptResult, error)
	SubmitPackage(ctx context.Context, txs []*wire.MsgTx) (*btcjson.SubmitPackageResult, error)
}

// Wallet covers the watch-only wallet calls. Nothing here needs private keys.
type Wallet interface {
	GetNewAddress(ctx context.Context) (btcutil.Address, error)
	GetTransaction(ctx context.Context, txid *chainhash.Hash) (*btcjson.GetTransactionResult, error)
	GetUTXOs(ctx context.Context) ([]btcjson.ListUnspentResult, error)
	ListTransactions(ctx context.Context, count *int) ([]btcjson.ListTransactionsResult, error)
	ListWallets(ctx context.Context) ([]string, error)
	CreateRawTransaction(ctx context.Context, inputs []btcjson.TransactionInput,
		outputs []codec.OutputSpec) (*wire.MsgTx, error)
	WalletCreateFundedPSBT(ctx context.Context, inputs []btcjson.TransactionInput, outputs []codec.OutputSpec,
		locktime *uint32, options *btcjson.WalletCreateFundedPSBTOpts,
		bip32Derivs *bool) (*btcjson.WalletCreateFundedPSBTResult, error)
	GetAddressInfo(ctx context.Context, address btcutil.Address) (*btcjson.GetAddressInfoResult, error)
	ListUnspent(ctx context.Context, minConf, maxConf *int, addresses []btcutil.Address,
		includeUnsafe *bool, queryOptions *btcjson.ListUnspentQueryOptions) ([]btcjson.ListUnspentResult, error)
}

// Signer covers the calls that use the wallet's private keys.
type Signer interface {
	SignRawTransactionWithWallet(ctx context.Context, tx *wire.MsgTx,
		prevOutputs []btcjson.PreviousTxOut) (*btcjson.SignRawTransactionWithWalletResult, error)
	// GetXPriv returns nil without error when key retrieval is disabled.
	GetXPriv(ctx context.Context) (*hdkeychain.ExtendedKey, error)
	ImportDescriptors(ctx context.Context, descriptors []btcjson.ImportDescriptorRequest,
		walletName string) ([]btcjson.ImportDescriptorResult, error)
	WalletProcessPSBT(ctx context.Context, psbt string, sign *bool, sighashType *btcjson.SighashType,
		bip32Derivs *bool) (*btcjson.WalletProcessPSBTResult, error)
	PSBTBumpFee(ctx context.Context, txid *chainhash.Hash,
		options *btcjson.PSBTBumpFeeOpts) (*btcjson.PSBTBumpFeeResult, error)
}

var (
	_ Reader      = (*Client)(nil)
	_ Broadcaster = (*Client)(nil)
	_ Wallet      = (*Client)(nil)
	_ Signer      = (*Client)(nil)
)
