// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// GetBlockChainInfoResult models the data returned from the getblockchaininfo
// command.
type GetBlockChainInfoResult struct {
	Chain                string  `json:"chain"`
	Blocks               uint64  `json:"blocks"`
	Headers              uint64  `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	MedianTime           uint64  `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	ChainWork            string  `json:"chainwork"`
	SizeOnDisk           uint64  `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
	PruneHeight          *uint64 `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool   `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *uint64 `json:"prune_target_size,omitempty"`
}

// GetBlockVerboseResult models the data from the getblock command when the
// verbose flag is set to 1. Transactions are listed by txid.
type GetBlockVerboseResult struct {
	Hash          string   `json:"hash"`
	Confirmations int64    `json:"confirmations"`
	Size          int32    `json:"size"`
	StrippedSize  *int32   `json:"strippedsize,omitempty"`
	Weight        int32    `json:"weight"`
	Height        uint64   `json:"height"`
	Version       int32    `json:"version"`
	VersionHex    string   `json:"versionHex"`
	MerkleRoot    string   `json:"merkleroot"`
	Tx            []string `json:"tx"`
	Time          int64    `json:"time"`
	MedianTime    *int64   `json:"mediantime,omitempty"`
	Nonce         uint32   `json:"nonce"`
	Bits          string   `json:"bits"`
	Difficulty    float64  `json:"difficulty"`
	ChainWork     string   `json:"chainwork"`
	NTx           uint32   `json:"nTx"`
	PreviousHash  *string  `json:"previousblockhash,omitempty"`
	NextHash      *string  `json:"nextblockhash,omitempty"`
}

// GetMempoolInfoResult models the data returned from the getmempoolinfo
// command.
type GetMempoolInfoResult struct {
	Loaded           bool    `json:"loaded"`
	Size             int64   `json:"size"`
	Bytes            int64   `json:"bytes"`
	Usage            int64   `json:"usage"`
	MaxMempool       int64   `json:"maxmempool"`
	MempoolMinFee    float64 `json:"mempoolminfee"`
	MinRelayTxFee    float64 `json:"minrelaytxfee"`
	UnbroadcastCount int64   `json:"unbroadcastcount"`
}

// MempoolFees holds the fee breakdown of a mempool entry, in BTC.
type MempoolFees struct {
	Base       codec.BTC `json:"base"`
	Modified   codec.BTC `json:"modified"`
	Ancestor   codec.BTC `json:"ancestor"`
	Descendant codec.BTC `json:"descendant"`
}

// MempoolEntryResult models one value of the getrawmempool verbose map.
type MempoolEntryResult struct {
	VSize             int32        `json:"vsize"`
	Weight            int32        `json:"weight"`
	Time              int64        `json:"time"`
	Height            int64        `json:"height"`
	DescendantCount   int64        `json:"descendantcount"`
	DescendantSize    int64        `json:"descendantsize"`
	AncestorCount     int64        `json:"ancestorcount"`
	AncestorSize      int64        `json:"ancestorsize"`
	WTxID             codec.Hash   `json:"wtxid"`
	Fees              MempoolFees  `json:"fees"`
	Depends           []codec.Hash `json:"depends"`
	SpentBy           []codec.Hash `json:"spentby"`
	BIP125Replaceable bool         `json:"bip125-replaceable"`
	Unbroadcast       bool         `json:"unbroadcast"`
}

// GetRawMempoolVerboseResult maps txids to their mempool entries.
type GetRawMempoolVerboseResult map[string]MempoolEntryResult

// GetRawTransactionVerboseResult models the data from the getrawtransaction
// command when the verbose flag is set.
type GetRawTransactionVerboseResult struct {
	InActiveChain *bool       `json:"in_active_chain,omitempty"`
	Transaction   codec.Tx    `json:"hex"`
	Txid          codec.Hash  `json:"txid"`
	Hash          codec.Hash  `json:"hash"`
	Size          int32       `json:"size"`
	VSize         int32       `json:"vsize"`
	Version       uint32      `json:"version"`
	LockTime      uint32      `json:"locktime"`
	BlockHash     *codec.Hash `json:"blockhash,omitempty"`
	Confirmations *uint64     `json:"confirmations,omitempty"`
	Time          *int64      `json:"time,omitempty"`
	BlockTime     *int64      `json:"blocktime,omitempty"`
}

// ScriptPubKeyResult models the scriptPubKey object of gettxout.
type ScriptPubKeyResult struct {
	Asm     string `json:"asm"`
	Hex     string `json:"hex"`
	ReqSigs int64  `json:"reqSigs,omitempty"`
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
}

// GetTxOutResult models the data from the gettxout command.
type GetTxOutResult struct {
	BestBlock     string              `json:"bestblock"`
	Confirmations int64               `json:"confirmations"`
	Value         codec.BTC           `json:"value"`
	ScriptPubKey  *ScriptPubKeyResult `json:"scriptPubKey,omitempty"`
	Coinbase      bool                `json:"coinbase"`
}

// EstimateSmartFeeResult models the data from the estimatesmartfee command.
// FeeRate is in BTC/kvB and is absent when the node has no estimate.
type EstimateSmartFeeResult struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Blocks  int64    `json:"blocks"`
}

// TestMempoolAcceptResult models one entry of the testmempoolaccept result.
type TestMempoolAcceptResult struct {
	Txid         codec.Hash `json:"txid"`
	RejectReason *string    `json:"reject-reason,omitempty"`
	Allowed      *bool      `json:"allowed,omitempty"`
}

// SubmitPackageResult models the data from the submitpackage command.
type SubmitPackageResult struct {
	PackageMsg           string                           `json:"package_msg"`
	TxResults            map[string]SubmitPackageTxResult `json:"tx-results"`
	ReplacedTransactions []string                         `json:"replaced-transactions"`
}

// SubmitPackageTxResult is keyed by wtxid in SubmitPackageResult.
type SubmitPackageTxResult struct {
	Txid       string                     `json:"txid"`
	OtherWTxID *string                    `json:"other-wtxid,omitempty"`
	VSize      int64                      `json:"vsize"`
	Fees       *SubmitPackageTxResultFees `json:"fees,omitempty"`
	Error      *string                    `json:"error,omitempty"`
}

type SubmitPackageTxResultFees struct {
	BaseFee           codec.BTC `json:"base"`
	EffectiveFeeRate  *float64  `json:"effective-feerate,omitempty"`
	EffectiveIncludes []string  `json:"effective-includes,omitempty"`
}
