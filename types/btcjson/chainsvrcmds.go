// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the RPC commands that are supported by
// a chain server.

package btcjson

// Cmd is a JSON-RPC command. Params returns the positional parameters in
// order; trailing optional parameters that were not set are left out.
type Cmd interface {
	Method() string
	Params() []interface{}
}

// EstimateSmartFeeCmd defines the estimatesmartfee JSON-RPC command.
type EstimateSmartFeeCmd struct {
	ConfTarget uint16
}

// NewEstimateSmartFeeCmd returns a new instance which can be used to issue an
// estimatesmartfee JSON-RPC command.
func NewEstimateSmartFeeCmd(confTarget uint16) *EstimateSmartFeeCmd {
	return &EstimateSmartFeeCmd{ConfTarget: confTarget}
}

func (c *EstimateSmartFeeCmd) Method() string        { return "estimatesmartfee" }
func (c *EstimateSmartFeeCmd) Params() []interface{} { return []interface{}{c.ConfTarget} }

// GetBestBlockHashCmd defines the getbestblockhash JSON-RPC command.
type GetBestBlockHashCmd struct{}

// NewGetBestBlockHashCmd returns a new instance which can be used to issue a
// getbestblockhash JSON-RPC command.
func NewGetBestBlockHashCmd() *GetBestBlockHashCmd {
	return &GetBestBlockHashCmd{}
}

func (c *GetBestBlockHashCmd) Method() string        { return "getbestblockhash" }
func (c *GetBestBlockHashCmd) Params() []interface{} { return nil }

// GetBlockCmd defines the getblock JSON-RPC command.
type GetBlockCmd struct {
	Hash      string
	Verbosity *int
}

// NewGetBlockCmd returns a new instance which can be used to issue a getblock
// JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetBlockCmd(hash string, verbosity *int) *GetBlockCmd {
	return &GetBlockCmd{
		Hash:      hash,
		Verbosity: verbosity,
	}
}

func (c *GetBlockCmd) Method() string { return "getblock" }

func (c *GetBlockCmd) Params() []interface{} {
	if c.Verbosity == nil {
		return []interface{}{c.Hash}
	}
	return []interface{}{c.Hash, *c.Verbosity}
}

// GetBlockHeaderCmd defines the getblockheader JSON-RPC command.
type GetBlockHeaderCmd struct {
	Hash    string
	Verbose bool
}

// NewGetBlockHeaderCmd returns a new instance which can be used to issue a
// getblockheader JSON-RPC command.
func NewGetBlockHeaderCmd(hash string, verbose bool) *GetBlockHeaderCmd {
	return &GetBlockHeaderCmd{Hash: hash, Verbose: verbose}
}

func (c *GetBlockHeaderCmd) Method() string        { return "getblockheader" }
func (c *GetBlockHeaderCmd) Params() []interface{} { return []interface{}{c.Hash, c.Verbose} }

// GetBlockChainInfoCmd defines the getblockchaininfo JSON-RPC command.
type GetBlockChainInfoCmd struct{}

// NewGetBlockChainInfoCmd returns a new instance which can be used to issue a
// getblockchaininfo JSON-RPC command.
func NewGetBlockChainInfoCmd() *GetBlockChainInfoCmd {
	return &GetBlockChainInfoCmd{}
}

func (c *GetBlockChainInfoCmd) Method() string        { return "getblockchaininfo" }
func (c *GetBlockChainInfoCmd) Params() []interface{} { return nil }

// GetBlockCountCmd defines the getblockcount JSON-RPC command.
type GetBlockCountCmd struct{}

// NewGetBlockCountCmd returns a new instance which can be used to issue a
// getblockcount JSON-RPC command.
func NewGetBlockCountCmd() *GetBlockCountCmd {
	return &GetBlockCountCmd{}
}

func (c *GetBlockCountCmd) Method() string        { return "getblockcount" }
func (c *GetBlockCountCmd) Params() []interface{} { return nil }

// GetBlockHashCmd defines the getblockhash JSON-RPC command.
type GetBlockHashCmd struct {
	Index uint64
}

// NewGetBlockHashCmd returns a new instance which can be used to issue a
// getblockhash JSON-RPC command.
func NewGetBlockHashCmd(index uint64) *GetBlockHashCmd {
	return &GetBlockHashCmd{Index: index}
}

func (c *GetBlockHashCmd) Method() string        { return "getblockhash" }
func (c *GetBlockHashCmd) Params() []interface{} { return []interface{}{c.Index} }

// GetMempoolInfoCmd defines the getmempoolinfo JSON-RPC command.
type GetMempoolInfoCmd struct{}

// NewGetMempoolInfoCmd returns a new instance which can be used to issue a
// getmempool JSON-RPC command.
func NewGetMempoolInfoCmd() *GetMempoolInfoCmd {
	return &GetMempoolInfoCmd{}
}

func (c *GetMempoolInfoCmd) Method() string        { return "getmempoolinfo" }
func (c *GetMempoolInfoCmd) Params() []interface{} { return nil }

// GetRawMempoolCmd defines the getmempool JSON-RPC command.
type GetRawMempoolCmd struct {
	Verbose *bool
}

// NewGetRawMempoolCmd returns a new instance which can be used to issue a
// getrawmempool JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewGetRawMempoolCmd(verbose *bool) *GetRawMempoolCmd {
	return &GetRawMempoolCmd{
		Verbose: verbose,
	}
}

func (c *GetRawMempoolCmd) Method() string { return "getrawmempool" }

func (c *GetRawMempoolCmd) Params() []interface{} {
	if c.Verbose == nil {
		return nil
	}
	return []interface{}{*c.Verbose}
}

// GetRawTransactionCmd defines the getrawtransaction JSON-RPC command.
type GetRawTransactionCmd struct {
	Txid      string
	Verbosity int
}

// NewGetRawTransactionCmd returns a new instance which can be used to issue a
// getrawtransaction JSON-RPC command.
func NewGetRawTransactionCmd(txHash string, verbosity int) *GetRawTransactionCmd {
	return &GetRawTransactionCmd{
		Txid:      txHash,
		Verbosity: verbosity,
	}
}

func (c *GetRawTransactionCmd) Method() string        { return "getrawtransaction" }
func (c *GetRawTransactionCmd) Params() []interface{} { return []interface{}{c.Txid, c.Verbosity} }

// GetTxOutCmd defines the gettxout JSON-RPC command.
type GetTxOutCmd struct {
	Txid           string
	Vout           uint32
	IncludeMempool bool
}

// NewGetTxOutCmd returns a new instance which can be used to issue a gettxout
// JSON-RPC command.
func NewGetTxOutCmd(txHash string, vout uint32, includeMempool bool) *GetTxOutCmd {
	return &GetTxOutCmd{
		Txid:           txHash,
		Vout:           vout,
		IncludeMempool: includeMempool,
	}
}

func (c *GetTxOutCmd) Method() string { return "gettxout" }

func (c *GetTxOutCmd) Params() []interface{} {
	return []interface{}{c.Txid, c.Vout, c.IncludeMempool}
}

// SendRawTransactionCmd defines the sendrawtransaction JSON-RPC command.
type SendRawTransactionCmd struct {
	HexTx string
}

// NewSendRawTransactionCmd returns a new instance which can be used to issue a
// sendrawtransaction JSON-RPC command.
func NewSendRawTransactionCmd(hexTx string) *SendRawTransactionCmd {
	return &SendRawTransactionCmd{HexTx: hexTx}
}

func (c *SendRawTransactionCmd) Method() string        { return "sendrawtransaction" }
func (c *SendRawTransactionCmd) Params() []interface{} { return []interface{}{c.HexTx} }

// TestMempoolAcceptCmd defines the testmempoolaccept JSON-RPC command.
type TestMempoolAcceptCmd struct {
	RawTxns []string
}

// NewTestMempoolAcceptCmd returns a new instance which can be used to issue a
// testmempoolaccept JSON-RPC command.
func NewTestMempoolAcceptCmd(rawTxns []string) *TestMempoolAcceptCmd {
	return &TestMempoolAcceptCmd{RawTxns: rawTxns}
}

func (c *TestMempoolAcceptCmd) Method() string        { return "testmempoolaccept" }
func (c *TestMempoolAcceptCmd) Params() []interface{} { return []interface{}{c.RawTxns} }

// SubmitPackageCmd defines the submitpackage JSON-RPC command.
type SubmitPackageCmd struct {
	RawTxns []string
}

// NewSubmitPackageCmd returns a new instance which can be used to issue a
// submitpackage JSON-RPC command. Transactions must be topologically sorted
// with the child last.
func NewSubmitPackageCmd(rawTxns []string) *SubmitPackageCmd {
	return &SubmitPackageCmd{RawTxns: rawTxns}
}

func (c *SubmitPackageCmd) Method() string        { return "submitpackage" }
func (c *SubmitPackageCmd) Params() []interface{} { return []interface{}{c.RawTxns} }
