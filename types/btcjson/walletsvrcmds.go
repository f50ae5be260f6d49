// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the RPC commands that are supported by
// a wallet server.

package btcjson

import (
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// Default listunspent bounds.
const (
	DefaultListUnspentMinConf = 1
	DefaultListUnspentMaxConf = 9_999_999
)

// SighashType is the sighash name accepted by walletprocesspsbt.
type SighashType string

const (
	SighashDefault                SighashType = "DEFAULT"
	SighashAll                    SighashType = "ALL"
	SighashNone                   SighashType = "NONE"
	SighashSingle                 SighashType = "SINGLE"
	SighashAllPlusAnyoneCanPay    SighashType = "ALL|ANYONECANPAY"
	SighashNonePlusAnyoneCanPay   SighashType = "NONE|ANYONECANPAY"
	SighashSinglePlusAnyoneCanPay SighashType = "SINGLE|ANYONECANPAY"
)

// TransactionInput represents the inputs to a transaction.  Specifically a
// transaction hash and output number pair.
type TransactionInput struct {
	Txid codec.Hash `json:"txid"`
	Vout uint32     `json:"vout"`
}

// PreviousTxOut describes a previous output for signrawtransactionwithwallet
// that the wallet does not know about.
type PreviousTxOut struct {
	Txid          codec.Hash `json:"txid"`
	Vout          uint32     `json:"vout"`
	ScriptPubKey  string     `json:"scriptPubKey"`
	RedeemScript  *string    `json:"redeemScript,omitempty"`
	WitnessScript *string    `json:"witnessScript,omitempty"`
	Amount        *codec.BTC `json:"amount,omitempty"`
}

// WalletCreateFundedPSBTOpts are the funding options of
// walletcreatefundedpsbt. FeeRate is in sat/vB and wins over ConfTarget.
type WalletCreateFundedPSBTOpts struct {
	FeeRate      *float64 `json:"fee_rate,omitempty"`
	LockUnspents *bool    `json:"lockUnspents,omitempty"`
	ConfTarget   *uint16  `json:"conf_target,omitempty"`
	Replaceable  *bool    `json:"replaceable,omitempty"`
}

// ListUnspentQueryOptions filters listunspent results.
type ListUnspentQueryOptions struct {
	MinimumAmount *codec.BTC `json:"minimumAmount,omitempty"`
	MaximumAmount *codec.BTC `json:"maximumAmount,omitempty"`
	MaximumCount  *uint32    `json:"maximumCount,omitempty"`
}

// PSBTBumpFeeOpts are the options of psbtbumpfee.
type PSBTBumpFeeOpts struct {
	ConfTarget          *uint16            `json:"conf_target,omitempty"`
	FeeRate             *codec.FeeRate     `json:"fee_rate,omitempty"`
	Replaceable         *bool              `json:"replaceable,omitempty"`
	EstimateMode        *string            `json:"estimate_mode,omitempty"`
	Outputs             []codec.OutputSpec `json:"outputs,omitempty"`
	OriginalChangeIndex *uint32            `json:"original_change_index,omitempty"`
}

// ImportDescriptorRequest is one entry of the importdescriptors request.
// Timestamp is "now" or a unix time rendered as a string.
type ImportDescriptorRequest struct {
	Desc      string `json:"desc"`
	Active    *bool  `json:"active,omitempty"`
	Timestamp string `json:"timestamp"`
}

// GetNewAddressCmd defines the getnewaddress JSON-RPC command.
type GetNewAddressCmd struct{}

func NewGetNewAddressCmd() *GetNewAddressCmd { return &GetNewAddressCmd{} }

func (c *GetNewAddressCmd) Method() string        { return "getnewaddress" }
func (c *GetNewAddressCmd) Params() []interface{} { return nil }

// GetTransactionCmd defines the gettransaction JSON-RPC command.
type GetTransactionCmd struct {
	Txid string
}

func NewGetTransactionCmd(txHash string) *GetTransactionCmd {
	return &GetTransactionCmd{Txid: txHash}
}

func (c *GetTransactionCmd) Method() string        { return "gettransaction" }
func (c *GetTransactionCmd) Params() []interface{} { return []interface{}{c.Txid} }

// ListTransactionsCmd defines the listtransactions JSON-RPC command. A nil
// Count leaves the wallet default of 10 entries.
type ListTransactionsCmd struct {
	Count *int
}

func NewListTransactionsCmd(count *int) *ListTransactionsCmd {
	return &ListTransactionsCmd{Count: count}
}

func (c *ListTransactionsCmd) Method() string { return "listtransactions" }

func (c *ListTransactionsCmd) Params() []interface{} {
	if c.Count == nil {
		return nil
	}
	// listtransactions ( "label" count ), "*" selects every label
	return []interface{}{"*", *c.Count}
}

// ListWalletsCmd defines the listwallets JSON-RPC command.
type ListWalletsCmd struct{}

func NewListWalletsCmd() *ListWalletsCmd { return &ListWalletsCmd{} }

func (c *ListWalletsCmd) Method() string        { return "listwallets" }
func (c *ListWalletsCmd) Params() []interface{} { return nil }

// CreateRawTransactionCmd defines the createrawtransaction JSON-RPC command.
type CreateRawTransactionCmd struct {
	Inputs  []TransactionInput
	Outputs []codec.OutputSpec
}

// NewCreateRawTransactionCmd returns a new instance which can be used to issue
// a createrawtransaction JSON-RPC command.
func NewCreateRawTransactionCmd(inputs []TransactionInput, outputs []codec.OutputSpec) *CreateRawTransactionCmd {
	// Empty slices must be sent as [] rather than null.
	if inputs == nil {
		inputs = []TransactionInput{}
	}
	if outputs == nil {
		outputs = []codec.OutputSpec{}
	}
	return &CreateRawTransactionCmd{
		Inputs:  inputs,
		Outputs: outputs,
	}
}

func (c *CreateRawTransactionCmd) Method() string { return "createrawtransaction" }

func (c *CreateRawTransactionCmd) Params() []interface{} {
	return []interface{}{c.Inputs, c.Outputs}
}

// WalletCreateFundedPSBTCmd defines the walletcreatefundedpsbt JSON-RPC
// command.
type WalletCreateFundedPSBTCmd struct {
	Inputs      []TransactionInput
	Outputs     []codec.OutputSpec
	Locktime    uint32
	Options     WalletCreateFundedPSBTOpts
	Bip32Derivs *bool
}

func NewWalletCreateFundedPSBTCmd(inputs []TransactionInput, outputs []codec.OutputSpec,
	locktime *uint32, options *WalletCreateFundedPSBTOpts, bip32Derivs *bool) *WalletCreateFundedPSBTCmd {
	cmd := NewCreateRawTransactionCmd(inputs, outputs)
	res := &WalletCreateFundedPSBTCmd{
		Inputs:      cmd.Inputs,
		Outputs:     cmd.Outputs,
		Bip32Derivs: bip32Derivs,
	}
	if locktime != nil {
		res.Locktime = *locktime
	}
	if options != nil {
		res.Options = *options
	}
	return res
}

func (c *WalletCreateFundedPSBTCmd) Method() string { return "walletcreatefundedpsbt" }

func (c *WalletCreateFundedPSBTCmd) Params() []interface{} {
	params := []interface{}{c.Inputs, c.Outputs, c.Locktime, c.Options}
	if c.Bip32Derivs != nil {
		params = append(params, *c.Bip32Derivs)
	}
	return params
}

// GetAddressInfoCmd defines the getaddressinfo JSON-RPC command.
type GetAddressInfoCmd struct {
	Address string
}

func NewGetAddressInfoCmd(address string) *GetAddressInfoCmd {
	return &GetAddressInfoCmd{Address: address}
}

func (c *GetAddressInfoCmd) Method() string        { return "getaddressinfo" }
func (c *GetAddressInfoCmd) Params() []interface{} { return []interface{}{c.Address} }

// ListUnspentCmd defines the listunspent JSON-RPC command.
type ListUnspentCmd struct {
	MinConf       int
	MaxConf       int
	Addresses     []string
	IncludeUnsafe bool
	QueryOptions  *ListUnspentQueryOptions
}

// NewListUnspentCmd returns a new instance which can be used to issue a
// listunspent JSON-RPC command.
//
// The parameters which are pointers indicate they are optional.  Passing nil
// for optional parameters will use the default value.
func NewListUnspentCmd(minConf, maxConf *int, addresses []string, includeUnsafe *bool,
	queryOptions *ListUnspentQueryOptions) *ListUnspentCmd {
	cmd := &ListUnspentCmd{
		MinConf:       DefaultListUnspentMinConf,
		MaxConf:       DefaultListUnspentMaxConf,
		Addresses:     addresses,
		IncludeUnsafe: true,
		QueryOptions:  queryOptions,
	}
	if minConf != nil {
		cmd.MinConf = *minConf
	}
	if maxConf != nil {
		cmd.MaxConf = *maxConf
	}
	if includeUnsafe != nil {
		cmd.IncludeUnsafe = *includeUnsafe
	}
	if cmd.Addresses == nil {
		cmd.Addresses = []string{}
	}
	return cmd
}

func (c *ListUnspentCmd) Method() string { return "listunspent" }

func (c *ListUnspentCmd) Params() []interface{} {
	params := []interface{}{c.MinConf, c.MaxConf, c.Addresses, c.IncludeUnsafe}
	if c.QueryOptions != nil {
		params = append(params, c.QueryOptions)
	}
	return params
}

// SignRawTransactionWithWalletCmd defines the signrawtransactionwithwallet
// JSON-RPC command.
type SignRawTransactionWithWalletCmd struct {
	RawTx  string
	Inputs []PreviousTxOut
}

func NewSignRawTransactionWithWalletCmd(hexEncodedTx string, inputs []PreviousTxOut) *SignRawTransactionWithWalletCmd {
	return &SignRawTransactionWithWalletCmd{
		RawTx:  hexEncodedTx,
		Inputs: inputs,
	}
}

func (c *SignRawTransactionWithWalletCmd) Method() string { return "signrawtransactionwithwallet" }

func (c *SignRawTransactionWithWalletCmd) Params() []interface{} {
	if c.Inputs == nil {
		return []interface{}{c.RawTx}
	}
	return []interface{}{c.RawTx, c.Inputs}
}

// ListDescriptorsCmd defines the listdescriptors JSON-RPC command.
type ListDescriptorsCmd struct {
	Private bool
}

func NewListDescriptorsCmd(private bool) *ListDescriptorsCmd {
	return &ListDescriptorsCmd{Private: private}
}

func (c *ListDescriptorsCmd) Method() string        { return "listdescriptors" }
func (c *ListDescriptorsCmd) Params() []interface{} { return []interface{}{c.Private} }

// CreateWalletCmd defines the createwallet JSON-RPC command. Only the
// wallet name and load_on_startup are set; the positional arguments between
// them keep the node defaults for a descriptor wallet.
type CreateWalletCmd struct {
	WalletName    string
	LoadOnStartup bool
}

func NewCreateWalletCmd(name string, loadOnStartup bool) *CreateWalletCmd {
	return &CreateWalletCmd{WalletName: name, LoadOnStartup: loadOnStartup}
}

func (c *CreateWalletCmd) Method() string { return "createwallet" }

func (c *CreateWalletCmd) Params() []interface{} {
	// wallet_name disable_private_keys blank passphrase avoid_reuse descriptors load_on_startup
	return []interface{}{c.WalletName, false, false, "", false, true, c.LoadOnStartup}
}

// LoadWalletCmd defines the loadwallet JSON-RPC command.
type LoadWalletCmd struct {
	WalletName    string
	LoadOnStartup bool
}

func NewLoadWalletCmd(name string, loadOnStartup bool) *LoadWalletCmd {
	return &LoadWalletCmd{WalletName: name, LoadOnStartup: loadOnStartup}
}

func (c *LoadWalletCmd) Method() string        { return "loadwallet" }
func (c *LoadWalletCmd) Params() []interface{} { return []interface{}{c.WalletName, c.LoadOnStartup} }

// ImportDescriptorsCmd defines the importdescriptors JSON-RPC command.
type ImportDescriptorsCmd struct {
	Requests []ImportDescriptorRequest
}

func NewImportDescriptorsCmd(requests []ImportDescriptorRequest) *ImportDescriptorsCmd {
	if requests == nil {
		requests = []ImportDescriptorRequest{}
	}
	return &ImportDescriptorsCmd{Requests: requests}
}

func (c *ImportDescriptorsCmd) Method() string        { return "importdescriptors" }
func (c *ImportDescriptorsCmd) Params() []interface{} { return []interface{}{c.Requests} }

// WalletProcessPSBTCmd defines the walletprocesspsbt JSON-RPC command.
type WalletProcessPSBTCmd struct {
	PSBT        string
	Sign        bool
	SighashType *SighashType
	Bip32Derivs *bool
}

// NewWalletProcessPSBTCmd returns a new instance which can be used to issue a
// walletprocesspsbt JSON-RPC command. Sign defaults to true.
func NewWalletProcessPSBTCmd(psbt string, sign *bool, sighashType *SighashType,
	bip32Derivs *bool) *WalletProcessPSBTCmd {
	cmd := &WalletProcessPSBTCmd{
		PSBT:        psbt,
		Sign:        true,
		SighashType: sighashType,
		Bip32Derivs: bip32Derivs,
	}
	if sign != nil {
		cmd.Sign = *sign
	}
	return cmd
}

func (c *WalletProcessPSBTCmd) Method() string { return "walletprocesspsbt" }

func (c *WalletProcessPSBTCmd) Params() []interface{} {
	params := []interface{}{c.PSBT, c.Sign}
	if c.SighashType != nil {
		params = append(params, *c.SighashType)
	}
	if c.Bip32Derivs != nil {
		if c.SighashType == nil {
			params = append(params, SighashDefault)
		}
		params = append(params, *c.Bip32Derivs)
	}
	return params
}

// PSBTBumpFeeCmd defines the psbtbumpfee JSON-RPC command.
type PSBTBumpFeeCmd struct {
	Txid    string
	Options *PSBTBumpFeeOpts
}

func NewPSBTBumpFeeCmd(txHash string, options *PSBTBumpFeeOpts) *PSBTBumpFeeCmd {
	return &PSBTBumpFeeCmd{Txid: txHash, Options: options}
}

func (c *PSBTBumpFeeCmd) Method() string { return "psbtbumpfee" }

func (c *PSBTBumpFeeCmd) Params() []interface{} {
	if c.Options == nil {
		return []interface{}{c.Txid}
	}
	return []interface{}{c.Txid, c.Options}
}
