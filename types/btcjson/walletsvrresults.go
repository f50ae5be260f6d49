// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

// TransactionCategory is the category of a wallet transaction entry.
type TransactionCategory string

const (
	CategorySend     TransactionCategory = "send"
	CategoryReceive  TransactionCategory = "receive"
	CategoryGenerate TransactionCategory = "generate"
	CategoryImmature TransactionCategory = "immature"
	CategoryOrphan   TransactionCategory = "orphan"
)

// GetTransactionDetailsResult models the details data from the gettransaction
// command.
type GetTransactionDetailsResult struct {
	Address   string              `json:"address,omitempty"`
	Category  TransactionCategory `json:"category"`
	Amount    codec.SignedBTC     `json:"amount"`
	Label     *string             `json:"label,omitempty"`
	Vout      uint32              `json:"vout"`
	Fee       *codec.SignedBTC    `json:"fee,omitempty"`
	Abandoned *bool               `json:"abandoned,omitempty"`
}

// GetTransactionResult models the data from the gettransaction command.
type GetTransactionResult struct {
	Amount            codec.SignedBTC               `json:"amount"`
	Fee               *codec.SignedBTC              `json:"fee,omitempty"`
	Confirmations     int64                         `json:"confirmations"`
	Generated         *bool                         `json:"generated,omitempty"`
	Trusted           *bool                         `json:"trusted,omitempty"`
	BlockHash         *string                       `json:"blockhash,omitempty"`
	BlockHeight       *uint64                       `json:"blockheight,omitempty"`
	BlockIndex        *uint32                       `json:"blockindex,omitempty"`
	BlockTime         *uint64                       `json:"blocktime,omitempty"`
	Txid              codec.Hash                    `json:"txid"`
	WTxID             string                        `json:"wtxid"`
	WalletConflicts   []string                      `json:"walletconflicts"`
	ReplacedByTxid    *string                       `json:"replaced_by_txid,omitempty"`
	ReplacesTxid      *string                       `json:"replaces_txid,omitempty"`
	Comment           *string                       `json:"comment,omitempty"`
	To                *string                       `json:"to,omitempty"`
	Time              uint64                        `json:"time"`
	TimeReceived      uint64                        `json:"timereceived"`
	BIP125Replaceable string                        `json:"bip125-replaceable"`
	Details           []GetTransactionDetailsResult `json:"details"`
	Hex               codec.Tx                      `json:"hex"`
}

// Confirmed reports whether the transaction is in a block of the active chain.
func (r *GetTransactionResult) Confirmed() bool {
	return r.Confirmations > 0 && r.BlockHeight != nil
}

// ListUnspentResult models a successful response from the listunspent request.
type ListUnspentResult struct {
	Txid          codec.Hash             `json:"txid"`
	Vout          uint32                 `json:"vout"`
	Address       codec.UncheckedAddress `json:"address"`
	Label         *string                `json:"label,omitempty"`
	ScriptPubKey  string                 `json:"scriptPubKey"`
	Amount        codec.BTC              `json:"amount"`
	Confirmations uint32                 `json:"confirmations"`
	Spendable     bool                   `json:"spendable"`
	Solvable      bool                   `json:"solvable"`
	Safe          bool                   `json:"safe"`
}

// ListTransactionsResult models the data from the listtransactions command.
type ListTransactionsResult struct {
	Address       codec.UncheckedAddress `json:"address"`
	Category      TransactionCategory    `json:"category"`
	Amount        codec.SignedBTC        `json:"amount"`
	Label         *string                `json:"label,omitempty"`
	Confirmations int64                  `json:"confirmations"`
	Trusted       *bool                  `json:"trusted,omitempty"`
	Generated     *bool                  `json:"generated,omitempty"`
	BlockHash     *string                `json:"blockhash,omitempty"`
	BlockHeight   *uint64                `json:"blockheight,omitempty"`
	BlockIndex    *uint32                `json:"blockindex,omitempty"`
	BlockTime     *uint64                `json:"blocktime,omitempty"`
	Txid          codec.Hash             `json:"txid"`
}

// SignRawTransactionError models the data that contains script verification
// errors from the signrawtransaction request.
type SignRawTransactionError struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	ScriptSig string   `json:"scriptSig"`
	Witness   []string `json:"witness,omitempty"`
	Sequence  uint32   `json:"sequence"`
	Error     string   `json:"error"`
}

// SignRawTransactionWithWalletResult models the data from the
// signrawtransactionwithwallet command.
type SignRawTransactionWithWalletResult struct {
	Hex      codec.Tx                  `json:"hex"`
	Complete bool                      `json:"complete"`
	Errors   []SignRawTransactionError `json:"errors,omitempty"`
}

// DescriptorInfo is one entry of the listdescriptors result.
type DescriptorInfo struct {
	Desc     string `json:"desc"`
	Active   *bool  `json:"active,omitempty"`
	Internal *bool  `json:"internal,omitempty"`
}

// ListDescriptorsResult models the data from the listdescriptors command.
type ListDescriptorsResult struct {
	WalletName  string           `json:"wallet_name"`
	Descriptors []DescriptorInfo `json:"descriptors"`
}

// ImportDescriptorResult is one entry of the importdescriptors result.
type ImportDescriptorResult struct {
	Success  bool      `json:"success"`
	Warnings []string  `json:"warnings,omitempty"`
	Error    *RPCError `json:"error,omitempty"`
}

// WalletCreateFundedPSBTResult models the data from the
// walletcreatefundedpsbt command.
type WalletCreateFundedPSBTResult struct {
	PSBT      codec.PSBT `json:"psbt"`
	Fee       codec.BTC  `json:"fee"`
	ChangePos int32      `json:"changepos"`
}

// WalletProcessPSBTResult models the data from the walletprocesspsbt
// command. Hex is only set once the transaction is complete.
type WalletProcessPSBTResult struct {
	PSBT     codec.OptionalPSBT `json:"psbt"`
	Complete bool               `json:"complete"`
	Hex      *codec.Tx          `json:"hex,omitempty"`
}

// GetAddressInfoResult models the data from the getaddressinfo command.
type GetAddressInfoResult struct {
	Address     codec.UncheckedAddress `json:"address"`
	IsMine      *bool                  `json:"ismine,omitempty"`
	IsWatchOnly *bool                  `json:"iswatchonly,omitempty"`
	Solvable    *bool                  `json:"solvable,omitempty"`
}

// PSBTBumpFeeResult models the data from the psbtbumpfee command. The fees
// are absolute amounts in BTC.
type PSBTBumpFeeResult struct {
	PSBT    codec.PSBT `json:"psbt"`
	OrigFee codec.BTC  `json:"origfee"`
	Fee     codec.BTC  `json:"fee"`
	Errors  []string   `json:"errors,omitempty"`
}
