// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

var (
	// ErrNoDescriptors is returned by GetXPriv when the wallet lists none.
	ErrNoDescriptors = errors.New("wallet has no descriptors")

	// ErrNoTaprootXPriv is returned by GetXPriv when no tr() descriptor
	// carries a parsable extended private key.
	ErrNoTaprootXPriv = errors.New("no taproot descriptor with an extended private key")
)

// SignRawTransactionWithWallet signs inputs of tx with keys from the wallet.
// prevOutputs describes outputs the wallet does not know and may be nil.
func (c *Client) SignRawTransactionWithWallet(ctx context.Context, tx *wire.MsgTx,
	prevOutputs []btcjson.PreviousTxOut) (*btcjson.SignRawTransactionWithWalletResult, error) {

	txHex, err := encodeTx(tx)
	if err != nil {
		return nil, err
	}

	var res btcjson.SignRawTransactionWithWalletResult
	cmd := btcjson.NewSignRawTransactionWithWalletCmd(txHex, prevOutputs)
	if err := c.sendCmd(ctx, cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetXPriv returns the extended private key behind the wallet's taproot
// descriptor. When the client was not built with XPrivRetrievable it returns
// nil, nil and sends nothing.
func (c *Client) GetXPriv(ctx context.Context) (*hdkeychain.ExtendedKey, error) {
	if !c.config.XPrivRetrievable {
		return nil, nil
	}

	var res btcjson.ListDescriptorsResult
	if err := c.sendCmd(ctx, btcjson.NewListDescriptorsCmd(true), &res); err != nil {
		return nil, err
	}
	if len(res.Descriptors) == 0 {
		return nil, ErrNoDescriptors
	}

	for _, d := range res.Descriptors {
		keyStr, ok := taprootKey(d.Desc)
		if !ok {
			continue
		}
		key, err := hdkeychain.NewKeyFromString(keyStr)
		if err != nil {
			return nil, errors.Wrap(ErrNoTaprootXPriv, err.Error())
		}
		if !key.IsPrivate() {
			return nil, ErrNoTaprootXPriv
		}
		return key, nil
	}
	return nil, ErrNoTaprootXPriv
}

// taprootKey extracts the key expression of a tr() descriptor, from the
// opening parenthesis up to the first derivation step.
func taprootKey(desc string) (string, bool) {
	_, rest, found := strings.Cut(desc, "tr(")
	if !found {
		return "", false
	}
	// Skip key origin info such as [d34db33f/86h/0h/0h].
	if strings.HasPrefix(rest, "[") {
		if _, after, ok := strings.Cut(rest, "]"); ok {
			rest = after
		}
	}
	key, _, _ := strings.Cut(rest, "/")
	// A descriptor without derivation ends with ")#checksum".
	key, _, _ = strings.Cut(key, ")")
	return key, key != ""
}

// ImportDescriptors creates and loads walletName, then imports descriptors
// into the wallet the client is bound to. A wallet that already exists or is
// already loaded is not an error.
func (c *Client) ImportDescriptors(ctx context.Context, descriptors []btcjson.ImportDescriptorRequest,
	walletName string) ([]btcjson.ImportDescriptorResult, error) {

	err := c.sendCmd(ctx, btcjson.NewCreateWalletCmd(walletName, true), nil)
	if err != nil && !IsServerError(err, btcjson.ErrRPCWallet) &&
		!IsServerError(err, btcjson.ErrRPCWalletAlreadyLoaded) {
		return nil, err
	}
	if err != nil {
		log.Debug().Str("wallet", walletName).Err(err).Msg("wallet already exists")
	}

	err = c.sendCmd(ctx, btcjson.NewLoadWalletCmd(walletName, true), nil)
	if err != nil && !IsServerError(err, btcjson.ErrRPCWalletAlreadyLoaded) {
		return nil, err
	}

	var res []btcjson.ImportDescriptorResult
	if err := c.sendCmd(ctx, btcjson.NewImportDescriptorsCmd(descriptors), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// WalletProcessPSBT updates the PSBT with input information from the wallet
// and signs inputs when sign is nil or true.
func (c *Client) WalletProcessPSBT(ctx context.Context, psbt string, sign *bool,
	sighashType *btcjson.SighashType, bip32Derivs *bool) (*btcjson.WalletProcessPSBTResult, error) {

	var res btcjson.WalletProcessPSBTResult
	cmd := btcjson.NewWalletProcessPSBTCmd(psbt, sign, sighashType, bip32Derivs)
	if err := c.sendCmd(ctx, cmd, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PSBTBumpFee creates a PSBT that replaces the wallet transaction txid with
// a higher fee version.
func (c *Client) PSBTBumpFee(ctx context.Context, txid *chainhash.Hash,
	options *btcjson.PSBTBumpFeeOpts) (*btcjson.PSBTBumpFeeResult, error) {

	var res btcjson.PSBTBumpFeeResult
	if err := c.sendCmd(ctx, btcjson.NewPSBTBumpFeeCmd(txid.String(), options), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
