// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

func encodeTx(tx *wire.MsgTx) (string, error) {
	if tx == nil {
		return "", newError(KindParam, errors.New("nil transaction"))
	}
	txHex, err := codec.EncodeTransaction(tx)
	if err != nil {
		return "", newError(KindParam, err)
	}
	return txHex, nil
}

// SendRawTransaction submits the encoded transaction to the server which will
// then relay it to the network. A transaction that is already in the chain is
// reported as sent and its locally computed txid is returned.
func (c *Client) SendRawTransaction(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error) {
	txHex, err := encodeTx(tx)
	if err != nil {
		return nil, err
	}

	var txid codec.Hash
	err = c.sendCmd(ctx, btcjson.NewSendRawTransactionCmd(txHex), &txid)
	switch {
	case err == nil:
		h := txid.Hash()
		log.Debug().Stringer("txid", h).Msg("transaction sent")
		return &h, nil

	case IsServerError(err, btcjson.ErrRPCVerifyAlreadyInChain):
		h := tx.TxHash()
		log.Debug().Stringer("txid", h).Msg("transaction already in chain")
		return &h, nil
	}
	return nil, err
}

// TestMempoolAccept reports whether tx would be accepted by the mempool
// without submitting it.
func (c *Client) TestMempoolAccept(ctx context.Context, tx *wire.MsgTx) ([]btcjson.TestMempoolAcceptResult, error) {
	txHex, err := encodeTx(tx)
	if err != nil {
		return nil, err
	}

	var res []btcjson.TestMempoolAcceptResult
	if err := c.sendCmd(ctx, btcjson.NewTestMempoolAcceptCmd([]string{txHex}), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SubmitPackage submits a package of dependent transactions, child last.
func (c *Client) SubmitPackage(ctx context.Context, txs []*wire.MsgTx) (*btcjson.SubmitPackageResult, error) {
	rawTxns := make([]string, 0, len(txs))
	for _, tx := range txs {
		txHex, err := encodeTx(tx)
		if err != nil {
			return nil, err
		}
		rawTxns = append(rawTxns, txHex)
	}

	var res btcjson.SubmitPackageResult
	if err := c.sendCmd(ctx, btcjson.NewSubmitPackageCmd(rawTxns), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
