// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

const (
	walletAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	testPSBT      = "cHNidP8BAHUCAAAAASaBcTce3/KF6Tet7qSze3gADAVmy7OtZGQXE8pCFxv2AAAAAAD+////AtPf9QUAAAAAGXapFNDFmQPFusKGh2DpD9UhpGZap2UgiKwA4fUFAAAAABepFDVF5uM7gyxHBQ8k0+65PJwDlIvHh7MuEwAAAQD9pQEBAAAAAAECiaPHHqtNIOA3G7ukzGmPopXJRjr6Ljl/hTPMti+VZ+UBAAAAFxYAFL4Y0VKpsBIDna89p95PUzSe7LmF/////4b4qkOnHf8USIk6UwpyN+9rRgi7st0tAXHmOuxqSJC0AQAAABcWABT+Pp7xp0XpdNkCxDVZQ6vLNL1TU/////8CAMLrCwAAAAAZdqkUhc/xCX/Z4Ai7NK9wnGIZeziXikiIrHL++E4sAAAAF6kUM5cluiHv1irHU6m80GfWx6ajnQWHAkcwRAIgJxK+IuAnDzlPVoMR3HyppolwuAJf3TskAinwf4pfOiQCIAGLONfc0xTnNMkna9b7QPZzMlvEuqFEyADS8vAtsnZcASED0uFWdJQbrUqZY3LLh+GFbTZSYG2YVi/jnF6efkE/IQUCSDBFAiEA0SuFLYXc2WHS9fSrZgZU327tzHlMDDPOXMMJ/7X85Y0CIGczio4OFyXBl/saiK9Z9R5E5CVbIBZ8hoQDHAXR8lkqASECI7cr7vCWXRC+B3jv7NYfysb3mk6haTkzgHNEZPhPKrMAAAAAAAAA"
)

func TestGetNewAddress(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("getnewaddress", walletAddress)

	client, _ := newTestClient(t, srv.URL)
	addr, err := client.GetNewAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, walletAddress, addr.EncodeAddress())
	assert.True(t, addr.IsForNet(&chaincfg.MainNetParams))

	node.respond("getnewaddress", "not-an-address")
	_, err = client.GetNewAddress(context.Background())
	kind, _ := KindOf(err)
	assert.Equal(t, KindParse, kind)
}

func TestGetTransaction(t *testing.T) {
	tx := testTx()
	txid := tx.TxHash()
	txHex, err := codec.EncodeTransaction(tx)
	require.NoError(t, err)

	node, srv := newFakeNode(t)
	node.handle("gettransaction", func([]json.RawMessage) (interface{}, *btcjson.RPCError) {
		return json.RawMessage(`{"amount":-0.5,"fee":-0.0000141,"confirmations":2,"blockheight":101,
			"txid":"` + txid.String() + `","wtxid":"` + txid.String() + `","walletconflicts":[],
			"time":1700000000,"timereceived":1700000000,"bip125-replaceable":"no",
			"details":[{"address":"` + walletAddress + `","category":"send","amount":-0.5,"vout":0,"fee":-0.0000141}],
			"hex":"` + txHex + `"}`), nil
	})

	client, _ := newTestClient(t, srv.URL)
	res, err := client.GetTransaction(context.Background(), &txid)
	require.NoError(t, err)
	assert.EqualValues(t, -50_000_000, res.Amount.Amount())
	assert.EqualValues(t, -1410, res.Fee.Amount())
	assert.True(t, res.Confirmed())
	assert.Equal(t, btcjson.CategorySend, res.Details[0].Category)
	assert.Equal(t, txid, res.Hex.TxHash())
}

func TestListTransactions(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("listtransactions", []map[string]interface{}{})

	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.ListTransactions(ctx, nil)
	require.NoError(t, err)
	_, err = client.ListTransactions(ctx, btcjson.Int(25))
	require.NoError(t, err)

	calls := node.calls()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].Params)
	assert.Equal(t, []interface{}{"*", 25.0}, paramsOf(t, calls[1]))
}

func TestListUnspent(t *testing.T) {
	txid := testTx().TxHash().String()

	node, srv := newFakeNode(t)
	node.respond("listunspent", []map[string]interface{}{{
		"txid": txid, "vout": 1, "address": walletAddress, "scriptPubKey": "76a914",
		"amount": 0.12345678, "confirmations": 6, "spendable": true, "solvable": true, "safe": true,
	}})

	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	utxos, err := client.GetUTXOs(ctx)
	require.NoError(t, err)
	require.Len(t, utxos, 1)
	assert.EqualValues(t, 12_345_678, utxos[0].Amount.Amount())
	assert.Equal(t, walletAddress, utxos[0].Address.String())

	addr, err := btcutil.DecodeAddress(walletAddress, &chaincfg.MainNetParams)
	require.NoError(t, err)
	minAmount := codec.BTC(btcutil.Amount(1000))

	_, err = client.ListUnspent(ctx, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	_, err = client.ListUnspent(ctx, btcjson.Int(0), btcjson.Int(10), []btcutil.Address{addr},
		btcjson.Bool(false), &btcjson.ListUnspentQueryOptions{MinimumAmount: &minAmount})
	require.NoError(t, err)

	calls := node.calls()
	require.Len(t, calls, 3)
	assert.Empty(t, calls[0].Params)
	assert.Equal(t, []interface{}{1.0, 9999999.0, []interface{}{}, true}, paramsOf(t, calls[1]))
	assert.Equal(t, []interface{}{
		0.0, 10.0, []interface{}{walletAddress}, false,
		map[string]interface{}{"minimumAmount": 0.00001},
	}, paramsOf(t, calls[2]))
}

func TestListWallets(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("listwallets", []string{"", "watch"})

	client, _ := newTestClient(t, srv.URL)
	wallets, err := client.ListWallets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"", "watch"}, wallets)
}

func TestCreateRawTransaction(t *testing.T) {
	tx := testTx()
	txHex, err := codec.EncodeTransaction(tx)
	require.NoError(t, err)

	node, srv := newFakeNode(t)
	node.respond("createrawtransaction", txHex)

	client, _ := newTestClient(t, srv.URL)
	inputs := []btcjson.TransactionInput{{Txid: codec.Hash(tx.TxHash()), Vout: 0}}
	outputs := []codec.OutputSpec{
		codec.AddressOutput(walletAddress, 150_000_000),
		codec.DataOutput([]byte{0xde, 0xad}),
	}

	got, err := client.CreateRawTransaction(context.Background(), inputs, outputs)
	require.NoError(t, err)
	assert.Equal(t, tx.TxHash(), got.TxHash())

	assert.Equal(t, []interface{}{
		[]interface{}{map[string]interface{}{"txid": tx.TxHash().String(), "vout": 0.0}},
		[]interface{}{
			map[string]interface{}{walletAddress: 1.5},
			map[string]interface{}{"data": "dead"},
		},
	}, paramsOf(t, node.calls()[0]))
}

func TestWalletCreateFundedPSBT(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("walletcreatefundedpsbt", map[string]interface{}{
		"psbt": testPSBT, "fee": 0.00000282, "changepos": 1,
	})

	client, _ := newTestClient(t, srv.URL)
	outputs := []codec.OutputSpec{codec.AddressOutput(walletAddress, 10_000)}
	res, err := client.WalletCreateFundedPSBT(context.Background(), nil, outputs, nil,
		&btcjson.WalletCreateFundedPSBTOpts{FeeRate: btcjson.Float64(2)}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 282, res.Fee.Amount())
	assert.EqualValues(t, 1, res.ChangePos)
	require.NotNil(t, res.PSBT.Packet)
	assert.Len(t, res.PSBT.UnsignedTx.TxOut, 2)

	params := paramsOf(t, node.calls()[0])
	require.Len(t, params, 4)
	assert.Equal(t, []interface{}{}, params[0])
	assert.Equal(t, 0.0, params[2])
	assert.Equal(t, map[string]interface{}{"fee_rate": 2.0}, params[3])
}

func TestGetAddressInfo(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("getaddressinfo", map[string]interface{}{
		"address": walletAddress, "ismine": true, "iswatchonly": false, "solvable": true,
	})

	addr, err := btcutil.DecodeAddress(walletAddress, &chaincfg.MainNetParams)
	require.NoError(t, err)

	client, _ := newTestClient(t, srv.URL)
	info, err := client.GetAddressInfo(context.Background(), addr)
	require.NoError(t, err)
	require.NotNil(t, info.IsMine)
	assert.True(t, *info.IsMine)
	assert.Equal(t, []interface{}{walletAddress}, paramsOf(t, node.calls()[0]))
}
