// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

const (
	masterXPriv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	masterXPub  = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
)

func withXPriv(cfg *ConnConfig) { cfg.XPrivRetrievable = true }

func TestTaprootKey(t *testing.T) {
	tests := []struct {
		desc string
		key  string
		ok   bool
	}{
		{"tr(" + masterXPriv + "/86'/0'/0'/0/*)#abcd", masterXPriv, true},
		{"tr([d34db33f/86h/0h/0h]" + masterXPriv + "/0/*)#abcd", masterXPriv, true},
		{"tr(" + masterXPriv + ")#abcd", masterXPriv, true},
		{"wpkh(" + masterXPriv + "/84'/0'/0'/0/*)#abcd", "", false},
		{"tr()", "", false},
	}
	for _, test := range tests {
		key, ok := taprootKey(test.desc)
		assert.Equal(t, test.ok, ok, test.desc)
		assert.Equal(t, test.key, key, test.desc)
	}
}

func TestGetXPrivDisabled(t *testing.T) {
	node, srv := newFakeNode(t)
	client, _ := newTestClient(t, srv.URL)

	key, err := client.GetXPriv(context.Background())
	require.NoError(t, err)
	assert.Nil(t, key)
	assert.Empty(t, node.calls())
}

func TestGetXPriv(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("listdescriptors", map[string]interface{}{
		"wallet_name": "hot",
		"descriptors": []map[string]interface{}{
			{"desc": "wpkh(" + masterXPriv + "/84'/0'/0'/0/*)#qwer"},
			{"desc": "tr(" + masterXPriv + "/86'/0'/0'/0/*)#checksum", "active": true},
		},
	})

	client, _ := newTestClient(t, srv.URL, withXPriv)
	key, err := client.GetXPriv(context.Background())
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.True(t, key.IsPrivate())
	assert.Equal(t, masterXPriv, key.String())

	calls := node.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []interface{}{true}, paramsOf(t, calls[0]))
}

func TestGetXPrivErrors(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []map[string]interface{}
		want        error
	}{
		{"empty", []map[string]interface{}{}, ErrNoDescriptors},
		{"no taproot", []map[string]interface{}{{"desc": "wpkh(" + masterXPriv + "/0/*)#x"}}, ErrNoTaprootXPriv},
		{"public only", []map[string]interface{}{{"desc": "tr(" + masterXPub + "/0/*)#x"}}, ErrNoTaprootXPriv},
		{"garbage key", []map[string]interface{}{{"desc": "tr(notakey/0/*)#x"}}, ErrNoTaprootXPriv},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node, srv := newFakeNode(t)
			node.respond("listdescriptors", map[string]interface{}{
				"wallet_name": "hot",
				"descriptors": test.descriptors,
			})

			client, _ := newTestClient(t, srv.URL, withXPriv)
			key, err := client.GetXPriv(context.Background())
			assert.Nil(t, key)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestImportDescriptors(t *testing.T) {
	node, srv := newFakeNode(t)
	node.fail("createwallet", btcjson.ErrRPCWallet, "Database already exists.")
	node.fail("loadwallet", btcjson.ErrRPCWalletAlreadyLoaded, "Wallet is already loaded.")
	node.respond("importdescriptors", []map[string]interface{}{{"success": true}})

	client, _ := newTestClient(t, srv.URL)
	requests := []btcjson.ImportDescriptorRequest{{
		Desc:      "tr(" + masterXPriv + "/86'/0'/0'/0/*)#checksum",
		Active:    btcjson.Bool(true),
		Timestamp: "now",
	}}

	res, err := client.ImportDescriptors(context.Background(), requests, "hot")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Success)

	calls := node.calls()
	assert.Equal(t, []string{"createwallet", "loadwallet", "importdescriptors"}, node.methods())
	assert.Equal(t, "hot", paramsOf(t, calls[0])[0])
	assert.Equal(t, []interface{}{"hot", true}, paramsOf(t, calls[1]))
	assert.Equal(t, []interface{}{
		[]interface{}{map[string]interface{}{
			"desc":      requests[0].Desc,
			"active":    true,
			"timestamp": "now",
		}},
	}, paramsOf(t, calls[2]))
}

func TestImportDescriptorsLoadFailure(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("createwallet", map[string]interface{}{"name": "hot"})
	node.fail("loadwallet", btcjson.ErrRPCWalletNotFound, "Wallet file not found.")

	client, _ := newTestClient(t, srv.URL)
	_, err := client.ImportDescriptors(context.Background(), nil, "hot")
	assert.True(t, IsServerError(err, btcjson.ErrRPCWalletNotFound))
	assert.Equal(t, []string{"createwallet", "loadwallet"}, node.methods())
}

func TestWalletProcessPSBT(t *testing.T) {
	node, srv := newFakeNode(t)
	node.respond("walletprocesspsbt", map[string]interface{}{"psbt": testPSBT, "complete": false})

	client, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	res, err := client.WalletProcessPSBT(ctx, testPSBT, nil, nil, btcjson.Bool(true))
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.True(t, res.PSBT.Present())
	assert.Nil(t, res.Hex)

	sighash := btcjson.SighashAll
	_, err = client.WalletProcessPSBT(ctx, testPSBT, btcjson.Bool(false), &sighash, nil)
	require.NoError(t, err)

	calls := node.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []interface{}{testPSBT, true, "DEFAULT", true}, paramsOf(t, calls[0]))
	assert.Equal(t, []interface{}{testPSBT, false, "ALL"}, paramsOf(t, calls[1]))
}

func TestPSBTBumpFee(t *testing.T) {
	txid := testTx().TxHash()

	node, srv := newFakeNode(t)
	node.respond("psbtbumpfee", map[string]interface{}{
		"psbt": testPSBT, "origfee": 0.0000141, "fee": 0.0000282, "errors": []string{},
	})

	client, _ := newTestClient(t, srv.URL)
	rate := codec.FeeRate(20)
	res, err := client.PSBTBumpFee(context.Background(), &txid, &btcjson.PSBTBumpFeeOpts{FeeRate: &rate})
	require.NoError(t, err)
	assert.EqualValues(t, 1410, res.OrigFee.Amount())
	assert.EqualValues(t, 2820, res.Fee.Amount())
	require.NotNil(t, res.PSBT.Packet)

	assert.Equal(t, []interface{}{txid.String(), map[string]interface{}{"fee_rate": 20.0}},
		paramsOf(t, node.calls()[0]))
}

func TestSignRawTransactionWithWallet(t *testing.T) {
	tx := testTx()
	txHex, err := codec.EncodeTransaction(tx)
	require.NoError(t, err)

	node, srv := newFakeNode(t)
	node.respond("signrawtransactionwithwallet", map[string]interface{}{"hex": txHex, "complete": true})

	client, _ := newTestClient(t, srv.URL)
	res, err := client.SignRawTransactionWithWallet(context.Background(), tx, nil)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, tx.TxHash(), res.Hex.TxHash())
	assert.Equal(t, []interface{}{txHex}, paramsOf(t, node.calls()[0]))

	_, err = client.SignRawTransactionWithWallet(context.Background(), nil, nil)
	kind, _ := KindOf(err)
	assert.Equal(t, KindParam, kind)
	assert.Len(t, node.calls(), 1)
}
