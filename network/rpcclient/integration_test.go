// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build integration
// +build integration

package rpcclient_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/ory/dockertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/btcrpc/network/rpcclient"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

const (
	regtestImage = "ruimarinho/bitcoin-core"
	regtestTag   = "24"
	rpcUser      = "btcrpc"
	rpcPass      = "btcrpc"
	walletName   = "itest"
)

var nodeURL string

func TestMain(m *testing.M) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: regtestImage,
		Tag:        regtestTag,
		Cmd: []string{
			"-regtest=1",
			"-server=1",
			"-rpcuser=" + rpcUser,
			"-rpcpassword=" + rpcPass,
			"-rpcbind=0.0.0.0",
			"-rpcallowip=0.0.0.0/0",
			"-fallbackfee=0.0002",
			"-txindex=1",
		},
		ExposedPorts: []string{"18443/tcp"},
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	nodeURL = "http://localhost:" + resource.GetPort("18443/tcp")

	// exponential backoff-retry, because bitcoind needs a moment before
	// it accepts RPC connections
	client := newClient(nodeURL, false)
	if err := pool.Retry(func() error {
		_, err := client.GetBlockCount(context.Background())
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to bitcoind: %s", err)
	}

	code := m.Run()

	// You can't defer this because os.Exit doesn't care for defer
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func newClient(url string, xprivRetrievable bool) *rpcclient.Client {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		URL:              url,
		Auth:             rpcclient.UserPass(rpcUser, rpcPass),
		MaxRetries:       1,
		RetryInterval:    100 * time.Millisecond,
		XPrivRetrievable: xprivRetrievable,
	})
	if err != nil {
		log.Fatalf("Could not create client: %s", err)
	}
	return client
}

func rawParams(t *testing.T, params ...interface{}) []json.RawMessage {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		data, err := json.Marshal(p)
		require.NoError(t, err)
		raw = append(raw, data)
	}
	return raw
}

func generate(t *testing.T, client *rpcclient.Client, blocks int, address btcutil.Address) {
	err := client.Call(context.Background(), "generatetoaddress",
		rawParams(t, blocks, address.EncodeAddress()), nil)
	require.NoError(t, err)
}

func TestRegtestRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	node := newClient(nodeURL, false)

	params, err := node.Network(ctx)
	require.NoError(t, err)
	assert.Equal(t, "regtest", params.Name)

	// The wallet does not exist yet, so this creates and loads it. Running
	// it again hits both "already exists" and "already loaded".
	for i := 0; i < 2; i++ {
		_, err = node.ImportDescriptors(ctx, []btcjson.ImportDescriptorRequest{}, walletName)
		require.NoError(t, err)
	}

	wallet := newClient(nodeURL+"/wallet/"+walletName, true)
	miner, err := wallet.GetNewAddress(ctx)
	require.NoError(t, err)
	generate(t, node, 101, miner)

	count, err := node.GetBlockCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 101, count)

	tip, err := node.GetBlockAt(ctx, count)
	require.NoError(t, err)
	ts, err := node.GetCurrentTimestamp(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, tip.Header.Timestamp.Unix(), ts)

	utxos, err := wallet.GetUTXOs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, utxos)

	xpriv, err := wallet.GetXPriv(ctx)
	require.NoError(t, err)
	require.NotNil(t, xpriv)
	assert.True(t, xpriv.IsPrivate())

	dest, err := wallet.GetNewAddress(ctx)
	require.NoError(t, err)
	funded, err := wallet.WalletCreateFundedPSBT(ctx, nil,
		[]codec.OutputSpec{codec.AddressOutput(dest.EncodeAddress(), btcutil.SatoshiPerBitcoin)},
		nil, nil, nil)
	require.NoError(t, err)
	assert.Greater(t, int64(funded.Fee.Amount()), int64(0))

	encoded, err := codec.EncodePSBT(funded.PSBT.Packet)
	require.NoError(t, err)
	processed, err := wallet.WalletProcessPSBT(ctx, encoded, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, processed.Complete)
	require.NotNil(t, processed.Hex)

	tx := processed.Hex.MsgTx
	accept, err := node.TestMempoolAccept(ctx, tx)
	require.NoError(t, err)
	require.Len(t, accept, 1)
	require.NotNil(t, accept[0].Allowed)
	assert.True(t, *accept[0].Allowed)

	txid, err := node.SendRawTransaction(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, tx.TxHash(), *txid)

	mempool, err := node.GetRawMempool(ctx)
	require.NoError(t, err)
	assert.Contains(t, mempool, *txid)

	// Once mined, bitcoind answers -27 and the client still reports success.
	generate(t, node, 1, miner)
	again, err := node.SendRawTransaction(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, *txid, *again)

	walletTx, err := wallet.GetTransaction(ctx, txid)
	require.NoError(t, err)
	assert.True(t, walletTx.Confirmed())
}

func TestRegtestServerErrors(t *testing.T) {
	ctx := context.Background()
	node := newClient(nodeURL, false)

	_, err := node.GetBlockHash(ctx, 1<<30)
	assert.True(t, rpcclient.IsServerError(err, btcjson.ErrRPCInvalidParameter))

	wrongAuth, err := rpcclient.New(&rpcclient.ConnConfig{
		URL:  nodeURL,
		Auth: rpcclient.UserPass(rpcUser, "wrong"),
	})
	require.NoError(t, err)
	_, err = wrongAuth.GetBlockCount(ctx)
	kind, _ := rpcclient.KindOf(err)
	assert.Equal(t, rpcclient.KindStatus, kind)
}
