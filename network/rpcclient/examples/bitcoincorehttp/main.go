// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/btcrpc/corelog"
	"gitlab.com/jaxnet/btcrpc/network/rpcclient"
)

func main() {
	rpcclient.UseLogger(corelog.New("rpc", zerolog.DebugLevel, corelog.Config{}.Default()))

	auth := rpcclient.UserPass("somerpc", "somerpc")
	if cookie := os.Getenv("BITCOIN_COOKIE"); cookie != "" {
		auth = rpcclient.CookieFile(cookie)
	}

	// Connect to a local regtest node. Bitcoin Core only speaks HTTP POST.
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		URL:           "http://127.0.0.1:18443",
		Auth:          auth,
		MaxRetries:    5,
		RetryInterval: 500 * time.Millisecond,
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	params, err := client.Network(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("network:", params.Name)

	blockCount, err := client.GetBlockCount(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("block count:", blockCount)

	header, err := client.GetBlockHeaderAt(ctx, blockCount)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("tip:", header.BlockHash(), header.Timestamp)

	feeRate, err := client.EstimateSmartFee(ctx, 6)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("fee rate:", feeRate)

	mempool, err := client.GetRawMempool(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("mempool size:", len(mempool))
}
