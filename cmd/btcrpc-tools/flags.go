// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

const (
	flagConfig     = "config"
	flagRPCURL     = "rpcurl"
	flagWallet     = "wallet"
	flagNet        = "net"
	flagDebugLevel = "debuglevel"
	flagMetrics    = "metrics"

	flagHeight   = "height"
	flagFrom     = "from"
	flagTo       = "to"
	flagWorkers  = "workers"
	flagDump     = "dump"
	flagVerbose  = "verbose"
	flagTarget   = "target"
	flagTxBody   = "tx-body"
	flagTestOnly = "test-only"
	flagDataDir  = "data-dir"
	flagMinConf  = "min-conf"
	flagShow     = "show"
	flagPrivate  = "private"
	flagInterval = "interval"
)

var standardFlags = map[string]cli.Flag{
	flagConfig: &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "path to configuration (.toml or .yaml)",
	},
	flagRPCURL: &cli.StringFlag{
		Name:  flagRPCURL,
		Usage: "bitcoind JSON-RPC endpoint, will override value from config file",
	},
	flagWallet: &cli.StringFlag{
		Name:    flagWallet,
		Aliases: []string{"w"},
		Usage:   "wallet name, will override value from config file",
	},
	flagNet: &cli.StringFlag{
		Name:  flagNet,
		Usage: "expected chain: main, test, regtest or signet",
	},
	flagDebugLevel: &cli.StringFlag{
		Name:    flagDebugLevel,
		Aliases: []string{"d"},
		Usage:   "logging level or <unit>=<level> pairs",
	},
	flagMetrics: &cli.StringFlag{
		Name:  flagMetrics,
		Usage: "address of the Prometheus listener",
	},
	flagHeight: &cli.Uint64Flag{
		Name:     flagHeight,
		Usage:    "block height",
		Required: true,
	},
	flagFrom: &cli.Uint64Flag{
		Name:     flagFrom,
		Usage:    "first height of the range",
		Required: true,
	},
	flagTo: &cli.Uint64Flag{
		Name:     flagTo,
		Usage:    "last height of the range, inclusive",
		Required: true,
	},
	flagWorkers: &cli.IntFlag{
		Name:  flagWorkers,
		Value: 4,
		Usage: "number of parallel requests",
	},
	flagDump: &cli.BoolFlag{
		Name:  flagDump,
		Usage: "dump the decoded structure",
	},
	flagVerbose: &cli.BoolFlag{
		Name:    flagVerbose,
		Aliases: []string{"v"},
		Usage:   "print every entry",
	},
	flagTarget: &cli.UintFlag{
		Name:  flagTarget,
		Value: 6,
		Usage: "confirmation target in blocks",
	},
	flagTxBody: &cli.StringFlag{
		Name:     flagTxBody,
		Aliases:  []string{"b"},
		Usage:    "hex-encoded body of transaction",
		Required: true,
	},
	flagTestOnly: &cli.BoolFlag{
		Name:  flagTestOnly,
		Usage: "only run testmempoolaccept",
	},
	flagDataDir: &cli.StringFlag{
		Name:    flagDataDir,
		Aliases: []string{"f"},
		Value:   ".",
		EnvVars: []string{"BTCRPC_DATA_DIR"},
		Usage:   "directory of the UTXO index",
	},
	flagMinConf: &cli.UintFlag{
		Name:  flagMinConf,
		Value: 1,
		Usage: "skip outputs with fewer confirmations",
	},
	flagShow: &cli.IntFlag{
		Name:  flagShow,
		Value: 20,
		Usage: "number of rows to print",
	},
	flagPrivate: &cli.BoolFlag{
		Name:  flagPrivate,
		Usage: "print the private key instead of its public form",
	},
	flagInterval: &cli.DurationFlag{
		Name:  flagInterval,
		Value: 15 * time.Second,
		Usage: "polling interval of the node gauges",
	},
}
