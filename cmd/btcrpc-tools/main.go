// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/btcrpc/config"
	"gitlab.com/jaxnet/btcrpc/corelog"
	"gitlab.com/jaxnet/btcrpc/network/rpcclient"
)

const metricsNamespace = "btcrpc"

func main() {
	if err := run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	app := &App{log: corelog.Disabled}
	ctx, cancel := interruptContext(context.Background(), &app.log)
	defer cancel()

	cliApp := &cli.App{
		Name:     "btcrpc-tools",
		Usage:    "routine bitcoind operations over JSON-RPC",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
	}
	return cliApp.RunContext(ctx, args)
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "blockcount",
			Usage:  "print the height of the chain tip",
			Action: app.blockCountCmd,
		},
		{
			Name:   "block-at",
			Usage:  "fetch the block at the given height",
			Flags:  []cli.Flag{standardFlags[flagHeight], standardFlags[flagDump]},
			Action: app.blockAtCmd,
		},
		{
			Name:  "blocks",
			Usage: "fetch a range of block headers in parallel",
			Flags: []cli.Flag{
				standardFlags[flagFrom],
				standardFlags[flagTo],
				standardFlags[flagWorkers],
			},
			Action: app.blocksCmd,
		},
		{
			Name:   "mempool",
			Usage:  "print mempool summary",
			Flags:  []cli.Flag{standardFlags[flagVerbose]},
			Action: app.mempoolCmd,
		},
		{
			Name:   "fee",
			Usage:  "estimate the fee rate in sat/vB",
			Flags:  []cli.Flag{standardFlags[flagTarget]},
			Action: app.feeCmd,
		},
		{
			Name:   "status",
			Usage:  "print chain, mempool and fee state of the node",
			Action: app.statusCmd,
		},
		{
			Name:  "send-tx",
			Usage: "broadcast a signed transaction",
			Flags: []cli.Flag{
				standardFlags[flagTxBody],
				standardFlags[flagTestOnly],
			},
			Action: app.sendTxCmd,
		},
		{
			Name:  "sync-utxo",
			Usage: "fetch wallet UTXO data to CSV file",
			Flags: []cli.Flag{
				standardFlags[flagDataDir],
				standardFlags[flagMinConf],
				standardFlags[flagShow],
			},
			Action: app.syncUTXOCmd,
		},
		{
			Name:   "xpriv",
			Usage:  "print the wallet's taproot extended key",
			Flags:  []cli.Flag{standardFlags[flagPrivate]},
			Action: app.xprivCmd,
		},
		{
			Name:   "serve-metrics",
			Usage:  "serve node gauges and client counters for Prometheus",
			Flags:  []cli.Flag{standardFlags[flagInterval]},
			Action: app.serveMetricsCmd,
		},
		{
			Name:  "decode",
			Usage: "decodes hex-encoded data",
			Subcommands: cli.Commands{
				{
					Name:   "tx",
					Usage:  "decode hex encoded transaction body",
					Flags:  []cli.Flag{standardFlags[flagTxBody]},
					Action: app.decodeTxCmd,
				},
			},
		},
	}
}

type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	client   *rpcclient.Client
	registry *prometheus.Registry
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		standardFlags[flagConfig],
		standardFlags[flagRPCURL],
		standardFlags[flagWallet],
		standardFlags[flagNet],
		standardFlags[flagDebugLevel],
		standardFlags[flagMetrics],
	}
}

// configArgs turns the global flags that were set into config options.
// Everything else comes from the environment and the config file.
func configArgs(c *cli.Context) []string {
	options := []struct{ flag, option string }{
		{flagConfig, "--configfile"},
		{flagRPCURL, "--rpcurl"},
		{flagWallet, "--wallet"},
		{flagNet, "--net"},
		{flagDebugLevel, "--debuglevel"},
		{flagMetrics, "--metrics"},
	}

	var args []string
	for _, o := range options {
		if c.IsSet(o.flag) {
			args = append(args, o.option, c.String(o.flag))
		}
	}
	return args
}

func (app *App) InitCfg(c *cli.Context) error {
	cfg, _, err := config.Load(configArgs(c))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	app.log, err = cfg.SetupLogging()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	app.registry = prometheus.NewRegistry()
	rpcMetrics := rpcclient.NewMetrics(metricsNamespace)
	if err = rpcMetrics.Register(app.registry); err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to register client metrics"), 1)
	}

	app.client, err = rpcclient.New(cfg.ConnConfig(rpcMetrics))
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to init rpc client"), 1)
	}
	app.cfg = cfg
	return nil
}

// checkNetwork refuses to continue when the node runs another chain than
// the configured one.
func (app *App) checkNetwork(ctx context.Context) error {
	expected, err := app.cfg.ChainParams()
	if err != nil {
		return err
	}
	actual, err := app.client.Network(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get node network")
	}
	if actual.Name != expected.Name {
		return fmt.Errorf("node runs %s, config expects %s", actual.Name, expected.Name)
	}
	return nil
}
