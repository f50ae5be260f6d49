// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/btcrpc/metrics"
	"golang.org/x/sync/errgroup"
)

const metricsRoute = "/metrics"

func (app *App) blockCountCmd(c *cli.Context) error {
	count, err := app.client.GetBlockCount(c.Context)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to get block count"), 1)
	}
	fmt.Fprintln(c.App.Writer, count)
	return nil
}

func (app *App) blockAtCmd(c *cli.Context) error {
	height := c.Uint64(flagHeight)

	block, err := app.client.GetBlockAt(c.Context, height)
	if err != nil {
		return cli.NewExitError(errors.Wrapf(err, "unable to get block at %d", height), 1)
	}

	if c.Bool(flagDump) {
		spew.Fdump(c.App.Writer, block)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Height: %d\nHash: %s\nTime: %s\nTxs: %d\n",
		height, block.BlockHash(), block.Header.Timestamp.UTC(), len(block.Transactions))
	return nil
}

func (app *App) blocksCmd(c *cli.Context) error {
	from, to := c.Uint64(flagFrom), c.Uint64(flagTo)
	workers := c.Int(flagWorkers)
	if to < from {
		return cli.NewExitError("--to must not be below --from", 1)
	}
	if workers < 1 {
		return cli.NewExitError("--workers must be positive", 1)
	}

	headers := make([]*wire.BlockHeader, to-from+1)
	group, ctx := errgroup.WithContext(c.Context)
	group.SetLimit(workers)
	for i := range headers {
		i := i
		group.Go(func() error {
			header, err := app.client.GetBlockHeaderAt(ctx, from+uint64(i))
			if err != nil {
				return errors.Wrapf(err, "unable to get header at %d", from+uint64(i))
			}
			headers[i] = header
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return cli.NewExitError(err, 1)
	}

	rows := make([][]string, 0, len(headers))
	for i, header := range headers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", from+uint64(i)),
			header.BlockHash().String(),
			header.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%08x", header.Bits),
		})
	}

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Height", "Hash", "Time", "Bits"})
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (app *App) mempoolCmd(c *cli.Context) error {
	info, err := app.client.GetMempoolInfo(c.Context)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to get mempool info"), 1)
	}
	fmt.Fprintf(c.App.Writer, "Transactions: %d\nBytes: %d\nUsage: %d/%d\n",
		info.Size, info.Bytes, info.Usage, info.MaxMempool)

	if !c.Bool(flagVerbose) {
		return nil
	}

	entries, err := app.client.GetRawMempoolVerbose(c.Context)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to get mempool entries"), 1)
	}
	txids := make([]string, 0, len(entries))
	for txid := range entries {
		txids = append(txids, txid)
	}
	sort.Strings(txids)

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Txid", "VSize", "Fee", "RBF"})
	for _, txid := range txids {
		entry := entries[txid]
		table.Append([]string{
			txid,
			fmt.Sprintf("%d", entry.VSize),
			entry.Fees.Base.Amount().String(),
			fmt.Sprintf("%v", entry.BIP125Replaceable),
		})
	}
	table.Render()
	return nil
}

func (app *App) feeCmd(c *cli.Context) error {
	rate, err := app.client.EstimateSmartFee(c.Context, uint16(c.Uint(flagTarget)))
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to estimate fee"), 1)
	}
	fmt.Fprintln(c.App.Writer, rate)
	return nil
}

func (app *App) statusCmd(c *cli.Context) error {
	const na = "N/A"
	rows := [][]string{
		{"Chain", na}, {"Blocks / Headers", na}, {"Best block", na}, {"Verification", na},
		{"Mempool", na}, {"Fee (6 blocks)", na},
	}

	// Every field is best effort; a failing call leaves its row at N/A.
	if info, err := app.client.GetBlockChainInfo(c.Context); err == nil {
		rows[0][1] = info.Chain
		rows[1][1] = fmt.Sprintf("%d / %d", info.Blocks, info.Headers)
		rows[2][1] = info.BestBlockHash
		rows[3][1] = fmt.Sprintf("%.4f%% (ibd: %v)", info.VerificationProgress*100, info.InitialBlockDownload)
	} else {
		app.log.Warn().Err(err).Msg("getblockchaininfo failed")
	}
	if info, err := app.client.GetMempoolInfo(c.Context); err == nil {
		rows[4][1] = fmt.Sprintf("%d txs, %d bytes", info.Size, info.Bytes)
	} else {
		app.log.Warn().Err(err).Msg("getmempoolinfo failed")
	}
	if rate, err := app.client.EstimateSmartFee(c.Context, 6); err == nil {
		rows[5][1] = rate.String()
	} else {
		app.log.Warn().Err(err).Msg("estimatesmartfee failed")
	}

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Node", "Field", "Value"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, row := range rows {
		table.Append(append([]string{app.cfg.RPC.URL}, row...))
	}
	table.Render()
	return nil
}

func (app *App) serveMetricsCmd(c *cli.Context) error {
	if app.cfg.MetricsAddr == "" {
		return cli.NewExitError("metrics address is not configured", 1)
	}

	manager := metrics.NewManager(c.Context, c.Duration(flagInterval), app.registry)
	manager.Add(metrics.ChainMetrics(app.client, app.cfg.Network, app.registry))

	app.log.Info().Str("addr", app.cfg.MetricsAddr).Msg("serving metrics")
	if err := manager.Listen(c.Context, app.cfg.MetricsAddr, metricsRoute); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}
