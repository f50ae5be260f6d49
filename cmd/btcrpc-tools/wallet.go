// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/btcrpc/txmodels"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

func (app *App) sendTxCmd(c *cli.Context) error {
	tx, err := codec.DecodeTransaction(c.String(flagTxBody))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if err = app.checkNetwork(c.Context); err != nil {
		return cli.NewExitError(err, 1)
	}

	results, err := app.client.TestMempoolAccept(c.Context, tx)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "testmempoolaccept failed"), 1)
	}
	for _, res := range results {
		if res.Allowed != nil && !*res.Allowed {
			reason := "unknown"
			if res.RejectReason != nil {
				reason = *res.RejectReason
			}
			return cli.NewExitError(fmt.Sprintf("tx %s rejected: %s", res.Txid, reason), 1)
		}
	}
	if c.Bool(flagTestOnly) {
		fmt.Fprintf(c.App.Writer, "Tx accepted: %s\n", tx.TxHash())
		return nil
	}

	txid, err := app.client.SendRawTransaction(c.Context, tx)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "tx not sent"), 1)
	}
	fmt.Fprintf(c.App.Writer, "Tx Sent: %s\n", txid)
	return nil
}

func (app *App) syncUTXOCmd(c *cli.Context) error {
	if err := app.checkNetwork(c.Context); err != nil {
		return cli.NewExitError(err, 1)
	}

	keys := []string{app.cfg.Network}
	if app.cfg.RPC.Wallet != "" {
		keys = append(keys, app.cfg.RPC.Wallet)
	}
	repo := txmodels.NewUTXORepo(c.String(flagDataDir), keys...)
	if err := repo.ReadIndex(); err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to open UTXO index"), 1)
	}
	if err := repo.CollectFromRPC(c.Context, app.client, uint32(c.Uint(flagMinConf))); err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to collect UTXO"), 1)
	}
	if err := repo.SaveIndex(); err != nil {
		return cli.NewExitError(err, 1)
	}

	rows, err := repo.ListUTXOs(0, c.Int(flagShow))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Address", "Outpoint", "Value", "Conf"})
	for _, row := range rows {
		table.Append([]string{
			row.Address,
			fmt.Sprintf("%s:%d", row.TxHash, row.OutIndex),
			row.Amount().String(),
			fmt.Sprintf("%d", row.Confirmations),
		})
	}
	table.SetFooter([]string{"", "", "Balance", btcutil.Amount(repo.Balance()).String()})
	table.Render()
	return nil
}

func (app *App) xprivCmd(c *cli.Context) error {
	if !app.cfg.RPC.XPrivRetrievable {
		return cli.NewExitError("key retrieval is disabled, set BTCRPC_XPRIV_RETRIEVABLE=true", 1)
	}

	key, err := app.client.GetXPriv(c.Context)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to get xpriv"), 1)
	}
	if c.Bool(flagPrivate) {
		fmt.Fprintln(c.App.Writer, key.String())
		return nil
	}

	pub, err := key.Neuter()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(c.App.Writer, pub.String())
	return nil
}

func (app *App) decodeTxCmd(c *cli.Context) error {
	tx, err := codec.DecodeTransaction(c.String(flagTxBody))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	spew.Fdump(c.App.Writer, tx)
	return nil
}
