// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txmodels

import (
	"github.com/btcsuite/btcd/btcutil"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
	"gitlab.com/jaxnet/btcrpc/types/codec"
)

type UTXO struct {
	Address       string `json:"address" csv:"address"`
	TxHash        string `json:"tx_hash" csv:"tx_hash"`
	OutIndex      uint32 `json:"out_index" csv:"out_index"`
	Value         int64  `json:"value" csv:"value"`
	Confirmations uint32 `json:"confirmations" csv:"confirmations"`
	Used          bool   `json:"used" csv:"used"`
	Spendable     bool   `json:"spendable" csv:"spendable"`
	PKScript      string `json:"pk_script" csv:"pk_script"`
}

// FromListUnspent converts one listunspent entry. Value is in satoshis.
func FromListUnspent(entry btcjson.ListUnspentResult) UTXO {
	return UTXO{
		Address:       entry.Address.String(),
		TxHash:        entry.Txid.String(),
		OutIndex:      entry.Vout,
		Value:         int64(entry.Amount.Amount()),
		Confirmations: entry.Confirmations,
		Spendable:     entry.Spendable,
		PKScript:      entry.ScriptPubKey,
	}
}

func (utxo *UTXO) CanBeSpend() bool {
	return !utxo.Used && utxo.Spendable && utxo.Value > 0
}

// Input returns the outpoint in the shape createrawtransaction expects.
func (utxo *UTXO) Input() (btcjson.TransactionInput, error) {
	hash, err := codec.ParseHash(utxo.TxHash)
	if err != nil {
		return btcjson.TransactionInput{}, err
	}
	return btcjson.TransactionInput{Txid: codec.Hash(hash), Vout: utxo.OutIndex}, nil
}

func (utxo *UTXO) Amount() btcutil.Amount { return btcutil.Amount(utxo.Value) }

type UTXORows []UTXO

func (rows UTXORows) Len() int           { return len(rows) }
func (rows UTXORows) Less(i, j int) bool { return rows[i].Value < rows[j].Value }
func (rows UTXORows) Swap(i, j int)      { rows[i], rows[j] = rows[j], rows[i] }

// GetSum is the value of the rows that are not marked as used.
func (rows UTXORows) GetSum() int64 {
	var sum int64
	for _, txOut := range rows {
		if txOut.Used {
			continue
		}
		sum += txOut.Value
	}
	return sum
}

// CollectForAmount takes spendable rows in order until amount is covered and
// marks them as used. The second value is the part of amount left uncovered;
// it is zero or negative when the selection is enough.
func (rows UTXORows) CollectForAmount(amount int64) (UTXORows, int64) {
	res := make(UTXORows, 0, len(rows))
	change := amount

	for i := range rows {
		if change <= 0 {
			break
		}
		if !rows[i].CanBeSpend() {
			continue
		}

		utxo := rows[i]
		res = append(res, utxo)
		rows[i].Used = true

		change -= utxo.Value
	}

	return res, change
}

// GetSingle returns the first spendable row worth at least amount and marks
// it as used.
func (rows UTXORows) GetSingle(amount int64) *UTXO {
	for i := range rows {
		if !rows[i].CanBeSpend() {
			continue
		}
		if rows[i].Value >= amount {
			utxo := rows[i]
			rows[i].Used = true
			return &utxo
		}
	}

	return nil
}

// Inputs converts the rows into createrawtransaction inputs.
func (rows UTXORows) Inputs() ([]btcjson.TransactionInput, error) {
	inputs := make([]btcjson.TransactionInput, 0, len(rows))
	for i := range rows {
		in, err := rows[i].Input()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
