// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txmodels

import (
	"sync"
)

// UTXOIndex is a storage for UTXO data.
type UTXOIndex struct {
	sync.RWMutex

	// map[ tx_id => map[ out_n => UTXO index ] ]
	txs map[string]map[uint32]int

	utxo []UTXO
}

func NewUTXOIndex() *UTXOIndex {
	return &UTXOIndex{
		txs: map[string]map[uint32]int{},
	}
}

// AddUTXO inserts utxo or refreshes the row with the same outpoint. The used
// flag of an existing row is kept.
func (index *UTXOIndex) AddUTXO(utxo UTXO) {
	index.Lock()
	defer index.Unlock()

	txInd, ok := index.txs[utxo.TxHash]
	if !ok {
		txInd = map[uint32]int{}
		index.txs[utxo.TxHash] = txInd
	}

	if id, ok := txInd[utxo.OutIndex]; ok {
		utxo.Used = utxo.Used || index.utxo[id].Used
		index.utxo[id] = utxo
		return
	}

	txInd[utxo.OutIndex] = len(index.utxo)
	index.utxo = append(index.utxo, utxo)
}

// MarkUsed flags the output as spent by a pending transaction.
func (index *UTXOIndex) MarkUsed(txHash string, outIndex uint32) {
	index.Lock()
	defer index.Unlock()

	if id, ok := index.txs[txHash][outIndex]; ok {
		index.utxo[id].Used = true
	}
}

// RmUTXO drops the output from the index.
func (index *UTXOIndex) RmUTXO(txHash string, outIndex uint32) {
	index.Lock()
	defer index.Unlock()

	id, ok := index.txs[txHash][outIndex]
	if !ok {
		return
	}

	index.utxo = append(index.utxo[:id], index.utxo[id+1:]...)
	index.txs = make(map[string]map[uint32]int, len(index.txs))
	for i, utxo := range index.utxo {
		if index.txs[utxo.TxHash] == nil {
			index.txs[utxo.TxHash] = map[uint32]int{}
		}
		index.txs[utxo.TxHash][utxo.OutIndex] = i
	}
}

// release clears the used flag of a single output.
func (index *UTXOIndex) release(txHash string, outIndex uint32) {
	index.Lock()
	defer index.Unlock()

	if id, ok := index.txs[txHash][outIndex]; ok {
		index.utxo[id].Used = false
	}
}

func (index *UTXOIndex) Has(txHash string, outIndex uint32) bool {
	index.RLock()
	defer index.RUnlock()

	_, ok := index.txs[txHash][outIndex]
	return ok
}

func (index *UTXOIndex) ResetUsedFlag() {
	index.Lock()
	defer index.Unlock()
	for i := range index.utxo {
		index.utxo[i].Used = false
	}
}

func (index *UTXOIndex) RowsCopy() UTXORows {
	index.RLock()
	defer index.RUnlock()

	rows := make(UTXORows, len(index.utxo))
	copy(rows, index.utxo)
	return rows
}

// CollectForAmountFiltered aggregates UTXOs to meet the requested amount,
// optionally only from the addresses in filter. All selected UTXOs are marked
// as used. The second value is the uncovered part of amount.
func (index *UTXOIndex) CollectForAmountFiltered(amount int64, filter map[string]struct{}) (UTXORows, int64) {
	index.Lock()
	defer index.Unlock()

	var res UTXORows
	change := amount

	for i := 0; i < len(index.utxo) && change > 0; i++ {
		if !index.candidate(i, filter) {
			continue
		}

		utxo := index.utxo[i]
		res = append(res, utxo)
		index.utxo[i].Used = true

		change -= utxo.Value
	}

	return res, change
}

// GetForAmountFiltered returns a single UTXO worth at least amount.
func (index *UTXOIndex) GetForAmountFiltered(amount int64, filter map[string]struct{}) *UTXO {
	index.Lock()
	defer index.Unlock()

	for i := range index.utxo {
		if !index.candidate(i, filter) {
			continue
		}

		if index.utxo[i].Value >= amount {
			utxo := index.utxo[i]
			index.utxo[i].Used = true
			return &utxo
		}
	}

	return nil
}

func (index *UTXOIndex) candidate(i int, filter map[string]struct{}) bool {
	if !index.utxo[i].CanBeSpend() {
		return false
	}
	if filter != nil {
		if _, ok := filter[index.utxo[i].Address]; !ok {
			return false
		}
	}
	return true
}
