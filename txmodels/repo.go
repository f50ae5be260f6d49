// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txmodels

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// UnspentLister is the part of the wallet API the repo syncs from.
type UnspentLister interface {
	GetUTXOs(ctx context.Context) ([]btcjson.ListUnspentResult, error)
}

// UTXORepo is a UTXO index backed by a CSV file.
type UTXORepo struct {
	storage *CSVStorage
	index   *UTXOIndex
}

// NewUTXORepo places the index file in dataDir. Extra keys are joined into
// the file name so several wallets can share one directory.
func NewUTXORepo(dataDir string, additionalKeys ...string) *UTXORepo {
	tag := strings.Join(append([]string{"a"}, additionalKeys...), "-")

	return &UTXORepo{
		storage: NewCSVStorage(path.Join(dataDir, fmt.Sprintf("utxo-index.%s.csv", tag))),
		index:   NewUTXOIndex(),
	}
}

func filterOf(addresses []string) map[string]struct{} {
	if len(addresses) == 0 {
		return nil
	}
	filter := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		filter[address] = struct{}{}
	}
	return filter
}

func (collector *UTXORepo) GetForAmount(amount int64, addresses ...string) (*UTXO, error) {
	utxo := collector.index.GetForAmountFiltered(amount, filterOf(addresses))
	if utxo == nil {
		return nil, fmt.Errorf("not found UTXO for amount (need %d)", amount)
	}
	return utxo, nil
}

// SelectForAmount picks rows covering amount and marks them as used. On
// failure the picked rows are released again.
func (collector *UTXORepo) SelectForAmount(amount int64, addresses ...string) (UTXORows, error) {
	rows, change := collector.index.CollectForAmountFiltered(amount, filterOf(addresses))
	if change > 0 {
		for _, row := range rows {
			collector.index.release(row.TxHash, row.OutIndex)
		}
		return nil, fmt.Errorf("not enough coins (need %d; has %d)", amount, amount-change)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("not found UTXO for amount (need %d)", amount)
	}
	return rows, nil
}

func (collector *UTXORepo) Balance(addresses ...string) int64 {
	filter := filterOf(addresses)

	var sum int64
	for _, utxo := range collector.index.RowsCopy() {
		if filter != nil {
			if _, ok := filter[utxo.Address]; !ok {
				continue
			}
		}
		if utxo.CanBeSpend() {
			sum += utxo.Value
		}
	}
	return sum
}

// ListUTXOs returns up to take rows after skip.
func (collector *UTXORepo) ListUTXOs(skip, take int) (UTXORows, error) {
	if skip < 0 || take < 0 {
		return nil, fmt.Errorf("invalid page: skip=%d take=%d", skip, take)
	}
	rows := collector.index.RowsCopy()
	if skip > len(rows) {
		return nil, errors.New("can't skip, not enough utxo records")
	}

	end := skip + take
	if end > len(rows) {
		end = len(rows)
	}
	return rows[skip:end], nil
}

func (collector *UTXORepo) Index() *UTXOIndex {
	return collector.index
}

func (collector *UTXORepo) ResetUsedFlag() {
	collector.index.ResetUsedFlag()
}

// ReadIndex replaces the in-memory index with the file contents. A missing
// file gives an empty index.
func (collector *UTXORepo) ReadIndex() error {
	collector.index = NewUTXOIndex()
	if _, err := os.Stat(collector.storage.Path()); os.IsNotExist(err) {
		return nil
	}

	rows, err := collector.storage.FetchData()
	if err != nil {
		return errors.Wrap(err, "unable to read index")
	}
	for _, row := range rows {
		collector.index.AddUTXO(row)
	}
	return nil
}

func (collector *UTXORepo) SaveIndex() error {
	if err := collector.storage.SaveRows(collector.index.RowsCopy()); err != nil {
		return errors.Wrap(err, "unable to save index")
	}
	return nil
}

// CollectFromRPC loads the wallet's unspent outputs into the index. Outputs
// with fewer than minConf confirmations and zero value outputs are skipped.
// Indexed rows that this sync did not keep are removed.
func (collector *UTXORepo) CollectFromRPC(ctx context.Context, wallet UnspentLister, minConf uint32) error {
	result, err := wallet.GetUTXOs(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to get utxo list")
	}

	seen := make(map[string]map[uint32]struct{}, len(result))
	var added int
	for _, entry := range result {
		if entry.Confirmations < minConf || entry.Amount == 0 {
			continue
		}

		utxo := FromListUnspent(entry)
		if seen[utxo.TxHash] == nil {
			seen[utxo.TxHash] = map[uint32]struct{}{}
		}
		seen[utxo.TxHash][utxo.OutIndex] = struct{}{}

		collector.index.AddUTXO(utxo)
		added++
	}

	var removed int
	for _, row := range collector.index.RowsCopy() {
		if _, ok := seen[row.TxHash][row.OutIndex]; ok {
			continue
		}
		collector.index.RmUTXO(row.TxHash, row.OutIndex)
		removed++
	}

	log.Debug().Int("listed", len(result)).Int("indexed", added).Int("removed", removed).
		Msg("utxo index synced")
	return nil
}
