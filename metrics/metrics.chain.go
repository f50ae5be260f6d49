// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/jaxnet/btcrpc/types/btcjson"
)

// ChainSource is the part of the node API the chain gauges read.
type ChainSource interface {
	GetBlockChainInfo(ctx context.Context) (*btcjson.GetBlockChainInfoResult, error)
	GetMempoolInfo(ctx context.Context) (*btcjson.GetMempoolInfoResult, error)
}

type chainMetrics struct {
	sync.Mutex
	metricsByName map[string]prometheus.Gauge
	source        ChainSource
	registerer    prometheus.Registerer
	name          string
}

// ChainMetrics reports the node's chain and mempool state under
// bitcoind_<name>_*.
func ChainMetrics(source ChainSource, name string, registerer prometheus.Registerer) IMetric {
	return &chainMetrics{
		source:        source,
		registerer:    registerer,
		name:          name,
		metricsByName: make(map[string]prometheus.Gauge),
	}
}

func (s *chainMetrics) Read(ctx context.Context) {
	info, err := s.source.GetBlockChainInfo(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("can't read blockchain info")
	} else {
		s.updateGauge("blocks", "Height of the active chain", float64(info.Blocks))
		s.updateGauge("headers", "Height of the best known header", float64(info.Headers))
		s.updateGauge("verification_progress", "Estimate of verification progress [0..1]", info.VerificationProgress)
		s.updateGauge("size_on_disk", "Block and undo files size in bytes", float64(info.SizeOnDisk))
		s.updateGauge("initial_block_download", "1 while the node is in initial block download", boolGauge(info.InitialBlockDownload))
	}

	mempool, err := s.source.GetMempoolInfo(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("can't read mempool info")
		return
	}
	s.updateGauge("mempool_transactions", "Transactions in the mempool", float64(mempool.Size))
	s.updateGauge("mempool_bytes", "Sum of mempool transaction virtual sizes", float64(mempool.Bytes))
	s.updateGauge("mempool_usage_bytes", "Memory used by the mempool", float64(mempool.Usage))
}

func (s *chainMetrics) updateGauge(metric, help string, value float64) {
	s.Lock()
	defer s.Unlock()

	name := prometheus.BuildFQName("bitcoind", s.name, metric)
	m, ok := s.metricsByName[name]
	if !ok {
		m = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		if err := s.registerer.Register(m); err != nil {
			log.Error().Err(err).Str("metric", name).Msg("can't register metric")
		}
		s.metricsByName[name] = m
	}
	m.Set(value)
}

func boolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
