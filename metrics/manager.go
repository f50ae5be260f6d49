// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IMetric is a group of gauges refreshed on every collector tick.
type IMetric interface {
	Read(ctx context.Context)
}

// IMetricManager metric manager
type IMetricManager interface {
	Add(metrics ...IMetric)
	Handler() http.Handler
	Listen(ctx context.Context, addr, route string) error
}

var _ IMetricManager = (*Manager)(nil)

// Manager polls its metrics at a fixed interval and exposes the registry.
type Manager struct {
	mu       sync.Mutex
	metrics  []IMetric
	interval time.Duration
	gatherer prometheus.Gatherer
}

// NewManager starts the collector loop, which runs until ctx is done.
// gatherer is the registry served by Handler and Listen.
func NewManager(ctx context.Context, interval time.Duration, gatherer prometheus.Gatherer) *Manager {
	m := &Manager{
		interval: interval,
		gatherer: gatherer,
	}

	go m.collector(ctx)
	return m
}

func (m *Manager) Add(metrics ...IMetric) {
	m.mu.Lock()
	m.metrics = append(m.metrics, metrics...)
	m.mu.Unlock()
}

// Collect reads every metric once.
func (m *Manager) Collect(ctx context.Context) {
	m.mu.Lock()
	metrics := append([]IMetric(nil), m.metrics...)
	m.mu.Unlock()

	for _, v := range metrics {
		v.Read(ctx)
	}
}

func (m *Manager) collector(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Collect(ctx)
		}
	}
}

func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Listen serves the registry on addr until ctx is done.
func (m *Manager) Listen(ctx context.Context, addr, route string) error {
	mux := http.NewServeMux()
	mux.Handle(route, m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info().Str("addr", addr).Str("route", route).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
