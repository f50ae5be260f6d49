// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the dispatcher counters. A nil *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	retries  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpcclient",
			Name:      "calls_total",
			Help:      "Logical RPC calls by method and outcome.",
		}, []string{"method", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpcclient",
			Name:      "retries_total",
			Help:      "Attempts repeated after a retryable failure.",
		}, []string{"method", "kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpcclient",
			Name:      "errors_total",
			Help:      "Terminal call errors by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpcclient",
			Name:      "call_duration_seconds",
			Help:      "Wall time of a logical call including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Collectors returns every collector so callers can register them.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.calls, m.retries, m.failures, m.duration}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observeRetry(method string, kind ErrorKind) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method, kind.String()).Inc()
}

func (m *Metrics) observeCall(method string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	if err == nil {
		m.calls.WithLabelValues(method, "ok").Inc()
		return
	}

	m.calls.WithLabelValues(method, "error").Inc()
	if kind, ok := KindOf(err); ok {
		m.failures.WithLabelValues(kind.String()).Inc()
	}
}
