/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(status string)
	IncTokens(kind string)
	IncDiagnostics(severity string)
	ObserveLexNS(t int64)
}

type metricsStore struct {
	registry    *prometheus.Registry
	Requests    *prometheus.CounterVec
	Tokens      *prometheus.CounterVec
	Diagnostics *prometheus.CounterVec
	LexNS       prometheus.Histogram
}

var (
	StatusLabel   = "status"
	KindLabel     = "kind"
	SeverityLabel = "severity"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quill_lex_requests",
			Help: "The total number of lex requests served",
		}, []string{StatusLabel}),
		Tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quill_tokens",
			Help: "Token counts by token kind",
		}, []string{KindLabel}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quill_diagnostics",
			Help: "Diagnostic counts by severity",
		}, []string{SeverityLabel}),
		LexNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "quill_lex_ns",
			Help:    "Time spent scanning one request body",
			Buckets: buckets,
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(status string) {
	ms.Requests.With(prometheus.Labels{StatusLabel: status}).Inc()
}

func (ms *metricsStore) IncTokens(kind string) {
	ms.Tokens.With(prometheus.Labels{KindLabel: kind}).Inc()
}

func (ms *metricsStore) IncDiagnostics(severity string) {
	ms.Diagnostics.With(prometheus.Labels{SeverityLabel: severity}).Inc()
}

func (ms *metricsStore) ObserveLexNS(t int64) {
	ms.LexNS.Observe(float64(t))
}
