// Copyright 2026 The Symtab Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package metrics exposes an interning table's counters as Prometheus
// metrics. It lives in its own package so that the core carries no
// Prometheus dependency.
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(symtab.Default()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/internlab/symtab"
)

// Collector reads a table's Stats snapshot on every scrape.
type Collector struct {
	table *symtab.Table

	live     *prometheus.Desc
	hits     *prometheus.Desc
	misses   *prometheus.Desc
	reclaims *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector over t.
func NewCollector(t *symtab.Table) *Collector {
	return &Collector{
		table: t,
		live: prometheus.NewDesc(
			"symtab_entries_live",
			"Number of interned entries currently installed in the table.",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			"symtab_resolve_hits_total",
			"Total resolves that reused an existing entry.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			"symtab_resolve_misses_total",
			"Total resolves that allocated a new entry.",
			nil, nil,
		),
		reclaims: prometheus.NewDesc(
			"symtab_reclaimed_entries_total",
			"Total table slots removed after their entry was collected.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.hits
	ch <- c.misses
	ch <- c.reclaims
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.table.Stats()
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(st.Live))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(st.Misses))
	ch <- prometheus.MustNewConstMetric(c.reclaims, prometheus.CounterValue, float64(st.Reclaims))
}
