// Copyright 2025 CardinalHQ, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics provides Prometheus instrumentation for the page server.
//
// Metrics exposed:
//   - tsgraph_page_requests_total: Counter of page and context requests by route and status
//   - tsgraph_points_rendered: Gauge of datapoints in the served chart
//   - tsgraph_datasets_rendered: Gauge of datasets in the served chart
//   - tsgraph_render_duration_seconds: Histogram of time spent building the chart
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry       *prometheus.Registry
	RequestsTotal  *prometheus.CounterVec
	PointsRendered prometheus.Gauge
	DatasetsServed prometheus.Gauge
	RenderDuration prometheus.Histogram
}

// New registers the collectors on a fresh registry, along with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tsgraph_page_requests_total",
			Help: "Total number of page server requests by route and status",
		}, []string{"route", "status"}),

		PointsRendered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tsgraph_points_rendered",
			Help: "Number of datapoints in the served chart",
		}),

		DatasetsServed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tsgraph_datasets_rendered",
			Help: "Number of datasets in the served chart",
		}),

		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tsgraph_render_duration_seconds",
			Help:    "Time spent binning input and building the chart",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) RecordRequest(route, status string) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
}

func (m *Metrics) SetRendered(datasets, points int) {
	m.DatasetsServed.Set(float64(datasets))
	m.PointsRendered.Set(float64(points))
}

func (m *Metrics) ObserveRender(seconds float64) {
	m.RenderDuration.Observe(seconds)
}
