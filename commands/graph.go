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

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cardinalhq/tsgraph/pkg/chart"
	"github.com/cardinalhq/tsgraph/pkg/config"
	"github.com/cardinalhq/tsgraph/pkg/emitter"
	"github.com/cardinalhq/tsgraph/pkg/ingest"
	"github.com/cardinalhq/tsgraph/pkg/metrics"
	"github.com/cardinalhq/tsgraph/pkg/tbin"
	"github.com/cardinalhq/tsgraph/pkg/timeformat"
)

const histogramLabel = "timestamps"

// Histogram reads timestamps from in and bins them into a chart context.
func Histogram(cfg *config.Config, in io.Reader) (*chart.Context, error) {
	parse, _ := timeformat.NewFuncs(cfg.StrptimeFmt, cfg.GotimeFmt)
	tss, err := ingest.ReadTimestamps(in, parse)
	if err != nil {
		return nil, err
	}

	unit := cfg.Unit
	if unit == "" || strings.EqualFold(unit, config.DefaultUnit) {
		unit, _ = tbin.EstimateBinSize(tss)
	}

	bins, err := tbin.BinTimestamps(tss, unit)
	if err != nil {
		return nil, fmt.Errorf("cannot divide timestamps into bins: %w", err)
	}
	return chart.FromBins(histogramLabel, bins), nil
}

func (a *app) graph(ctx context.Context, in io.Reader, out io.Writer) error {
	m := metrics.New()
	start := time.Now()

	c, err := Histogram(a.cfg, in)
	if err != nil {
		return err
	}
	m.ObserveRender(time.Since(start).Seconds())
	a.logger.Debug("binned timestamps", "unit", c.Unit, "bins", c.PointCount())

	return a.emit(ctx, c, chart.KindBar, out, m)
}

// emit writes c with the configured emitter. For html the page is then
// served until ctx is done or the process is signalled.
func (a *app) emit(ctx context.Context, c *chart.Context, kind string, out io.Writer, m *metrics.Metrics) error {
	em, err := emitter.New(a.cfg.Emit, out, emitter.Options{
		Dir:       a.cfg.OutputPath,
		Title:     a.cfg.Title,
		ChartKind: kind,
	})
	if err != nil {
		return err
	}
	if err := em.Emit(ctx, c); err != nil {
		return fmt.Errorf("cannot emit chart: %w", err)
	}
	m.SetRendered(len(c.Datasets), c.PointCount())

	html, ok := em.(*emitter.HTMLEmitter)
	if !ok {
		return nil
	}
	fmt.Fprintf(out, "Wrote new HTML view file to %q\n", html.Path)

	opts := ServeOptions{
		Listen:   a.cfg.Listen,
		PagePath: html.Path,
		Context:  c,
		Metrics:  m,
		Logger:   a.logger,
		Out:      out,
	}
	if !a.cfg.NoBrowser {
		opts.Open = a.open
	}
	return Serve(ctx, opts)
}
