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
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/tsgraph/pkg/chart"
	"github.com/cardinalhq/tsgraph/pkg/config"
	"github.com/cardinalhq/tsgraph/pkg/generator"
	"github.com/cardinalhq/tsgraph/pkg/metrics"
	"github.com/cardinalhq/tsgraph/pkg/tbin"
)

// DefaultDemoSeries is the series drawn when no config names any.
func DefaultDemoSeries() []config.SeriesSpec {
	return []config.SeriesSpec{
		{
			Name: "numbers",
			Type: generator.SeriesTypeNumbers,
			Spec: map[string]any{
				"count": 500,
				"min":   0,
				"max":   1000,
			},
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a chart of synthetic series",
		Long: `Draw synthetic series with the seeded generator, one point per hour from
now, and render them as a scatter chart. Series come from the config file's
series list; without one a single 500 point series in [0, 1000) is drawn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.demo(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64("seed", 0, "Generator seed; 0 seeds from the current time")
	return cmd
}

// DemoContext draws every series from one generator, so later series
// continue the sequence of earlier ones.
func DemoContext(series []config.SeriesSpec, rnd *generator.Rand, start time.Time) (*chart.Context, error) {
	if len(series) == 0 {
		series = DefaultDemoSeries()
	}

	c := &chart.Context{}
	var xs []int64
	for _, s := range series {
		cfg, err := generator.CreateSeries(s)
		if err != nil {
			return nil, err
		}
		points, err := rnd.HourlyPoints(cfg, start)
		if err != nil {
			return nil, err
		}
		for _, p := range points {
			xs = append(xs, p.X.UnixMilli())
		}
		c.Datasets = append(c.Datasets, chart.FromPoints(s.Name, points))
	}
	_, c.Unit = tbin.EstimateBinSize(xs)
	return c, nil
}

func (a *app) demo(ctx context.Context, out io.Writer) error {
	m := metrics.New()
	start := time.Now()

	rnd := generator.NewRandFromTime()
	if a.cfg.Seed != 0 {
		rnd = generator.NewRand(a.cfg.Seed)
	}
	a.logger.Debug("drawing demo series", "seed", rnd.Seed(), "series", len(a.cfg.Series))

	c, err := DemoContext(a.cfg.Series, rnd, start)
	if err != nil {
		return err
	}
	m.ObserveRender(time.Since(start).Seconds())

	return a.emit(ctx, c, chart.KindScatter, out, m)
}
