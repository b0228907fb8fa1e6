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

// Package chart builds the data a Chart.js page consumes: the datasets and
// time unit it plots, plus the pan/zoom options and the toolbar actions.
//
// Rendering, zooming and panning happen in the browser. The page exposes a
// chart object with update, resetZoom and zoom/pan status queries; nothing
// here models it beyond the options it is constructed with.
package chart

import (
	"slices"

	"github.com/cardinalhq/tsgraph/pkg/generator"
	"github.com/cardinalhq/tsgraph/pkg/tbin"
)

// Chart types understood by the page.
const (
	KindBar     = "bar"
	KindScatter = "scatter"
)

type Datapoint struct {
	X any `json:"x"`
	Y any `json:"y"`
}

type Dataset struct {
	Label string      `json:"label"`
	Data  []Datapoint `json:"data"`
}

// Context is the CONTEXT object embedded in the page.
type Context struct {
	Unit     string    `json:"unit"`
	Datasets []Dataset `json:"datasets"`
}

// PointCount is the number of datapoints across all datasets.
func (c *Context) PointCount() int {
	n := 0
	for _, ds := range c.Datasets {
		n += len(ds.Data)
	}
	return n
}

// FromBins turns a histogram into a single time-ordered dataset. The
// display unit is estimated from the bin keys.
func FromBins(label string, bins map[int64]int64) *Context {
	keys := make([]int64, 0, len(bins))
	for k := range bins {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	_, unit := tbin.EstimateBinSize(keys)
	ds := Dataset{Label: label, Data: make([]Datapoint, 0, len(keys))}
	for _, k := range keys {
		ds.Data = append(ds.Data, Datapoint{X: k, Y: bins[k]})
	}
	return &Context{Unit: unit, Datasets: []Dataset{ds}}
}

// FromPoints turns generated points into a dataset with x in epoch
// milliseconds. Missing values stay null so the chart shows a gap.
func FromPoints(label string, points []generator.Point) Dataset {
	ds := Dataset{Label: label, Data: make([]Datapoint, 0, len(points))}
	for _, p := range points {
		ds.Data = append(ds.Data, Datapoint{X: p.X.UnixMilli(), Y: p.Y})
	}
	return ds
}
