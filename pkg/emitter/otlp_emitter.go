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

package emitter

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"

	"github.com/cardinalhq/tsgraph/pkg/chart"
	"github.com/cardinalhq/tsgraph/pkg/generator"
)

const (
	scopeName         = "github.com/cardinalhq/tsgraph"
	defaultMetricName = "tsgraph.points"
)

// OTLPEmitter writes each dataset as an OTLP/JSON gauge, one datapoint per
// chart point. Missing values become datapoints flagged with no recorded
// value.
type OTLPEmitter struct {
	out        io.Writer
	metricName string
}

func NewOTLPEmitter(out io.Writer, metricName string) *OTLPEmitter {
	if metricName == "" {
		metricName = defaultMetricName
	}
	return &OTLPEmitter{
		out:        out,
		metricName: metricName,
	}
}

func (e *OTLPEmitter) Emit(_ context.Context, c *chart.Context) error {
	md := e.build(c)
	if md.DataPointCount() == 0 {
		return nil
	}

	marshaller := pmetric.JSONMarshaler{}
	b, err := marshaller.MarshalMetrics(md)
	if err != nil {
		return fmt.Errorf("failed to marshal otel metric payload: %w", err)
	}
	if _, err := fmt.Fprintln(e.out, string(b)); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func (e *OTLPEmitter) build(c *chart.Context) pmetric.Metrics {
	md := pmetric.NewMetrics()
	rm := md.ResourceMetrics().AppendEmpty()
	rm.Resource().Attributes().PutStr("service.name", "tsgraph")
	sm := rm.ScopeMetrics().AppendEmpty()
	sm.Scope().SetName(scopeName)

	m := sm.Metrics().AppendEmpty()
	m.SetName(e.metricName)
	m.SetUnit("1")
	gauge := m.SetEmptyGauge()

	for _, ds := range c.Datasets {
		for _, p := range ds.Data {
			ts, ok := pointTime(p.X)
			if !ok {
				continue
			}
			dp := gauge.DataPoints().AppendEmpty()
			dp.SetTimestamp(pcommon.NewTimestampFromTime(ts))
			dp.Attributes().PutStr("dataset", ds.Label)
			dp.Attributes().PutStr("unit", c.Unit)
			setValue(dp, p.Y)
		}
	}
	return md
}

func pointTime(x any) (time.Time, bool) {
	switch v := x.(type) {
	case int64:
		return time.UnixMilli(v), true
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}
}

func setValue(dp pmetric.NumberDataPoint, y any) {
	switch v := y.(type) {
	case int64:
		dp.SetIntValue(v)
	case float64:
		dp.SetDoubleValue(v)
	case generator.Value:
		if !v.Valid {
			dp.SetFlags(pmetric.DefaultDataPointFlags.WithNoRecordedValue(true))
			return
		}
		dp.SetDoubleValue(v.V)
	default:
		dp.SetFlags(pmetric.DefaultDataPointFlags.WithNoRecordedValue(true))
	}
}
