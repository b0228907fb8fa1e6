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

package generator

import (
	"math"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
)

const (
	DefaultMin        = 0.0
	DefaultMax        = 100.0
	DefaultCount      = 8
	DefaultDecimals   = 8
	DefaultContinuity = 1.0

	// MaxDecimals bounds the rounding precision so that 10^decimals stays
	// exactly representable.
	MaxDecimals = 15
)

// Gap modes select how Continuity is interpreted.
const (
	// GapModeFixed draws Rand.Float for the gap check, which is always 0,
	// so a point is only ever missing when Continuity is negative.
	GapModeFixed = "fixed"
	// GapModeProbability draws from [0, 1) and keeps a point when the draw
	// is below Continuity.
	GapModeProbability = "probability"
)

// Config describes one call to Numbers. Nil fields take their defaults.
type Config struct {
	Min        *float64  `mapstructure:"min" yaml:"min" json:"min,omitempty"`
	Max        *float64  `mapstructure:"max" yaml:"max" json:"max,omitempty"`
	From       []float64 `mapstructure:"from" yaml:"from" json:"from,omitempty"`
	Count      *int      `mapstructure:"count" yaml:"count" json:"count,omitempty"`
	Decimals   *int      `mapstructure:"decimals" yaml:"decimals" json:"decimals,omitempty"`
	Continuity *float64  `mapstructure:"continuity" yaml:"continuity" json:"continuity,omitempty"`
	GapMode    string    `mapstructure:"gapMode" yaml:"gapMode" json:"gapMode,omitempty"`
}

// Resolved is a Config with every default applied.
type Resolved struct {
	Min        float64
	Max        float64
	From       []float64
	Count      int
	Decimals   int
	Continuity float64
	GapMode    string
}

// Resolve applies defaults and validates the result.
func (c Config) Resolve() (Resolved, error) {
	r := Resolved{
		Min:        valueOrDefault(c.Min, DefaultMin),
		Max:        valueOrDefault(c.Max, DefaultMax),
		From:       c.From,
		Count:      valueOrDefault(c.Count, DefaultCount),
		Decimals:   valueOrDefault(c.Decimals, DefaultDecimals),
		Continuity: valueOrDefault(c.Continuity, DefaultContinuity),
		GapMode:    c.GapMode,
	}
	if r.GapMode == "" {
		r.GapMode = GapModeFixed
	}

	if r.Count < 0 {
		return Resolved{}, brokenwing.InvalidConfig("count must not be negative, got %d", r.Count)
	}
	if !finite(r.Min) || !finite(r.Max) {
		return Resolved{}, brokenwing.InvalidConfig("bounds must be finite, got [%v, %v]", r.Min, r.Max)
	}
	if !finite(r.Max - r.Min) {
		return Resolved{}, brokenwing.InvalidConfig("range [%v, %v] overflows", r.Min, r.Max)
	}
	if !finite(r.Continuity) {
		return Resolved{}, brokenwing.InvalidConfig("continuity must be finite, got %v", r.Continuity)
	}
	if r.Decimals < 0 || r.Decimals > MaxDecimals {
		return Resolved{}, brokenwing.InvalidConfig("decimals must be within [0, %d], got %d", MaxDecimals, r.Decimals)
	}
	for i, f := range r.From {
		if !finite(f) {
			return Resolved{}, brokenwing.InvalidConfig("from[%d] must be finite, got %v", i, f)
		}
	}
	switch r.GapMode {
	case GapModeFixed, GapModeProbability:
	default:
		return Resolved{}, brokenwing.InvalidConfig("unknown gap mode %q", r.GapMode)
	}
	return r, nil
}

func valueOrDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Ptr is a convenience for filling Config fields.
func Ptr[T any](v T) *T {
	return &v
}
