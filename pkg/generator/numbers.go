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
	"encoding/json"
	"math"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
)

// Value is one element of a generated sequence: a number, or missing.
// Missing values encode as JSON null, which charts render as a gap.
type Value struct {
	V     float64
	Valid bool
}

// Present wraps v as a non-missing value.
func Present(v float64) Value {
	return Value{V: v, Valid: true}
}

// Missing is the marker for a gap in the sequence.
var Missing = Value{}

// MarshalJSON encodes a missing value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

// UnmarshalJSON decodes null as Missing and a number as a present value.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Missing
		return nil
	}
	if err := json.Unmarshal(b, &v.V); err != nil {
		return err
	}
	v.Valid = true
	return nil
}

// Numbers produces cfg.Count values. Element i is from[i] (or 0) plus a
// draw in [min, max), rounded to cfg.Decimals places, unless the gap check
// marks it missing. Each element consumes two draws.
func (r *Rand) Numbers(cfg Config) ([]Value, error) {
	rc, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	dfactor := math.Pow(10, float64(rc.Decimals))
	data := make([]Value, 0, rc.Count)
	for i := range rc.Count {
		base := 0.0
		if i < len(rc.From) {
			base = rc.From[i]
		}
		value := base + r.Draw(rc.Min, rc.Max)
		if r.keep(rc) {
			rounded := roundJS(dfactor*value) / dfactor
			if !finite(rounded) {
				return nil, brokenwing.InvalidConfig("element %d overflows when rounded to %d decimals", i, rc.Decimals)
			}
			data = append(data, Present(rounded))
		} else {
			data = append(data, Missing)
		}
	}
	return data, nil
}

func (r *Rand) keep(rc Resolved) bool {
	if rc.GapMode == GapModeProbability {
		return r.Draw(0, 1) < rc.Continuity
	}
	return r.Float() <= rc.Continuity
}

// roundJS rounds half up toward positive infinity, as JavaScript's
// Math.round does. math.Round rounds half away from zero instead.
func roundJS(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}
