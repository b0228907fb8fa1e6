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

import "time"

// Point pairs a generated value with its timestamp.
type Point struct {
	X time.Time `json:"x"`
	Y Value     `json:"y"`
}

// MapPoints places values[i] at start + i*unit. Missing values pass through.
func MapPoints(values []Value, start time.Time, unit time.Duration) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: start.Add(time.Duration(i) * unit),
			Y: v,
		}
	}
	return points
}

// HourlyPoints generates cfg.Count values one hour apart starting at start.
func (r *Rand) HourlyPoints(cfg Config, start time.Time) ([]Point, error) {
	values, err := r.Numbers(cfg)
	if err != nil {
		return nil, err
	}
	return MapPoints(values, start, time.Hour), nil
}
