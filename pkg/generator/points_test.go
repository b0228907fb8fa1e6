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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPoints(t *testing.T) {
	start := time.Date(2021, time.September, 25, 14, 1, 0, 0, time.UTC)
	values := []Value{Present(1), Missing, Present(3)}

	points := MapPoints(values, start, 15*time.Minute)
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, start.Add(time.Duration(i)*15*time.Minute), p.X)
		assert.Equal(t, values[i], p.Y)
	}
}

func TestMapPoints_Empty(t *testing.T) {
	assert.Empty(t, MapPoints(nil, time.Now(), time.Hour))
}

func TestHourlyPoints(t *testing.T) {
	start := time.UnixMilli(1572347470840).UTC()
	points, err := NewRand(8).HourlyPoints(Config{Count: Ptr(24)}, start)
	require.NoError(t, err)
	require.Len(t, points, 24)
	for i, p := range points {
		assert.Equal(t, start.Add(time.Duration(i)*time.Hour), p.X)
		assert.True(t, p.Y.Valid)
	}
}

func TestHourlyPoints_InvalidConfig(t *testing.T) {
	_, err := NewRand(8).HourlyPoints(Config{Count: Ptr(-2)}, time.Now())
	assert.Error(t, err)
}
