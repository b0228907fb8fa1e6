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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
)

func TestNumbers_Defaults(t *testing.T) {
	values, err := NewRand(1).Numbers(Config{})
	require.NoError(t, err)
	require.Len(t, values, DefaultCount)
	for _, v := range values {
		require.True(t, v.Valid)
		assert.GreaterOrEqual(t, v.V, DefaultMin)
		assert.LessOrEqual(t, v.V, DefaultMax)
	}
}

func TestNumbers_KnownSequence(t *testing.T) {
	r := NewRand(42)
	values, err := r.Numbers(Config{Count: Ptr(4), Decimals: Ptr(2)})
	require.NoError(t, err)

	assert.Equal(t, []Value{Present(88.59), Present(95.9), Present(56.19), Present(59.59)}, values)
	// two draws per element
	assert.Equal(t, int64(12578), r.Seed())
}

func TestNumbers_Count(t *testing.T) {
	for _, count := range []int{0, 1, 5, 500} {
		values, err := NewRand(3).Numbers(Config{Count: Ptr(count)})
		require.NoError(t, err)
		assert.Len(t, values, count)
	}
}

func TestNumbers_DegenerateRange(t *testing.T) {
	values, err := NewRand(11).Numbers(Config{
		Count:    Ptr(3),
		Min:      Ptr(5.0),
		Max:      Ptr(5.0),
		Decimals: Ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []Value{Present(5), Present(5), Present(5)}, values)
}

func TestNumbers_FromWithZeroRange(t *testing.T) {
	values, err := NewRand(11).Numbers(Config{
		Count:    Ptr(2),
		From:     []float64{10, 20},
		Min:      Ptr(0.0),
		Max:      Ptr(0.0),
		Decimals: Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, []Value{Present(10), Present(20)}, values)
}

func TestNumbers_FromShorterThanCount(t *testing.T) {
	values, err := NewRand(11).Numbers(Config{
		Count: Ptr(3),
		From:  []float64{100},
		Min:   Ptr(1.0),
		Max:   Ptr(1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, []Value{Present(101), Present(1), Present(1)}, values)
}

func TestNumbers_IntegerWhenZeroDecimals(t *testing.T) {
	values, err := NewRand(2024).Numbers(Config{Count: Ptr(200), Max: Ptr(1000.0), Decimals: Ptr(0)})
	require.NoError(t, err)
	for _, v := range values {
		require.True(t, v.Valid)
		assert.Equal(t, math.Trunc(v.V), v.V)
	}
}

func TestNumbers_RoundingLaw(t *testing.T) {
	seed := int64(777)
	cfg := Config{Count: Ptr(50), Decimals: Ptr(3), Min: Ptr(-10.0), Max: Ptr(10.0)}

	values, err := NewRand(seed).Numbers(cfg)
	require.NoError(t, err)

	// replay the draws to recover the raw values
	replay := NewRand(seed)
	for i, v := range values {
		raw := replay.Draw(-10, 10)
		replay.Float()
		assert.Equal(t, roundJS(raw*1000)/1000, v.V, "element %d", i)
	}
}

func TestNumbers_ContinuityOneNeverMissing(t *testing.T) {
	values, err := NewRand(5).Numbers(Config{Count: Ptr(300), Continuity: Ptr(1.0)})
	require.NoError(t, err)
	for _, v := range values {
		assert.True(t, v.Valid)
	}
}

// The fixed gap check compares an always-zero draw to continuity, so any
// non-negative continuity keeps every point.
func TestNumbers_FixedGapModeIgnoresContinuity(t *testing.T) {
	values, err := NewRand(5).Numbers(Config{Count: Ptr(100), Continuity: Ptr(0.0)})
	require.NoError(t, err)
	for _, v := range values {
		assert.True(t, v.Valid)
	}

	values, err = NewRand(5).Numbers(Config{Count: Ptr(10), Continuity: Ptr(-0.5)})
	require.NoError(t, err)
	for _, v := range values {
		assert.False(t, v.Valid)
	}
}

func TestNumbers_ProbabilityGapMode(t *testing.T) {
	values, err := NewRand(5).Numbers(Config{
		Count:      Ptr(1000),
		Continuity: Ptr(0.5),
		GapMode:    GapModeProbability,
	})
	require.NoError(t, err)

	missing := 0
	for _, v := range values {
		if !v.Valid {
			missing++
		}
	}
	assert.Greater(t, missing, 300)
	assert.Less(t, missing, 700)

	values, err = NewRand(5).Numbers(Config{Count: Ptr(100), Continuity: Ptr(0.0), GapMode: GapModeProbability})
	require.NoError(t, err)
	for _, v := range values {
		assert.False(t, v.Valid)
	}
}

func TestNumbers_SuccessiveRunsDiffer(t *testing.T) {
	r := NewRand(1234)
	first, err := r.Numbers(Config{Count: Ptr(5)})
	require.NoError(t, err)
	second, err := r.Numbers(Config{Count: Ptr(5)})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNumbers_SameSeedSameOutput(t *testing.T) {
	a, err := NewRand(1234).Numbers(Config{Count: Ptr(20)})
	require.NoError(t, err)
	b, err := NewRand(1234).Numbers(Config{Count: Ptr(20)})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNumbers_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative count", Config{Count: Ptr(-1)}},
		{"nan min", Config{Min: Ptr(math.NaN())}},
		{"inf max", Config{Max: Ptr(math.Inf(1))}},
		{"nan continuity", Config{Continuity: Ptr(math.NaN())}},
		{"negative decimals", Config{Decimals: Ptr(-1)}},
		{"too many decimals", Config{Decimals: Ptr(MaxDecimals + 1)}},
		{"non-finite from", Config{From: []float64{1, math.Inf(-1)}}},
		{"unknown gap mode", Config{GapMode: "sometimes"}},
		{"range overflows", Config{Count: Ptr(3), Min: Ptr(-1e308), Max: Ptr(1e308), Decimals: Ptr(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRand(1)
			_, err := r.Numbers(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, brokenwing.ErrInvalidConfig))
			assert.Equal(t, int64(1), r.Seed(), "invalid config must not consume draws")
		})
	}
}

func TestNumbers_NonFiniteOutput(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"rounding overflows", Config{Count: Ptr(3), Max: Ptr(1e300), Decimals: Ptr(15)}},
		{"from plus draw overflows", Config{Count: Ptr(1), From: []float64{math.MaxFloat64}, Min: Ptr(math.MaxFloat64), Max: Ptr(math.MaxFloat64), Decimals: Ptr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals, err := NewRand(42).Numbers(tt.cfg)
			assert.ErrorIs(t, err, brokenwing.ErrInvalidConfig)
			assert.Nil(t, vals)
		})
	}
}

func TestNumbers_LargeFiniteRangeEncodes(t *testing.T) {
	vals, err := NewRand(42).Numbers(Config{Count: Ptr(3), Min: Ptr(-1e307), Max: Ptr(1e307), Decimals: Ptr(0)})
	require.NoError(t, err)
	_, err = json.Marshal(vals)
	assert.NoError(t, err)
}

func TestRoundJS(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-2.5, -2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{8858.9, 8859},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundJS(tt.in), "roundJS(%v)", tt.in)
	}
}

func TestValue_JSON(t *testing.T) {
	b, err := json.Marshal([]Value{Present(1.5), Missing, Present(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, 0]`, string(b))

	var got []Value
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []Value{Present(1.5), Missing, Present(0)}, got)
}
