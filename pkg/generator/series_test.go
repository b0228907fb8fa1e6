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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
	"github.com/cardinalhq/tsgraph/pkg/config"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]any{
		"count":      500,
		"min":        0,
		"max":        1000,
		"from":       []any{10, 20.5},
		"decimals":   2,
		"continuity": 0.9,
		"gapMode":    "probability",
	})
	require.NoError(t, err)

	rc, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 500, rc.Count)
	assert.Equal(t, 0.0, rc.Min)
	assert.Equal(t, 1000.0, rc.Max)
	assert.Equal(t, []float64{10, 20.5}, rc.From)
	assert.Equal(t, 2, rc.Decimals)
	assert.Equal(t, 0.9, rc.Continuity)
	assert.Equal(t, GapModeProbability, rc.GapMode)
}

func TestDecodeConfig_EmptyUsesDefaults(t *testing.T) {
	cfg, err := DecodeConfig(nil)
	require.NoError(t, err)
	rc, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, DefaultCount, rc.Count)
	assert.Equal(t, DefaultMax, rc.Max)
	assert.Equal(t, DefaultDecimals, rc.Decimals)
	assert.Equal(t, GapModeFixed, rc.GapMode)
}

func TestDecodeConfig_Errors(t *testing.T) {
	_, err := DecodeConfig(map[string]any{"colour": "red"})
	assert.Error(t, err)

	_, err = DecodeConfig(map[string]any{"count": -4})
	assert.True(t, errors.Is(err, brokenwing.ErrInvalidConfig))
}

func TestCreateSeries(t *testing.T) {
	cfg, err := CreateSeries(config.SeriesSpec{Name: "a", Spec: map[string]any{"count": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, *cfg.Count)

	_, err = CreateSeries(config.SeriesSpec{Name: "b", Type: "sine"})
	assert.True(t, errors.Is(err, brokenwing.ErrUnknownSeries))

	_, err = CreateSeries(config.SeriesSpec{Name: "c", Spec: map[string]any{"count": "many"}})
	var decodeErr *brokenwing.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "c", decodeErr.Name)
}
