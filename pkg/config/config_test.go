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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0o600))
	return fname
}

func TestLoadConfigs_Defaults(t *testing.T) {
	cfg, err := LoadConfigs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, DefaultUnit, cfg.Unit)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultEmit, cfg.Emit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfigs_Merge(t *testing.T) {
	first := writeFile(t, "a.yaml", `
title: first
unit: 1h
seed: 42
series:
  - name: alpha
    type: numbers
    spec:
      count: 10
`)
	second := writeFile(t, "b.yaml", `
title: second
log:
  level: debug
series:
  - name: beta
    spec:
      min: 5
      max: 5
`)

	cfg, err := LoadConfigs([]string{first, second})
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.Title)
	assert.Equal(t, "1h", cfg.Unit)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	require.Len(t, cfg.Series, 2)
	assert.Equal(t, "alpha", cfg.Series[0].Name)
	assert.Equal(t, 10, cfg.Series[0].Spec["count"])
	assert.Equal(t, "beta", cfg.Series[1].Name)
}

func TestLoadConfigs_MissingFile(t *testing.T) {
	_, err := LoadConfigs([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadConfigs_BadYAML(t *testing.T) {
	fname := writeFile(t, "bad.yaml", "title: [unterminated")
	_, err := LoadConfigs([]string{fname})
	assert.Error(t, err)
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Title = "roundtrip"
	b, err := MarshalYAML(cfg)
	require.NoError(t, err)

	var got Config
	require.NoError(t, LoadYAML(writeFile(t, "rt.yaml", string(b)), &got))
	assert.Equal(t, "roundtrip", got.Title)
}

func TestNewMapstructureDecoder_RejectsUnknownKeys(t *testing.T) {
	var target struct {
		Count int `mapstructure:"count"`
	}
	decoder, err := NewMapstructureDecoder(&target)
	require.NoError(t, err)

	err = decoder.Decode(map[string]any{"count": 3, "bogus": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestJSONDecode(t *testing.T) {
	var target struct {
		Title string `json:"title"`
	}
	require.NoError(t, JSONDecode(strings.NewReader(`{"title":"x"}`), &target))
	assert.Equal(t, "x", target.Title)

	assert.Error(t, JSONDecode(strings.NewReader(`{"other":"x"}`), &target))
}
