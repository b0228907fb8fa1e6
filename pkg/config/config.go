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
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle  = "Timeseries data"
	DefaultUnit   = "auto"
	DefaultListen = "localhost:0"
	DefaultEmit   = "html"
)

type Config struct {
	Title       string       `mapstructure:"title" yaml:"title" json:"title"`
	OutputPath  string       `mapstructure:"outputPath" yaml:"outputPath" json:"outputPath"`
	Unit        string       `mapstructure:"unit" yaml:"unit" json:"unit"`
	StrptimeFmt string       `mapstructure:"strptimeFmt" yaml:"strptimeFmt" json:"strptimeFmt"`
	GotimeFmt   string       `mapstructure:"gotimeFmt" yaml:"gotimeFmt" json:"gotimeFmt"`
	Listen      string       `mapstructure:"listen" yaml:"listen" json:"listen"`
	Emit        string       `mapstructure:"emit" yaml:"emit" json:"emit"`
	NoBrowser   bool         `mapstructure:"noBrowser" yaml:"noBrowser" json:"noBrowser"`
	Seed        int64        `mapstructure:"seed" yaml:"seed" json:"seed"`
	Series      []SeriesSpec `mapstructure:"series" yaml:"series" json:"series"`
	Log         LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
}

// SeriesSpec names one synthetic dataset for the demo chart. Spec holds the
// generator settings and is decoded by the generator package.
type SeriesSpec struct {
	Name string         `mapstructure:"name" yaml:"name" json:"name"`
	Type string         `mapstructure:"type" yaml:"type" json:"type"`
	Spec map[string]any `mapstructure:"spec" yaml:"spec" json:"spec"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

func Default() *Config {
	return &Config{
		Title:      DefaultTitle,
		OutputPath: "./",
		Unit:       DefaultUnit,
		Listen:     DefaultListen,
		Emit:       DefaultEmit,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfigs loads the config files in order, merging as it goes. Later
// files override scalar settings; series accumulate.
func LoadConfigs(fnames []string) (*Config, error) {
	merged := Default()
	for _, fname := range fnames {
		slog.Info("Loading config", "file", fname)
		config, err := loadConfig(fname)
		if err != nil {
			return nil, err
		}
		Merge(merged, config)
	}
	return merged, nil
}

func Merge(merged, config *Config) {
	if config.Title != "" {
		merged.Title = config.Title
	}
	if config.OutputPath != "" {
		merged.OutputPath = config.OutputPath
	}
	if config.Unit != "" {
		merged.Unit = config.Unit
	}
	if config.StrptimeFmt != "" {
		merged.StrptimeFmt = config.StrptimeFmt
	}
	if config.GotimeFmt != "" {
		merged.GotimeFmt = config.GotimeFmt
	}
	if config.Listen != "" {
		merged.Listen = config.Listen
	}
	if config.Emit != "" {
		merged.Emit = config.Emit
	}
	if config.NoBrowser {
		merged.NoBrowser = true
	}
	if config.Seed != 0 {
		merged.Seed = config.Seed
	}
	if config.Log.Level != "" {
		merged.Log.Level = config.Log.Level
	}
	if config.Log.Format != "" {
		merged.Log.Format = config.Log.Format
	}
	merged.Series = append(merged.Series, config.Series...)
}

func loadConfig(fname string) (*Config, error) {
	var config Config
	if err := LoadYAML(fname, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadYAML(fname string, config *Config) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, config)
}

func MarshalYAML(config *Config) ([]byte, error) {
	b, err := yaml.Marshal(config)
	if err != nil {
		return nil, err
	}
	return b, nil
}
