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
	"fmt"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
	"github.com/cardinalhq/tsgraph/pkg/config"
)

const SeriesTypeNumbers = "numbers"

// DecodeConfig decodes a series spec such as one loaded from YAML. Unknown
// keys are rejected.
func DecodeConfig(spec map[string]any) (Config, error) {
	var cfg Config
	decoder, err := config.NewMapstructureDecoder(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(spec); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CreateSeries decodes a named series spec, dispatching on its type. An
// empty type means "numbers".
func CreateSeries(s config.SeriesSpec) (Config, error) {
	switch s.Type {
	case "", SeriesTypeNumbers:
		cfg, err := DecodeConfig(s.Spec)
		if err != nil {
			return Config{}, &brokenwing.DecodeError{Name: s.Name, Err: err}
		}
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("%w: %q", brokenwing.ErrUnknownSeries, s.Type)
	}
}
