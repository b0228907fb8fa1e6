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
	"encoding/json"
	"fmt"
	"io"

	"github.com/cardinalhq/tsgraph/pkg/chart"
)

// JSONEmitter writes the chart context as indented JSON, the same object
// the HTML page embeds.
type JSONEmitter struct {
	out io.Writer
}

func NewJSONEmitter(out io.Writer) *JSONEmitter {
	return &JSONEmitter{
		out: out,
	}
}

func (e *JSONEmitter) Emit(_ context.Context, c *chart.Context) error {
	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("cannot marshal chart context: %w", err)
	}
	if _, err := fmt.Fprintln(e.out, string(b)); err != nil {
		return fmt.Errorf("failed to write chart context: %w", err)
	}
	return nil
}
