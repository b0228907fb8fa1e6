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
	"fmt"
	"io"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
	"github.com/cardinalhq/tsgraph/pkg/chart"
)

// Emitter kinds accepted by New.
const (
	KindHTML = "html"
	KindJSON = "json"
	KindOTLP = "otlp"
)

type Emitter interface {
	Emit(ctx context.Context, c *chart.Context) error
}

// Options carries what the HTML emitter needs beyond an io.Writer.
type Options struct {
	Dir       string
	Title     string
	ChartKind string
}

func New(kind string, out io.Writer, opts Options) (Emitter, error) {
	switch kind {
	case KindHTML:
		return NewHTMLEmitter(opts.Dir, opts.Title, opts.ChartKind), nil
	case KindJSON:
		return NewJSONEmitter(out), nil
	case KindOTLP:
		return NewOTLPEmitter(out, opts.Title), nil
	default:
		return nil, fmt.Errorf("%w: %q", brokenwing.ErrUnknownEmitter, kind)
	}
}
