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

	"github.com/cardinalhq/tsgraph/pkg/chart"
	"github.com/cardinalhq/tsgraph/pkg/page"
)

// HTMLEmitter renders the chart page into a new file under dir. Path holds
// the file written by the last Emit.
type HTMLEmitter struct {
	dir   string
	title string
	kind  string
	Path  string
}

func NewHTMLEmitter(dir, title, kind string) *HTMLEmitter {
	if kind == "" {
		kind = chart.KindBar
	}
	return &HTMLEmitter{
		dir:   dir,
		title: title,
		kind:  kind,
	}
}

func (e *HTMLEmitter) Emit(_ context.Context, c *chart.Context) error {
	path, err := page.WriteTemp(e.dir, page.New(e.title, e.kind, c))
	if err != nil {
		return err
	}
	e.Path = path
	return nil
}
