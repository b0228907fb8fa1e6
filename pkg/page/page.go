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

// Package page renders a chart.Context as a self-contained HTML page.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cardinalhq/tsgraph/pkg/chart"
)

//go:embed index.html.tmpl
var indexTemplate string

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

type Page struct {
	Title   string
	Kind    string
	Context *chart.Context
	Zoom    chart.ZoomOptions
	Actions []chart.Action
}

// New returns a page with the default zoom options and toolbar.
func New(title, kind string, ctx *chart.Context) Page {
	return Page{
		Title:   title,
		Kind:    kind,
		Context: ctx,
		Zoom:    chart.DefaultZoomOptions(),
		Actions: chart.DefaultActions(),
	}
}

func Render(w io.Writer, p Page) error {
	if p.Context == nil {
		p.Context = &chart.Context{}
	}
	if p.Kind == "" {
		p.Kind = chart.KindBar
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// WriteTemp renders p into a new file in dir and returns its absolute path.
// The file name carries the current Unix time and a random component.
func WriteTemp(dir string, p Page) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, fmt.Sprintf("%d_*_tsgraph.html", time.Now().Unix()))
	if err != nil {
		return "", fmt.Errorf("cannot create page file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("cannot write page file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cannot close page file: %w", err)
	}
	return filepath.Abs(f.Name())
}
