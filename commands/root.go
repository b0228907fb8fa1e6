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

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cardinalhq/tsgraph/internal/logger"
	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
	"github.com/cardinalhq/tsgraph/pkg/browser"
	"github.com/cardinalhq/tsgraph/pkg/config"
)

const usageExamples = `  # Generate a graph with some fake data
  tsgraph generate | tsgraph

  # Graph the data in 1-minute wide bins
  tsgraph generate | tsgraph --unit 1minute

  # Parse timestamps in a custom format
  cat /tmp/file_with_timestamps | tsgraph --strptime-fmt "%Y-%m-%dT%H:%M:%S.%f"

  # Render the synthetic demo series
  tsgraph demo --seed 42`

var ErrStdinIsTerminal = errors.New("stdin is a terminal")

// app carries the resolved settings shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	open   func(url string) error
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	a := &app{open: browser.Open}

	root := &cobra.Command{
		Use:   "tsgraph",
		Short: "tsgraph draws an interactive histogram of timestamps",
		Long: `tsgraph reads newline separated timestamps on stdin, bins them by a
duration unit and renders the result as an interactive Chart.js page served
from localhost.`,
		Example:       usageExamples,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if isTerminal(in) {
				fmt.Fprintf(cmd.ErrOrStderr(), `You must pipe the timestamps into this program on stdin.

    HINT: to see an example interactive graph, run the following command

        tsgraph generate | tsgraph

`)
				return ErrStdinIsTerminal
			}
			err := a.graph(cmd.Context(), in, cmd.OutOrStdout())
			var le *brokenwing.LineError
			if errors.As(err, &le) && le.Hint != "" {
				fmt.Fprint(cmd.ErrOrStderr(), le.Hint)
			}
			return err
		},
	}

	fs := root.PersistentFlags()
	fs.StringArrayP("config", "c", nil, "YAML config file; may be repeated, later files override earlier ones")
	fs.StringP("output-path", "o", "./", "Path to the directory to write out the HTML file visualizing the timeseries data")
	fs.StringP("title", "t", config.DefaultTitle, "Title of the generated HTML page")
	fs.StringP("strptime-fmt", "f", "", "A strptime-compatible date format specifier. Use if your data isn't formatted as integer milliseconds since epoch.")
	fs.String("gotime-fmt", "", "A go time compatible date format specifier. Use if your data isn't formatted as integer milliseconds since epoch.")
	fs.String("emit", config.DefaultEmit, "Output: html (serve an interactive page), json (chart context) or otlp (OTLP/JSON gauge)")
	fs.String("listen", config.DefaultListen, "Address the page server listens on")
	fs.Bool("no-browser", false, "Serve the page without launching a web browser")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("log-format", "text", "Log format: text or json")

	root.Flags().StringP("unit", "u", config.DefaultUnit, "The duration of each bin to group timestamps into, e.g. 30m, 1h, D, or auto")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newDemoCmd(a))

	return root
}

// configure loads the config files named by --config and lets explicitly
// set flags override them.
func (a *app) configure(fs *pflag.FlagSet) error {
	files, err := fs.GetStringArray("config")
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfigs(files)
	if err != nil {
		return fmt.Errorf("error loading config files: %w", err)
	}
	if err := applyFlags(fs, cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.New(cfg.Log.Level, cfg.Log.Format, nil)
	slog.SetDefault(a.logger)
	return nil
}

func applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	strs := map[string]*string{
		"output-path":  &cfg.OutputPath,
		"title":        &cfg.Title,
		"strptime-fmt": &cfg.StrptimeFmt,
		"gotime-fmt":   &cfg.GotimeFmt,
		"emit":         &cfg.Emit,
		"listen":       &cfg.Listen,
		"unit":         &cfg.Unit,
		"log-level":    &cfg.Log.Level,
		"log-format":   &cfg.Log.Format,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed("no-browser") {
		v, err := fs.GetBool("no-browser")
		if err != nil {
			return err
		}
		cfg.NoBrowser = v
	}
	if fs.Lookup("seed") != nil && fs.Changed("seed") {
		v, err := fs.GetInt64("seed")
		if err != nil {
			return err
		}
		cfg.Seed = v
	}

	cfg.Emit = strings.ToLower(cfg.Emit)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
