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
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/tsgraph/pkg/tbin"
	"github.com/cardinalhq/tsgraph/pkg/timeformat"
)

const (
	defaultGenerateCount = 10000
	defaultGenerateHours = 36
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print fake timestamps on stdout",
		Long: `Generate a batch of normally distributed fake timestamps and print them
one per line. Useful as known input for another tsgraph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			hours, err := cmd.Flags().GetInt("hours")
			if err != nil {
				return err
			}
			return Generate(cmd.OutOrStdout(), count, hours, a.cfg.StrptimeFmt, a.cfg.GotimeFmt)
		},
	}
	cmd.Flags().IntP("count", "n", defaultGenerateCount, "Number of timestamps to generate")
	cmd.Flags().Int("hours", defaultGenerateHours, "Hours spanned by the generated timestamps")
	return cmd
}

// Generate writes count fake timestamps to out, formatted with the given
// strptime or Go layout, or as epoch milliseconds when both are empty.
func Generate(out io.Writer, count, hours int, strptimefmt, gotimefmt string) error {
	tss, err := tbin.SimpleRandomTimestamps(count, hours)
	if err != nil {
		return fmt.Errorf("cannot generate random timestamps: %w", err)
	}

	_, format := timeformat.NewFuncs(strptimefmt, gotimefmt)
	w := bufio.NewWriter(out)
	for _, ts := range tss {
		s, err := format(time.UnixMilli(ts).UTC())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return w.Flush()
}
