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

// Package ingest reads newline separated timestamps.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
	"github.com/cardinalhq/tsgraph/pkg/timeformat"
)

// ReadTimestamps parses each non-blank line of r with parse and returns
// epoch milliseconds. A nil parse reads integer epoch milliseconds.
//
// The first unparsable line stops the read with a *brokenwing.LineError
// whose Hint suggests a matching format flag.
func ReadTimestamps(r io.Reader, parse timeformat.ParseFunc) ([]int64, error) {
	if parse == nil {
		parse = timeformat.ParseUnixMillis
	}

	tss := []int64{}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		t, err := parse(line)
		if err != nil {
			return nil, &brokenwing.LineError{
				Line: lineno,
				Text: line,
				Hint: timeformat.GuessTimestampFormat(line),
				Err:  err,
			}
		}
		tss = append(tss, t.UnixMilli())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timestamps: %w", err)
	}
	return tss, nil
}
