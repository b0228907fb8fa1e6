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

// Package tbin groups epoch-millisecond timestamps into fixed-width bins
// for histogram display.
package tbin

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
)

// Durations in milliseconds.
const (
	Millisecond int64 = 1
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
	Year              = 365 * Day
)

// unitAliases maps the accepted spellings (pandas offset aliases plus
// long forms) onto a canonical abbreviation.
var unitAliases = map[string]string{
	"Y":            "Y",
	"y":            "Y",
	"W":            "W",
	"w":            "W",
	"D":            "D",
	"d":            "D",
	"days":         "D",
	"day":          "D",
	"hours":        "h",
	"hour":         "h",
	"hr":           "h",
	"h":            "h",
	"m":            "m",
	"minute":       "m",
	"min":          "m",
	"minutes":      "m",
	"t":            "m",
	"s":            "s",
	"seconds":      "s",
	"sec":          "s",
	"second":       "s",
	"ms":           "ms",
	"milliseconds": "ms",
	"millisecond":  "ms",
	"milli":        "ms",
	"millis":       "ms",
	"l":            "ms",
}

var unitDeltas = map[string]int64{
	"Y":  Year,
	"W":  Week,
	"D":  Day,
	"h":  Hour,
	"m":  Minute,
	"s":  Second,
	"ms": Millisecond,
}

// MaxBins caps the number of bins BinTimestamps will create, gaps
// included.
const MaxBins = 1_000_000

var unitsLargeToSmall = []string{"Y", "W", "D", "h", "m", "s", "ms"}

// chartUnits maps abbreviations onto Chart.js time scale units.
var chartUnits = map[string]string{
	"Y":  "year",
	"W":  "week",
	"D":  "day",
	"h":  "hour",
	"m":  "minute",
	"s":  "second",
	"ms": "millisecond",
}

// ChartUnit returns the Chart.js time unit for a canonical abbreviation.
func ChartUnit(abbrev string) (string, bool) {
	u, ok := chartUnits[abbrev]
	return u, ok
}

// ParseSpec splits a bin spec such as "30m" or "hour" into a multiplier and
// a base delta in milliseconds. A spec without digits has multiplier 1.
func ParseSpec(spec string) (mult int64, delta int64, err error) {
	var digits, letters []rune
	for _, r := range spec {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		} else {
			letters = append(letters, r)
		}
	}

	mult = 1
	if len(digits) > 0 {
		mult, err = strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad multiplier in %q: %v", brokenwing.ErrUnknownUnit, spec, err)
		}
		if mult <= 0 {
			return 0, 0, fmt.Errorf("%w: multiplier must be positive in %q", brokenwing.ErrUnknownUnit, spec)
		}
	}

	abbrev, ok := unitAliases[string(letters)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: no timedelta configured for abbreviation %q", brokenwing.ErrUnknownUnit, string(letters))
	}
	return mult, unitDeltas[abbrev], nil
}

// BinWidth returns the width in milliseconds of the bins named by spec.
func BinWidth(spec string) (int64, error) {
	mult, delta, err := ParseSpec(spec)
	if err != nil {
		return 0, err
	}
	return mult * delta, nil
}

// BinTimestamp floors ts to the start of its bin.
func BinTimestamp(ts int64, spec string) (int64, error) {
	width, err := BinWidth(spec)
	if err != nil {
		return 0, err
	}
	return floorTo(ts, width), nil
}

func floorTo(ts, width int64) int64 {
	b := (ts / width) * width
	if ts < 0 && b != ts {
		b -= width
	}
	return b
}

// BinTimestamps counts timestamps per bin. Every bin between the first and
// the last one is present, empty bins with a count of zero, so the
// histogram has no holes. The input slice is not modified.
func BinTimestamps(tss []int64, spec string) (map[int64]int64, error) {
	width, err := BinWidth(spec)
	if err != nil {
		return nil, err
	}
	if len(tss) == 0 {
		return nil, brokenwing.ErrNoTimestamps
	}

	lo, hi := tss[0], tss[0]
	for _, ts := range tss {
		lo = min(lo, ts)
		hi = max(hi, ts)
	}
	first := floorTo(lo, width)
	// The subtraction wraps for extreme spans; as uint64 it is still exact.
	steps := uint64(floorTo(hi, width)-first) / uint64(width)
	if steps >= MaxBins {
		return nil, fmt.Errorf("%w: bins of %q over this span exceed the limit of %d, use a wider unit", brokenwing.ErrTooManyBins, spec, MaxBins)
	}

	hist := make(map[int64]int64, steps+1)
	for _, ts := range tss {
		hist[floorTo(ts, width)]++
	}

	for i := range int64(steps) + 1 {
		cur := first + i*width
		if _, ok := hist[cur]; !ok {
			hist[cur] = 0
		}
	}
	return hist, nil
}

// EstimateBinSize picks the largest unit that fits at least once into the
// span of tss. It returns the canonical abbreviation and the matching
// Chart.js unit.
//
// This is crude: a span of two days yields two day-wide bins no matter how
// dense the data is.
func EstimateBinSize(tss []int64) (string, string) {
	unit := "ms"
	if len(tss) > 0 {
		lo, hi := tss[0], tss[0]
		for _, ts := range tss {
			lo = min(lo, ts)
			hi = max(hi, ts)
		}
		span := hi - lo
		for _, abbrev := range unitsLargeToSmall {
			if span/unitDeltas[abbrev] >= 1 {
				unit = abbrev
				break
			}
		}
	}
	return unit, chartUnits[unit]
}
