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

// Package timeformat turns input lines into instants and back, either as
// epoch milliseconds, a Go time layout, or a strptime format.
package timeformat

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
)

// ParseFunc parses a string into a time.Time.
type ParseFunc func(string) (time.Time, error)

// FmtFunc is the inverse of ParseFunc.
type FmtFunc func(time.Time) (string, error)

// NewFuncs picks parse and format functions from the format flags. With
// neither set, timestamps are integer epoch milliseconds. A Go layout wins
// over a strptime format when both are given.
func NewFuncs(strptimefmt, gotimefmt string) (ParseFunc, FmtFunc) {
	switch {
	case gotimefmt != "":
		return gotimeParser(gotimefmt), gotimeFormatter(gotimefmt)
	case strptimefmt != "":
		return strptimeParser(strptimefmt), strptimeFormatter(strptimefmt)
	default:
		return ParseUnixMillis, FormatUnixMillis
	}
}

func ParseUnixMillis(s string) (time.Time, error) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ts).UTC(), nil
}

func FormatUnixMillis(t time.Time) (string, error) {
	return strconv.FormatInt(t.UnixMilli(), 10), nil
}

func strptimeParser(layout string) ParseFunc {
	return func(s string) (time.Time, error) {
		return timefmt.Parse(s, layout)
	}
}

func strptimeFormatter(layout string) FmtFunc {
	return func(t time.Time) (string, error) {
		return timefmt.Format(t, layout), nil
	}
}

func gotimeParser(layout string) ParseFunc {
	return func(s string) (time.Time, error) {
		return time.Parse(layout, s)
	}
}

func gotimeFormatter(layout string) FmtFunc {
	return func(t time.Time) (string, error) {
		return t.Format(layout), nil
	}
}

type namedFormat struct {
	Name   string
	Format string
}

var strptimeCandidates = []namedFormat{
	{"RFC3339", "%Y-%m-%dT%H:%M:%S.%f%z"},
	{"RFC3339", "%Y-%m-%dT%H:%M:%S%z"},
	{"YYYY-mm-dd HH:MM:SS.ms", "%Y-%m-%d %H:%M:%S.%f"},
	{"YYYY-mm-dd HH:MM:SS.ms TZ", "%Y-%m-%d %H:%M:%S.%f %z"},
	{"YYYY-mm-dd HH:MM:SS", "%Y-%m-%d %H:%M:%S"},
	{"YYYY-mm-dd HH:MM:SS TZ", "%Y-%m-%d %H:%M:%S %z"},
	{"YYYY-mm-dd", "%Y-%m-%d"},
}

// Go's time.Parse accepts fractional seconds after a seconds field even
// when the layout omits them, so one RFC3339 layout covers every precision.
var gotimeCandidates = []namedFormat{
	{"RFC3339", "2006-01-02T15:04:05.999Z07:00"},
	{"RFC1123", time.RFC1123},
	{"RFC1123Z", time.RFC1123Z},
	{"RFC822", time.RFC822},
	{"RFC822Z", time.RFC822Z},
	{"YYYY-mm-dd HH:MM:SS.ms", "2006-01-02 15:04:05.999"},
	{"YYYY-mm-dd HH:MM:SS.ms TZ", "2006-01-02 15:04:05.999 -07:00"},
	{"YYYY-mm-dd", "2006-01-02"},
}

// GuessStrptimeFormat returns the name and strptime format of the first
// common format that parses line.
func GuessStrptimeFormat(line string) (string, string, error) {
	for _, c := range strptimeCandidates {
		if _, err := timefmt.Parse(line, c.Format); err == nil {
			return c.Name, c.Format, nil
		}
	}
	return "", "", fmt.Errorf("could not parse %q with any known strptime formats", line)
}

// GuessGoTimeFormat returns the name and Go layout of the first common
// layout that parses line.
func GuessGoTimeFormat(line string) (string, string, error) {
	for _, c := range gotimeCandidates {
		if _, err := time.Parse(c.Format, line); err == nil {
			return c.Name, c.Format, nil
		}
	}
	return "", "", fmt.Errorf("could not parse %q with any known gotime formats", line)
}

var hintTemplate = template.Must(template.New("hint").Parse(`
HINT: It looks like the timestamp '{{.Line}}' is in a format named
'{{.Name}}' with a format specification of '{{.Format}}'. To parse
all the incoming timestamps as format '{{.Name}}', provide the following option:

	{{.Flag}} '{{.Format}}'

`))

const fallbackHint = "HINT: Use the '--strptime-fmt' flag to indicate the format of the incoming timestamps\n\n"

// GuessTimestampFormat explains which flag would parse line, or points at
// --strptime-fmt when nothing matches.
func GuessTimestampFormat(line string) string {
	guessers := []struct {
		flag  string
		guess func(string) (string, string, error)
	}{
		{"--gotime-fmt", GuessGoTimeFormat},
		{"--strptime-fmt", GuessStrptimeFormat},
	}
	for _, g := range guessers {
		name, format, err := g.guess(line)
		if err != nil {
			continue
		}
		buf := &bytes.Buffer{}
		err = hintTemplate.Execute(buf, map[string]string{
			"Line":   line,
			"Name":   name,
			"Format": format,
			"Flag":   g.flag,
		})
		if err != nil {
			return fallbackHint
		}
		return buf.String()
	}
	return fallbackHint
}
