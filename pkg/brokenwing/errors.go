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

package brokenwing

import (
	"errors"
	"fmt"
)

// Custom error types
var (
	ErrInvalidConfig  = errors.New("invalid generator config")
	ErrNoTimestamps   = errors.New("no timestamps to bin")
	ErrUnknownUnit    = errors.New("unknown time unit")
	ErrUnknownDist    = errors.New("unknown distribution")
	ErrUnknownEmitter = errors.New("unknown emitter")
	ErrUnknownSeries  = errors.New("unknown series type")
	ErrTooManyBins    = errors.New("too many bins")
)

type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode series spec for %q: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LineError reports an input line that could not be parsed as a timestamp.
// Hint, when set, suggests a format flag that would have parsed the line.
type LineError struct {
	Line int
	Text string
	Hint string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("cannot parse line %d of input %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// InvalidConfig wraps ErrInvalidConfig with a description of the offending
// field.
func InvalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
