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

package tbin

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cardinalhq/tsgraph/pkg/brokenwing"
)

const (
	DistRandom = "random"
	DistNormal = "normal"

	// SampleStart is Tuesday, October 29, 2019 11:11:10.840 AM (UTC).
	SampleStart int64 = 1572347470840
)

// MakeRNG returns a PCG-backed generator. A zero seed picks one from the
// wall clock.
func MakeRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// GenRandomTimestamps draws count timestamps within [start, stop]. The
// "random" distribution is uniform; "normal" centers on the midpoint with a
// standard deviation of an eighth of the range.
func GenRandomTimestamps(count int, seed uint64, start, stop int64, dist string) ([]int64, error) {
	if stop < start {
		return nil, brokenwing.InvalidConfig("stop %d is before start %d", stop, start)
	}
	rnd := MakeRNG(seed)
	span := stop - start

	var draw func() int64
	switch dist {
	case DistRandom:
		draw = func() int64 {
			return int64(rnd.Float64()*float64(span)) + start
		}
	case DistNormal:
		draw = func() int64 {
			return int64(rnd.NormFloat64()*float64(span/8)) + start + span/2
		}
	default:
		return nil, fmt.Errorf("%w: %q", brokenwing.ErrUnknownDist, dist)
	}

	tss := make([]int64, 0, max(count, 0))
	for range count {
		tss = append(tss, clamp(draw(), start, stop))
	}
	return tss, nil
}

// SimpleRandomTimestamps draws count normally distributed timestamps over
// the given number of hours from SampleStart, with a fixed seed.
func SimpleRandomTimestamps(count int, hours int) ([]int64, error) {
	stop := SampleStart + int64(hours)*Hour
	return GenRandomTimestamps(count, 1, SampleStart, stop, DistNormal)
}

func clamp(v, lo, hi int64) int64 {
	return min(max(v, lo), hi)
}
