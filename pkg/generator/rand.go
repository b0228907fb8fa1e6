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

package generator

import "time"

// LCG parameters. The normalised fraction seed/lcgModulus is reproducible
// across implementations; it is not meant to be statistically strong.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Rand is a linear-congruential generator owning its seed. Every draw
// advances the seed, so results depend on call order and count.
//
// A Rand is not safe for concurrent use.
type Rand struct {
	seed int64
}

// NewRand returns a generator starting from seed. The seed is reduced
// modulo the LCG modulus first, which yields the same sequence as the
// unreduced value while keeping the arithmetic inside int64.
func NewRand(seed int64) *Rand {
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	return &Rand{seed: seed}
}

// NewRandFromTime seeds a generator with the current Unix time in
// milliseconds.
func NewRandFromTime() *Rand {
	return NewRand(time.Now().UnixMilli())
}

// Seed returns the current state.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Draw advances the seed and returns lo + (seed/233280) * (hi-lo).
// The result approaches but never reaches hi.
func (r *Rand) Draw(lo, hi float64) float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return lo + (float64(r.seed)/lcgModulus)*(hi-lo)
}

// Float is Draw with both bounds at zero. It always returns 0 but still
// advances the seed.
func (r *Rand) Float() float64 {
	return r.Draw(0, 0)
}
