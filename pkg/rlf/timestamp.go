/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package rlf

import (
	"sort"
)

const (
	// TimestampMask clears bit 31 of the raw clock field. The bit is a
	// firmware flag, not part of the time value.
	TimestampMask = 0x7FFFFFFF

	// DayMillis is added to the running day offset on every midnight
	// rollover of the raw clock.
	DayMillis = 86_400_000

	// RolloverTolerance separates a genuine midnight reset from jitter
	// between neighboring samples. A backward step larger than this is a
	// rollover; anything smaller is measurement noise and left alone.
	RolloverTolerance = 1_000_000

	millisPerHour = 3_600_000.0
)

// unwrapHours reconstructs a monotonic time axis from raw
// ms-since-midnight clock values, in file order. Bit 31 is masked off
// each value, and every midnight reset adds a day to the running
// offset. The result is hours since the sequence's own first sample.
func unwrapHours(raw []uint32) []float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make([]float64, len(raw))
	acc := 0.0
	prev := float64(raw[0] & TimestampMask)
	abs0 := prev
	out[0] = 0
	for i := 1; i < len(raw); i++ {
		masked := float64(raw[i] & TimestampMask)
		if acc+masked < prev-RolloverTolerance {
			acc += DayMillis
		}
		u := acc + masked
		out[i] = (u - abs0) / millisPerHour
		prev = u
	}
	return out
}

// PositionClock assigns timestamps to frames that carry no clock of
// their own, by correlating their byte offsets against a reference
// stream whose offsets and reconstructed hours are both known.
//
// This leans on the single-writer property of the log: both record
// types are appended in true write-time order, so byte offset is a
// monotonic proxy for elapsed time. An out-of-order writer would bias
// these timestamps silently; none has been observed.
type PositionClock struct {
	offsets []int
	t       []float64
}

// NewPositionClock builds a clock from a reference series' frame
// offsets and its reconstructed hours. Both slices must pair up
// one-to-one.
func NewPositionClock(offsets []int, t []float64) (*PositionClock, error) {
	if len(offsets) == 0 || len(offsets) != len(t) {
		return nil, ErrEmptyClock{}
	}
	return &PositionClock{offsets: offsets, t: t}, nil
}

// At interpolates the reference hours at byte offset x. Offsets outside
// the reference span clamp to the nearest end; extrapolation is never
// performed, so no value outside [t[0], t[last]] can come back.
func (c *PositionClock) At(x int) float64 {
	n := len(c.offsets)
	if x <= c.offsets[0] {
		return c.t[0]
	}
	if x >= c.offsets[n-1] {
		return c.t[n-1]
	}
	// first reference offset strictly greater than x; its predecessor
	// closes the bracket
	hi := sort.Search(n, func(i int) bool { return c.offsets[i] > x })
	lo := hi - 1
	span := float64(c.offsets[hi] - c.offsets[lo])
	if span == 0 {
		return c.t[lo]
	}
	frac := float64(x-c.offsets[lo]) / span
	return c.t[lo] + frac*(c.t[hi]-c.t[lo])
}

// Stamp interpolates every offset in xs.
func (c *PositionClock) Stamp(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.At(x)
	}
	return out
}
