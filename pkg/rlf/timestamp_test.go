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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapHoursStartsAtZero(t *testing.T) {
	out := unwrapHours([]uint32{5_000_000, 5_003_600})
	require.Len(t, out, 2)
	require.Equal(t, 0.0, out[0])
	require.InDelta(t, 0.001, out[1], 1e-9)
}

func TestUnwrapHoursMidnightRollover(t *testing.T) {
	// clock resets to near zero just before midnight
	out := unwrapHours([]uint32{86_399_900, 50})
	require.Equal(t, 0.0, out[0])
	// 150 ms elapsed across the rollover
	require.InDelta(t, 150.0/3_600_000.0, out[1], 1e-12)
	require.Greater(t, out[1], out[0])
}

func TestUnwrapHoursJitterIsNotRollover(t *testing.T) {
	// a small backward step within tolerance must not add a day
	out := unwrapHours([]uint32{10_000_000, 9_999_500})
	require.InDelta(t, -500.0/3_600_000.0, out[1], 1e-12)
}

func TestUnwrapHoursMasksBit31(t *testing.T) {
	plain := unwrapHours([]uint32{1000, 2000, 3000})
	flagged := unwrapHours([]uint32{1000 | 0x80000000, 2000, 3000 | 0x80000000})
	require.Equal(t, plain, flagged)
}

func TestUnwrapHoursEmpty(t *testing.T) {
	require.Nil(t, unwrapHours(nil))
}

func TestPositionClockInterpolates(t *testing.T) {
	c, err := NewPositionClock([]int{0, 100, 200}, []float64{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 0.5, c.At(50))
	require.Equal(t, 1.0, c.At(100))
	require.Equal(t, 2.0, c.At(150))
}

func TestPositionClockClampsOutsideSpan(t *testing.T) {
	c, err := NewPositionClock([]int{100, 200}, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, 1.0, c.At(0))
	require.Equal(t, 2.0, c.At(500))
}

func TestPositionClockStamp(t *testing.T) {
	c, err := NewPositionClock([]int{0, 100}, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 1}, c.Stamp([]int{0, 25, 100}))
}

func TestPositionClockRejectsEmptyOrMismatched(t *testing.T) {
	_, err := NewPositionClock(nil, nil)
	require.Error(t, err)
	_, err = NewPositionClock([]int{1, 2}, []float64{0})
	require.Error(t, err)
}
