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
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func putF32(p []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(p[off:], math.Float32bits(v))
}

func putF64(p []byte, off int, v float64) {
	binary.LittleEndian.PutUint64(p[off:], math.Float64bits(v))
}

func navPayload(lat, lon float64, clock uint32, depth float32) []byte {
	p := make([]byte, 46)
	putF64(p, 0, lat)
	putF64(p, 8, lon)
	binary.LittleEndian.PutUint32(p[16:], clock)
	putF32(p, 34, depth)
	return p
}

func TestSeriesDecode(t *testing.T) {
	payloads := [][]byte{
		navPayload(21.5, -158.2, 1000, 3.5),
		navPayload(21.6, -158.3, 2000, 4.5),
	}
	rec, skipped := decodeNav(payloads)
	require.Empty(t, skipped)

	s := rec.(*Series)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []float64{21.5, 21.6}, s.Fields["lat"])
	require.Equal(t, []float64{-158.2, -158.3}, s.Fields["lon"])
	require.Equal(t, []float64{1000, 2000}, s.Fields["ts_raw"])
	require.Equal(t, []float64{0, 1000.0 / 3_600_000.0}, s.T)
	// ts_raw rides at the end of the field order
	require.Equal(t, "ts_raw", s.Order[len(s.Order)-1])
}

func TestSeriesDecodeSkipsShortPayloads(t *testing.T) {
	payloads := [][]byte{
		navPayload(21.5, -158.2, 1000, 3.5),
		make([]byte, 10),
		navPayload(21.6, -158.3, 2000, 4.5),
	}
	rec, skipped := decodeNav(payloads)
	require.Equal(t, []int{1}, skipped)

	s := rec.(*Series)
	require.Equal(t, 2, s.Len())
	require.Len(t, s.T, 2)
}

func TestSentinelDecodesToNaN(t *testing.T) {
	p := make([]byte, 42)
	putF32(p, 0, 21.5)
	putF32(p, 8, -32.768)
	putF32(p, 12, 5.0)

	rec, skipped := decodeSidescan([][]byte{p})
	require.Empty(t, skipped)

	s := rec.(*Series)
	require.True(t, math.IsNaN(s.Fields["altitude"][0]))
	require.Equal(t, 5.0, s.Fields["depth"][0])
	// -32.768 in a non-sentinel field passes through untouched
	require.InDelta(t, 21.5, s.Fields["lat"][0], 1e-6)
}

func TestFieldScale(t *testing.T) {
	d := fieldDef{name: "x", off: 0, kind: kindU16, scale: 0.1, shift: 2}
	p := []byte{100, 0}
	require.InDelta(t, 12.0, d.read(p), 1e-12)
}

func TestStatsExcludeNaN(t *testing.T) {
	s := &Series{
		Fields: map[string][]float64{
			"altitude": {1, math.NaN(), 3},
		},
	}
	stats, ok := s.Stats("altitude")
	require.True(t, ok)
	require.Equal(t, 1.0, stats.Min)
	require.Equal(t, 3.0, stats.Max)
	require.Equal(t, 2.0, stats.Mean)
	require.Equal(t, 2, stats.Count)
}

func TestStatsUnknownOrAllNaN(t *testing.T) {
	s := &Series{
		Fields: map[string][]float64{
			"altitude": {math.NaN()},
		},
	}
	_, ok := s.Stats("altitude")
	require.False(t, ok)
	_, ok = s.Stats("missing")
	require.False(t, ok)
}
