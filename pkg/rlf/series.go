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
)

type fieldKind int

const (
	kindF32 fieldKind = iota
	kindF64
	kindU8
	kindU16
	kindU32
)

func (k fieldKind) size() int {
	switch k {
	case kindU8:
		return 1
	case kindU16:
		return 2
	case kindF32, kindU32:
		return 4
	case kindF64:
		return 8
	}
	return 0
}

// sentinelBits is the float32 bit pattern the MSTL firmware writes for
// "no valid reading" in range/altitude class fields. It must never leak
// into output as the literal number -32.768.
var sentinelBits = math.Float32bits(-32.768)

// fieldDef declares one field of a fixed payload layout: where it
// lives, how wide it is, and an optional linear calibration
// (physical = raw*scale + shift).
type fieldDef struct {
	name     string
	off      int
	kind     fieldKind
	scale    float64 // 0 means 1
	shift    float64
	sentinel bool // float32 sentinel pattern decodes to NaN
}

// seriesLayout is the complete fixed layout of one dense record type.
type seriesLayout struct {
	size     int // minimum payload length
	clockOff int // offset of the uint32 ms-since-midnight clock, -1 if none
	fields   []fieldDef
}

func (d fieldDef) read(p []byte) float64 {
	var v float64
	switch d.kind {
	case kindF32:
		bits := binary.LittleEndian.Uint32(p[d.off:])
		if d.sentinel && bits == sentinelBits {
			return math.NaN()
		}
		v = float64(math.Float32frombits(bits))
	case kindF64:
		v = math.Float64frombits(binary.LittleEndian.Uint64(p[d.off:]))
	case kindU8:
		v = float64(p[d.off])
	case kindU16:
		v = float64(binary.LittleEndian.Uint16(p[d.off:]))
	case kindU32:
		v = float64(binary.LittleEndian.Uint32(p[d.off:]))
	}
	if d.scale != 0 {
		v = v*d.scale + d.shift
	}
	return v
}

// decode runs the layout over every payload of one type. Payloads too
// short for the layout are skipped and their indices reported; they
// never abort the rest of the group.
func (l *seriesLayout) decode(payloads [][]byte) (*Series, []int) {
	s := &Series{
		Fields: make(map[string][]float64, len(l.fields)+1),
	}
	for _, f := range l.fields {
		s.Order = append(s.Order, f.name)
		s.Fields[f.name] = make([]float64, 0, len(payloads))
	}
	var tsRaw []uint32
	if l.clockOff >= 0 {
		s.Order = append(s.Order, "ts_raw")
		s.Fields["ts_raw"] = make([]float64, 0, len(payloads))
	}

	var skipped []int
	for i, p := range payloads {
		if len(p) < l.size {
			skipped = append(skipped, i)
			continue
		}
		for _, f := range l.fields {
			s.Fields[f.name] = append(s.Fields[f.name], f.read(p))
		}
		if l.clockOff >= 0 {
			raw := binary.LittleEndian.Uint32(p[l.clockOff:])
			tsRaw = append(tsRaw, raw)
			s.Fields["ts_raw"] = append(s.Fields["ts_raw"], float64(raw))
		}
	}
	if l.clockOff >= 0 {
		s.T = unwrapHours(tsRaw)
	}
	return s, skipped
}

// FieldStats are the aggregates of one series field with missing values
// (NaN) excluded.
type FieldStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Stats aggregates a field, skipping NaN markers so sentinel readings
// cannot corrupt min/max/mean. ok is false for an unknown field or one
// with no valid samples.
func (s *Series) Stats(field string) (stats FieldStats, ok bool) {
	vals, found := s.Fields[field]
	if !found {
		return FieldStats{}, false
	}
	sum := 0.0
	stats.Min = math.Inf(1)
	stats.Max = math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
		stats.Count++
	}
	if stats.Count == 0 {
		return FieldStats{}, false
	}
	stats.Mean = sum / float64(stats.Count)
	return stats, true
}
