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
	"fmt"
	"math"
)

// Navigation (0x044e, 46 bytes, ~18 Hz). The primary dead-reckoning
// stream and the default reference clock for positional interpolation.
// Offsets 30 and 38 duplicate configuration/depth values and are not
// decoded; offset 42 is a float nobody has identified yet.
var navLayout = seriesLayout{
	size:     46,
	clockOff: 16,
	fields: []fieldDef{
		{name: "lat", off: 0, kind: kindF64},
		{name: "lon", off: 8, kind: kindF64},
		{name: "speed", off: 20, kind: kindF32},
		{name: "alt_max_range", off: 24, kind: kindU16},
		{name: "pitch", off: 26, kind: kindF32},
		{name: "depth", off: 34, kind: kindF32},
		{name: "undecoded_f42", off: 42, kind: kindF32},
	},
}

func decodeNav(payloads [][]byte) (Record, []int) {
	s, skipped := navLayout.decode(payloads)
	return s, skipped
}

// Objective Navigation (0x03f1, 53 bytes). Mission leg progress:
// FROM/TO waypoints, commanded RPM and speed, mode index into the
// Mission Modes table.
var objNavLayout = seriesLayout{
	size:     53,
	clockOff: -1,
	fields: []fieldDef{
		{name: "leg_index", off: 0, kind: kindU8},
		{name: "transit_time_s", off: 2, kind: kindU16},
		{name: "leg_dist_m", off: 4, kind: kindU16},
		{name: "from_lat", off: 6, kind: kindF64},
		{name: "from_lon", off: 14, kind: kindF64},
		{name: "to_lat", off: 22, kind: kindF64},
		{name: "to_lon", off: 30, kind: kindF64},
		{name: "cmd_rpm", off: 38, kind: kindF32},
		{name: "cmd_speed", off: 42, kind: kindF32},
		{name: "mode_index", off: 46, kind: kindU8},
		{name: "obj_subtype", off: 48, kind: kindU8},
		{name: "depth_setpt_dm", off: 50, kind: kindU16},
		{name: "active", off: 52, kind: kindU8},
	},
}

func decodeObjNav(payloads [][]byte) (Record, []int) {
	s, skipped := objNavLayout.decode(payloads)
	return s, skipped
}

// Nav/Acoustic (0x041a, 57 bytes). DVL heading and sound speed carry a
// -1.0 invalid marker; position fields are zeroed on invalid fixes, so
// values outside Earth-plausible bounds are mapped to NaN as well.
var navAcousticLayout = seriesLayout{
	size:     48,
	clockOff: -1,
	fields: []fieldDef{
		{name: "heading_dvl", off: 8, kind: kindF32},
		{name: "sound_speed_dvl", off: 12, kind: kindF32},
		{name: "lat", off: 24, kind: kindF64},
		{name: "lon", off: 32, kind: kindF64},
		{name: "heading", off: 40, kind: kindF32},
		{name: "sound_speed", off: 44, kind: kindF32},
	},
}

func decodeNavAcoustic(payloads [][]byte) (Record, []int) {
	s, skipped := navAcousticLayout.decode(payloads)
	for _, field := range []string{"heading_dvl", "sound_speed_dvl"} {
		vals := s.Fields[field]
		for i, v := range vals {
			if v == -1.0 {
				vals[i] = math.NaN()
			}
		}
	}
	lats := s.Fields["lat"]
	lons := s.Fields["lon"]
	for i := range lats {
		if a := math.Abs(lats[i]); !(a > 15 && a < 90) {
			lats[i] = math.NaN()
		}
		if a := math.Abs(lons[i]); !(a > 90 && a < 180) {
			lons[i] = math.NaN()
		}
	}
	return s, skipped
}

// GPS / Acoustic Nav (0x03f9, 59 bytes). Position doubles up front and,
// from byte 31 on, sometimes ASCII transponder identifiers. Decoded
// per-event because the ASCII content is irregular.
func decodeGPS(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 31 {
			skipped = append(skipped, i)
			continue
		}
		ascii := make([]byte, 0, len(p)-31)
		for _, b := range p[31:] {
			if b >= 0x20 && b < 0x7f {
				ascii = append(ascii, b)
			}
		}
		list.Entries = append(list.Entries, Entry{
			"lat":   math.Float64frombits(binary.LittleEndian.Uint64(p[0:8])),
			"lon":   math.Float64frombits(binary.LittleEndian.Uint64(p[8:16])),
			"ascii": string(ascii),
		})
	}
	return list, skipped
}

// Acoustic Nav Fix (0x041f, 126 bytes). One entry per transponder fix,
// the only record type carrying a full UTC wall-clock date.
func decodeAcousticFix(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 52 {
			skipped = append(skipped, i)
			continue
		}
		list.Entries = append(list.Entries, Entry{
			"lat":      math.Float64frombits(binary.LittleEndian.Uint64(p[0:8])),
			"lon":      math.Float64frombits(binary.LittleEndian.Uint64(p[8:16])),
			"heading":  float64(math.Float32frombits(binary.LittleEndian.Uint32(p[16:20]))),
			"seq":      int(binary.LittleEndian.Uint16(p[20:22])),
			"n_transp": int(binary.LittleEndian.Uint16(p[22:24])),
			"speed":    float64(math.Float32frombits(binary.LittleEndian.Uint32(p[26:30]))),
			"range_m":  float64(math.Float32frombits(binary.LittleEndian.Uint32(p[30:34]))),
			"datetime": fmt.Sprintf("20%02d-%02d-%02d %02d:%02d:%02d",
				p[46], p[47], p[48], p[49], p[50], p[51]),
		})
	}
	return list, skipped
}
