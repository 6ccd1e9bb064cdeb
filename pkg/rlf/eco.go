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

// Wetlabs ECO BB2F (0x043e, 57 bytes, ~1 Hz). Optical backscatter at
// 470/650 nm plus chlorophyll-a fluorescence. The optical channels sit
// at one-byte misalignment (byte 25, not 24); there is a padding or
// flag byte at offset 24.
var ecoLayout = seriesLayout{
	size:     57,
	clockOff: 16,
	fields: []fieldDef{
		{name: "lat", off: 0, kind: kindF64},
		{name: "lon", off: 8, kind: kindF64},
		{name: "depth", off: 20, kind: kindF32},
		{name: "ref470", off: 25, kind: kindF32},
		{name: "lambda470", off: 29, kind: kindF32},
		{name: "beta470", off: 33, kind: kindF32},
		{name: "ref650", off: 37, kind: kindF32},
		{name: "lambda650", off: 41, kind: kindF32},
		{name: "beta650", off: 45, kind: kindF32},
		{name: "chlorophyll", off: 49, kind: kindF32},
		{name: "thermistor", off: 53, kind: kindF32},
	},
}

func decodeECO(payloads [][]byte) (Record, []int) {
	s, skipped := ecoLayout.decode(payloads)
	return s, skipped
}

// ECO Calibration (0x043d, 46 bytes). One record per ECO channel with
// its units and linear calibration (physical = scale * (raw - offset)).
func decodeECOCal(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 46 {
			skipped = append(skipped, i)
			continue
		}
		list.Entries = append(list.Entries, Entry{
			"channel":    cString(p[0:17]),
			"units":      cString(p[17:34]),
			"index":      int(p[34]),
			"calibrated": p[35] != 0,
			"scale":      float64(math.Float32frombits(binary.LittleEndian.Uint32(p[38:42]))),
			"offset":     float64(math.Float32frombits(binary.LittleEndian.Uint32(p[42:46]))),
		})
	}
	return list, skipped
}
