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

// YSI CTD (0x041d, 40 bytes, ~18 Hz). Position at full double
// precision, matching the Navigation stream it rides along with.
var ctdYSILayout = seriesLayout{
	size:     40,
	clockOff: 16,
	fields: []fieldDef{
		{name: "lat", off: 0, kind: kindF64},
		{name: "lon", off: 8, kind: kindF64},
		{name: "undecoded_f20", off: 20, kind: kindF32},
		{name: "conductivity", off: 24, kind: kindF32},
		{name: "temperature", off: 28, kind: kindF32},
		{name: "salinity", off: 32, kind: kindF32},
		{name: "sound_speed", off: 36, kind: kindF32},
	},
}

func decodeCTDYSI(payloads [][]byte) (Record, []int) {
	s, skipped := ctdYSILayout.decode(payloads)
	return s, skipped
}

// Seabird CTD / SBE49 (0x040a, 32 bytes, ~0.3 Hz). This slower type
// stores position as float32, not float64, and its clock sits at
// offset 8 rather than 16. The altitude field shares the MSTL sentinel
// convention for "no valid reading".
var ctdSBELayout = seriesLayout{
	size:     32,
	clockOff: 8,
	fields: []fieldDef{
		{name: "lat", off: 0, kind: kindF32},
		{name: "lon", off: 4, kind: kindF32},
		{name: "altitude", off: 12, kind: kindF32, sentinel: true},
		{name: "conductivity", off: 16, kind: kindF32},
		{name: "temperature", off: 20, kind: kindF32},
		{name: "salinity", off: 24, kind: kindF32},
		{name: "sound_speed", off: 28, kind: kindF32},
	},
}

func decodeCTDSBE(payloads [][]byte) (Record, []int) {
	s, skipped := ctdSBELayout.decode(payloads)
	return s, skipped
}
