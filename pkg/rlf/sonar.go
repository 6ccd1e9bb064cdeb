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
	"encoding/hex"
)

// ADCP / DVL (0x03e8, 155 bytes, ~0.67 Hz). RDI 1200 kHz, up and down
// looking. No clock has been located in this payload; time alignment
// against other series is the consumer's problem. The tail past byte
// 115 is status data that is still undeciphered.
var adcpLayout = seriesLayout{
	size:     115,
	clockOff: -1,
	fields: []fieldDef{
		{name: "subtype", off: 0, kind: kindU8},
		{name: "adcp_param1", off: 1, kind: kindF32},
		{name: "attitude1", off: 5, kind: kindF32},
		{name: "adcp_param2", off: 9, kind: kindF32},
		{name: "depth1", off: 13, kind: kindF32},
		{name: "depth2", off: 17, kind: kindF32},
		{name: "config_val", off: 21, kind: kindF32},
		{name: "water_temp", off: 25, kind: kindF32},
		{name: "altitude", off: 29, kind: kindF32},
		{name: "depth", off: 33, kind: kindF32},
		{name: "pitch", off: 37, kind: kindF32},
		{name: "roll", off: 41, kind: kindF32},
		{name: "attitude2", off: 45, kind: kindF32},
		{name: "heading", off: 53, kind: kindF32},
		{name: "bearing", off: 57, kind: kindF32},
		{name: "lat1", off: 67, kind: kindF64},
		{name: "lon1", off: 75, kind: kindF64},
		{name: "lat2", off: 83, kind: kindF64},
		{name: "lon2", off: 91, kind: kindF64},
		{name: "lat3", off: 99, kind: kindF64},
		{name: "lon3", off: 107, kind: kindF64},
	},
}

func decodeADCP(payloads [][]byte) (Record, []int) {
	s, skipped := adcpLayout.decode(payloads)
	return s, skipped
}

// MSTL Sidescan (0x03f7, 55 bytes, ~1.3 Hz). Position at float32
// precision. Range/altitude class fields use the -32.768 sentinel
// pattern for invalid pings; those decode to NaN.
var sidescanLayout = seriesLayout{
	size:     42,
	clockOff: -1,
	fields: []fieldDef{
		{name: "lat", off: 0, kind: kindF32},
		{name: "lon", off: 4, kind: kindF32},
		{name: "altitude", off: 8, kind: kindF32, sentinel: true},
		{name: "depth", off: 12, kind: kindF32, sentinel: true},
		{name: "temperature", off: 32, kind: kindF32, sentinel: true},
		{name: "heading", off: 38, kind: kindF32},
	},
}

func decodeSidescan(payloads [][]byte) (Record, []int) {
	s, skipped := sidescanLayout.decode(payloads)
	return s, skipped
}

// DVL Status (0x040b, 60 bytes, sparse). Internal format undetermined;
// kept as hex so the bytes stay inspectable next to the decoded types.
func decodeDVLStatus(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	for _, p := range payloads {
		list.Entries = append(list.Entries, Entry{"raw_hex": hex.EncodeToString(p)})
	}
	return list, nil
}
