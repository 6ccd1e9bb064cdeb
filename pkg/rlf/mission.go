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
	"strconv"
)

// Mission Modes (0x03ee, 21 bytes). Static index -> mode name table
// logged at startup, repeated per startup; duplicates collapse.
func decodeMissionModes(payloads [][]byte) (Record, []int) {
	s := &SingleStruct{Fields: map[string]interface{}{}}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 5 {
			skipped = append(skipped, i)
			continue
		}
		s.Fields[strconv.Itoa(int(p[0]))] = cString(p[4:])
	}
	return s, skipped
}

// Mission Legs (0x03f0, 48 bytes). One leg of the mission plan:
// position, objective type name and destination name in 10-byte
// null-padded fields, leg index at the tail.
func decodeMissionLegs(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 48 {
			skipped = append(skipped, i)
			continue
		}
		list.Entries = append(list.Entries, Entry{
			"leg_type":  int(p[0]),
			"lat":       math.Float64frombits(binary.LittleEndian.Uint64(p[2:10])),
			"lon":       math.Float64frombits(binary.LittleEndian.Uint64(p[10:18])),
			"type_name": cString(p[24:34]),
			"dest_name": cString(p[34:44]),
			"index":     int(binary.LittleEndian.Uint16(p[46:48])),
		})
	}
	return list, skipped
}

// Waypoints (0x0427, 31-32 bytes). Named mission waypoints; the name is
// the variable-length tail, which is why this type is per-event rather
// than a dense series.
func decodeWaypoints(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 19 {
			skipped = append(skipped, i)
			continue
		}
		list.Entries = append(list.Entries, Entry{
			"lat":   math.Float64frombits(binary.LittleEndian.Uint64(p[0:8])),
			"lon":   math.Float64frombits(binary.LittleEndian.Uint64(p[8:16])),
			"flags": int(binary.LittleEndian.Uint16(p[16:18])),
			"name":  cString(p[18:]),
		})
	}
	return list, skipped
}

// Sensor Names (0x03fc, 13 bytes). One sensor name per record in an
// 11-byte null-padded field; unique names kept in order of first
// appearance.
func decodeSensorNames(payloads [][]byte) (Record, []int) {
	var names []string
	seen := make(map[string]bool)
	var skipped []int
	for i, p := range payloads {
		if len(p) < 11 {
			skipped = append(skipped, i)
			continue
		}
		name := cString(p[:11])
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return &SingleStruct{Fields: map[string]interface{}{"names": names}}, skipped
}

// Sensor Types (0x0407, 23 bytes). Firmware sensor type code -> name
// lookup, keyed here by the hex code.
func decodeSensorTypes(payloads [][]byte) (Record, []int) {
	s := &SingleStruct{Fields: map[string]interface{}{}}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 12 {
			skipped = append(skipped, i)
			continue
		}
		s.Fields["0x"+strconv.FormatUint(uint64(p[0]), 16)] = cString(p[1:12])
	}
	return s, skipped
}

// Sensor Display Config (0x040c, 28 bytes). Display name, value range
// and printf format for one sensor channel.
func decodeSensorDisplay(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 22 {
			skipped = append(skipped, i)
			continue
		}
		list.Entries = append(list.Entries, Entry{
			"name":   cString(p[10:20]),
			"min":    float64(math.Float32frombits(binary.LittleEndian.Uint32(p[2:6]))),
			"max":    float64(math.Float32frombits(binary.LittleEndian.Uint32(p[6:10]))),
			"format": cString(p[21:]),
		})
	}
	return list, skipped
}

// Data Channels (0x041c, 24 bytes). Internal firmware channel table
// with nominal sample period; duplicates collapse like the other
// startup tables.
func decodeDataChannels(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	type chanKey struct {
		idx  int
		name string
	}
	seen := make(map[chanKey]bool)
	var skipped []int
	for i, p := range payloads {
		if len(p) < 24 {
			skipped = append(skipped, i)
			continue
		}
		key := chanKey{
			idx:  int(binary.LittleEndian.Uint16(p[0:2])),
			name: cString(p[2:12]),
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		list.Entries = append(list.Entries, Entry{
			"index":   key.idx,
			"name":    key.name,
			"rate_ms": int(binary.LittleEndian.Uint16(p[22:24])),
		})
	}
	return list, skipped
}
