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
	"bytes"
	"encoding/binary"
	"strings"
)

// Smart Battery Status (0x0412, 139 bytes). One record per battery bank
// per logging cycle, cycling through all banks. Identity strings
// (part number, serial, chemistry, manufacture date/time) sit
// null-separated in the tail and are classified by content.
func decodeBatteryStatus(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 40 {
			skipped = append(skipped, i)
			continue
		}
		e := Entry{
			"batt_id":      int(binary.LittleEndian.Uint16(p[2:4])),
			"capacity_mah": int(binary.LittleEndian.Uint16(p[8:10])),
			"design_mv":    int(binary.LittleEndian.Uint16(p[10:12])),
			"cell_mv":      int(binary.LittleEndian.Uint16(p[36:38])),
			"pack_mv":      int(binary.LittleEndian.Uint16(p[38:40])),
		}
		for _, part := range bytes.Split(p, []byte{0}) {
			s := string(part)
			if len(s) < 3 || !printable(s) {
				continue
			}
			switch {
			case strings.HasPrefix(s, "RE"):
				e["part_number"] = s
			case len(s) == 6 && allDigits(s):
				e["serial"] = s
			case strings.Contains(s, "ION") || strings.Contains(s, "ACID") || strings.Contains(s, "NiMH"):
				e["chemistry"] = s
			case containsMonth(s):
				e["mfg_date"] = s
			case len(s) == 8 && strings.Contains(s, ":"):
				e["mfg_time"] = s
			}
		}
		list.Entries = append(list.Entries, e)
	}
	return list, skipped
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func containsMonth(s string) bool {
	for _, m := range monthNames {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Smart Battery Cell Data (0x0413, 52 bytes). Companion to Battery
// Status at the same rate, cycling through the banks in the same
// order. Seven per-cell readings at the tail stay as raw counts.
func decodeBatteryCells(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 52 {
			skipped = append(skipped, i)
			continue
		}
		cells := make([]int, 7)
		for k := range cells {
			cells[k] = int(binary.LittleEndian.Uint16(p[38+k*2 : 40+k*2]))
		}
		list.Entries = append(list.Entries, Entry{
			"batt_id":      int(binary.LittleEndian.Uint16(p[18:20])),
			"cell_mv":      int(binary.LittleEndian.Uint16(p[10:12])),
			"energy_cum":   int(binary.LittleEndian.Uint16(p[12:14])),
			"energy_cyc":   int(binary.LittleEndian.Uint16(p[14:16])),
			"capacity_mah": int(binary.LittleEndian.Uint16(p[16:18])),
			"cell_counts":  cells,
		})
	}
	return list, skipped
}

// Energy Monitor (0x0402, 13 bytes). Pack capacity drops in ~309 Wh
// steps as battery banks deplete and fall out.
var energyMonLayout = seriesLayout{
	size:     13,
	clockOff: -1,
	fields: []fieldDef{
		{name: "cell_count", off: 0, kind: kindU8},
		{name: "capacity_wh", off: 1, kind: kindF32},
		{name: "energy_wh", off: 5, kind: kindF32},
		{name: "status_metric", off: 9, kind: kindF32},
	},
}

func decodeEnergyMon(payloads [][]byte) (Record, []int) {
	s, skipped := energyMonLayout.decode(payloads)
	return s, skipped
}
