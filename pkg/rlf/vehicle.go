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
	"encoding/hex"
	"strings"
)

// cString cuts a null-padded byte field down to the text before the
// first null.
func cString(p []byte) string {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return string(p)
}

// Vehicle Name (0x03f4). One sub-type byte, then the null-terminated
// vehicle name. Repeated on every startup with identical content, so a
// single struct from the first payload suffices.
func decodeVehicleName(payloads [][]byte) (Record, []int) {
	s := &SingleStruct{Fields: map[string]interface{}{}}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 2 {
			skipped = append(skipped, i)
			continue
		}
		if _, done := s.Fields["name"]; !done {
			s.Fields["name"] = cString(p[1:])
		}
	}
	return s, skipped
}

// Vehicle Info (0x040d, variable). Startup log of label/value pairs
// separated by a newline: serial number, owner, firmware versions of
// each subsystem.
func decodeVehicleInfo(payloads [][]byte) (Record, []int) {
	s := &SingleStruct{Fields: map[string]interface{}{}}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 3 {
			skipped = append(skipped, i)
			continue
		}
		text := strings.TrimSpace(cString(p[2:]))
		if text == "" {
			continue
		}
		if label, value, found := strings.Cut(text, "\n"); found {
			s.Fields[strings.TrimSpace(label)] = strings.TrimSpace(value)
		} else {
			s.Fields[text] = ""
		}
	}
	return s, skipped
}

// Manufacturer Info (0x0416). One flag byte, then a null-terminated
// manufacturer string.
func decodeManufacturer(payloads [][]byte) (Record, []int) {
	s := &SingleStruct{Fields: map[string]interface{}{}}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 2 {
			skipped = append(skipped, i)
			continue
		}
		if _, done := s.Fields["info"]; !done {
			s.Fields["info"] = cString(p[1:])
		}
	}
	return s, skipped
}

// Diagnostic Log (0x03e9, variable). A null-terminated firmware source
// filename, a 6-byte separator (2 unknown bytes and the constant
// marker "G;*R"), then the null-terminated warning text.
func decodeDiagnostic(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	for _, p := range payloads {
		null := bytes.IndexByte(p, 0)
		if null < 0 {
			list.Entries = append(list.Entries, Entry{
				"source_file": "",
				"message":     string(p),
			})
			continue
		}
		sourceFile := string(p[:null])
		message := ""
		if rest := p[null+1:]; len(rest) > 6 {
			message = strings.TrimSpace(cString(rest[6:]))
		}
		list.Entries = append(list.Entries, Entry{
			"source_file": sourceFile,
			"message":     message,
		})
	}
	return list, nil
}

// Subsystem Mode (0x0408, 6 bytes). A flag register with only a couple
// of observed patterns; kept raw.
func decodeSubsysMode(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	for _, p := range payloads {
		list.Entries = append(list.Entries, Entry{"raw_hex": hex.EncodeToString(p)})
	}
	return list, nil
}

// Startup Flag (0x0446, 4 bytes, constant 01 00 00 00). Only the count
// carries information.
func decodeStartupFlag(payloads [][]byte) (Record, []int) {
	return &SingleStruct{Fields: map[string]interface{}{
		"count": len(payloads),
		"value": 1,
	}}, nil
}

// Event Marker (0x03ef, empty payload). Phase transition marker.
func decodeEventMarker(payloads [][]byte) (Record, []int) {
	return &SingleStruct{Fields: map[string]interface{}{
		"count": len(payloads),
	}}, nil
}
