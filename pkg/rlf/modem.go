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
	"regexp"
	"strconv"
	"strings"
)

// Modem messages look like ">(VehM) 42:RANGE 123.4". '>' is outgoing
// from the vehicle, '<' incoming.
var modemPattern = regexp.MustCompile(`^([><])\((\w+)\)\s+(\d+):(.*)`)

// Acoustic Modem Log (0x0424, 36 bytes). One null-terminated message
// string per record, after a 2-byte flag/padding prefix. This type
// carries no clock of its own; the caller assigns its time axis by
// interpolating against the reference series (see PositionClock).
// Lines that do not match the usual shape keep their full text in the
// message field with counter -1.
func decodeModemLog(payloads [][]byte) (Record, []int) {
	list := &EntryList{}
	var skipped []int
	for i, p := range payloads {
		if len(p) < 3 {
			skipped = append(skipped, i)
			continue
		}
		text := strings.TrimSpace(cString(p[2:]))
		e := Entry{
			"direction": "",
			"source":    "",
			"counter":   -1,
			"message":   text,
		}
		if m := modemPattern.FindStringSubmatch(text); m != nil {
			counter, err := strconv.Atoi(m[3])
			if err != nil {
				counter = -1
			}
			e["direction"] = m[1]
			e["source"] = m[2]
			e["counter"] = counter
			e["message"] = strings.TrimSpace(m[4])
		}
		list.Entries = append(list.Entries, e)
	}
	return list, skipped
}
