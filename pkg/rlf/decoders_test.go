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

func modemPayload(text string) []byte {
	p := make([]byte, 2+len(text)+1)
	p[0] = 0x01
	copy(p[2:], text)
	return p
}

func TestDecodeModemLog(t *testing.T) {
	rec, skipped := decodeModemLog([][]byte{
		modemPayload(">(VehM) 42:RANGE 123.4"),
		modemPayload("<(Veh) 7: ACK"),
	})
	require.Empty(t, skipped)

	list := rec.(*EntryList)
	require.Len(t, list.Entries, 2)
	require.Equal(t, ">", list.Entries[0]["direction"])
	require.Equal(t, "VehM", list.Entries[0]["source"])
	require.Equal(t, 42, list.Entries[0]["counter"])
	require.Equal(t, "RANGE 123.4", list.Entries[0]["message"])
	require.Equal(t, "<", list.Entries[1]["direction"])
	require.Equal(t, "ACK", list.Entries[1]["message"])
}

func TestDecodeModemLogKeepsUnmatchedText(t *testing.T) {
	rec, _ := decodeModemLog([][]byte{modemPayload("GARBLED LINE")})
	list := rec.(*EntryList)
	require.Equal(t, -1, list.Entries[0]["counter"])
	require.Equal(t, "", list.Entries[0]["direction"])
	require.Equal(t, "GARBLED LINE", list.Entries[0]["message"])
}

func TestCString(t *testing.T) {
	require.Equal(t, "REMUS", cString([]byte("REMUS\x00\x00junk")))
	require.Equal(t, "no-null", cString([]byte("no-null")))
	require.Equal(t, "", cString([]byte{0}))
}

func TestDecodeVehicleName(t *testing.T) {
	p := append([]byte{0x01}, []byte("REMUS-100\x00")...)
	rec, skipped := decodeVehicleName([][]byte{p, p})
	require.Empty(t, skipped)
	s := rec.(*SingleStruct)
	require.Equal(t, "REMUS-100", s.Fields["name"])
}

func TestDecodeMissionModesCollapsesDuplicates(t *testing.T) {
	mode := func(idx byte, name string) []byte {
		p := make([]byte, 21)
		p[0] = idx
		copy(p[4:], name)
		return p
	}
	rec, skipped := decodeMissionModes([][]byte{
		mode(11, "Surface"),
		mode(14, "Navigate"),
		mode(11, "Surface"),
	})
	require.Empty(t, skipped)
	s := rec.(*SingleStruct)
	require.Len(t, s.Fields, 2)
	require.Equal(t, "Surface", s.Fields["11"])
	require.Equal(t, "Navigate", s.Fields["14"])
}

func TestDecodeBatteryStatus(t *testing.T) {
	p := make([]byte, 139)
	binary.LittleEndian.PutUint16(p[2:], 2723)
	binary.LittleEndian.PutUint16(p[8:], 5500)
	binary.LittleEndian.PutUint16(p[10:], 28700)
	binary.LittleEndian.PutUint16(p[36:], 3100)
	binary.LittleEndian.PutUint16(p[38:], 27000)
	tail := "RE003\x00102455\x00LiION\x00Dec  2 2009\x0018:02:07\x00"
	copy(p[60:], tail)

	rec, skipped := decodeBatteryStatus([][]byte{p})
	require.Empty(t, skipped)
	list := rec.(*EntryList)
	require.Len(t, list.Entries, 1)
	e := list.Entries[0]
	require.Equal(t, 2723, e["batt_id"])
	require.Equal(t, 5500, e["capacity_mah"])
	require.Equal(t, 3100, e["cell_mv"])
	require.Equal(t, "RE003", e["part_number"])
	require.Equal(t, "102455", e["serial"])
	require.Equal(t, "LiION", e["chemistry"])
	require.Equal(t, "Dec  2 2009", e["mfg_date"])
	require.Equal(t, "18:02:07", e["mfg_time"])
}

func TestDecodeNavAcousticInvalidMarkers(t *testing.T) {
	p := make([]byte, 48)
	putF32(p, 8, -1.0)                // heading_dvl invalid
	putF32(p, 12, 1500.0)             // sound speed valid
	putF64(p, 24, 0.0)                // zeroed fix -> NaN
	putF64(p, 32, -157.9)             // plausible lon
	rec, skipped := decodeNavAcoustic([][]byte{p})
	require.Empty(t, skipped)
	s := rec.(*Series)
	require.True(t, math.IsNaN(s.Fields["heading_dvl"][0]))
	require.Equal(t, 1500.0, s.Fields["sound_speed_dvl"][0])
	require.True(t, math.IsNaN(s.Fields["lat"][0]))
	require.Equal(t, -157.9, s.Fields["lon"][0])
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Navigation", DisplayName(TypeNav))
	require.Equal(t, "Acoustic Modem Log", DisplayName(TypeModemLog))
	require.Equal(t, "Unknown_0x0999", DisplayName(0x0999))
}
