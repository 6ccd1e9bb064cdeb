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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/layers"
)

func appendFrame(buf *bytes.Buffer, typ uint16, payload []byte) {
	header := make([]byte, layers.HeaderSize)
	header[0] = layers.Marker0
	header[1] = layers.Marker1
	binary.LittleEndian.PutUint16(header[2:4], 0)
	binary.LittleEndian.PutUint16(header[4:6], typ)
	binary.LittleEndian.PutUint16(header[6:8], uint16(len(payload)))
	buf.Write(header)
	buf.Write(payload)
}

// missionLog builds a small synthetic log: navigation frames bracketing
// modem frames, one unknown type, and a truncated tail.
func missionLog() []byte {
	var buf bytes.Buffer
	appendFrame(&buf, TypeNav, navPayload(21.50, -158.20, 1_000, 3.0))
	appendFrame(&buf, TypeModemLog, modemPayload(">(VehM) 1:PING"))
	appendFrame(&buf, TypeNav, navPayload(21.51, -158.21, 601_000, 4.0))
	appendFrame(&buf, TypeModemLog, modemPayload("<(Veh) 2:ACK"))
	appendFrame(&buf, TypeNav, navPayload(21.52, -158.22, 1_201_000, 5.0))
	appendFrame(&buf, 0x0999, []byte{0xDE, 0xAD})
	// truncated tail: header promises more payload than remains
	header := make([]byte, layers.HeaderSize)
	header[0] = layers.Marker0
	header[1] = layers.Marker1
	binary.LittleEndian.PutUint16(header[4:6], TypeNav)
	binary.LittleEndian.PutUint16(header[6:8], 46)
	buf.Write(header)
	buf.Write([]byte{0x01, 0x02})
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	ds := Parse(missionLog(), nil)

	require.Equal(t, 6, ds.Diag.TotalFrames)
	require.Equal(t, 1, ds.Diag.TruncatedFrames)
	require.Equal(t, []string{"0x0999"}, ds.Diag.UnknownTypes)
	require.Empty(t, ds.Diag.Degraded)

	nav := ds.Series["Navigation"]
	require.NotNil(t, nav)
	require.Equal(t, 3, nav.Len())
	require.Equal(t, 0.0, nav.T[0])
	require.InDelta(t, 1_200_000.0/3_600_000.0, nav.T[2], 1e-9)

	modem := ds.EntryLists["Acoustic Modem Log"]
	require.NotNil(t, modem)
	require.Len(t, modem.Entries, 2)
	require.Len(t, modem.T, 2)
	// interpolated stamps stay inside the reference span and in order
	require.GreaterOrEqual(t, modem.T[0], nav.T[0])
	require.LessOrEqual(t, modem.T[1], nav.T[2])
	require.Less(t, modem.T[0], modem.T[1])
}

func TestParseSummaryAndRaw(t *testing.T) {
	ds := Parse(missionLog(), nil)

	navSum := ds.Summary["Navigation"]
	require.NotNil(t, navSum)
	require.Equal(t, "0x044e", navSum.TypeHex)
	require.Equal(t, 3, navSum.Count)
	require.Equal(t, 46, navSum.PayloadBytes)
	require.True(t, navSum.Decoded)

	unknown := ds.Summary["Unknown_0x0999"]
	require.NotNil(t, unknown)
	require.False(t, unknown.Decoded)

	raw := ds.RawGroups[0x0999]
	require.NotNil(t, raw)
	require.Equal(t, [][]byte{{0xDE, 0xAD}}, raw.Payloads)
	require.Equal(t, []int{2}, raw.Sizes)
}

func TestSummaryPayloadBytesIsFirstFrameSize(t *testing.T) {
	var buf bytes.Buffer
	appendFrame(&buf, 0x0999, make([]byte, 4))
	appendFrame(&buf, 0x0999, make([]byte, 6))

	ds := Parse(buf.Bytes(), nil)
	sum := ds.Summary["Unknown_0x0999"]
	require.Equal(t, 2, sum.Count)
	require.Equal(t, 4, sum.PayloadBytes)
	// the per-frame lengths stay available through the raw group
	require.Equal(t, []int{4, 6}, ds.RawGroups[0x0999].Sizes)
}

func TestParseIdempotent(t *testing.T) {
	data := missionLog()
	first, err := json.Marshal(Parse(data, nil))
	require.NoError(t, err)
	second, err := json.Marshal(Parse(data, nil))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseDropRaw(t *testing.T) {
	ds := Parse(missionLog(), &Options{DropRaw: true})
	for _, raw := range ds.RawGroups {
		require.Nil(t, raw.Payloads)
		require.NotEmpty(t, raw.Sizes)
	}
}

func TestParseDegradedWithoutReference(t *testing.T) {
	var buf bytes.Buffer
	appendFrame(&buf, TypeModemLog, modemPayload(">(VehM) 1:PING"))

	ds := Parse(buf.Bytes(), nil)
	require.Equal(t, []string{"Acoustic Modem Log"}, ds.Diag.Degraded)
	require.Empty(t, ds.EntryLists["Acoustic Modem Log"].T)
}

func TestParseEmptyBuffer(t *testing.T) {
	ds := Parse(nil, nil)
	require.Equal(t, 0, ds.Diag.TotalFrames)
	require.Empty(t, ds.Series)
	require.Empty(t, ds.EntryLists)
}

func TestParseSkippedReferencePayloadsStayAligned(t *testing.T) {
	var buf bytes.Buffer
	appendFrame(&buf, TypeNav, navPayload(21.50, -158.20, 1_000, 3.0))
	// malformed navigation frame, decoder skips it
	appendFrame(&buf, TypeNav, make([]byte, 10))
	appendFrame(&buf, TypeModemLog, modemPayload(">(VehM) 1:PING"))
	appendFrame(&buf, TypeNav, navPayload(21.52, -158.22, 601_000, 5.0))

	ds := Parse(buf.Bytes(), nil)
	nav := ds.Series["Navigation"]
	require.Equal(t, 2, nav.Len())
	require.Equal(t, 1, ds.Diag.SkippedPayloads["Navigation"])

	// stamping still works off the surviving reference samples
	modem := ds.EntryLists["Acoustic Modem Log"]
	require.Len(t, modem.T, 1)
	require.GreaterOrEqual(t, modem.T[0], nav.T[0])
	require.LessOrEqual(t, modem.T[0], nav.T[1])
}
