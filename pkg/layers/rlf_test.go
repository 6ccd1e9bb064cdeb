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

package layers

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/gopacket"
	"github.com/stretchr/testify/require"
)

func frame(typ uint16, payload []byte) []byte {
	b := make([]byte, HeaderSize+len(payload))
	b[0] = Marker0
	b[1] = Marker1
	binary.LittleEndian.PutUint16(b[2:4], 0xABCD)
	binary.LittleEndian.PutUint16(b[4:6], typ)
	binary.LittleEndian.PutUint16(b[6:8], uint16(len(payload)))
	copy(b[HeaderSize:], payload)
	return b
}

func TestDecodeFrames(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(frame(0x0001, []byte{0x01, 0x00, 0x00, 0x00}))
	buf.Write(frame(0x0002, nil))

	l := &RLFLayer{}
	err := l.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback)
	require.NoError(t, err)
	require.Len(t, l.Frames, 2)
	require.Equal(t, 0, l.Truncated)

	require.Equal(t, 0, l.Frames[0].Offset)
	require.Equal(t, uint16(0x0001), l.Frames[0].Type)
	require.Equal(t, uint16(0xABCD), l.Frames[0].Checksum)
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, l.Frames[0].Payload)

	require.Equal(t, 12, l.Frames[1].Offset)
	require.Equal(t, uint16(0x0002), l.Frames[1].Type)
	require.Empty(t, l.Frames[1].Payload)
}

func TestDecodeEmpty(t *testing.T) {
	l := &RLFLayer{}
	err := l.DecodeFromBytes(nil, gopacket.NilDecodeFeedback)
	require.NoError(t, err)
	require.Empty(t, l.Frames)
	require.Equal(t, 0, l.Truncated)
}

func TestDecodeResyncAfterGarbage(t *testing.T) {
	var buf bytes.Buffer
	// garbage with a stray first marker byte that does not complete the pair
	buf.Write([]byte{0x00, Marker0, 0x42, 0xFF})
	buf.Write(frame(0x044e, make([]byte, 8)))

	l := &RLFLayer{}
	err := l.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback)
	require.NoError(t, err)
	require.Len(t, l.Frames, 1)
	require.Equal(t, 4, l.Frames[0].Offset)
}

func TestDecodeTruncatedTail(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(frame(0x0001, []byte{0xAA}))
	// header promises 10 payload bytes, only 2 present
	tail := frame(0x0002, make([]byte, 10))
	buf.Write(tail[:HeaderSize+2])

	l := &RLFLayer{}
	err := l.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback)
	require.NoError(t, err)
	require.Len(t, l.Frames, 1)
	require.Equal(t, 1, l.Truncated)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	// marker present, header cut off
	data := []byte{Marker0, Marker1, 0x01, 0x02}

	l := &RLFLayer{}
	err := l.DecodeFromBytes(data, gopacket.NilDecodeFeedback)
	require.NoError(t, err)
	require.Empty(t, l.Frames)
	require.Equal(t, 1, l.Truncated)
}

func TestSerializeRoundTrip(t *testing.T) {
	src := &RLFLayer{
		Frames: []*RLFFrame{
			{Checksum: 0x1234, Type: 0x044e, Payload: []byte{1, 2, 3}},
			{Checksum: 0x5678, Type: 0x0424, Payload: nil},
		},
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, src.SerializeTo(buf, gopacket.SerializeOptions{}))

	dst := &RLFLayer{}
	require.NoError(t, dst.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback))
	require.Len(t, dst.Frames, 2)
	require.Equal(t, uint16(0x1234), dst.Frames[0].Checksum)
	require.Equal(t, uint16(0x044e), dst.Frames[0].Type)
	require.Equal(t, []byte{1, 2, 3}, dst.Frames[0].Payload)
	require.Equal(t, uint16(0x0424), dst.Frames[1].Type)
	require.Empty(t, dst.Frames[1].Payload)
}
