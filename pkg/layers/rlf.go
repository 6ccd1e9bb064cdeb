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
	"encoding/binary"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
)

const (
	// RLFLayerNum identifies the layer
	RLFLayerNum = 2013

	// HeaderSize is marker(2) + checksum(2) + type(2) + length(2)
	HeaderSize = 8
)

// RLF record marker bytes
const (
	Marker0 = 0xEB
	Marker1 = 0x90
)

// RLFFrame is a single framed record as it appears in a run log file.
// The checksum is carried as read, it is never verified; no vendor
// algorithm for it is known.
type RLFFrame struct {
	// Offset is the position of the marker within the scanned buffer.
	// Frame offsets are the monotonic position axis used to assign
	// timestamps to record types without an embedded clock.
	Offset   int
	Checksum uint16
	Type     uint16
	Length   uint16
	Payload  []byte
}

// RLFLayer holds every complete frame recovered from a buffer, in file
// order. File order is the only chronology the format guarantees.
type RLFLayer struct {
	layers.BaseLayer
	Frames []*RLFFrame
	// Truncated counts trailing frames whose header or payload ran past
	// the end of the buffer. A truncated tail is expected on logs cut by
	// power loss and is not an error.
	Truncated int
}

var RLFLayerType = gopacket.RegisterLayerType(RLFLayerNum,
	gopacket.LayerTypeMetadata{Name: "RLFLayerType", Decoder: gopacket.DecodeFunc(DecodeRLFLayer)})

// LayerType returns the type of the RLF layer in the layer catalog
func (l *RLFLayer) LayerType() gopacket.LayerType {
	return RLFLayerType
}

// DecodeFromBytes scans the whole buffer for marker-framed records.
// Bytes that do not start a complete frame are skipped one at a time, so
// a corrupt region resynchronizes at the next marker.
func (l *RLFLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	l.BaseLayer = layers.BaseLayer{
		Contents: []byte{},
		Payload:  data,
	}

	pos := 0
	for pos+1 < len(data) {
		if data[pos] != Marker0 || data[pos+1] != Marker1 {
			pos++
			continue
		}
		if pos+HeaderSize > len(data) {
			// marker found but the header itself is cut off
			l.Truncated++
			df.SetTruncated()
			break
		}
		checksum := binary.LittleEndian.Uint16(data[pos+2 : pos+4])
		recType := binary.LittleEndian.Uint16(data[pos+4 : pos+6])
		length := binary.LittleEndian.Uint16(data[pos+6 : pos+8])
		payloadEnd := pos + HeaderSize + int(length)
		if payloadEnd > len(data) {
			l.Truncated++
			df.SetTruncated()
			break
		}
		l.Frames = append(l.Frames, &RLFFrame{
			Offset:   pos,
			Checksum: checksum,
			Type:     recType,
			Length:   length,
			Payload:  data[pos+HeaderSize : payloadEnd],
		})
		pos = payloadEnd
	}

	log.Debug("DecodeFromBytes: %d frames, %d truncated", len(l.Frames), l.Truncated)
	return nil
}

// SerializeTo serializes the RLF layer into bytes and writes the bytes to the SerializeBuffer
func (l *RLFLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	for _, frame := range l.Frames {
		headerBytes, err := b.AppendBytes(HeaderSize)
		if err != nil {
			return err
		}
		headerBytes[0] = Marker0
		headerBytes[1] = Marker1
		binary.LittleEndian.PutUint16(headerBytes[2:4], frame.Checksum)
		binary.LittleEndian.PutUint16(headerBytes[4:6], frame.Type)
		binary.LittleEndian.PutUint16(headerBytes[6:8], uint16(len(frame.Payload)))

		payloadBytes, err := b.AppendBytes(len(frame.Payload))
		if err != nil {
			return err
		}
		copy(payloadBytes, frame.Payload)
	}

	return nil
}

func DecodeRLFLayer(data []byte, p gopacket.PacketBuilder) error {
	l := &RLFLayer{}
	err := l.DecodeFromBytes(data, p)
	if err != nil {
		return err
	}
	p.AddLayer(l)
	return nil
}
