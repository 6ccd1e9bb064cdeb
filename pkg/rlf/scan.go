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
	"github.com/google/gopacket"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/layers"
)

// FrameGroup is every payload of one record type, in file order, plus
// the byte offsets the frames were found at. Offsets are strictly
// increasing because the scanner walks the buffer once, front to back.
type FrameGroup struct {
	Type     uint16
	Payloads [][]byte
	Offsets  []int
}

// Scan recovers all complete frames from a buffer. The returned layer
// carries the frames in file order and the count of truncated trailing
// frames.
func Scan(data []byte) *layers.RLFLayer {
	l := &layers.RLFLayer{}
	// the layer decoder reports truncation through the layer itself,
	// nothing useful comes back through the feedback interface here
	l.DecodeFromBytes(data, gopacket.NilDecodeFeedback)
	return l
}

// Demux groups scanned frames by record type, preserving per-type
// arrival order. Pure regrouping, no decoding.
func Demux(frames []*layers.RLFFrame) map[uint16]*FrameGroup {
	groups := make(map[uint16]*FrameGroup)
	for _, f := range frames {
		g, ok := groups[f.Type]
		if !ok {
			g = &FrameGroup{Type: f.Type}
			groups[f.Type] = g
		}
		g.Payloads = append(g.Payloads, f.Payload)
		g.Offsets = append(g.Offsets, f.Offset)
	}
	return groups
}
