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
	"fmt"
	"sort"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
)

// Options configures a parse.
type Options struct {
	// ReferenceSeries is the record type whose clock stamps the
	// positional types. Zero means Navigation (0x044e).
	ReferenceSeries uint16
	// DropRaw discards payload bytes once a type is decoded, keeping
	// only the per-frame sizes. Saves memory on large logs.
	DropRaw bool
}

// Parse decodes a complete mission log buffer into a Dataset. It never
// fails: damage and gaps are reported through the Diagnostics section
// instead of an error, because a partly corrupted log from a recovered
// vehicle is still worth every frame it has.
func Parse(data []byte, opts *Options) *Dataset {
	if opts == nil {
		opts = &Options{}
	}
	refCode := opts.ReferenceSeries
	if refCode == 0 {
		refCode = TypeNav
	}

	layer := Scan(data)
	groups := Demux(layer.Frames)

	ds := &Dataset{
		Series:     make(map[string]*Series),
		EntryLists: make(map[string]*EntryList),
		Singles:    make(map[string]*SingleStruct),
		RawGroups:  make(map[uint16]*RawGroup, len(groups)),
		Summary:    make(map[string]*TypeSummary, len(groups)),
	}
	ds.Diag.TotalFrames = len(layer.Frames)
	ds.Diag.TruncatedFrames = layer.Truncated
	if layer.Truncated > 0 {
		log.Warning("Dropped %d truncated trailing frame(s)", layer.Truncated)
	}

	codes := make([]uint16, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	// skipped indices per type, needed below to pair reference offsets
	// with the samples that survived decoding
	skippedBy := make(map[uint16][]int)

	for _, code := range codes {
		g := groups[code]
		name := DisplayName(code)
		sum := &TypeSummary{
			TypeHex: fmt.Sprintf("0x%04x", code),
			Count:   len(g.Payloads),
		}
		if len(g.Payloads) > 0 {
			sum.PayloadBytes = len(g.Payloads[0])
		}
		sizes := make([]int, len(g.Payloads))
		for i, p := range g.Payloads {
			sizes[i] = len(p)
		}

		if rt, ok := registry[code]; ok {
			rec, skipped := rt.decode(g.Payloads)
			skippedBy[code] = skipped
			sum.Decoded = true
			sum.Skipped = len(skipped)
			if len(skipped) > 0 {
				if ds.Diag.SkippedPayloads == nil {
					ds.Diag.SkippedPayloads = make(map[string]int)
				}
				ds.Diag.SkippedPayloads[name] = len(skipped)
				log.Warning("%s: skipped %d malformed payload(s)", name, len(skipped))
			}
			switch r := rec.(type) {
			case *Series:
				r.Name = name
				ds.Series[name] = r
			case *EntryList:
				r.Name = name
				ds.EntryLists[name] = r
			case *SingleStruct:
				r.Name = name
				ds.Singles[name] = r
			}
		} else {
			ds.Diag.UnknownTypes = append(ds.Diag.UnknownTypes, sum.TypeHex)
			log.Debug("Unknown record type %s: %d frame(s) kept raw", sum.TypeHex, len(g.Payloads))
		}

		raw := &RawGroup{Type: code, Name: name, Count: len(g.Payloads), Sizes: sizes}
		if !opts.DropRaw {
			raw.Payloads = g.Payloads
		}
		ds.RawGroups[code] = raw
		ds.Summary[name] = sum
	}

	clock, err := referenceClock(ds, groups[refCode], refCode, skippedBy[refCode])
	for _, code := range codes {
		rt, ok := registry[code]
		if !ok || !rt.positional {
			continue
		}
		name := DisplayName(code)
		list := ds.EntryLists[name]
		if list == nil || len(list.Entries) == 0 {
			continue
		}
		if clock == nil {
			ds.Diag.Degraded = append(ds.Diag.Degraded, name)
			log.Warning("%s left unstamped: %v", name, err)
			continue
		}
		list.T = clock.Stamp(keptOffsets(groups[code].Offsets, skippedBy[code]))
	}

	return ds
}

// referenceClock builds the positional clock from the reference series'
// frame offsets and reconstructed hours. Offsets of payloads the
// decoder skipped are removed first, so both axes pair one-to-one.
func referenceClock(ds *Dataset, ref *FrameGroup, refCode uint16, skipped []int) (*PositionClock, error) {
	if ref == nil {
		return nil, ErrNoReference{Code: refCode}
	}
	series := ds.Series[DisplayName(refCode)]
	if series == nil || len(series.T) == 0 {
		return nil, ErrNoReference{Code: refCode}
	}
	offsets := keptOffsets(ref.Offsets, skipped)
	if len(offsets) != len(series.T) {
		return nil, ErrNoReference{Code: refCode}
	}
	return NewPositionClock(offsets, series.T)
}

// keptOffsets drops the offsets at the skipped indices. The skipped
// list is ascending, as decoders emit it in payload order.
func keptOffsets(offsets []int, skipped []int) []int {
	if len(skipped) == 0 {
		return offsets
	}
	kept := make([]int, 0, len(offsets)-len(skipped))
	next := 0
	for i, off := range offsets {
		if next < len(skipped) && skipped[next] == i {
			next++
			continue
		}
		kept = append(kept, off)
	}
	return kept
}
