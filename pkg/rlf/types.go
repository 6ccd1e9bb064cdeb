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

// Record is the decoded form of one record type. It is a closed sum:
// the only implementations are Series, EntryList and SingleStruct.
// Consumers switch on the concrete type and handle all three.
type Record interface {
	record()
	// DisplayName returns the record type's human readable name
	DisplayName() string
}

// Series is the dense parallel-array form used for fixed-layout,
// high-rate record types. All field slices have equal length and index i
// of every slice belongs to the same source frame. Missing readings are
// NaN, never a sentinel number.
type Series struct {
	Name string `json:"name"`
	// Order lists field names in payload-offset order
	Order  []string             `json:"order"`
	Fields map[string][]float64 `json:"fields"`
	// T is hours since this series' own first sample. Empty when the
	// type carries no clock.
	T []float64 `json:"t_hrs,omitempty"`
}

func (s *Series) record()             {}
func (s *Series) DisplayName() string { return s.Name }

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	for _, vals := range s.Fields {
		return len(vals)
	}
	return 0
}

// Entry is the full field set of one decoded event.
type Entry map[string]interface{}

// EntryList is the per-event form used for variable-shaped record types,
// where consumers need one event's complete field set rather than
// column-wise aggregation.
type EntryList struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
	// T is hours assigned by positional interpolation against the
	// reference series. Empty when the reference was unavailable or the
	// type is not position-stamped.
	T []float64 `json:"t_hrs,omitempty"`
}

func (e *EntryList) record()             {}
func (e *EntryList) DisplayName() string { return e.Name }

// SingleStruct is the flat field map used for one-shot, non-repeating
// record types such as the vehicle name or startup info log.
type SingleStruct struct {
	Name   string                 `json:"name"`
	Fields map[string]interface{} `json:"fields"`
}

func (s *SingleStruct) record()             {}
func (s *SingleStruct) DisplayName() string { return s.Name }

// RawGroup is the diagnostic view of one record type's undecoded frames.
type RawGroup struct {
	Type  uint16 `json:"type"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	// Sizes holds the payload length of every frame, in file order
	Sizes []int `json:"sizes"`
	// Payloads is nil when the parse ran with DropRaw
	Payloads [][]byte `json:"-"`
}

// TypeSummary is the per-type diagnostic line of a parsed log.
type TypeSummary struct {
	TypeHex string `json:"type_hex"`
	Count   int    `json:"count"`
	// PayloadBytes is the payload length of the type's first frame.
	// Fixed-layout types repeat one size, so this reads as the record
	// size; per-frame sizes of variable types live in the raw group.
	PayloadBytes int  `json:"payload_bytes"`
	Decoded      bool `json:"decoded"`
	Skipped      int  `json:"skipped"`
}

// Diagnostics describes everything the parse skipped or degraded.
// A parse never fails outright; this is where the damage is reported.
type Diagnostics struct {
	TotalFrames     int            `json:"total_frames"`
	TruncatedFrames int            `json:"truncated_frames"`
	UnknownTypes    []string       `json:"unknown_types,omitempty"`
	SkippedPayloads map[string]int `json:"skipped_payloads,omitempty"`
	// Degraded names record types that wanted a positional time axis but
	// could not get one because the reference series was missing
	Degraded []string `json:"degraded,omitempty"`
}

// Dataset is the decoded mission log. Decoded records are addressable by
// display name within their shape section. The diagnostic sections live
// in their own fields, so a record display name can never collide with
// them.
type Dataset struct {
	Series     map[string]*Series       `json:"series"`
	EntryLists map[string]*EntryList    `json:"entryLists"`
	Singles    map[string]*SingleStruct `json:"singles"`
	RawGroups  map[uint16]*RawGroup     `json:"rawGroups"`
	Summary    map[string]*TypeSummary  `json:"summary"`
	Diag       Diagnostics              `json:"diagnostics"`
}
