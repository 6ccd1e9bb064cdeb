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
)

// ErrNoReference returned when a positional time axis is requested but
// the reference series is not present in the buffer
type ErrNoReference struct {
	Code uint16
}

func (e ErrNoReference) Error() string {
	return fmt.Sprintf("Reference series 0x%04x not present, positional timestamps unavailable", e.Code)
}

// ErrEmptyClock returned when a position clock is built from an empty
// reference series
type ErrEmptyClock struct{}

func (e ErrEmptyClock) Error() string {
	return "Position clock needs at least one reference sample"
}
