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

import "fmt"

// Compass Calibration (0x0415, 48 bytes). Heading bias measurements
// taken per reference heading during a calibration run. The reference
// headings match the vehicle ini bias table, and the mean of
// heading_err1 per reference heading reproduces the ini corrections.
var compassCalLayout = seriesLayout{
	size:     48,
	clockOff: -1,
	fields: []fieldDef{
		{name: "counter", off: 2, kind: kindU16},
		{name: "ref_heading", off: 4, kind: kindF32},
		{name: "sensor1", off: 8, kind: kindF32},
		{name: "sensor2", off: 12, kind: kindF32},
		{name: "meas_heading", off: 16, kind: kindF32},
		{name: "corr_heading", off: 20, kind: kindF32},
		{name: "heading_err1", off: 24, kind: kindF32},
		{name: "heading_err2", off: 28, kind: kindF32},
		{name: "motor_metric1", off: 32, kind: kindF32},
		{name: "motor_metric2", off: 36, kind: kindF32},
		{name: "depth", off: 40, kind: kindF32},
		{name: "valid_flag", off: 44, kind: kindF32},
	},
}

func decodeCompassCal(payloads [][]byte) (Record, []int) {
	s, skipped := compassCalLayout.decode(payloads)
	return s, skipped
}

// Housing Temperature (0x040e, 48 bytes). Electronics housing
// temperature plus a sliding window of compass error history. New
// values enter at offset 12 and shift right one slot per record, the
// oldest falling off at offset 44.
var housingTempLayout = buildHousingTempLayout()

func buildHousingTempLayout() seriesLayout {
	fields := []fieldDef{
		{name: "heading_correction", off: 0, kind: kindF32},
		{name: "bias_drift", off: 4, kind: kindF32},
		{name: "housing_temp", off: 8, kind: kindF32},
	}
	for j := 0; j < 9; j++ {
		fields = append(fields, fieldDef{
			name: fmt.Sprintf("compass_err_fifo%d", j),
			off:  12 + j*4,
			kind: kindF32,
		})
	}
	return seriesLayout{size: 48, clockOff: -1, fields: fields}
}

func decodeHousingTemp(payloads [][]byte) (Record, []int) {
	s, skipped := housingTempLayout.decode(payloads)
	return s, skipped
}
