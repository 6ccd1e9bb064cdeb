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

// Record type codes of the REMUS-100 run log format. All inferred from
// data; there is no vendor specification.
const (
	TypeNav           = 0x044e // Navigation
	TypeCTDYSI        = 0x041d // YSI CTD
	TypeCTDSBE        = 0x040a // Seabird CTD (SBE49)
	TypeADCP          = 0x03e8 // ADCP / DVL (1200 kHz)
	TypeSidescan      = 0x03f7 // MSTL Sidescan (900 kHz)
	TypeECO           = 0x043e // Wetlabs ECO BB2F
	TypeGPS           = 0x03f9 // GPS / Acoustic Nav
	TypeVehicleName   = 0x03f4 // Vehicle name string
	TypeVehicleInfo   = 0x040d // Vehicle startup info log
	TypeManufacturer  = 0x0416 // Manufacturer info string
	TypeModemLog      = 0x0424 // Acoustic modem communication log
	TypeDiagnostic    = 0x03e9 // Firmware diagnostic / warning log
	TypeMissionModes  = 0x03ee // Mission mode lookup table
	TypeMissionLegs   = 0x03f0 // Mission leg / objective waypoints
	TypeSensorNames   = 0x03fc // Sensor name strings
	TypeSensorTypes   = 0x0407 // Sensor type ID to name mapping
	TypeSensorDisplay = 0x040c // Sensor display format configuration
	TypeNavAcoustic   = 0x041a // Navigation / acoustic positioning
	TypeDataChannels  = 0x041c // Internal data channel definitions
	TypeWaypoints     = 0x0427 // Mission waypoints with lat/lon
	TypeECOCal        = 0x043d // ECO BB2F channel calibration
	TypeAcousticFix   = 0x041f // Acoustic transponder navigation fix
	TypeBatteryStatus = 0x0412 // Smart battery status
	TypeBatteryCells  = 0x0413 // Smart battery cell-level data
	TypeObjNav        = 0x03f1 // Objective navigation (leg progress)
	TypeCompassCal    = 0x0415 // Compass calibration
	TypeHousingTemp   = 0x040e // Housing temperature
	TypeEnergyMon     = 0x0402 // Energy monitor
	TypeDVLStatus     = 0x040b // DVL subsystem diagnostics
	TypeSubsysMode    = 0x0408 // Subsystem mode flags
	TypeStartupFlag   = 0x0446 // Startup marker
	TypeEventMarker   = 0x03ef // Empty-payload phase marker
)

// decodeFunc turns the ordered payload list of one record type into its
// decoded form. The second return value lists the indices of payloads
// skipped as malformed.
type decodeFunc func(payloads [][]byte) (Record, []int)

type recordType struct {
	code   uint16
	name   string
	decode decodeFunc
	// positional types have no embedded clock and receive a time axis by
	// byte-offset interpolation against the reference series
	positional bool
}

// registry is the immutable code -> (name, decoder) table. It is built
// once here and only ever read afterwards, so concurrent parses share
// it without coordination. Codes absent from it pass through undecoded
// under a synthesized name.
var registry = buildRegistry()

func buildRegistry() map[uint16]recordType {
	types := []recordType{
		{code: TypeNav, name: "Navigation", decode: decodeNav},
		{code: TypeCTDYSI, name: "YSI CTD", decode: decodeCTDYSI},
		{code: TypeCTDSBE, name: "Seabird CTD (SBE49)", decode: decodeCTDSBE},
		{code: TypeADCP, name: "ADCP/DVL (1200 kHz)", decode: decodeADCP},
		{code: TypeSidescan, name: "Sidescan (900 kHz)", decode: decodeSidescan},
		{code: TypeECO, name: "Wetlabs ECO BB2F", decode: decodeECO},
		{code: TypeGPS, name: "GPS/Acoustic Nav", decode: decodeGPS},
		{code: TypeVehicleName, name: "Vehicle Name", decode: decodeVehicleName},
		{code: TypeVehicleInfo, name: "Vehicle Info", decode: decodeVehicleInfo},
		{code: TypeManufacturer, name: "Manufacturer Info", decode: decodeManufacturer},
		{code: TypeModemLog, name: "Acoustic Modem Log", decode: decodeModemLog, positional: true},
		{code: TypeDiagnostic, name: "Diagnostic Log", decode: decodeDiagnostic},
		{code: TypeMissionModes, name: "Mission Modes", decode: decodeMissionModes},
		{code: TypeMissionLegs, name: "Mission Legs", decode: decodeMissionLegs},
		{code: TypeSensorNames, name: "Sensor Names", decode: decodeSensorNames},
		{code: TypeSensorTypes, name: "Sensor Types", decode: decodeSensorTypes},
		{code: TypeSensorDisplay, name: "Sensor Display Config", decode: decodeSensorDisplay},
		{code: TypeNavAcoustic, name: "Nav/Acoustic", decode: decodeNavAcoustic},
		{code: TypeDataChannels, name: "Data Channels", decode: decodeDataChannels},
		{code: TypeWaypoints, name: "Waypoints", decode: decodeWaypoints},
		{code: TypeECOCal, name: "ECO Calibration", decode: decodeECOCal},
		{code: TypeAcousticFix, name: "Acoustic Nav Fix", decode: decodeAcousticFix},
		{code: TypeBatteryStatus, name: "Battery Status", decode: decodeBatteryStatus},
		{code: TypeBatteryCells, name: "Battery Cell Data", decode: decodeBatteryCells},
		{code: TypeObjNav, name: "Objective Navigation", decode: decodeObjNav},
		{code: TypeCompassCal, name: "Compass Calibration", decode: decodeCompassCal},
		{code: TypeHousingTemp, name: "Housing Temperature", decode: decodeHousingTemp},
		{code: TypeEnergyMon, name: "Energy Monitor", decode: decodeEnergyMon},
		{code: TypeDVLStatus, name: "DVL Status", decode: decodeDVLStatus},
		{code: TypeSubsysMode, name: "Subsystem Mode", decode: decodeSubsysMode},
		{code: TypeStartupFlag, name: "Startup Flag", decode: decodeStartupFlag},
		{code: TypeEventMarker, name: "Event Marker", decode: decodeEventMarker},
	}
	m := make(map[uint16]recordType, len(types))
	for _, t := range types {
		m[t.code] = t
	}
	return m
}

// DisplayName resolves a record type code to its display name. Unknown
// codes get a synthesized name embedding the hex code, so every type in
// a log is addressable even before it has been reverse engineered.
func DisplayName(code uint16) string {
	if rt, ok := registry[code]; ok {
		return rt.name
	}
	return fmt.Sprintf("Unknown_0x%04x", code)
}
