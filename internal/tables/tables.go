// Package tables holds the static AIS code tables. The maps are populated at
// package load and never mutated, so concurrent readers need no locking.
package tables

import "fmt"

const (
	undefined = "Undefined"
	reserved  = "Reserved"
)

// EnumCode pairs a raw field value with its resolved label. Unknown codes keep
// the raw value and get the owning table's fallback label.
type EnumCode struct {
	Code  uint   `json:"code"`
	Label string `json:"label"`
}

func (e EnumCode) String() string {
	return fmt.Sprintf("%d (%s)", e.Code, e.Label)
}

// NavigationStatus resolves the 4-bit navigation status of position reports.
func NavigationStatus(code uint) EnumCode {
	return lookup(navigationStatus, code, undefined)
}

// ManeuverIndicator resolves the 2-bit maneuver indicator of position reports.
func ManeuverIndicator(code uint) EnumCode {
	return lookup(maneuverIndicator, code, undefined)
}

// EPFDType resolves the 4-bit electronic position fixing device type.
func EPFDType(code uint) EnumCode {
	return lookup(epfdType, code, undefined)
}

// ShipType resolves the 8-bit ship and cargo type of static voyage data.
func ShipType(code uint) EnumCode {
	return lookup(shipType, code, undefined)
}

// DACFID resolves a designated area code / functional ID pair as used by the
// binary message types (6 and 8). Those types currently decode to a
// not-implemented outcome, but callers inspecting raw binary payloads can
// still label the application ID.
func DACFID(dac, fid uint) string {
	if label, ok := dacFID[[2]uint{dac, fid}]; ok {
		return label
	}
	return reserved
}

func lookup(table map[uint]string, code uint, fallback string) EnumCode {
	if label, ok := table[code]; ok {
		return EnumCode{Code: code, Label: label}
	}
	return EnumCode{Code: code, Label: fallback}
}

var navigationStatus = map[uint]string{
	0:  "Under way using engine",
	1:  "At anchor",
	2:  "Not under command",
	3:  "Restricted manoeuverability",
	4:  "Constrained by her draught",
	5:  "Moored",
	6:  "Aground",
	7:  "Engaged in Fishing",
	8:  "Under way sailing",
	9:  "Reserved",
	10: "Reserved",
	11: "Reserved",
	12: "Reserved",
	13: "Reserved",
	14: "AIS-SART is active",
	15: "Undefined",
}

var maneuverIndicator = map[uint]string{
	0: "Not available",
	1: "No special maneuver",
	2: "Special maneuver",
}

var epfdType = map[uint]string{
	0: "Undefined",
	1: "GPS",
	2: "GLONASS",
	3: "GPS/GLONASS",
	4: "Loran-C",
	5: "Chayka",
	6: "Integrated navigation system",
	7: "Surveyed",
	8: "Galileo",
}

var shipType = map[uint]string{
	0:  "Not available",
	20: "Wing in ground (WIG)",
	21: "Wing in ground (WIG), Hazardous category A",
	22: "Wing in ground (WIG), Hazardous category B",
	23: "Wing in ground (WIG), Hazardous category C",
	24: "Wing in ground (WIG), Hazardous category D",
	25: "WIG Reserved",
	26: "WIG Reserved",
	27: "WIG Reserved",
	28: "WIG Reserved",
	29: "WIG Reserved",
	30: "Fishing",
	31: "Towing",
	32: "Towing,length exceeds 200m or breadth exceeds 25m",
	33: "Dredging or underwater ops",
	34: "Diving ops",
	35: "Military ops",
	36: "Sailing",
	37: "Pleasure Craft",
	38: "Reserved",
	39: "Reserved",
	40: "High speed craft (HSC)",
	41: "High speed craft (HSC), Hazardous category A",
	42: "High speed craft (HSC), Hazardous category B",
	43: "High speed craft (HSC), Hazardous category C",
	44: "High speed craft (HSC), Hazardous category D",
	45: "High speed craft (HSC), Reserved",
	46: "High speed craft (HSC), Reserved",
	47: "High speed craft (HSC), Reserved",
	48: "High speed craft (HSC), Reserved",
	49: "High speed craft (HSC), No additional information",
	50: "Pilot Vessel",
	51: "Search and Rescue vessel",
	52: "Tug",
	53: "Port Tender",
	54: "Anti-pollution equipment",
	55: "Law Enforcement",
	56: "Spare - Local Vessel",
	57: "Spare - Local Vessel",
	58: "Medical Transport",
	59: "Noncombatant ship according to RR Resolution No. 18",
	60: "Passenger",
	61: "Passenger, Hazardous category A",
	62: "Passenger, Hazardous category B",
	63: "Passenger, Hazardous category C",
	64: "Passenger, Hazardous category D",
	65: "Passenger, Reserved",
	66: "Passenger, Reserved",
	67: "Passenger, Reserved",
	68: "Passenger, Reserved",
	69: "Passenger, No additional information",
	70: "Cargo",
	71: "Cargo, Hazardous category A",
	72: "Cargo, Hazardous category B",
	73: "Cargo, Hazardous category C",
	74: "Cargo, Hazardous category D",
	75: "Cargo, Reserved",
	76: "Cargo, Reserved",
	77: "Cargo, Reserved",
	78: "Cargo, Reserved",
	79: "Cargo, No additional information",
	80: "Tanker",
	81: "Tanker, Hazardous category A",
	82: "Tanker, Hazardous category B",
	83: "Tanker, Hazardous category C",
	84: "Tanker, Hazardous category D",
	85: "Tanker, Reserved",
	86: "Tanker, Reserved",
	87: "Tanker, Reserved",
	88: "Tanker, Reserved",
	89: "Tanker, No additional information",
	90: "Other Type",
	91: "Other Type, Hazardous category A",
	92: "Other Type, Hazardous category B",
	93: "Other Type, Hazardous category C",
	94: "Other Type, Hazardous category D",
	95: "Other Type, Reserved",
	96: "Other Type, Reserved",
	97: "Other Type, Reserved",
	98: "Other Type, Reserved",
	99: "Other Type, No additional information",
}

var dacFID = map[[2]uint]string{
	{1, 12}:   "Dangerous cargo indication",
	{1, 14}:   "Tidal window",
	{1, 16}:   "Number of persons on board",
	{1, 18}:   "Clearance time to enter port",
	{1, 20}:   "Berthing data (addressed)",
	{1, 23}:   "Area notice (addressed)",
	{1, 25}:   "Dangerous Cargo indication",
	{1, 28}:   "Route info addressed",
	{1, 30}:   "Text description addressed",
	{1, 32}:   "Tidal Window",
	{200, 21}: "ETA at lock/bridge/terminal",
	{200, 22}: "RTA at lock/bridge/terminal",
	{200, 55}: "Number of persons on board",
	{235, 10}: "AtoN monitoring data (UK)",
	{250, 10}: "AtoN monitoring data (ROI)",
}
