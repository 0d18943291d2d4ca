package decoder

import (
	"github.com/d21d3q/goaivdm/internal/bitvec"
	"github.com/d21d3q/goaivdm/internal/tables"
)

func init() {
	Register(positionDecoder{}, 1, 2, 3)
}

// PositionReport is the Class A position report carried by types 1, 2 and 3.
// The three types share one layout and differ only in channel access scheme.
type PositionReport struct {
	Header
	Status   tables.EnumCode `json:"status"`
	Turn     int             `json:"turn"`
	Speed    int             `json:"speed"`
	Accuracy bool            `json:"accuracy"`
	Lon      float64         `json:"lon"`
	Lat      float64         `json:"lat"`
	Course   float64         `json:"course"`
	Heading  int             `json:"heading"`
	Second   int             `json:"second"`
	Maneuver tables.EnumCode `json:"maneuver"`
	RAIM     bool            `json:"raim"`
	Radio    int             `json:"radio"`
}

// Fields renders the report as a flat field map.
func (m PositionReport) Fields() map[string]any {
	f := m.Header.fields()
	f["status"] = m.Status.Label
	f["status_code"] = m.Status.Code
	f["turn"] = m.Turn
	f["speed"] = m.Speed
	f["accuracy"] = m.Accuracy
	f["lon"] = m.Lon
	f["lat"] = m.Lat
	f["course"] = m.Course
	f["heading"] = m.Heading
	f["second"] = m.Second
	f["maneuver"] = m.Maneuver.Label
	f["maneuver_code"] = m.Maneuver.Code
	f["raim"] = m.RAIM
	f["radio"] = m.Radio
	return f
}

type positionDecoder struct{}

func (positionDecoder) Name() string { return "position_report_class_a" }

func (positionDecoder) Decode(v *bitvec.Vector) (Message, error) {
	return PositionReport{
		Header:   header(v),
		Status:   tables.NavigationStatus(uint(v.Uint(38, 42))),
		Turn:     int(v.Int(42, 50)),
		Speed:    int(v.Uint(50, 60)),
		Accuracy: v.Bool(60),
		Lon:      float64(v.Int(61, 89)) / coordScale,
		Lat:      float64(v.Int(89, 116)) / coordScale,
		Course:   float64(v.Uint(116, 128)) * courseScale,
		Heading:  int(v.Uint(128, 137)),
		Second:   int(v.Uint(137, 143)),
		Maneuver: tables.ManeuverIndicator(uint(v.Uint(143, 145))),
		RAIM:     v.Bool(148),
		Radio:    int(v.Uint(149, v.Len())),
	}, nil
}
