package decoder

import "github.com/d21d3q/goaivdm/internal/bitvec"

func init() {
	Register(classBDecoder{}, 18)
}

// ClassBPositionReport is the type 18 standard Class B equipment position
// report.
type ClassBPositionReport struct {
	Header
	Speed    int     `json:"speed"`
	Accuracy bool    `json:"accuracy"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	Course   float64 `json:"course"`
	Heading  int     `json:"heading"`
	Second   int     `json:"second"`
	Regional int     `json:"regional"`
	CS       bool    `json:"cs"`
	Display  bool    `json:"display"`
	DSC      bool    `json:"dsc"`
	Band     bool    `json:"band"`
	Msg22    bool    `json:"msg22"`
	Assigned bool    `json:"assigned"`
	RAIM     bool    `json:"raim"`
	Radio    int     `json:"radio"`
}

// Fields renders the report as a flat field map.
func (m ClassBPositionReport) Fields() map[string]any {
	f := m.Header.fields()
	f["speed"] = m.Speed
	f["accuracy"] = m.Accuracy
	f["lon"] = m.Lon
	f["lat"] = m.Lat
	f["course"] = m.Course
	f["heading"] = m.Heading
	f["second"] = m.Second
	f["regional"] = m.Regional
	f["cs"] = m.CS
	f["display"] = m.Display
	f["dsc"] = m.DSC
	f["band"] = m.Band
	f["msg22"] = m.Msg22
	f["assigned"] = m.Assigned
	f["raim"] = m.RAIM
	f["radio"] = m.Radio
	return f
}

type classBDecoder struct{}

func (classBDecoder) Name() string { return "class_b_position_report" }

func (classBDecoder) Decode(v *bitvec.Vector) (Message, error) {
	return ClassBPositionReport{
		Header:   header(v),
		Speed:    int(v.Uint(46, 55)),
		Accuracy: v.Bool(55),
		Lon:      float64(v.Int(56, 85)) / coordScale,
		Lat:      float64(v.Int(85, 112)) / coordScale,
		Course:   float64(v.Uint(112, 124)) * courseScale,
		Heading:  int(v.Uint(124, 133)),
		Second:   int(v.Uint(133, 139)),
		Regional: int(v.Uint(139, 141)),
		CS:       v.Bool(141),
		Display:  v.Bool(142),
		DSC:      v.Bool(143),
		Band:     v.Bool(144),
		Msg22:    v.Bool(145),
		Assigned: v.Bool(146),
		RAIM:     v.Bool(147),
		Radio:    int(v.Uint(148, v.Len())),
	}, nil
}
