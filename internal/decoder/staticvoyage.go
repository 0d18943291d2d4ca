package decoder

import (
	"github.com/d21d3q/goaivdm/internal/bitvec"
	"github.com/d21d3q/goaivdm/internal/tables"
)

func init() {
	Register(staticVoyageDecoder{}, 5)
}

// StaticVoyageData is the type 5 static and voyage related data report.
type StaticVoyageData struct {
	Header
	AISVersion  int             `json:"ais_version"`
	IMO         int             `json:"imo"`
	Callsign    string          `json:"callsign"`
	Shipname    string          `json:"shipname"`
	ShipType    tables.EnumCode `json:"shiptype"`
	ToBow       int             `json:"to_bow"`
	ToStern     int             `json:"to_stern"`
	ToPort      int             `json:"to_port"`
	ToStarboard int             `json:"to_starboard"`
	EPFD        tables.EnumCode `json:"epfd"`
	Month       int             `json:"month"`
	Day         int             `json:"day"`
	Hour        int             `json:"hour"`
	Minute      int             `json:"minute"`
	Draught     float64         `json:"draught"`
	Destination string          `json:"destination"`
}

// Fields renders the report as a flat field map.
func (m StaticVoyageData) Fields() map[string]any {
	f := m.Header.fields()
	f["ais_version"] = m.AISVersion
	f["imo"] = m.IMO
	f["callsign"] = m.Callsign
	f["shipname"] = m.Shipname
	f["shiptype"] = m.ShipType.Label
	f["shiptype_code"] = m.ShipType.Code
	f["to_bow"] = m.ToBow
	f["to_stern"] = m.ToStern
	f["to_port"] = m.ToPort
	f["to_starboard"] = m.ToStarboard
	f["epfd"] = m.EPFD.Label
	f["epfd_code"] = m.EPFD.Code
	f["month"] = m.Month
	f["day"] = m.Day
	f["hour"] = m.Hour
	f["minute"] = m.Minute
	f["draught"] = m.Draught
	f["destination"] = m.Destination
	return f
}

type staticVoyageDecoder struct{}

func (staticVoyageDecoder) Name() string { return "static_voyage_data" }

// Decode reads the ITU-R M.1371 type 5 layout. Ship type sits at bit 232
// after the 120-bit ship name; field tables that read it from bits 66-72
// (inside the IMO/callsign area) are transcription errors and are not
// reproduced here.
func (staticVoyageDecoder) Decode(v *bitvec.Vector) (Message, error) {
	return StaticVoyageData{
		Header:      header(v),
		AISVersion:  int(v.Uint(38, 40)),
		IMO:         int(v.Uint(40, 70)),
		Callsign:    v.Text(70, 112, true),
		Shipname:    v.Text(112, 232, true),
		ShipType:    tables.ShipType(uint(v.Uint(232, 240))),
		ToBow:       int(v.Uint(240, 249)),
		ToStern:     int(v.Uint(249, 258)),
		ToPort:      int(v.Uint(258, 264)),
		ToStarboard: int(v.Uint(264, 270)),
		EPFD:        tables.EPFDType(uint(v.Uint(270, 274))),
		Month:       int(v.Uint(274, 278)),
		Day:         int(v.Uint(278, 283)),
		Hour:        int(v.Uint(283, 288)),
		Minute:      int(v.Uint(288, 294)),
		Draught:     float64(v.Uint(294, 302)) / draughtScale,
		Destination: v.Text(302, 422, true),
	}, nil
}
