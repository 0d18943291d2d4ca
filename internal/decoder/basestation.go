package decoder

import (
	"github.com/d21d3q/goaivdm/internal/bitvec"
	"github.com/d21d3q/goaivdm/internal/tables"
)

func init() {
	Register(baseStationDecoder{}, 4)
}

// BaseStationReport is the type 4 UTC and position report from shore stations.
type BaseStationReport struct {
	Header
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Day      int             `json:"day"`
	Hour     int             `json:"hour"`
	Minute   int             `json:"minute"`
	Second   int             `json:"second"`
	Accuracy bool            `json:"accuracy"`
	Lon      float64         `json:"lon"`
	Lat      float64         `json:"lat"`
	EPFD     tables.EnumCode `json:"epfd"`
	RAIM     bool            `json:"raim"`
	Radio    int             `json:"radio"`
}

// Fields renders the report as a flat field map.
func (m BaseStationReport) Fields() map[string]any {
	f := m.Header.fields()
	f["year"] = m.Year
	f["month"] = m.Month
	f["day"] = m.Day
	f["hour"] = m.Hour
	f["minute"] = m.Minute
	f["second"] = m.Second
	f["accuracy"] = m.Accuracy
	f["lon"] = m.Lon
	f["lat"] = m.Lat
	f["epfd"] = m.EPFD.Label
	f["epfd_code"] = m.EPFD.Code
	f["raim"] = m.RAIM
	f["radio"] = m.Radio
	return f
}

type baseStationDecoder struct{}

func (baseStationDecoder) Name() string { return "base_station_report" }

// Decode reads the ITU-R M.1371 type 4 layout. The longitude and latitude
// offsets follow the published layout (lon at 79, lat at 107); earlier field
// tables circulating for this type reused the minute range for both and are
// not reproduced here.
func (baseStationDecoder) Decode(v *bitvec.Vector) (Message, error) {
	return BaseStationReport{
		Header:   header(v),
		Year:     int(v.Uint(38, 52)),
		Month:    int(v.Uint(52, 56)),
		Day:      int(v.Uint(56, 61)),
		Hour:     int(v.Uint(61, 66)),
		Minute:   int(v.Uint(66, 72)),
		Second:   int(v.Uint(72, 78)),
		Accuracy: v.Bool(78),
		Lon:      float64(v.Int(79, 107)) / coordScale,
		Lat:      float64(v.Int(107, 134)) / coordScale,
		EPFD:     tables.EPFDType(uint(v.Uint(134, 138))),
		RAIM:     v.Bool(148),
		Radio:    int(v.Uint(148, v.Len())),
	}, nil
}
