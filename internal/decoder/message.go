package decoder

import "github.com/d21d3q/goaivdm/internal/bitvec"

// Scale factors shared by the coordinate and voyage fields.
const (
	coordScale   = 600000.0 // signed 1/10000 minutes to degrees
	courseScale  = 0.1      // tenths of a degree
	draughtScale = 10.0     // tenths of a meter
)

// Message is one decoded AIS message. Concrete types carry the per-type
// fields; Fields renders the flat map used for JSON output and golden tests.
type Message interface {
	MessageType() int
	Fields() map[string]any
}

// Header carries the three fields every message type starts with.
type Header struct {
	Type   int    `json:"type"`
	Repeat int    `json:"repeat"`
	MMSI   uint32 `json:"mmsi"`
}

// MessageType returns the wire type code.
func (h Header) MessageType() int { return h.Type }

func header(v *bitvec.Vector) Header {
	return Header{
		Type:   int(v.Uint(0, 6)),
		Repeat: int(v.Uint(6, 8)),
		MMSI:   uint32(v.Uint(8, 38)),
	}
}

func (h Header) fields() map[string]any {
	return map[string]any{
		"type":   h.Type,
		"repeat": h.Repeat,
		"mmsi":   h.MMSI,
	}
}
