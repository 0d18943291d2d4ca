// Package decoder dispatches armor-expanded AIS payloads to per-type bit
// layout decoders. Decoders register themselves at package load; valid type
// codes without a registered decoder yield NotImplementedError so callers can
// tell "type not yet supported" from "not a real type".
package decoder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/d21d3q/goaivdm/internal/bitvec"
)

// MaxType is the highest assigned AIS message type code.
const MaxType = 24

// ErrUnknownMessageType reports a type code of 0 or above MaxType.
var ErrUnknownMessageType = errors.New("unknown message type")

// NotImplementedError marks a real message type that has no field decoder.
type NotImplementedError struct {
	TypeCode int
}

func (e NotImplementedError) Error() string {
	return fmt.Sprintf("message type %d is not implemented", e.TypeCode)
}

// Decoder turns one message type's bit layout into a typed message.
type Decoder interface {
	Name() string
	Decode(v *bitvec.Vector) (Message, error)
}

var (
	regMu    sync.RWMutex
	registry [MaxType + 1]Decoder
)

// Register stores a decoder for each of the given type codes.
func Register(d Decoder, typeCodes ...int) {
	regMu.Lock()
	defer regMu.Unlock()
	for _, tc := range typeCodes {
		if tc < 1 || tc > MaxType {
			panic(fmt.Sprintf("decoder: type code %d out of range", tc))
		}
		registry[tc] = d
	}
}

// Lookup returns the decoder registered for a type code.
func Lookup(typeCode int) (Decoder, error) {
	if typeCode < 1 || typeCode > MaxType {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessageType, typeCode)
	}
	regMu.RLock()
	defer regMu.RUnlock()
	if d := registry[typeCode]; d != nil {
		return d, nil
	}
	return nil, NotImplementedError{TypeCode: typeCode}
}

// Dispatch reads the type code from the first six bits and runs the matching
// decoder.
func Dispatch(v *bitvec.Vector) (Message, error) {
	typeCode := int(v.Uint(0, 6))
	d, err := Lookup(typeCode)
	if err != nil {
		return nil, err
	}
	return d.Decode(v)
}
