package goaivdm

import (
	"github.com/d21d3q/goaivdm/internal/bitvec"
	"github.com/d21d3q/goaivdm/internal/decoder"
	"github.com/d21d3q/goaivdm/internal/nmea"
)

// Failure kinds returned by Decode. Match the sentinels with errors.Is and
// NotImplementedError with errors.As.
var (
	ErrMalformedSentence        = nmea.ErrMalformedSentence
	ErrChecksumMismatch         = nmea.ErrChecksumMismatch
	ErrUnsupportedFragmentation = nmea.ErrUnsupportedFragmentation
	ErrInvalidArmorCharacter    = bitvec.ErrInvalidArmorCharacter
	ErrUnknownMessageType       = decoder.ErrUnknownMessageType
)

// NotImplementedError marks a real message type that has no field decoder
// yet. It is distinct from ErrUnknownMessageType: the type exists in the
// standard, this library just does not extract its fields.
type NotImplementedError = decoder.NotImplementedError
