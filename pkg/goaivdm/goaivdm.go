// Package goaivdm decodes AIS reports carried in single NMEA AIVDM sentences
// into structured navigational and vessel data.
//
// Decoding is pure and self-contained: one call consumes one line and returns
// one outcome, so sentences may be decoded concurrently from independent
// goroutines. Multi-sentence (fragmented) messages are rejected per sentence;
// reassembly, if needed, belongs to a layer above this package.
package goaivdm

import (
	"encoding/json"
	"fmt"

	"github.com/d21d3q/goaivdm/internal/bitvec"
	"github.com/d21d3q/goaivdm/internal/decoder"
	"github.com/d21d3q/goaivdm/internal/nmea"
)

// Result captures the outcome of Decode.
type Result struct {
	TypeCode int
	Decoder  string
	Sentence *nmea.Sentence
	Message  decoder.Message
	Fields   map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"type":    r.TypeCode,
		"decoder": r.Decoder,
	}
	if r.Sentence != nil {
		summary["channel"] = string(r.Sentence.Channel)
		summary["payload"] = r.Sentence.Payload
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("type:%d decoder:%s (marshal error: %v)", r.TypeCode, r.Decoder, err)
	}
	return string(data)
}

// Decode parses, validates, and decodes one raw AIVDM line.
//
// Every failure is reported as a typed error: sentence-level problems as
// ErrMalformedSentence, ErrChecksumMismatch, or ErrUnsupportedFragmentation;
// payload problems as ErrInvalidArmorCharacter; and dispatch problems as
// ErrUnknownMessageType or NotImplementedError. A failed decode never returns
// a partial message. For NotImplementedError the result still carries the
// parsed sentence and type code.
func Decode(line string) (Result, error) {
	s, err := nmea.Parse(line)
	if err != nil {
		return Result{}, err
	}
	v, err := bitvec.DeArmor(s.Payload)
	if err != nil {
		return Result{Sentence: &s}, err
	}
	result := Result{
		TypeCode: int(v.Uint(0, 6)),
		Sentence: &s,
	}
	d, err := decoder.Lookup(result.TypeCode)
	if err != nil {
		return result, err
	}
	msg, err := d.Decode(v)
	if err != nil {
		return result, err
	}
	result.Decoder = d.Name()
	result.Message = msg
	result.Fields = msg.Fields()
	return result, nil
}
