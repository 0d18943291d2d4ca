// Package nmea parses single AIVDM sentences: field extraction, checksum
// verification, and the fragmentation gate. It deliberately knows nothing
// about payload contents beyond the armored text.
package nmea

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Failure kinds surfaced by Parse. Callers match them with errors.Is.
var (
	ErrMalformedSentence        = errors.New("malformed sentence")
	ErrChecksumMismatch         = errors.New("checksum mismatch")
	ErrUnsupportedFragmentation = errors.New("multi-fragment messages are not supported")
)

// fieldCount is the arity of an AIVDM sentence once split on commas:
// tag, fragment count, fragment index, sequence id, channel, payload,
// fill bits + checksum.
const fieldCount = 7

// Sentence is one parsed AIVDM line. Immutable once returned by Parse.
type Sentence struct {
	Tag           string
	FragmentCount int
	FragmentIndex int
	SequenceID    int
	HasSequenceID bool
	Channel       byte
	Payload       string
	FillBits      int
	Checksum      byte
}

// Parse splits and validates a raw AIVDM line. The checksum is verified
// before the fragmentation gate so a corrupted sentence is never interpreted,
// and fragments of multi-sentence messages are rejected rather than buffered.
func Parse(line string) (Sentence, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return Sentence{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedSentence, len(fields), fieldCount)
	}

	s := Sentence{Tag: fields[0], Payload: fields[5]}

	var err error
	if s.FragmentCount, err = strconv.Atoi(fields[1]); err != nil {
		return Sentence{}, fmt.Errorf("%w: fragment count %q", ErrMalformedSentence, fields[1])
	}
	if s.FragmentIndex, err = strconv.Atoi(fields[2]); err != nil {
		return Sentence{}, fmt.Errorf("%w: fragment index %q", ErrMalformedSentence, fields[2])
	}
	if fields[3] != "" {
		if s.SequenceID, err = strconv.Atoi(fields[3]); err != nil {
			return Sentence{}, fmt.Errorf("%w: sequence id %q", ErrMalformedSentence, fields[3])
		}
		s.HasSequenceID = true
	}
	if len(fields[4]) > 0 {
		s.Channel = fields[4][0]
	}

	fill, declared, ok := strings.Cut(fields[6], "*")
	if !ok || len(declared) != 2 {
		return Sentence{}, fmt.Errorf("%w: trailing field %q lacks *XX checksum", ErrMalformedSentence, fields[6])
	}
	if s.FillBits, err = strconv.Atoi(fill); err != nil {
		return Sentence{}, fmt.Errorf("%w: fill bits %q", ErrMalformedSentence, fill)
	}
	want, err := strconv.ParseUint(declared, 16, 8)
	if err != nil {
		return Sentence{}, fmt.Errorf("%w: checksum %q is not hex", ErrMalformedSentence, declared)
	}
	s.Checksum = byte(want)

	if got := Checksum(line); got != s.Checksum {
		return Sentence{}, fmt.Errorf("%w: computed %02X, declared %02X", ErrChecksumMismatch, got, s.Checksum)
	}

	if s.FragmentCount != 1 || s.FragmentIndex != 1 {
		return Sentence{}, fmt.Errorf("%w: fragment %d of %d", ErrUnsupportedFragmentation, s.FragmentIndex, s.FragmentCount)
	}
	return s, nil
}

// Checksum computes the NMEA checksum of a sentence: the running XOR of all
// character codes after the leading '!' and before the '*' delimiter.
func Checksum(line string) byte {
	var sum byte
	for i := 1; i < len(line); i++ {
		if line[i] == '*' {
			break
		}
		sum ^= line[i]
	}
	return sum
}
