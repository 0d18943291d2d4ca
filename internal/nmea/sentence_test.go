package nmea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C"

func TestParse(t *testing.T) {
	s, err := Parse(sample)
	require.NoError(t, err)
	require.Equal(t, "!AIVDM", s.Tag)
	require.Equal(t, 1, s.FragmentCount)
	require.Equal(t, 1, s.FragmentIndex)
	require.False(t, s.HasSequenceID)
	require.Equal(t, byte('B'), s.Channel)
	require.Equal(t, "15M67FC000G?ufbE`FepT@3n00Sa", s.Payload)
	require.Equal(t, 0, s.FillBits)
	require.Equal(t, byte(0x5C), s.Checksum)
}

func TestParseSequenceID(t *testing.T) {
	s, err := Parse("!AIVDM,1,1,3,B,15M67FC000G?ufbE`FepT@3n00Sa,0*6F")
	require.NoError(t, err)
	require.True(t, s.HasSequenceID)
	require.Equal(t, 3, s.SequenceID)
}

func TestParseFieldCount(t *testing.T) {
	for _, line := range []string{
		"",
		"!AIVDM",
		"!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa",
		"!AIVDM,1,1,,B,payload,extra,0*5C",
	} {
		_, err := Parse(line)
		require.ErrorIs(t, err, ErrMalformedSentence, "line %q", line)
	}
}

func TestParseChecksumMismatch(t *testing.T) {
	tampered := sample[:len(sample)-1] + "D"
	_, err := Parse(tampered)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestParseBadTrailingField(t *testing.T) {
	for _, trailer := range []string{"0", "0*5", "0*5CX", "x*5C", "0*ZZ"} {
		line := "!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa," + trailer
		_, err := Parse(line)
		require.ErrorIs(t, err, ErrMalformedSentence, "trailer %q", trailer)
	}
}

func TestParseRejectsFragments(t *testing.T) {
	for _, line := range []string{
		"!AIVDM,2,1,3,B,15M67FC000G?ufbE`FepT@3n00Sa,0*6C",
		"!AIVDM,1,2,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5F",
	} {
		_, err := Parse(line)
		require.ErrorIs(t, err, ErrUnsupportedFragmentation, "line %q", line)
	}
}

func TestParseChecksumBeforeFragmentGate(t *testing.T) {
	// A corrupted fragment must report the corruption, not the fragmentation.
	_, err := Parse("!AIVDM,2,1,3,B,15M67FC000G?ufbE`FepT@3n00Sa,0*00")
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestChecksum(t *testing.T) {
	require.Equal(t, byte(0x5C), Checksum(sample))
	require.Equal(t, byte(0), Checksum("!"))
	// Characters after '*' do not contribute.
	require.Equal(t, Checksum("!AB*ZZ"), Checksum("!AB*00"))
}
