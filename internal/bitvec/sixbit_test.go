package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func textVector(t *testing.T, sextets ...int) *Vector {
	t.Helper()
	bits := make([]bool, 0, len(sextets)*6)
	for _, s := range sextets {
		for k := 5; k >= 0; k-- {
			bits = append(bits, s&(1<<uint(k)) != 0)
		}
	}
	return New(bits)
}

func TestTextLowValuesMapToLetters(t *testing.T) {
	// 1..26 are 'A'..'Z', 32.. are ' '..'?'.
	v := textVector(t, 19, 5, 19, 20, 32, 49, 50)
	require.Equal(t, "SEST 12", v.Text(0, v.Len(), true))
}

func TestTextStopsAtFiller(t *testing.T) {
	v := textVector(t, 19, 5, 19, 20, 0, 19)
	require.Equal(t, "SEST", v.Text(0, v.Len(), true))
}

func TestTextKeepsFillersWhenAsked(t *testing.T) {
	v := textVector(t, 19, 5, 19, 20, 0, 19)
	require.Equal(t, "SEST@S", v.Text(0, v.Len(), false))
}

func TestTextSubRange(t *testing.T) {
	v := textVector(t, 1, 2, 3, 4)
	require.Equal(t, "BC", v.Text(6, 18, true))
}
