package bitvec

import (
	"errors"
	"fmt"
)

// ErrInvalidArmorCharacter reports a payload character outside the six-bit
// armor alphabet (ASCII 48-87 and 96-119).
var ErrInvalidArmorCharacter = errors.New("invalid armor character in payload")

// DeArmor expands each payload-armored character into its six-bit group and
// returns the concatenated bit vector. Characters '0'..'W' carry values 0..39
// and '`'..'w' carry 40..63; everything else is rejected.
func DeArmor(payload string) (*Vector, error) {
	v := &Vector{bits: make([]byte, (len(payload)*6+7)/8), n: len(payload) * 6}
	for i := 0; i < len(payload); i++ {
		ch := payload[i]
		if (ch < '0' || ch > 'W') && (ch < '`' || ch > 'w') {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidArmorCharacter, ch, i)
		}
		sextet := ch - 48
		if sextet > 40 {
			sextet -= 8
		}
		pos := i * 6
		for k := 0; k < 6; k++ {
			if sextet&(1<<(5-uint(k))) != 0 {
				j := pos + k
				v.bits[j>>3] |= 1 << (7 - uint(j)&7)
			}
		}
	}
	return v, nil
}

// ArmorChar maps a six-bit value back to its armored character. Used by tests
// to exercise the alphabet round trip.
func ArmorChar(sextet int) (byte, error) {
	switch {
	case sextet >= 0 && sextet <= 39:
		return byte('0' + sextet), nil
	case sextet >= 40 && sextet <= 63:
		return byte('`' + sextet - 40), nil
	default:
		return 0, fmt.Errorf("six-bit value %d out of range", sextet)
	}
}
