// Package bitvec implements the bit-level plumbing shared by all AIS message
// decoders: a packed, MSB-first bit vector with range extraction, the payload
// armoring used by AIVDM sentences, and the six-bit text encoding used inside
// message bodies.
package bitvec

import "fmt"

// Vector is an immutable, MSB-first sequence of bits. The first transmitted
// bit is index 0. Ranges are [start:end).
type Vector struct {
	bits []byte
	n    int
}

// New packs the given bits (one bool per bit, transmission order) into a Vector.
func New(bits []bool) *Vector {
	v := &Vector{bits: make([]byte, (len(bits)+7)/8), n: len(bits)}
	for i, b := range bits {
		if b {
			v.bits[i>>3] |= 1 << (7 - uint(i)&7)
		}
	}
	return v
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() int { return v.n }

// Bit returns bit i. Out-of-range indexes panic like a slice access would.
func (v *Vector) Bit(i int) bool {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0:%d)", i, v.n))
	}
	return v.bits[i>>3]&(1<<(7-uint(i)&7)) != 0
}

// Bool reads a single bit as a flag. Like Uint, a bit beyond the end of the
// vector reads as zero.
func (v *Vector) Bool(i int) bool { return v.Uint(i, i+1) != 0 }

// Uint interprets [start:end) as an unsigned big-endian integer.
// An empty range yields 0. The range is clamped to the vector length so that
// open-ended trailing fields ("bits 149 to end") read naturally.
func (v *Vector) Uint(start, end int) uint64 {
	if end > v.n {
		end = v.n
	}
	if start < 0 || start >= end {
		return 0
	}
	var result uint64
	for i := start; i < end; i++ {
		result <<= 1
		if v.Bit(i) {
			result |= 1
		}
	}
	return result
}

// Int interprets [start:end) as a two's-complement signed integer. The first
// bit of the range is the sign bit.
func (v *Vector) Int(start, end int) int64 {
	if end > v.n {
		end = v.n
	}
	if start < 0 || start >= end {
		return 0
	}
	raw := v.Uint(start, end)
	width := uint(end - start)
	if raw&(1<<(width-1)) != 0 {
		return int64(raw) - (1 << width)
	}
	return int64(raw)
}
