package bitvec

// Text decodes the six-bit packed text in [start:end). Values below 32 map to
// the '@'..'_' block, values 32..63 map to ' '..'?'. When stripFillers is
// true decoding stops at the first '@' (the trailing-filler sentinel) and the
// '@' itself is not included.
//
// This encoding is internal to message bodies (callsign, shipname,
// destination) and is unrelated to the sentence-level payload armoring.
func (v *Vector) Text(start, end int, stripFillers bool) string {
	if end > v.n {
		end = v.n
	}
	buf := make([]byte, 0, (end-start)/6)
	for pos := start; pos < end; pos += 6 {
		stop := pos + 6
		if stop > end {
			stop = end
		}
		c := v.Uint(pos, stop)
		if c < 32 {
			c += 64
		}
		if stripFillers && c == '@' {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
