package id3

func concat(bs ...[]byte) []byte {
	n := 0
	for _, b := range bs {
		n += len(b)
	}
	out := make([]byte, 0, n)
	for _, b := range bs {
		out = append(out, b...)
	}
	return out
}

// findTerminator returns the offset of the first string terminator in
// b, or -1. Two byte encodings need a NUL pair at an even offset.
func findTerminator(b []byte, e Encoding) int {
	if e.width() == 1 {
		for i, c := range b {
			if c == 0 {
				return i
			}
		}
		return -1
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

// splitTerminated splits b on string terminators. A trailing
// terminator does not produce an empty final item.
func splitTerminated(b []byte, e Encoding) [][]byte {
	var out [][]byte
	w := e.width()
	for len(b) > 0 {
		i := findTerminator(b, e)
		if i < 0 {
			out = append(out, b)
			break
		}
		out = append(out, b[:i])
		b = b[i+w:]
	}
	return out
}

// resize returns b truncated or zero padded to exactly n bytes.
func resize(b []byte, n int) []byte {
	if len(b) == n {
		return b
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// trimNul strips trailing zero code units.
func trimNul(b []byte, e Encoding) []byte {
	w := e.width()
	for len(b) >= w {
		tail := b[len(b)-w:]
		zero := true
		for _, c := range tail {
			if c != 0 {
				zero = false
				break
			}
		}
		if !zero {
			break
		}
		b = b[:len(b)-w]
	}
	return b
}

// parseNumber decodes up to four big endian bytes.
func parseNumber(b []byte) uint32 {
	if len(b) > 4 {
		b = b[len(b)-4:]
	}
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}

// renderNumber encodes the low size bytes of v big endian.
func renderNumber(v uint32, size int) []byte {
	out := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		if size-1-i < 4 {
			out[i] = byte(v)
			v >>= 8
		}
	}
	return out
}
