package id3

// Unsync applies unsynchronisation: a zero byte is inserted after every
// 0xFF that is followed by a byte with its top three bits set, by a
// zero byte, or by the end of the data. The result never contains a
// false MPEG sync pattern.
func Unsync(b []byte) []byte {
	out := make([]byte, 0, len(b)+len(b)/16)
	for i, c := range b {
		out = append(out, c)
		if c != 0xff {
			continue
		}
		if i+1 == len(b) || b[i+1]&0xe0 == 0xe0 || b[i+1] == 0 {
			out = append(out, 0)
		}
	}
	return out
}

// Resync reverses Unsync by dropping the zero byte after every 0xFF.
func Resync(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xff && i+1 < len(b) && b[i+1] == 0 {
			i++
		}
	}
	return out
}

// needsUnsync reports whether Unsync would change b.
func needsUnsync(b []byte) bool {
	for i, c := range b {
		if c == 0xff && (i+1 == len(b) || b[i+1]&0xe0 == 0xe0 || b[i+1] == 0) {
			return true
		}
	}
	return false
}
