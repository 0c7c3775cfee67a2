package id3

// MaxUint28 is the largest value a syncsafe integer can hold.
const MaxUint28 = 1<<28 - 1

// Uint28 is a 28 bit unsigned integer stored on the wire as four bytes
// with the most significant bit of each byte cleared, so that the
// encoded size can never contain an MPEG sync pattern.
type Uint28 uint32

// NewUint28 returns v as a Uint28. Values larger than MaxUint28 are
// clamped to MaxUint28.
func NewUint28(v uint32) Uint28 {
	if v > MaxUint28 {
		return MaxUint28
	}
	return Uint28(v)
}

// ParseUint28 decodes the first four bytes of b. Only the low seven
// bits of each byte contribute. Short input decodes as if padded with
// leading zero bytes.
func ParseUint28(b []byte) Uint28 {
	if len(b) > 4 {
		b = b[:4]
	}
	var v uint32
	for _, c := range b {
		v = v<<7 | uint32(c&0x7f)
	}
	return Uint28(v)
}

// Render encodes u in its four byte syncsafe form.
func (u Uint28) Render() [4]byte {
	v := uint32(u)
	if v > MaxUint28 {
		v = MaxUint28
	}
	return [4]byte{
		byte(v>>21) & 0x7f,
		byte(v>>14) & 0x7f,
		byte(v>>7) & 0x7f,
		byte(v) & 0x7f,
	}
}

// AppendTo appends the syncsafe form of u to dst.
func (u Uint28) AppendTo(dst []byte) []byte {
	b := u.Render()
	return append(dst, b[:]...)
}
