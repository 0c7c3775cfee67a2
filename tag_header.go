package id3

import "fmt"

const tagHeaderSize = 10

// Magic is the identifier every ID3v2 tag starts with.
var Magic = [3]byte{0x49, 0x44, 0x33}

// Version is an ID3v2 version: the major version in the high byte and
// the revision in the low byte, so that v2.3.0 is 0x0300.
type Version int16

const (
	V22 Version = 0x0200
	V23 Version = 0x0300
	V24 Version = 0x0400

	// DefaultVersion is the version new tags are rendered in.
	DefaultVersion = V23
)

func (v Version) Major() byte { return byte(v >> 8) }
func (v Version) Revision() byte { return byte(v) }

// Supported reports whether the codec can read and write v.
func (v Version) Supported() bool {
	m := v.Major()
	return m >= 2 && m <= 4
}

func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d.%d", v.Major(), v.Revision())
}

type HeaderFlags byte

const (
	HeaderUnsync         HeaderFlags = 0x80
	HeaderExtended       HeaderFlags = 0x40
	HeaderExperimental   HeaderFlags = 0x20
	HeaderFooter         HeaderFlags = 0x10
	headerUndefinedFlags HeaderFlags = 0x0f
)

func (f HeaderFlags) Unsynchronisation() bool { return f&HeaderUnsync != 0 }
func (f HeaderFlags) ExtendedHeader() bool { return f&HeaderExtended != 0 }
func (f HeaderFlags) Experimental() bool { return f&HeaderExperimental != 0 }
func (f HeaderFlags) Footer() bool { return f&HeaderFooter != 0 }
func (f HeaderFlags) UndefinedSet() bool { return f&headerUndefinedFlags != 0 }

func (f *HeaderFlags) set(flag HeaderFlags, on bool) {
	if on {
		*f |= flag
	} else {
		*f &^= flag
	}
}

// TagHeader is the ten byte header at the start of a tag.
type TagHeader struct {
	Version Version
	Flags   HeaderFlags
	// Size is the number of bytes following the header, including any
	// extended header and padding.
	Size Uint28
}

// IsTag reports the total size of the tag at the start of b, header
// included, or 0 if b does not start with a tag header.
func IsTag(b []byte) int {
	var h TagHeader
	if h.Parse(b) == 0 {
		return 0
	}
	return tagHeaderSize + int(h.Size)
}

// Parse reads a tag header from the start of b and returns its size,
// or 0 if b does not start with a valid header. A header is valid when
// it starts with the magic, neither version byte is 0xFF and every size
// byte has its high bit clear. Parse leaves h untouched on failure.
func (h *TagHeader) Parse(b []byte) int {
	if len(b) < tagHeaderSize {
		return 0
	}
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] {
		return 0
	}
	if b[3] == 0xff || b[4] == 0xff {
		return 0
	}
	for _, c := range b[6:10] {
		if c >= 0x80 {
			return 0
		}
	}
	h.Version = Version(int16(b[3])<<8 | int16(b[4]))
	h.Flags = HeaderFlags(b[5])
	h.Size = ParseUint28(b[6:10])
	return tagHeaderSize
}

// Render returns the wire form of the header. The footer flag is never
// written since no footer is rendered.
func (h TagHeader) Render() []byte {
	out := make([]byte, 0, tagHeaderSize)
	out = append(out, Magic[:]...)
	out = append(out, h.Version.Major(), h.Version.Revision())
	out = append(out, byte(h.Flags&^(HeaderFooter|headerUndefinedFlags)))
	return h.Size.AppendTo(out)
}
