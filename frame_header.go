package id3

import (
	"encoding/binary"
	"fmt"
)

// FrameFlags are the frame header flags, independent of their bit
// position on the wire (which differs between v2.3 and v2.4).
type FrameFlags uint16

const (
	// FrameTagAlter asks for the frame to be discarded when the tag is
	// altered and the frame is unknown to the editor.
	FrameTagAlter FrameFlags = 1 << iota
	// FrameFileAlter asks for the frame to be discarded when the audio
	// is altered.
	FrameFileAlter
	FrameReadOnly
	FrameCompression
	FrameEncryption
	FrameGrouping
	// FrameUnsync and FrameDataLength only exist in v2.4.
	FrameUnsync
	FrameDataLength
)

type flagBit struct {
	flag FrameFlags
	wire uint16
}

var (
	frameFlagsV23 = []flagBit{
		{FrameTagAlter, 0x8000},
		{FrameFileAlter, 0x4000},
		{FrameReadOnly, 0x2000},
		{FrameCompression, 0x0080},
		{FrameEncryption, 0x0040},
		{FrameGrouping, 0x0020},
	}
	frameFlagsV24 = []flagBit{
		{FrameTagAlter, 0x4000},
		{FrameFileAlter, 0x2000},
		{FrameReadOnly, 0x1000},
		{FrameGrouping, 0x0040},
		{FrameCompression, 0x0008},
		{FrameEncryption, 0x0004},
		{FrameUnsync, 0x0002},
		{FrameDataLength, 0x0001},
	}
)

func frameFlagBits(v Version) []flagBit {
	switch v.Major() {
	case 2:
		return nil
	case 3:
		return frameFlagsV23
	default:
		return frameFlagsV24
	}
}

func parseFrameFlags(wire uint16, v Version) FrameFlags {
	var f FrameFlags
	for _, b := range frameFlagBits(v) {
		if wire&b.wire != 0 {
			f |= b.flag
		}
	}
	return f
}

func (f FrameFlags) wire(v Version) uint16 {
	var w uint16
	for _, b := range frameFlagBits(v) {
		if f&b.flag != 0 {
			w |= b.wire
		}
	}
	return w
}

func (f FrameFlags) PreserveTagAlteration() bool { return f&FrameTagAlter == 0 }
func (f FrameFlags) PreserveFileAlteration() bool { return f&FrameFileAlter == 0 }
func (f FrameFlags) ReadOnly() bool { return f&FrameReadOnly != 0 }
func (f FrameFlags) Compressed() bool { return f&FrameCompression != 0 }
func (f FrameFlags) Encrypted() bool { return f&FrameEncryption != 0 }
func (f FrameFlags) Grouped() bool { return f&FrameGrouping != 0 }

// FrameHeader is the envelope in front of every frame's data.
type FrameHeader struct {
	id      FrameID
	wireID  string
	version Version
	flags   FrameFlags
	group   byte

	// dataSize is the number of bytes following the header, as
	// declared on the wire or as last rendered.
	dataSize int
}

// ID is the frame id.
func (h FrameHeader) ID() FrameID { return h.id }

// WireID is the id as written in a tag of the header's version. For
// unknown frames, and for frames read under an id their version does
// not define (such as TSOP in a v2.3 tag), it is the id that was read.
func (h FrameHeader) WireID() string {
	if h.id == FrameUnknown {
		return h.wireID
	}
	if wire := h.id.WireID(h.version); wire != "" {
		return wire
	}
	if len(h.wireID) == h.idSize() {
		return h.wireID
	}
	return ""
}

func (h FrameHeader) Flags() FrameFlags { return h.flags }
func (h FrameHeader) Version() Version { return h.version }
func (h FrameHeader) DataSize() int { return h.dataSize }

// GroupID is the group symbol of a grouped frame.
func (h FrameHeader) GroupID() byte { return h.group }

// Size is the size of the header itself.
func (h FrameHeader) Size() int {
	if h.version.Major() == 2 {
		return 6
	}
	return 10
}

func (h FrameHeader) idSize() int {
	if h.version.Major() == 2 {
		return 3
	}
	return 4
}

func validFrameIDByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Parse reads a frame header for the header's version from the start of
// b and returns its size.
func (h *FrameHeader) Parse(b []byte) (int, error) {
	n := h.Size()
	if len(b) < n {
		return 0, newError(SmallBuffer, "frame header needs %d bytes, have %d", n, len(b))
	}
	idSize := h.idSize()
	for _, c := range b[:idSize] {
		if !validFrameIDByte(c) {
			return 0, newError(InvalidFrameID, "not a frame id: %q", b[:idSize])
		}
	}
	h.wireID = string(b[:idSize])
	h.id = LookupFrameID(h.wireID, h.version)

	switch h.version.Major() {
	case 2:
		h.dataSize = int(b[3])<<16 | int(b[4])<<8 | int(b[5])
		h.flags = 0
	case 3:
		h.dataSize = int(binary.BigEndian.Uint32(b[4:8]))
		h.flags = parseFrameFlags(binary.BigEndian.Uint16(b[8:10]), h.version)
	default:
		h.dataSize = int(ParseUint28(b[4:8]))
		h.flags = parseFrameFlags(binary.BigEndian.Uint16(b[8:10]), h.version)
	}
	return n, nil
}

// Render returns the wire form of the header, using dataSize as the
// declared size.
func (h FrameHeader) Render() ([]byte, error) {
	wire := h.WireID()
	if len(wire) != h.idSize() {
		return nil, &Error{
			Kind: InvalidFrameID,
			Desc: fmt.Sprintf("frame %s has no id in %s", h.id, h.version),
		}
	}
	out := make([]byte, 0, h.Size())
	out = append(out, wire...)

	switch h.version.Major() {
	case 2:
		if h.dataSize > 0xffffff {
			return nil, newError(TooLarge, "frame %s: %d bytes", wire, h.dataSize)
		}
		out = append(out, byte(h.dataSize>>16), byte(h.dataSize>>8), byte(h.dataSize))
		return out, nil
	case 3:
		out = binary.BigEndian.AppendUint32(out, uint32(h.dataSize))
	default:
		if h.dataSize > MaxUint28 {
			return nil, newError(TooLarge, "frame %s: %d bytes", wire, h.dataSize)
		}
		out = Uint28(h.dataSize).AppendTo(out)
	}
	return binary.BigEndian.AppendUint16(out, h.flags.wire(h.version)), nil
}
