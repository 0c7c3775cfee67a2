package id3

import (
	"encoding/binary"
	"errors"
)

// Tag is an ID3v2 tag: a header followed by frames and padding. A Tag
// is not safe for concurrent use.
type Tag struct {
	header  TagHeader
	frames  []*Frame
	padding int
	skipped int
	changed bool
}

// NewTag returns an empty tag of DefaultVersion.
func NewTag() *Tag {
	return &Tag{header: TagHeader{Version: DefaultVersion}}
}

// Clear removes all frames and resets the header and padding.
func (t *Tag) Clear() {
	t.header = TagHeader{Version: DefaultVersion}
	t.frames = nil
	t.padding = 0
	t.skipped = 0
	t.changed = true
}

// Header returns the header as it was last parsed or rendered.
func (t *Tag) Header() TagHeader { return t.header }

// Version is the version the tag is rendered in.
func (t *Tag) Version() Version {
	if t.header.Version == 0 {
		return DefaultVersion
	}
	return t.header.Version
}

// SetVersion changes the version the tag is rendered in and migrates
// every frame to it.
func (t *Tag) SetVersion(v Version) error {
	if !v.Supported() {
		return &Error{Kind: InvalidVersion, Desc: v.String()}
	}
	if v != t.Version() {
		t.header.Version = v
		t.changed = true
	}
	t.migrate(v)
	return nil
}

func (t *Tag) setHeaderFlag(flag HeaderFlags, on bool) {
	old := t.header.Flags
	t.header.Flags.set(flag, on)
	if t.header.Flags != old {
		t.changed = true
	}
}

// SetUnsync turns unsynchronisation on or off for rendering.
func (t *Tag) SetUnsync(on bool) { t.setHeaderFlag(HeaderUnsync, on) }

// Unsynchronised reports whether the tag is rendered unsynchronised.
func (t *Tag) Unsynchronised() bool { return t.header.Flags.Unsynchronisation() }

// SetExtendedHeader controls whether an extended header is rendered.
// It has no effect on v2.2 tags.
func (t *Tag) SetExtendedHeader(on bool) { t.setHeaderFlag(HeaderExtended, on) }

// SetExperimental sets the experimental indicator.
func (t *Tag) SetExperimental(on bool) { t.setHeaderFlag(HeaderExperimental, on) }

// Padding is the number of zero bytes rendered after the frames.
func (t *Tag) Padding() int { return t.padding }

// SetPadding sets the number of zero bytes rendered after the frames.
// Unsynchronisation growth is taken out of the padding first.
func (t *Tag) SetPadding(n int) {
	if n < 0 {
		n = 0
	}
	if n != t.padding {
		t.padding = n
		t.changed = true
	}
}

// Skipped is the number of frames the last Parse dropped because they
// could not be parsed.
func (t *Tag) Skipped() int { return t.skipped }

// Changed reports whether the header, the padding or any frame changed
// since the last parse or render.
func (t *Tag) Changed() bool {
	if t.changed {
		return true
	}
	for _, f := range t.frames {
		if f.Changed() {
			return true
		}
	}
	return false
}

// NumFrames is the number of frames in the tag.
func (t *Tag) NumFrames() int { return len(t.frames) }

// Frames returns the frames in rendering order. The frames are owned by
// the tag; the slice is a copy.
func (t *Tag) Frames() []*Frame {
	out := make([]*Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// Add appends f to the tag, which takes ownership of it. The frame is
// migrated to the tag's version. Adding a frame twice has no effect.
func (t *Tag) Add(f *Frame) error {
	if f == nil {
		return newError(NoData, "nil frame")
	}
	if f.ID() == FrameNone {
		return &Error{Kind: InvalidFrameID, Desc: "frame has no id"}
	}
	for _, g := range t.frames {
		if g == f {
			return nil
		}
	}
	migrateFrame(f, t.Version())
	t.frames = append(t.frames, f)
	t.changed = true
	return nil
}

// Remove detaches f from the tag and returns it, or nil if f is not in
// the tag.
func (t *Tag) Remove(f *Frame) *Frame {
	for i, g := range t.frames {
		if g == f {
			t.frames = append(t.frames[:i], t.frames[i+1:]...)
			t.changed = true
			return f
		}
	}
	return nil
}

// RemoveAll removes every frame with the given id and returns how many
// were removed.
func (t *Tag) RemoveAll(id FrameID) int {
	kept := t.frames[:0]
	for _, f := range t.frames {
		if f.ID() != id {
			kept = append(kept, f)
		}
	}
	n := len(t.frames) - len(kept)
	for i := len(kept); i < len(t.frames); i++ {
		t.frames[i] = nil
	}
	t.frames = kept
	if n > 0 {
		t.changed = true
	}
	return n
}

// Find returns the first frame with the given id, or nil.
func (t *Tag) Find(id FrameID) *Frame {
	f, _ := t.FindFrom(id, 0)
	return f
}

// FindFrom searches for a frame with the given id starting at index
// start and wrapping around to the beginning. It returns the frame and
// its index, or nil and -1. Passing the returned index plus one finds
// the next match.
func (t *Tag) FindFrom(id FrameID, start int) (*Frame, int) {
	n := len(t.frames)
	if n == 0 {
		return nil, -1
	}
	if start < 0 || start >= n {
		start = 0
	}
	for i := 0; i < n; i++ {
		j := (start + i) % n
		if t.frames[j].ID() == id {
			return t.frames[j], j
		}
	}
	return nil, -1
}

// FindText returns the first frame with the given id whose field fld
// holds the text value.
func (t *Tag) FindText(id FrameID, fld FieldID, value string) *Frame {
	for _, f := range t.frames {
		if f.ID() != id {
			continue
		}
		if fl := f.field(fld); fl != nil && fl.def.Type == FieldTextString && fl.Text() == value {
			return f
		}
	}
	return nil
}

// Size is the size of the rendered tag without unsynchronisation and
// padding.
func (t *Tag) Size() int {
	v := t.Version()
	n := tagHeaderSize + len(t.extendedHeader(v, 0))
	for _, f := range t.frames {
		if f.Version() == v && f.WireID() == "" {
			continue
		}
		n += f.Size()
	}
	return n
}

// Parse replaces the tag's contents with the tag at the start of b. It
// returns the number of bytes the tag occupies, or 0 if b does not
// start with a tag of a supported version. Frames that fail to parse
// are dropped and counted in Skipped; they never abort the parse.
func (t *Tag) Parse(b []byte) int {
	t.Clear()
	var h TagHeader
	if h.Parse(b) == 0 {
		return 0
	}
	v := h.Version
	if !v.Supported() {
		Logger.Debug().Stringer("version", v).Msg("unsupported tag version")
		return 0
	}
	end := tagHeaderSize + int(h.Size)
	if end > len(b) {
		end = len(b)
	}
	payload := b[tagHeaderSize:end]

	t.header = TagHeader{Version: v, Flags: h.Flags &^ HeaderFooter, Size: h.Size}
	if v.Major() == 2 && h.Flags&HeaderExtended != 0 {
		// In v2.2 this bit announces a compression scheme that was never
		// defined.
		Logger.Warn().Msg("compressed v2.2 tag, frames ignored")
		t.header.Flags &^= HeaderExtended
		t.changed = false
		return end
	}
	if h.Flags.Unsynchronisation() && v.Major() < 4 {
		payload = Resync(payload)
	}
	if h.Flags.ExtendedHeader() {
		payload = skipExtendedHeader(payload, v)
	}

	frameUnsync := h.Flags.Unsynchronisation() && v.Major() >= 4
	pos := 0
	for pos < len(payload) && payload[pos] != 0 {
		f := &Frame{header: FrameHeader{version: v}}
		n := f.parse(payload[pos:], frameUnsync)
		if n == 0 {
			break
		}
		pos += n
		if f.BadParse() {
			t.skipped++
			Logger.Warn().Str("frame", f.header.wireID).Int("offset", pos-n).Msg("skipping bad frame")
			continue
		}
		Logger.Debug().Str("frame", f.WireID()).Int("size", n).Msg("parsed frame")
		t.frames = append(t.frames, f)
	}
	t.padding = len(payload) - pos
	t.changed = false
	return end
}

func skipExtendedHeader(b []byte, v Version) []byte {
	if len(b) < 4 {
		return nil
	}
	var n int
	if v.Major() == 3 {
		n = 4 + int(binary.BigEndian.Uint32(b))
	} else {
		n = int(ParseUint28(b))
	}
	if n > len(b) || n < 4 {
		return nil
	}
	return b[n:]
}

// extendedHeader renders a minimal extended header, or nothing if the
// tag has none.
func (t *Tag) extendedHeader(v Version, padding int) []byte {
	if !t.header.Flags.ExtendedHeader() {
		return nil
	}
	switch v.Major() {
	case 3:
		out := []byte{0, 0, 0, 6, 0, 0}
		return binary.BigEndian.AppendUint32(out, uint32(padding))
	case 4:
		out := NewUint28(6).AppendTo(nil)
		return append(out, 1, 0)
	}
	return nil
}

// Render migrates every frame to the tag's version and returns the
// rendered tag. Frames that do not exist in that version are left out.
// The rendered size is the frames plus the padding, less whatever the
// padding had to give up to unsynchronisation; if unsynchronisation
// grows the frames beyond the padding, the tag grows.
func (t *Tag) Render() ([]byte, error) {
	v := t.Version()
	t.migrate(v)

	unsync := t.header.Flags.Unsynchronisation()
	var body []byte
	for _, f := range t.frames {
		b, err := f.render(unsync && v.Major() >= 4)
		if err != nil {
			if errors.Is(err, ErrInvalidFrameID) {
				Logger.Warn().Stringer("frame", f.ID()).Stringer("version", v).Msg("frame not rendered")
				continue
			}
			return nil, err
		}
		body = append(body, b...)
	}

	before := len(body)
	if unsync && v.Major() < 4 {
		body = Unsync(body)
	}
	after := len(body)

	padding := t.padding - after + before
	if padding < 0 {
		padding = 0
	}
	ext := t.extendedHeader(v, padding)
	if unsync && v.Major() < 4 {
		ext = Unsync(ext)
	}

	size := len(ext) + after + padding
	if size > MaxUint28 {
		return nil, newError(TooLarge, "%d bytes", size)
	}
	flags := t.header.Flags
	if v.Major() == 2 {
		flags &^= HeaderExtended
	}
	h := TagHeader{Version: v, Flags: flags, Size: Uint28(size)}

	out := make([]byte, 0, tagHeaderSize+size)
	out = append(out, h.Render()...)
	out = append(out, ext...)
	out = append(out, body...)
	out = append(out, make([]byte, padding)...)

	t.header = h
	t.changed = false
	for _, f := range t.frames {
		f.clearChanged()
	}
	return out, nil
}
