package id3

import (
	"encoding/binary"
	"fmt"
)

// Frame is one unit of tag data, such as a title or a picture. Its
// fields are laid out by the frame id; which of them exist depends on
// the frame's version.
type Frame struct {
	header FrameHeader
	fields []*Field

	changed  bool
	badParse bool
}

// NewFrame returns a frame with the given id and fields for the
// default version. FrameNone yields an empty frame.
func NewFrame(id FrameID) (*Frame, error) {
	f := &Frame{header: FrameHeader{version: DefaultVersion}}
	if err := f.SetID(id); err != nil {
		return nil, err
	}
	return f, nil
}

// newFrame is NewFrame for ids known to be in the table.
func newFrame(id FrameID, v Version) *Frame {
	f := &Frame{header: FrameHeader{version: v}}
	f.build(id)
	f.changed = true
	return f
}

func (f *Frame) ID() FrameID { return f.header.id }

// WireID is the id the frame is written with at its current version.
func (f *Frame) WireID() string { return f.header.WireID() }

func (f *Frame) Header() FrameHeader { return f.header }
func (f *Frame) Version() Version { return f.header.version }
func (f *Frame) Flags() FrameFlags { return f.header.flags }

// BadParse reports whether the last Parse failed part way through the
// fields.
func (f *Frame) BadParse() bool { return f.badParse }

// SetID gives the frame a new id and rebuilds its fields, discarding
// their values. Setting the current id again does nothing.
func (f *Frame) SetID(id FrameID) error {
	if id == FrameNone {
		f.Clear()
		return nil
	}
	if !id.Valid() {
		return &Error{Kind: InvalidFrameID, Desc: fmt.Sprintf("frame id %d", int(id))}
	}
	if id == f.header.id && f.fields != nil {
		return nil
	}
	f.header.wireID = ""
	f.build(id)
	f.changed = true
	return nil
}

func (f *Frame) build(id FrameID) {
	f.header.id = id
	defs := id.fields()
	f.fields = make([]*Field, len(defs))
	for i, d := range defs {
		f.fields[i] = newField(d, f.header.version)
	}
}

// Clear empties the frame, resetting it to FrameNone.
func (f *Frame) Clear() {
	v := f.header.version
	f.header = FrameHeader{version: v}
	f.fields = nil
	f.badParse = false
	f.changed = true
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		header:   f.header,
		changed:  f.changed,
		badParse: f.badParse,
		fields:   make([]*Field, len(f.fields)),
	}
	for i, fl := range f.fields {
		c.fields[i] = fl.clone()
	}
	return c
}

// Changed reports whether the frame or any of its fields changed since
// the last parse or render.
func (f *Frame) Changed() bool {
	if f.changed {
		return true
	}
	for _, fl := range f.fields {
		if fl.changed {
			return true
		}
	}
	return false
}

func (f *Frame) clearChanged() {
	f.changed = false
	for _, fl := range f.fields {
		fl.changed = false
	}
}

func (f *Frame) field(id FieldID) *Field {
	for _, fl := range f.fields {
		if fl.def.ID == id && fl.InScope() {
			return fl
		}
	}
	return nil
}

// Field returns the field with the given id. Asking for a field the
// frame does not have at its version is an error; use HasField to
// probe.
func (f *Frame) Field(id FieldID) (*Field, error) {
	if fl := f.field(id); fl != nil {
		return fl, nil
	}
	return nil, &Error{
		Kind: FieldNotFound,
		Desc: fmt.Sprintf("frame %s has no field %s in %s", f.header.id, id, f.header.version),
	}
}

// HasField reports whether the frame has the field at its version.
func (f *Frame) HasField(id FieldID) bool { return f.field(id) != nil }

// Fields returns the fields that exist at the frame's version, in wire
// order.
func (f *Frame) Fields() []*Field {
	out := make([]*Field, 0, len(f.fields))
	for _, fl := range f.fields {
		if fl.InScope() {
			out = append(out, fl)
		}
	}
	return out
}

// Encoding is the value of the frame's text encoding field.
func (f *Frame) Encoding() Encoding {
	if fl := f.field(FieldTextEnc); fl != nil {
		return Encoding(fl.Int())
	}
	return ISO88591
}

// SetEncoding sets the text encoding field and the encoding of every
// encodable field. Frames without a text encoding field are left
// alone.
func (f *Frame) SetEncoding(e Encoding) error {
	if !e.Valid() {
		return newError(BadData, "invalid text encoding %d", byte(e))
	}
	enc := f.field(FieldTextEnc)
	if enc == nil {
		return nil
	}
	if err := enc.SetInt(uint32(e)); err != nil {
		return err
	}
	for _, fl := range f.fields {
		if _, err := fl.SetEncoding(e); err != nil {
			return err
		}
	}
	return nil
}

// SetFlag turns a header flag on or off. FrameUnsync and
// FrameDataLength are managed by Render and cannot be set.
func (f *Frame) SetFlag(flag FrameFlags, on bool) {
	flag &^= FrameUnsync | FrameDataLength
	old := f.header.flags
	if on {
		f.header.flags |= flag
	} else {
		f.header.flags &^= flag
	}
	if f.header.flags != old {
		f.changed = true
	}
}

func (f *Frame) Compression() bool { return f.header.flags.Compressed() }
func (f *Frame) SetCompression(on bool) { f.SetFlag(FrameCompression, on) }
func (f *Frame) ReadOnly() bool { return f.header.flags.ReadOnly() }

// SetGroup puts the frame in the group with the given symbol.
func (f *Frame) SetGroup(symbol byte) {
	if f.header.group != symbol || !f.header.flags.Grouped() {
		f.header.group = symbol
		f.header.flags |= FrameGrouping
		f.changed = true
	}
}

// SetVersion changes the version the frame's fields are scoped to.
func (f *Frame) SetVersion(v Version) {
	if f.header.version == v {
		return
	}
	f.header.version = v
	for _, fl := range f.fields {
		fl.version = v
	}
	f.changed = true
}

// Size is the number of bytes Render produces.
func (f *Frame) Size() int {
	if f.header.id == FrameNone {
		return 0
	}
	if f.Compression() && f.header.version.Major() >= 3 {
		b, err := f.Render()
		if err != nil {
			return 0
		}
		return len(b)
	}
	n := f.header.Size()
	for _, fl := range f.fields {
		n += fl.Size()
	}
	if f.header.flags.Grouped() && f.header.version.Major() >= 3 {
		n++
	}
	return n
}

// Render returns the wire form of the frame. A compressed frame whose
// compressed data, with its four byte size, is not smaller than the
// plain data is written uncompressed; the frame keeps its compression
// flag.
func (f *Frame) Render() ([]byte, error) {
	return f.render(false)
}

func (f *Frame) render(unsync bool) ([]byte, error) {
	if f.header.id == FrameNone {
		return nil, &Error{Kind: InvalidFrameID, Desc: "frame has no id"}
	}
	var payload []byte
	for _, fl := range f.fields {
		payload = append(payload, fl.Render()...)
	}

	h := f.header
	major := h.version.Major()
	flags := h.flags &^ (FrameEncryption | FrameUnsync | FrameDataLength)
	if major == 2 {
		flags = 0
	}

	body := payload
	compressed := false
	if flags.Compressed() {
		z, err := deflate(payload)
		if err != nil {
			return nil, err
		}
		if 4+len(z) < len(payload) {
			body, compressed = z, true
		} else {
			flags &^= FrameCompression
		}
	}

	var prefix []byte
	switch major {
	case 3:
		if compressed {
			prefix = binary.BigEndian.AppendUint32(prefix, uint32(len(payload)))
		}
		if flags.Grouped() {
			prefix = append(prefix, h.group)
		}
	case 4:
		if flags.Grouped() {
			prefix = append(prefix, h.group)
		}
		if compressed {
			flags |= FrameDataLength
			prefix = NewUint28(uint32(len(payload))).AppendTo(prefix)
		}
		if unsync && needsUnsync(body) {
			body = Unsync(body)
			flags |= FrameUnsync
		}
	}

	h.flags = flags
	h.dataSize = len(prefix) + len(body)
	hb, err := h.Render()
	if err != nil {
		return nil, err
	}
	f.header.dataSize = h.dataSize
	return concat(hb, prefix, body), nil
}

// Parse reads a frame of the frame's version from the start of b. It
// returns the number of bytes the frame occupies, bounded by len(b),
// or 0 if b does not start with a frame header. A frame whose fields
// cannot be parsed is marked with BadParse; the returned size is still
// the declared one so that the caller can skip over it.
func (f *Frame) Parse(b []byte) int {
	return f.parse(b, false)
}

// parse is Parse for a frame of a v2.4 tag whose header has the
// unsynchronisation flag set, in which case every frame is resynced.
func (f *Frame) parse(b []byte, unsync bool) int {
	f.badParse = false
	h := FrameHeader{version: f.header.version}
	n, err := h.Parse(b)
	if err != nil {
		Logger.Debug().Err(err).Msg("no frame header")
		return 0
	}
	end := n + h.dataSize
	if end > len(b) || end < n {
		end = len(b)
	}

	f.header = h
	f.build(h.id)
	if err := f.parseData(b[n:end], unsync); err != nil {
		f.badParse = true
		Logger.Debug().Err(err).Str("frame", h.wireID).Msg("bad frame")
	}
	f.clearChanged()
	return end
}

func (f *Frame) parseData(data []byte, unsync bool) error {
	flags := f.header.flags
	expanded := -1

	switch f.header.version.Major() {
	case 3:
		if flags.Compressed() {
			if len(data) < 4 {
				return newError(BadData, "compressed frame too short")
			}
			expanded = int(binary.BigEndian.Uint32(data))
			data = data[4:]
		}
		if flags.Encrypted() {
			return newError(BadData, "encrypted frames are not supported")
		}
		if flags.Grouped() {
			if len(data) < 1 {
				return newError(BadData, "grouped frame too short")
			}
			f.header.group = data[0]
			data = data[1:]
		}
	case 4:
		if flags.Grouped() {
			if len(data) < 1 {
				return newError(BadData, "grouped frame too short")
			}
			f.header.group = data[0]
			data = data[1:]
		}
		if flags.Encrypted() {
			return newError(BadData, "encrypted frames are not supported")
		}
		if flags&FrameDataLength != 0 {
			if len(data) < 4 {
				return newError(BadData, "data length indicator too short")
			}
			expanded = int(ParseUint28(data[:4]))
			data = data[4:]
		}
		if flags&FrameUnsync != 0 || unsync {
			data = Resync(data)
		}
	}

	if flags.Compressed() {
		var err error
		data, err = inflate(data, expanded)
		if err != nil {
			return err
		}
	}

	last := -1
	for i, fl := range f.fields {
		if fl.InScope() {
			last = i
		}
	}

	enc := ISO88591
	pos := 0
	for i, fl := range f.fields {
		if !fl.InScope() {
			continue
		}
		if fl.isEncodable() {
			fl.encoding = enc
		}
		n, err := fl.Parse(data[pos:])
		if err != nil {
			// The last integer, like the POPM play counter, may be left out.
			if i == last && pos == len(data) && fl.def.Type == FieldInteger {
				fl.Clear()
				continue
			}
			return err
		}
		pos += n
		if fl.def.ID == FieldTextEnc {
			enc = Encoding(fl.Int())
			if !enc.Valid() {
				return newError(BadData, "invalid text encoding %d", byte(enc))
			}
		}
	}
	for _, fl := range f.fields {
		if fl.isEncodable() {
			fl.encoding = enc
		}
	}
	return nil
}
