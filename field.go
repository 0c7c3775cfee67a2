package id3

import "strings"

// Field is one typed value of a frame. Which of the value members is
// used depends on the field's FieldType.
type Field struct {
	def      FieldDef
	version  Version
	encoding Encoding

	binary  []byte
	integer uint32
	text    []string

	changed bool
}

func newField(def FieldDef, v Version) *Field {
	return &Field{def: def, version: v}
}

func (f *Field) ID() FieldID { return f.def.ID }
func (f *Field) Type() FieldType { return f.def.Type }
func (f *Field) Def() FieldDef { return f.def }
func (f *Field) Changed() bool { return f.changed }
func (f *Field) Version() Version { return f.version }

// InScope reports whether the field exists at the version of its frame.
func (f *Field) InScope() bool { return f.def.InScope(f.version) }

func (f *Field) isEncodable() bool {
	return f.def.Type == FieldTextString && f.def.Flags&FlagEncodable != 0
}

func (f *Field) isList() bool {
	return f.def.Type == FieldTextString && f.def.Flags&FlagList != 0
}

// Encoding is the encoding the field is rendered with. Fields that are
// not encodable always use ISO-8859-1.
func (f *Field) Encoding() Encoding {
	if f.isEncodable() {
		return f.encoding
	}
	return ISO88591
}

// SetEncoding changes the encoding of an encodable text field. It
// reports whether the field changed; other fields are left alone.
func (f *Field) SetEncoding(e Encoding) (bool, error) {
	if !e.Valid() {
		return false, newError(BadData, "invalid text encoding %d", byte(e))
	}
	if !f.isEncodable() || f.encoding == e {
		return false, nil
	}
	f.encoding = e
	f.changed = true
	return true, nil
}

// Size is the number of bytes Render produces.
func (f *Field) Size() int {
	if !f.InScope() {
		return 0
	}
	if f.def.FixedSize > 0 {
		return f.def.FixedSize
	}
	switch f.def.Type {
	case FieldBinary:
		return len(f.binary)
	case FieldInteger:
		return 4
	default:
		return len(f.renderText())
	}
}

// Int returns the value of an integer field.
func (f *Field) Int() uint32 { return f.integer }

// Binary returns the value of a binary field. The slice is shared with
// the field.
func (f *Field) Binary() []byte { return f.binary }

// Text returns the value of a text field. The items of a list are
// joined by NUL characters.
func (f *Field) Text() string { return strings.Join(f.text, "\x00") }

// TextItems returns the items of a text field.
func (f *Field) TextItems() []string {
	out := make([]string, len(f.text))
	copy(out, f.text)
	return out
}

// TextItem returns item i of a text list, or "" if there is none.
func (f *Field) TextItem(i int) string {
	if i < 0 || i >= len(f.text) {
		return ""
	}
	return f.text[i]
}

// NumItems is the number of items in a text field.
func (f *Field) NumItems() int { return len(f.text) }

func (f *Field) typeError(want FieldType) error {
	return newError(UnknownFieldType, "field %s is %s, not %s", f.def.ID, f.def.Type, want)
}

// SetInt assigns an integer field.
func (f *Field) SetInt(v uint32) error {
	if f.def.Type != FieldInteger {
		return f.typeError(FieldInteger)
	}
	if f.integer != v {
		f.integer = v
		f.changed = true
	}
	return nil
}

// SetText assigns a text field. For list fields s is split on NUL
// characters.
func (f *Field) SetText(s string) error {
	if f.def.Type != FieldTextString {
		return f.typeError(FieldTextString)
	}
	var items []string
	if f.isList() {
		items = strings.Split(s, "\x00")
	} else {
		items = []string{s}
	}
	f.setItems(items)
	return nil
}

// AddText appends an item to a text list.
func (f *Field) AddText(s string) error {
	if !f.isList() {
		return newError(UnknownFieldType, "field %s is not a text list", f.def.ID)
	}
	f.text = append(f.text, s)
	f.changed = true
	return nil
}

// SetBinary assigns a binary field. b is copied.
func (f *Field) SetBinary(b []byte) error {
	if f.def.Type != FieldBinary {
		return f.typeError(FieldBinary)
	}
	if string(f.binary) == string(b) {
		return nil
	}
	f.binary = append([]byte(nil), b...)
	f.changed = true
	return nil
}

// Clear resets the field's value.
func (f *Field) Clear() {
	if f.integer != 0 || len(f.binary) > 0 || len(f.text) > 0 {
		f.changed = true
	}
	f.integer = 0
	f.binary = nil
	f.text = nil
}

func (f *Field) setItems(items []string) {
	items = normalizeItems(items)
	if equalStrings(f.text, items) {
		return
	}
	f.text = items
	f.changed = true
}

func (f *Field) clone() *Field {
	c := *f
	c.binary = append([]byte(nil), f.binary...)
	c.text = append([]string(nil), f.text...)
	return &c
}

// Parse reads the field from the start of b and returns the number of
// bytes consumed. Fields out of scope consume nothing.
func (f *Field) Parse(b []byte) (int, error) {
	if !f.InScope() {
		return 0, nil
	}
	in, n := b, len(b)
	if size := f.def.FixedSize; size > 0 {
		if n > size {
			n = size
		}
		in = resize(b[:n], size)
	}

	switch f.def.Type {
	case FieldBinary:
		f.binary = append([]byte(nil), in...)
	case FieldInteger:
		if n > 4 {
			n = 4
		}
		if n == 0 {
			return 0, newError(NoData, "field %s: no data", f.def.ID)
		}
		// A short fixed size integer holds the bytes that are there.
		f.integer = parseNumber(b[:n])
	case FieldTextString:
		var err error
		n, err = f.parseText(in, n)
		if err != nil {
			return 0, err
		}
	default:
		return 0, newError(UnknownFieldType, "field %s has type %d", f.def.ID, int(f.def.Type))
	}
	f.changed = false
	return n, nil
}

func (f *Field) parseText(in []byte, n int) (int, error) {
	enc := f.Encoding()
	switch {
	case f.def.FixedSize > 0:
		f.text = normalizeItems([]string{decodeText(trimNul(in, enc), enc)})
		return n, nil
	case f.def.Flags&FlagCString != 0:
		i := findTerminator(in, enc)
		if i < 0 {
			return 0, newError(BadData, "field %s: missing string terminator", f.def.ID)
		}
		f.text = normalizeItems([]string{decodeText(in[:i], enc)})
		return i + enc.width(), nil
	}

	parts := splitTerminated(in, enc)
	if !f.isList() && len(parts) > 1 {
		parts = parts[:1]
	}
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = decodeText(p, enc)
	}
	f.text = normalizeItems(items)
	return n, nil
}

// Render returns the wire form of the field. Fields out of scope render
// to nothing; fixed size fields are truncated or zero padded.
func (f *Field) Render() []byte {
	if !f.InScope() {
		return nil
	}
	var out []byte
	switch f.def.Type {
	case FieldBinary:
		out = append([]byte(nil), f.binary...)
	case FieldInteger:
		size := f.def.FixedSize
		if size == 0 {
			size = 4
		}
		out = renderNumber(f.integer, size)
	case FieldTextString:
		out = f.renderText()
	}
	if f.def.FixedSize > 0 {
		out = resize(out, f.def.FixedSize)
	}
	return out
}

func (f *Field) renderText() []byte {
	enc := f.Encoding()
	term := make([]byte, enc.width())

	var out []byte
	if f.isList() {
		for i, item := range f.text {
			if i > 0 {
				out = append(out, term...)
			}
			out = append(out, encodeText(item, enc)...)
		}
	} else {
		out = encodeText(f.Text(), enc)
	}
	if f.def.Flags&FlagCString != 0 {
		out = append(out, term...)
	}
	return out
}

// normalizeItems treats a single empty item as no text at all, so that
// "" and an empty list compare equal.
func normalizeItems(items []string) []string {
	if len(items) == 0 || (len(items) == 1 && items[0] == "") {
		return nil
	}
	return items
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
