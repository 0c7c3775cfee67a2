package id3

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Check reports whether r starts with an ID3v2 tag. It does not
// consume any input.
func Check(r *bufio.Reader) (bool, error) {
	b, err := r.Peek(tagHeaderSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return IsTag(b) > 0, nil
}

type Decoder struct {
	r io.Reader
	h TagHeader
	n int64
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ParseHeader parses only the ID3 header. The reader is left at the
// start of the tag's payload.
func (d *Decoder) ParseHeader() (TagHeader, error) {
	var b [tagHeaderSize]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return TagHeader{}, ErrNoTag
		}
		return TagHeader{}, wrapError(NoData, err, "reading tag header")
	}
	d.n += tagHeaderSize
	var h TagHeader
	if h.Parse(b[:]) == 0 {
		return TagHeader{}, ErrNoTag
	}
	if !h.Version.Supported() {
		return h, &Error{Kind: InvalidVersion, Desc: h.Version.String()}
	}
	d.h = h
	return h, nil
}

// Parse reads a whole tag. The reader is left immediately before the
// audio data.
//
// Parse will always return a valid tag. In the case of an error, the
// tag will be empty.
func (d *Decoder) Parse() (*Tag, error) {
	tag := NewTag()
	h, err := d.ParseHeader()
	if err != nil {
		return tag, err
	}
	var buf bytes.Buffer
	buf.Write(h.Render())
	buf.Bytes()[5] = byte(h.Flags)
	// The buffer grows with the data actually read, not the declared
	// size. A truncated tag is parsed as far as it goes.
	n, err := buf.ReadFrom(io.LimitReader(d.r, int64(h.Size)))
	d.n += n
	if err != nil {
		return tag, wrapError(NoData, err, "reading tag")
	}
	if tag.Parse(buf.Bytes()) == 0 {
		return NewTag(), ErrNoTag
	}
	return tag, nil
}

// Consumed is the number of bytes read from the underlying reader.
func (d *Decoder) Consumed() int64 { return d.n }
