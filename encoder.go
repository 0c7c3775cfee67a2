package id3

import "io"

type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode renders t and writes it.
func (e *Encoder) Encode(t *Tag) error {
	b, err := t.Render()
	if err != nil {
		return err
	}
	_, err = e.w.Write(b)
	return err
}

// WriteFrame writes a single rendered frame, without a tag header.
func (e *Encoder) WriteFrame(f *Frame) error {
	b, err := f.Render()
	if err != nil {
		return err
	}
	_, err = e.w.Write(b)
	return err
}

func (t *Tag) Encode(w io.Writer) error {
	return NewEncoder(w).Encode(t)
}
