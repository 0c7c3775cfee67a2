package id3

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ryandesign/id3lib-sub001/internal/splice"
)

// File is a tag linked to the file it was read from.
type File struct {
	*Tag
	path string
	size int64
}

// Open reads the tag at the start of the file at path. A file without
// a tag yields an empty tag.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError(err, path)
	}
	defer f.Close()

	size, err := splice.TagSize(f)
	if err != nil {
		return nil, wrapError(NoData, err, path)
	}
	tag := NewTag()
	if size > 0 {
		buf := make([]byte, size)
		n, err := f.ReadAt(buf, 0)
		if n < tagHeaderSize {
			return nil, wrapError(NoData, err, path)
		}
		tag.Parse(buf[:n])
	}
	return &File{Tag: tag, path: path, size: size}, nil
}

func (f *File) Path() string { return f.path }

// TagSize is the number of bytes the tag occupies in the file.
func (f *File) TagSize() int64 { return f.size }

// Save renders the tag and writes it to the start of the file. A tag
// that shrank is padded back to its old size so that the audio does
// not have to move.
func (f *File) Save() error {
	b, err := f.Render()
	if err != nil {
		return err
	}
	if grow := int(f.size) - len(b); grow > 0 && f.size > 0 {
		f.SetPadding(f.Padding() + grow)
		if b, err = f.Render(); err != nil {
			return err
		}
	}
	if err := splice.Replace(f.path, b); err != nil {
		return fileError(err, f.path)
	}
	f.size = int64(len(b))
	return nil
}

// Strip removes the tag from the file and clears it.
func (f *File) Strip() error {
	if err := splice.Strip(f.path); err != nil {
		return fileError(err, f.path)
	}
	f.Clear()
	f.size = 0
	return nil
}

func fileError(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return wrapError(NoFile, err, path)
	case errors.Is(err, fs.ErrPermission):
		return wrapError(ReadOnly, err, path)
	}
	return err
}
