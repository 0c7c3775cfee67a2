// Package splice replaces the ID3v2 tag at the start of a file while
// keeping the audio that follows it.
package splice

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const headerSize = 10

// TagSize returns the number of bytes the tag at the start of r
// occupies, header included, or 0 if r does not start with a tag.
func TagSize(r io.ReaderAt) (int64, error) {
	h := make([]byte, headerSize)
	n, err := r.ReadAt(h, 0)
	if n < headerSize {
		if err == io.EOF || err == nil {
			return 0, nil
		}
		return 0, err
	}
	if !bytes.Equal(h[:3], []byte("ID3")) || h[3] == 0xff || h[4] == 0xff {
		return 0, nil
	}
	var size int64
	for _, c := range h[6:10] {
		if c >= 0x80 {
			return 0, nil
		}
		size = size<<7 | int64(c)
	}
	// The footer, if any, repeats the header after the tag.
	if h[5]&0x10 != 0 && h[3] >= 4 {
		size += headerSize
	}
	return headerSize + size, nil
}

// Replace puts tag at the start of the file at path in place of the
// tag that is there, if any. If the sizes match the file is written in
// place; otherwise it is rewritten through a temporary file in the same
// directory that replaces the original.
func Replace(path string, tag []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	old, err := TagSize(f)
	if err != nil {
		return fmt.Errorf("reading tag header: %w", err)
	}
	if old == int64(len(tag)) {
		if _, err := f.WriteAt(tag, 0); err != nil {
			return err
		}
		return f.Sync()
	}
	return rewrite(f, path, tag, old)
}

// Strip removes the tag at the start of the file at path.
func Strip(path string) error {
	return Replace(path, nil)
}

func rewrite(f *os.File, path string, tag []byte, skip int64) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(tag); err != nil {
		return err
	}
	if _, err := f.Seek(skip, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.Copy(tmp, f); err != nil {
		return fmt.Errorf("copying audio: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
