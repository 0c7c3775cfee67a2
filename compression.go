package id3

import (
	"bytes"
	"compress/zlib"
	"io"
)

// deflate zlib-compresses b.
func deflate(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, wrapError(Zlib, err, "deflate")
	}
	if _, err := w.Write(b); err != nil {
		return nil, wrapError(Zlib, err, "deflate")
	}
	if err := w.Close(); err != nil {
		return nil, wrapError(Zlib, err, "deflate")
	}
	return buf.Bytes(), nil
}

// maxInflated bounds frames that do not declare their inflated size.
const maxInflated = MaxUint28

// inflate decompresses zlib data. If size is not negative the output
// must be exactly size bytes long; otherwise it may not exceed
// maxInflated.
func inflate(b []byte, size int) ([]byte, error) {
	return inflateMax(b, size, maxInflated)
}

func inflateMax(b []byte, size int, ceiling int64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, wrapError(Zlib, err, "inflate")
	}
	defer r.Close()

	limit := int64(size)
	if size < 0 || limit > ceiling {
		limit = ceiling
	}
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, wrapError(Zlib, err, "inflate")
	}
	if int64(len(out)) > limit && limit == ceiling {
		return nil, newError(TooLarge, "inflated frame exceeds %d bytes", limit)
	}
	if size >= 0 && len(out) != size {
		return nil, newError(BadData, "inflated %d bytes, expected %d", len(out), size)
	}
	return out, nil
}
