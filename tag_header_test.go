package id3

import (
	"bytes"
	"testing"
)

func TestIsTag(t *testing.T) {
	tests := []struct {
		in   []byte
		size int
	}{
		{[]byte("ID3\x03\x00\x00\x00\x00\x00\x0a"), 20},
		{[]byte("ID3\x04\x00\x80\x00\x00\x02\x01"), 267},
		{[]byte("ID3\x02\x00\x00\x00\x00\x00\x00"), 10},
		{[]byte("ID3\xff\x00\x00\x00\x00\x00\x0a"), 0},
		{[]byte("ID3\x03\xff\x00\x00\x00\x00\x0a"), 0},
		{[]byte("ID3\x03\x00\x00\x80\x00\x00\x0a"), 0},
		{[]byte("ID3\x03\x00\x00\x00\x00\x00"), 0},
		{[]byte("TAG\x03\x00\x00\x00\x00\x00\x0a"), 0},
	}

	for _, test := range tests {
		if got := IsTag(test.in); got != test.size {
			t.Errorf("IsTag(%q): expected %d, got %d", test.in, test.size, got)
		}
	}
}

func TestTagHeaderParseFailureLeavesHeader(t *testing.T) {
	h := TagHeader{Version: V24, Flags: HeaderUnsync, Size: 5}
	if n := h.Parse([]byte("XYZ\x03\x00\x00\x00\x00\x00\x0a")); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	if h.Version != V24 || h.Flags != HeaderUnsync || h.Size != 5 {
		t.Fatalf("header modified: %+v", h)
	}
}

func TestTagHeaderRender(t *testing.T) {
	h := TagHeader{Version: V24, Flags: HeaderUnsync | HeaderFooter | 0x01, Size: 257}
	out := h.Render()
	want := []byte("ID3\x04\x00\x80\x00\x00\x02\x01")
	if !bytes.Equal(out, want) {
		t.Fatalf("expected % x, got % x", want, out)
	}

	var back TagHeader
	if n := back.Parse(out); n != tagHeaderSize {
		t.Fatalf("expected %d, got %d", tagHeaderSize, n)
	}
	if back.Version != V24 || !back.Flags.Unsynchronisation() || back.Size != 257 {
		t.Fatalf("unexpected header: %+v", back)
	}
}

func TestVersion(t *testing.T) {
	if V23.Major() != 3 || V23.Revision() != 0 {
		t.Fatalf("unexpected major/revision for %s", V23)
	}
	if V23.String() != "ID3v2.3.0" {
		t.Fatalf("unexpected string %q", V23.String())
	}
	if Version(0x0500).Supported() || !V22.Supported() {
		t.Fatal("unexpected support")
	}
}
