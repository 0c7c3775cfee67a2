package id3

import (
	"bytes"
	"testing"
	"time"
)

var (
	UTF8TestString  = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß äöüß"
	UTF16TestString = []byte{254, 255, 0, 69, 0, 105, 0, 110, 0, 32,
		0, 101, 0, 116, 0, 119, 0, 97, 0, 115, 0, 32, 0, 107, 0, 252, 0,
		114, 0, 122, 0, 101, 0, 114, 0, 101, 0, 114, 0, 32, 0, 84, 0, 101,
		0, 120, 0, 116, 0, 32, 0, 109, 0, 105, 0, 116, 0, 32, 0, 119, 0,
		101, 0, 110, 0, 105, 0, 103, 0, 101, 0, 110, 0, 32, 0, 85, 0, 109,
		0, 108, 0, 97, 0, 117, 0, 116, 0, 101, 0, 110, 0, 58, 0, 32, 0,
		228, 0, 246, 0, 252, 0, 223, 0, 32, 0, 228, 0, 246, 0, 252, 0,
		223}
	ISOTestString = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF \xE4\xF6\xFC\xDF")
)

func TestUTF8ToISO88591(t *testing.T) {
	res := encodeText(UTF8TestString, ISO88591)

	if !bytes.Equal(res, ISOTestString) {
		t.Fail()
	}
}

func TestISO88591ToUTF8(t *testing.T) {
	res := decodeText(ISOTestString, ISO88591)

	if res != UTF8TestString {
		t.Fail()
	}
}

func TestISO88591Unrepresentable(t *testing.T) {
	res := encodeText("a日b", ISO88591)
	if !bytes.Equal(res, []byte("a?b")) {
		t.Errorf("Expected: %q - Got: %q", "a?b", res)
	}
}

func TestUTF8ToUTF16(t *testing.T) {
	res := encodeText(UTF8TestString, UTF16)

	if !bytes.Equal(res, UTF16TestString) {
		t.Errorf("Expected: % x - Got: % x", UTF16TestString, res)
	}
}

func TestUTF8ToUTF16BE(t *testing.T) {
	res := encodeText(UTF8TestString, UTF16BE)

	if !bytes.Equal(res, UTF16TestString[2:]) {
		t.Errorf("Expected: % x - Got: % x", UTF16TestString[2:], res)
	}
}

func TestUTF16ToUTF8(t *testing.T) {
	in := []byte{254, 255, 0, 74, 0,
		117, 0, 115, 0, 116, 0, 32, 0, 97, 0, 32, 0, 116, 0, 101, 0, 115,
		0, 116, 0, 58, 0, 32, 0, 228, 0, 252, 0, 246, 0, 32, 101, 229,
		103, 44, 138, 158}
	out := "Just a test: äüö 日本語"

	res := decodeText(in, UTF16)

	if res != out {
		t.Errorf("Expected: %s - Got: %s", out, res)
	}
}

func TestUTF16BEToUTF8(t *testing.T) {
	in := []byte{0, 74, 0,
		117, 0, 115, 0, 116, 0, 32, 0, 97, 0, 32, 0, 116, 0, 101, 0, 115,
		0, 116, 0, 58, 0, 32, 0, 228, 0, 252, 0, 246, 0, 32, 101, 229,
		103, 44, 138, 158}
	out := "Just a test: äüö 日本語"

	res := decodeText(in, UTF16BE)

	if res != out {
		t.Errorf("Expected: %s - Got: %s", out, res)
	}
}

func TestUTF16LEToUTF8(t *testing.T) {
	in := []byte{255, 254, 74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97,
		0, 32, 0, 116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228, 0,
		252, 0, 246, 0, 32, 0, 229, 101, 44, 103, 158, 138}

	out := "Just a test: äüö 日本語"

	res := decodeText(in, UTF16)

	if res != out {
		t.Errorf("Expected: %s - Got: %s", out, res)
	}
}

func TestEncodingValidFor(t *testing.T) {
	tests := []struct {
		enc Encoding
		v   Version
		ok  bool
	}{
		{ISO88591, V22, true},
		{UTF16, V23, true},
		{UTF16BE, V23, false},
		{UTF8, V23, false},
		{UTF16BE, V24, true},
		{UTF8, V24, true},
		{Encoding(4), V24, false},
	}

	for _, test := range tests {
		if got := test.enc.ValidFor(test.v); got != test.ok {
			t.Errorf("%s in %s: expected %t, got %t", test.enc, test.v, test.ok, got)
		}
	}
}

func TestTimeParsing(t *testing.T) {
	tests := []struct {
		in  string
		out time.Time
	}{
		{"2009-11-10T23:01:02", time.Date(2009, 11, 10, 23, 01, 02, 0, time.UTC)},
		{"2009-11-10T23:01", time.Date(2009, 11, 10, 23, 01, 0, 0, time.UTC)},
		{"2009-11-10T23", time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)},
		{"2009-11-10", time.Date(2009, 11, 10, 0, 0, 0, 0, time.UTC)},
		{"2009-11", time.Date(2009, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"2009", time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		res, err := parseTime(test.in)
		if err != nil {
			t.Fatalf("Couldn't parse time '%s': %s", test.in, err)
		}

		if res != test.out {
			t.Fatalf("Time '%s' parsed to '%s' instead of '%s'", test.in, res, test.out)
		}
	}
}

func TestJoinTimestamp(t *testing.T) {
	tests := []struct {
		year, date, tim string
		out             string
	}{
		{"2009", "", "", "2009"},
		{"2009", "1011", "", "2009-11-10"},
		{"2009", "1011", "2301", "2009-11-10T23:01"},
		{"2009", "", "2301", "2009"},
		{"2009", "3202", "2301", "2009"},
		{"20x9", "1011", "", ""},
	}

	for _, test := range tests {
		if res := joinTimestamp(test.year, test.date, test.tim); res != test.out {
			t.Errorf("%q/%q/%q: expected %q, got %q", test.year, test.date, test.tim, test.out, res)
		}
	}
}

func TestImageFormats(t *testing.T) {
	tests := []struct {
		mime, format, back string
	}{
		{"image/jpeg", "JPG", "image/jpeg"},
		{"image/jpg", "JPG", "image/jpeg"},
		{"image/png", "PNG", "image/png"},
		{"image/webp", "WEB", "image/web"},
		{"-->", "-->", "-->"},
	}

	for _, test := range tests {
		format := imageFormat(test.mime)
		if format != test.format {
			t.Errorf("%s: expected format %q, got %q", test.mime, test.format, format)
		}
		if back := mimeType(format); back != test.back {
			t.Errorf("%s: expected MIME type %q, got %q", format, test.back, back)
		}
	}
}

func BenchmarkISO88591ToUTF8(b *testing.B) {
	b.SetBytes(int64(len(ISOTestString)))
	for i := 0; i < b.N; i++ {
		_ = decodeText(ISOTestString, ISO88591)
	}
}

func BenchmarkUTF8ToISO88591(b *testing.B) {
	b.SetBytes(int64(len(UTF8TestString)))
	for i := 0; i < b.N; i++ {
		_ = encodeText(UTF8TestString, ISO88591)
	}
}

func BenchmarkUTF16ToUTF8(b *testing.B) {
	b.SetBytes(int64(len(UTF16TestString)))
	for i := 0; i < b.N; i++ {
		_ = decodeText(UTF16TestString, UTF16)
	}
}
