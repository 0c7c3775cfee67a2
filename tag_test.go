package id3

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// rawTag builds a tag from already rendered frames.
func rawTag(major, flags byte, padding int, frames ...[]byte) []byte {
	body := concat(frames...)
	body = append(body, make([]byte, padding)...)
	h := TagHeader{Version: Version(int16(major) << 8), Flags: HeaderFlags(flags), Size: NewUint28(uint32(len(body)))}
	out := h.Render()
	out[5] = flags
	return append(out, body...)
}

func hasSyncPattern(b []byte) bool {
	for i := 0; i+1 < len(b); i++ {
		if b[i] == 0xff && b[i+1]&0xe0 == 0xe0 {
			return true
		}
	}
	return false
}

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()

	Convey("A v2.3 tag with a title and a comment", t, func() {
		tag := NewTag()
		So(tag.SetTitle("Hello"), ShouldBeNil)
		So(tag.AddComment(Comment{Language: "eng", Text: "World"}), ShouldBeNil)
		tag.SetPadding(10)
		So(tag.Changed(), ShouldBeTrue)
		So(tag.Size(), ShouldEqual, 10+16+20)

		out, err := tag.Render()
		So(err, ShouldBeNil)

		Convey("renders frames and padding", func() {
			So(len(out), ShouldEqual, 10+16+20+10)
			So(IsTag(out), ShouldEqual, len(out))
			So(out[:10], ShouldResemble, []byte("ID3\x03\x00\x00\x00\x00\x00\x2e"))
			So(out[10:26], ShouldResemble, []byte("TIT2\x00\x00\x00\x06\x00\x00\x00Hello"))
			So(out[26:46], ShouldResemble, []byte("COMM\x00\x00\x00\x0a\x00\x00\x00eng\x00World"))
			So(out[46:], ShouldResemble, make([]byte, 10))
			So(tag.Changed(), ShouldBeFalse)
		})

		Convey("parses back", func() {
			back := NewTag()
			So(back.Parse(out), ShouldEqual, len(out))
			So(back.Version(), ShouldEqual, V23)
			So(back.Title(), ShouldEqual, "Hello")
			So(back.Comments(), ShouldResemble, []Comment{{Language: "eng", Text: "World"}})
			So(back.Padding(), ShouldEqual, 10)
			So(back.NumFrames(), ShouldEqual, 2)
			So(back.Skipped(), ShouldEqual, 0)
			So(back.Changed(), ShouldBeFalse)

			again, err := back.Render()
			So(err, ShouldBeNil)
			So(again, ShouldResemble, out)
		})
	})
}

func TestTagBadFrames(t *testing.T) {
	t.Parallel()

	Convey("A tag with a damaged frame between two good ones", t, func() {
		in := rawTag(3, 0, 4,
			[]byte("TIT2\x00\x00\x00\x06\x00\x00\x00Hello"),
			[]byte("TALB\x00\x00\x00\x02\x00\x40\x00x"),
			[]byte("TPE1\x00\x00\x00\x03\x00\x00\x00Me"),
		)
		tag := NewTag()

		Convey("keeps the good frames", func() {
			So(tag.Parse(in), ShouldEqual, len(in))
			So(tag.NumFrames(), ShouldEqual, 2)
			So(tag.Skipped(), ShouldEqual, 1)
			So(tag.Title(), ShouldEqual, "Hello")
			So(tag.Artist(), ShouldEqual, "Me")
			So(tag.Album(), ShouldEqual, "")
		})

		Convey("stops at garbage", func() {
			garbage := rawTag(3, 0, 0,
				[]byte("TIT2\x00\x00\x00\x06\x00\x00\x00Hello"),
				[]byte("ti\x01t\x00\x00\x00\x01"),
			)
			So(tag.Parse(garbage), ShouldEqual, len(garbage))
			So(tag.NumFrames(), ShouldEqual, 1)
			So(tag.Title(), ShouldEqual, "Hello")
		})

		Convey("reads a truncated tag as far as it goes", func() {
			So(tag.Parse(in[:30]), ShouldEqual, 30)
			So(tag.Title(), ShouldEqual, "Hello")
		})
	})

	Convey("Input that is not a tag", t, func() {
		tag := NewTag()
		So(tag.Parse([]byte("not a tag at all")), ShouldEqual, 0)
		So(tag.Parse(rawTag(5, 0, 4)), ShouldEqual, 0)
		So(tag.NumFrames(), ShouldEqual, 0)
	})
}

func TestTagUnsync(t *testing.T) {
	t.Parallel()

	Convey("An unsynchronised v2.3 tag", t, func() {
		tag := NewTag()
		So(tag.SetTitle("ÿà"), ShouldBeNil)
		tag.SetUnsync(true)

		Convey("takes the growth out of the padding", func() {
			tag.SetPadding(10)
			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(len(out), ShouldEqual, 10+13+10)
			So(hasSyncPattern(out), ShouldBeFalse)
			So(out[5]&0x80, ShouldEqual, byte(0x80))

			back := NewTag()
			So(back.Parse(out), ShouldEqual, len(out))
			So(back.Title(), ShouldEqual, "ÿà")
			So(back.Unsynchronised(), ShouldBeTrue)
		})

		Convey("grows when there is no padding", func() {
			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(len(out), ShouldEqual, 10+14)
		})
	})

	Convey("An unsynchronised v2.4 tag", t, func() {
		tag := NewTag()
		So(tag.SetVersion(V24), ShouldBeNil)
		So(tag.SetTitle("ÿà"), ShouldBeNil)
		So(tag.SetAlbum("plain"), ShouldBeNil)
		tag.SetUnsync(true)

		out, err := tag.Render()
		So(err, ShouldBeNil)
		So(hasSyncPattern(out), ShouldBeFalse)

		back := NewTag()
		So(back.Parse(out), ShouldEqual, len(out))
		So(back.Title(), ShouldEqual, "ÿà")
		So(back.Album(), ShouldEqual, "plain")
		So(back.Find(FrameTitle).Flags()&FrameUnsync, ShouldNotEqual, FrameFlags(0))
		So(back.Find(FrameAlbum).Flags()&FrameUnsync, ShouldEqual, FrameFlags(0))
	})

	Convey("A v2.4 tag with only the header flag set", t, func() {
		title := []byte("TIT2\x00\x00\x00\x06\x00\x00\x00A\xff\x00\xe0B")
		in := rawTag(4, 0x80, 0, title)

		back := NewTag()
		So(back.Parse(in), ShouldEqual, len(in))
		So(back.Skipped(), ShouldEqual, 0)
		So(back.Title(), ShouldEqual, "AÿàB")
	})
}

func TestTagForeignFrames(t *testing.T) {
	t.Parallel()

	title := []byte("TIT2\x00\x00\x00\x06\x00\x00\x00Hello")

	Convey("A v2.3 tag with v2.4 sort order frames", t, func() {
		in := rawTag(3, 0, 0, title,
			[]byte("TSOP\x00\x00\x00\x04\x00\x00\x00Doe"),
			[]byte("TSOA\x00\x00\x00\x02\x00\x00\x00A"))

		tag := NewTag()
		So(tag.Parse(in), ShouldEqual, len(in))
		So(tag.NumFrames(), ShouldEqual, 3)

		Convey("keeps them when rendered unchanged", func() {
			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(out, ShouldResemble, in)

			back := NewTag()
			So(back.Parse(out), ShouldEqual, len(out))
			So(back.NumFrames(), ShouldEqual, 3)
			So(back.TextFrame(FramePerformerSortOrder), ShouldEqual, "Doe")
			So(back.TextFrame(FrameAlbumSortOrder), ShouldEqual, "A")
		})

		Convey("drops them in v2.2, which has no four letter ids", func() {
			So(tag.SetVersion(V22), ShouldBeNil)
			out, err := tag.Render()
			So(err, ShouldBeNil)

			back := NewTag()
			So(back.Parse(out), ShouldEqual, len(out))
			So(back.NumFrames(), ShouldEqual, 1)
			So(back.Title(), ShouldEqual, "Hello")
		})
	})

	Convey("A POPM frame without a play counter", t, func() {
		in := rawTag(3, 0, 0, title, []byte("POPM\x00\x00\x00\x07\x00\x00a@b.c\x00\xff"))

		tag := NewTag()
		So(tag.Parse(in), ShouldEqual, len(in))
		So(tag.Skipped(), ShouldEqual, 0)
		So(tag.NumFrames(), ShouldEqual, 2)

		popm := tag.Find(FramePopularimeter)
		So(popm, ShouldNotBeNil)
		rating, err := popm.Field(FieldRating)
		So(err, ShouldBeNil)
		So(rating.Int(), ShouldEqual, uint32(0xff))

		out, err := tag.Render()
		So(err, ShouldBeNil)
		So(bytes.Contains(out, []byte("POPM\x00\x00\x00\x0b\x00\x00a@b.c\x00\xff\x00\x00\x00\x00")), ShouldBeTrue)
	})
}

func TestTagMigration(t *testing.T) {
	t.Parallel()

	Convey("A v2.3 tag with year, date and time", t, func() {
		tag := NewTag()
		So(tag.SetTextFrame(FrameYear, "2009"), ShouldBeNil)
		So(tag.SetTextFrame(FrameDate, "1011"), ShouldBeNil)
		So(tag.SetTextFrame(FrameTime, "2301"), ShouldBeNil)
		So(tag.SetTextFrame(FrameOrigYear, "1999"), ShouldBeNil)
		So(tag.Year(), ShouldEqual, 2009)

		Convey("becomes TDRC in v2.4", func() {
			So(tag.SetVersion(V24), ShouldBeNil)
			So(tag.TextFrame(FrameRecordingTime), ShouldEqual, "2009-11-10T23:01")
			So(tag.TextFrame(FrameOrigReleaseTime), ShouldEqual, "1999")
			So(tag.Find(FrameYear), ShouldBeNil)
			So(tag.Find(FrameDate), ShouldBeNil)
			So(tag.Find(FrameTime), ShouldBeNil)
			So(tag.Year(), ShouldEqual, 2009)

			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(bytes.Contains(out, []byte("TDRC")), ShouldBeTrue)
			So(bytes.Contains(out, []byte("TYER")), ShouldBeFalse)

			Convey("and back in v2.3", func() {
				So(tag.SetVersion(V23), ShouldBeNil)
				So(tag.TextFrame(FrameYear), ShouldEqual, "2009")
				So(tag.TextFrame(FrameDate), ShouldEqual, "1011")
				So(tag.TextFrame(FrameTime), ShouldEqual, "2301")
				So(tag.TextFrame(FrameOrigYear), ShouldEqual, "1999")
				So(tag.Find(FrameRecordingTime), ShouldBeNil)
			})
		})
	})

	Convey("A v2.2 tag", t, func() {
		in := rawTag(2, 0, 0,
			[]byte("TT2\x00\x00\x06\x00Hello"),
			[]byte("PIC\x00\x00\x0a\x00JPG\x03\x00\xff\xd8\xff\xe0"),
		)
		tag := NewTag()
		So(tag.Parse(in), ShouldEqual, len(in))
		So(tag.Version(), ShouldEqual, V22)
		So(tag.Title(), ShouldEqual, "Hello")
		So(tag.Pictures(), ShouldResemble, []Picture{{
			MIMEType: "image/jpeg",
			Type:     PictureFrontCover,
			Data:     []byte{0xff, 0xd8, 0xff, 0xe0},
		}})

		Convey("is written as v2.3", func() {
			So(tag.SetVersion(V23), ShouldBeNil)
			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(out[3], ShouldEqual, byte(3))
			So(bytes.Contains(out, []byte("TIT2")), ShouldBeTrue)
			So(bytes.Contains(out, []byte("APIC\x00\x00\x00\x12\x00\x00\x00image/jpeg\x00")), ShouldBeTrue)
		})
	})

	Convey("v2.4 encodings in a v2.3 tag", t, func() {
		tag := NewTag()
		So(tag.SetVersion(V24), ShouldBeNil)
		So(tag.SetTitle("Grüße"), ShouldBeNil)
		So(tag.Find(FrameTitle).SetEncoding(UTF8), ShouldBeNil)
		So(tag.SetVersion(V23), ShouldBeNil)
		So(tag.Find(FrameTitle).Encoding(), ShouldEqual, UTF16)

		out, err := tag.Render()
		So(err, ShouldBeNil)
		back := NewTag()
		So(back.Parse(out), ShouldEqual, len(out))
		So(back.Title(), ShouldEqual, "Grüße")
	})

	Convey("Frames without an id in the version", t, func() {
		tag := NewTag()
		So(tag.SetTitle("x"), ShouldBeNil)
		So(tag.SetTextFrame(FrameMood, "calm"), ShouldBeNil)
		out, err := tag.Render()
		So(err, ShouldBeNil)
		So(len(out), ShouldEqual, 10+12)
		So(tag.NumFrames(), ShouldEqual, 2)
	})
}

func TestTagFind(t *testing.T) {
	t.Parallel()

	Convey("A tag with several comments", t, func() {
		tag := NewTag()
		So(tag.SetTitle("t"), ShouldBeNil)
		for _, d := range []string{"a", "b", "c"} {
			So(tag.AddComment(Comment{Description: d, Text: d + d}), ShouldBeNil)
		}

		Convey("FindFrom walks and wraps around", func() {
			f, i := tag.FindFrom(FrameComment, 0)
			So(i, ShouldEqual, 1)
			So(commentOf(f).Description, ShouldEqual, "a")
			f, i = tag.FindFrom(FrameComment, i+1)
			So(i, ShouldEqual, 2)
			f, i = tag.FindFrom(FrameComment, 3+1)
			So(i, ShouldEqual, 1)
			f, i = tag.FindFrom(FrameComment, 3)
			So(i, ShouldEqual, 3)
			So(commentOf(f).Text, ShouldEqual, "cc")
			f, i = tag.FindFrom(FrameAlbum, 0)
			So(f, ShouldBeNil)
			So(i, ShouldEqual, -1)
		})

		Convey("FindText matches a field", func() {
			c, ok := tag.Comment("b")
			So(ok, ShouldBeTrue)
			So(c.Text, ShouldEqual, "bb")
			_, ok = tag.Comment("z")
			So(ok, ShouldBeFalse)
		})

		Convey("Remove detaches a frame", func() {
			f := tag.FindText(FrameComment, FieldDescription, "b")
			So(tag.Remove(f), ShouldEqual, f)
			So(tag.Remove(f), ShouldBeNil)
			So(len(tag.Comments()), ShouldEqual, 2)
			So(tag.RemoveAll(FrameComment), ShouldEqual, 2)
			So(tag.NumFrames(), ShouldEqual, 1)
		})

		Convey("Add rejects bad frames", func() {
			So(tag.Add(nil), ShouldNotBeNil)
			empty, err := NewFrame(FrameNone)
			So(err, ShouldBeNil)
			So(tag.Add(empty), ShouldNotBeNil)
			f := tag.Find(FrameTitle)
			So(tag.Add(f), ShouldBeNil)
			So(tag.NumFrames(), ShouldEqual, 4)
		})
	})
}

func TestTagHeaderOptions(t *testing.T) {
	t.Parallel()

	Convey("Extended headers", t, func() {
		for _, v := range []Version{V23, V24} {
			tag := NewTag()
			So(tag.SetVersion(v), ShouldBeNil)
			So(tag.SetTitle("Hello"), ShouldBeNil)
			tag.SetExtendedHeader(true)
			tag.SetPadding(4)
			out, err := tag.Render()
			So(err, ShouldBeNil)
			So(out[5]&0x40, ShouldEqual, byte(0x40))
			if v == V23 {
				So(out[10:20], ShouldResemble, []byte{0, 0, 0, 6, 0, 0, 0, 0, 0, 4})
			} else {
				So(out[10:16], ShouldResemble, []byte{0, 0, 0, 6, 1, 0})
			}

			back := NewTag()
			So(back.Parse(out), ShouldEqual, len(out))
			So(back.Title(), ShouldEqual, "Hello")
			So(back.Padding(), ShouldEqual, 4)
		}
	})

	Convey("Versions", t, func() {
		tag := NewTag()
		So(errors.Is(tag.SetVersion(Version(0x0500)), ErrInvalidVersion), ShouldBeTrue)
		So(tag.Version(), ShouldEqual, DefaultVersion)
	})

	Convey("Change tracking", t, func() {
		tag := NewTag()
		So(tag.SetTitle("a"), ShouldBeNil)
		_, err := tag.Render()
		So(err, ShouldBeNil)
		So(tag.Changed(), ShouldBeFalse)
		So(tag.SetTitle("a"), ShouldBeNil)
		So(tag.Changed(), ShouldBeFalse)
		So(tag.SetTitle("b"), ShouldBeNil)
		So(tag.Changed(), ShouldBeTrue)
	})

	Convey("Compressed frames in a tag", t, func() {
		tag := NewTag()
		So(tag.SetLyrics("eng", "", string(bytes.Repeat([]byte("la "), 500))), ShouldBeNil)
		tag.Find(FrameUnsyncedLyrics).SetCompression(true)
		out, err := tag.Render()
		So(err, ShouldBeNil)
		So(len(out), ShouldBeLessThan, 500)

		back := NewTag()
		So(back.Parse(out), ShouldEqual, len(out))
		So(back.Lyrics(), ShouldEqual, string(bytes.Repeat([]byte("la "), 500)))
	})
}
