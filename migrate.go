package id3

import (
	"strings"
	"time"
)

var timeFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

func parseTime(input string) (res time.Time, err error) {
	for _, format := range timeFormats {
		res, err = time.Parse(format, input)
		if err == nil {
			break
		}
	}
	return
}

// migrate converts the tag's frames to version v. Frames that only
// exist in one version are rewritten into their counterparts where one
// exists: TYER, TDAT and TIME become TDRC in v2.4 and TORY becomes
// TDOR, and the other way around below v2.4.
func (t *Tag) migrate(v Version) {
	if v.Major() >= 4 {
		t.upgradeTimes()
	} else {
		t.downgradeTimes()
	}
	for _, f := range t.frames {
		migrateFrame(f, v)
	}
}

func (t *Tag) upgradeTimes() {
	if f := t.Find(FrameYear); f != nil {
		date := t.Find(FrameDate)
		tim := t.Find(FrameTime)
		if t.Find(FrameRecordingTime) == nil {
			if ts := joinTimestamp(frameText(f), frameText(date), frameText(tim)); ts != "" {
				t.replace(f, textFrameLike(f, FrameRecordingTime, ts))
				Logger.Debug().Str("time", ts).Msg("replaced TYER, TDAT and TIME with TDRC")
			}
		}
		t.RemoveAll(FrameYear)
		t.RemoveAll(FrameDate)
		t.RemoveAll(FrameTime)
	}
	if f := t.Find(FrameOrigYear); f != nil {
		if t.Find(FrameOrigReleaseTime) == nil {
			if ts := joinTimestamp(frameText(f), "", ""); ts != "" {
				t.replace(f, textFrameLike(f, FrameOrigReleaseTime, ts))
				Logger.Debug().Str("time", ts).Msg("replaced TORY with TDOR")
			}
		}
		t.RemoveAll(FrameOrigYear)
	}
}

func (t *Tag) downgradeTimes() {
	if f := t.Find(FrameRecordingTime); f != nil {
		if t.Find(FrameYear) == nil {
			s := frameText(f)
			if ts, err := parseTime(s); err == nil {
				year := textFrameLike(f, FrameYear, ts.Format("2006"))
				t.replace(f, year)
				if len(s) >= len("2006-01-02") {
					t.frames = append(t.frames, textFrameLike(f, FrameDate, ts.Format("0201")))
				}
				if len(s) >= len("2006-01-02T15:04") {
					t.frames = append(t.frames, textFrameLike(f, FrameTime, ts.Format("1504")))
				}
				Logger.Debug().Str("time", s).Msg("replaced TDRC with TYER, TDAT and TIME")
			}
		}
		t.RemoveAll(FrameRecordingTime)
	}
	if f := t.Find(FrameOrigReleaseTime); f != nil {
		if t.Find(FrameOrigYear) == nil {
			if ts, err := parseTime(frameText(f)); err == nil {
				t.replace(f, textFrameLike(f, FrameOrigYear, ts.Format("2006")))
				Logger.Debug().Msg("replaced TDOR with TORY")
			}
		}
		t.RemoveAll(FrameOrigReleaseTime)
	}
}

// joinTimestamp builds a v2.4 timestamp from a year, a DDMM date and
// an HHMM time. Date and time are dropped if they are malformed; a
// malformed year yields "".
func joinTimestamp(year, date, tim string) string {
	if _, err := time.Parse("2006", year); err != nil {
		return ""
	}
	layout, value, out := "2006", year, "2006"
	if len(date) == 4 {
		if _, err := time.Parse("20060201", year+date); err == nil {
			layout, value, out = layout+"0201", value+date, "2006-01-02"
			if len(tim) == 4 {
				if _, err := time.Parse(layout+"1504", value+tim); err == nil {
					layout, value, out = layout+"1504", value+tim, "2006-01-02T15:04"
				}
			}
		}
	}
	ts, err := time.Parse(layout, value)
	if err != nil {
		return ""
	}
	return ts.Format(out)
}

// replace puts g where f was, keeping the frame order.
func (t *Tag) replace(f, g *Frame) {
	for i, h := range t.frames {
		if h == f {
			t.frames[i] = g
			t.changed = true
			return
		}
	}
	t.frames = append(t.frames, g)
	t.changed = true
}

func frameText(f *Frame) string {
	if f == nil {
		return ""
	}
	if fl := f.field(FieldText); fl != nil {
		return fl.Text()
	}
	return ""
}

// textFrameLike returns a text frame with the given id that has f's
// version, encoding and flags.
func textFrameLike(f *Frame, id FrameID, text string) *Frame {
	g := newFrame(id, f.Version())
	g.header.flags = f.header.flags
	g.header.group = f.header.group
	_ = g.SetEncoding(f.Encoding())
	_ = g.field(FieldText).SetText(text)
	return g
}

// migrateFrame moves a single frame to version v. Encodings the
// version cannot express fall back to UTF-16, and pictures get their
// image format or MIME type filled in from the other.
func migrateFrame(f *Frame, v Version) {
	from := f.Version()
	if from == v {
		return
	}
	if f.ID() == FramePicture {
		convertPictureFormat(f, v)
	}
	f.SetVersion(v)
	if !f.Encoding().ValidFor(v) {
		_ = f.SetEncoding(UTF16)
	}
	Logger.Debug().Stringer("frame", f.ID()).Stringer("from", from).Stringer("to", v).Msg("migrated frame")
}

// rawField returns the field with the given id regardless of scope.
func (f *Frame) rawField(id FieldID) *Field {
	for _, fl := range f.fields {
		if fl.def.ID == id {
			return fl
		}
	}
	return nil
}

func convertPictureFormat(f *Frame, v Version) {
	format, mime := f.rawField(FieldImageFormat), f.rawField(FieldMimeType)
	if format == nil || mime == nil {
		return
	}
	if v.Major() == 2 {
		if format.Text() == "" && mime.Text() != "" {
			_ = format.SetText(imageFormat(mime.Text()))
		}
		return
	}
	if mime.Text() == "" && format.Text() != "" {
		_ = mime.SetText(mimeType(format.Text()))
	}
}

var imageFormats = []struct {
	format string
	mime   string
}{
	{"JPG", "image/jpeg"},
	{"PNG", "image/png"},
	{"GIF", "image/gif"},
	{"BMP", "image/bmp"},
	{"TIF", "image/tiff"},
	{"-->", "-->"},
}

// imageFormat maps a MIME type to a v2.2 image format.
func imageFormat(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime == "image/jpg" {
		return "JPG"
	}
	for _, e := range imageFormats {
		if e.mime == mime {
			return e.format
		}
	}
	sub := mime
	if i := strings.IndexByte(mime, '/'); i >= 0 {
		sub = mime[i+1:]
	}
	sub = strings.ToUpper(sub)
	if len(sub) > 3 {
		sub = sub[:3]
	}
	return sub
}

// mimeType maps a v2.2 image format to a MIME type.
func mimeType(format string) string {
	format = strings.ToUpper(strings.TrimSpace(format))
	if format == "JPEG" {
		format = "JPG"
	}
	for _, e := range imageFormats {
		if e.format == format {
			return e.mime
		}
	}
	return "image/" + strings.ToLower(format)
}
