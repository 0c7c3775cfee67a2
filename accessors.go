package id3

import (
	"strconv"
	"strings"
	"time"
)

type Comment struct {
	Language    string
	Description string
	Text        string
}

type Picture struct {
	MIMEType    string
	Type        PictureType
	Description string
	Data        []byte
}

// encodingFor picks the narrowest encoding that can represent every
// string: ISO-8859-1 if possible, UTF-16 otherwise.
func encodingFor(strs ...string) Encoding {
	for _, s := range strs {
		for _, r := range s {
			if r > 0xff {
				return UTF16
			}
		}
	}
	return ISO88591
}

// TextFrame returns the text of the first frame with the given id.
// The items of a list are joined by NUL characters.
func (t *Tag) TextFrame(id FrameID) string {
	return frameText(t.Find(id))
}

// TextFrameItems returns the items of the first frame with the given
// id.
func (t *Tag) TextFrameItems(id FrameID) []string {
	f := t.Find(id)
	if f == nil {
		return nil
	}
	if fl := f.field(FieldText); fl != nil {
		return fl.TextItems()
	}
	return nil
}

// SetTextFrame sets the text of the frame with the given id, creating
// it if necessary. Several items make a list. Setting no text removes
// the frame.
func (t *Tag) SetTextFrame(id FrameID, items ...string) error {
	value := strings.Join(items, "\x00")
	if value == "" {
		t.RemoveAll(id)
		return nil
	}
	f := t.Find(id)
	if f == nil {
		if !id.Valid() {
			return &Error{Kind: InvalidFrameID, Desc: id.String()}
		}
		f = newFrame(id, t.Version())
		if err := t.Add(f); err != nil {
			return err
		}
	}
	fl, err := f.Field(FieldText)
	if err != nil {
		return err
	}
	if err := f.SetEncoding(encodingFor(items...)); err != nil {
		return err
	}
	return fl.SetText(value)
}

func (t *Tag) textFrameNumber(id FrameID) int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.TextFrame(id)))
	return i
}

func (t *Tag) Title() string { return t.TextFrame(FrameTitle) }
func (t *Tag) SetTitle(title string) error { return t.SetTextFrame(FrameTitle, title) }

func (t *Tag) Album() string { return t.TextFrame(FrameAlbum) }
func (t *Tag) SetAlbum(album string) error { return t.SetTextFrame(FrameAlbum, album) }

func (t *Tag) Artists() []string { return t.TextFrameItems(FrameLeadArtist) }
func (t *Tag) SetArtists(artists []string) error {
	return t.SetTextFrame(FrameLeadArtist, artists...)
}

func (t *Tag) Artist() string {
	artists := t.Artists()
	if len(artists) > 0 {
		return artists[0]
	}
	return ""
}

func (t *Tag) SetArtist(artist string) error { return t.SetTextFrame(FrameLeadArtist, artist) }

func (t *Tag) Band() string { return t.TextFrame(FrameBand) }
func (t *Tag) SetBand(band string) error { return t.SetTextFrame(FrameBand, band) }

func (t *Tag) Composer() string { return t.TextFrame(FrameComposer) }
func (t *Tag) SetComposer(composer string) error { return t.SetTextFrame(FrameComposer, composer) }

func (t *Tag) Publisher() string { return t.TextFrame(FramePublisher) }
func (t *Tag) SetPublisher(publisher string) error {
	return t.SetTextFrame(FramePublisher, publisher)
}

// Genre returns the content type as stored. Numeric ID3v1 references
// such as "(17)" are not resolved.
func (t *Tag) Genre() string { return t.TextFrame(FrameContentType) }
func (t *Tag) SetGenre(genre string) error { return t.SetTextFrame(FrameContentType, genre) }

func (t *Tag) BPM() int { return t.textFrameNumber(FrameBPM) }
func (t *Tag) SetBPM(bpm int) error { return t.SetTextFrame(FrameBPM, strconv.Itoa(bpm)) }

func (t *Tag) Length() time.Duration {
	return time.Duration(t.textFrameNumber(FrameSongLen)) * time.Millisecond
}

func (t *Tag) SetLength(d time.Duration) error {
	return t.SetTextFrame(FrameSongLen, strconv.FormatInt(d.Milliseconds(), 10))
}

// Year returns the recording year from TDRC or, failing that, TYER.
func (t *Tag) Year() int {
	if s := t.TextFrame(FrameRecordingTime); s != "" {
		if ts, err := parseTime(s); err == nil {
			return ts.Year()
		}
	}
	return t.textFrameNumber(FrameYear)
}

// SetYear stores the recording year in the frame the tag's version
// uses for it. A year of 0 removes it.
func (t *Tag) SetYear(year int) error {
	if year <= 0 {
		t.RemoveAll(FrameYear)
		t.RemoveAll(FrameRecordingTime)
		return nil
	}
	if t.Version().Major() >= 4 {
		t.RemoveAll(FrameYear)
		return t.SetTextFrame(FrameRecordingTime, strconv.Itoa(year))
	}
	t.RemoveAll(FrameRecordingTime)
	return t.SetTextFrame(FrameYear, strconv.Itoa(year))
}

// Track returns the track number and, if present, the total number of
// tracks from a value like "4/9".
func (t *Tag) Track() (track, total int) {
	s := t.TextFrame(FrameTrackNum)
	n, of, _ := strings.Cut(s, "/")
	track, _ = strconv.Atoi(strings.TrimSpace(n))
	total, _ = strconv.Atoi(strings.TrimSpace(of))
	return track, total
}

func (t *Tag) SetTrack(track, total int) error {
	if track <= 0 {
		t.RemoveAll(FrameTrackNum)
		return nil
	}
	s := strconv.Itoa(track)
	if total > 0 {
		s += "/" + strconv.Itoa(total)
	}
	return t.SetTextFrame(FrameTrackNum, s)
}

func commentOf(f *Frame) Comment {
	var c Comment
	if fl := f.field(FieldLanguage); fl != nil {
		c.Language = fl.Text()
	}
	if fl := f.field(FieldDescription); fl != nil {
		c.Description = fl.Text()
	}
	if fl := f.field(FieldText); fl != nil {
		c.Text = fl.Text()
	}
	return c
}

func (t *Tag) Comments() []Comment {
	var comments []Comment
	for _, f := range t.frames {
		if f.ID() == FrameComment {
			comments = append(comments, commentOf(f))
		}
	}
	return comments
}

// Comment returns the comment with the given description.
func (t *Tag) Comment(description string) (Comment, bool) {
	f := t.FindText(FrameComment, FieldDescription, description)
	if f == nil {
		return Comment{}, false
	}
	return commentOf(f), true
}

// AddComment appends a comment frame. An empty language is written as
// "eng".
func (t *Tag) AddComment(c Comment) error {
	f := newFrame(FrameComment, t.Version())
	if err := fillComment(f, c.Language, c.Description, c.Text); err != nil {
		return err
	}
	return t.Add(f)
}

func fillComment(f *Frame, lang, desc, text string) error {
	if lang == "" {
		lang = "eng"
	}
	if err := f.SetEncoding(encodingFor(desc, text)); err != nil {
		return err
	}
	for _, v := range []struct {
		id    FieldID
		value string
	}{
		{FieldLanguage, lang},
		{FieldDescription, desc},
		{FieldText, text},
	} {
		fl, err := f.Field(v.id)
		if err != nil {
			return err
		}
		if err := fl.SetText(v.value); err != nil {
			return err
		}
	}
	return nil
}

// Pictures returns the attached pictures. Pictures read from v2.2 tags
// have their image format translated to a MIME type.
func (t *Tag) Pictures() []Picture {
	var pics []Picture
	for _, f := range t.frames {
		if f.ID() != FramePicture {
			continue
		}
		var p Picture
		if fl := f.field(FieldMimeType); fl != nil {
			p.MIMEType = fl.Text()
		} else if fl := f.field(FieldImageFormat); fl != nil {
			p.MIMEType = mimeType(fl.Text())
		}
		if fl := f.field(FieldPictureType); fl != nil {
			p.Type = PictureType(fl.Int())
		}
		if fl := f.field(FieldDescription); fl != nil {
			p.Description = fl.Text()
		}
		if fl := f.field(FieldData); fl != nil {
			p.Data = fl.Binary()
		}
		pics = append(pics, p)
	}
	return pics
}

func (t *Tag) AddPicture(p Picture) error {
	f := newFrame(FramePicture, t.Version())
	if err := f.SetEncoding(encodingFor(p.Description)); err != nil {
		return err
	}
	// Both are set so the picture survives a version change.
	if err := f.rawField(FieldMimeType).SetText(p.MIMEType); err != nil {
		return err
	}
	if err := f.rawField(FieldImageFormat).SetText(imageFormat(p.MIMEType)); err != nil {
		return err
	}
	if err := f.rawField(FieldPictureType).SetInt(uint32(p.Type)); err != nil {
		return err
	}
	if err := f.rawField(FieldDescription).SetText(p.Description); err != nil {
		return err
	}
	if err := f.rawField(FieldData).SetBinary(p.Data); err != nil {
		return err
	}
	return t.Add(f)
}

// Lyrics returns the text of the first unsynchronised lyrics frame.
func (t *Tag) Lyrics() string {
	f := t.Find(FrameUnsyncedLyrics)
	if f == nil {
		return ""
	}
	return commentOf(f).Text
}

// SetLyrics sets the unsynchronised lyrics with the given description,
// replacing an existing frame with the same description.
func (t *Tag) SetLyrics(lang, description, text string) error {
	f := t.FindText(FrameUnsyncedLyrics, FieldDescription, description)
	if text == "" {
		if f != nil {
			t.Remove(f)
		}
		return nil
	}
	if f == nil {
		f = newFrame(FrameUnsyncedLyrics, t.Version())
		if err := t.Add(f); err != nil {
			return err
		}
	}
	return fillComment(f, lang, description, text)
}

// UserText returns the value of the TXXX frame with the given
// description.
func (t *Tag) UserText(description string) string {
	f := t.FindText(FrameUserText, FieldDescription, description)
	if f == nil {
		return ""
	}
	return frameText(f)
}

// UserTexts returns every TXXX frame keyed by description.
func (t *Tag) UserTexts() map[string]string {
	out := make(map[string]string)
	for _, f := range t.frames {
		if f.ID() != FrameUserText {
			continue
		}
		if fl := f.field(FieldDescription); fl != nil {
			out[fl.Text()] = frameText(f)
		}
	}
	return out
}

// SetUserText sets the TXXX frame with the given description. An empty
// value removes it.
func (t *Tag) SetUserText(description, value string) error {
	f := t.FindText(FrameUserText, FieldDescription, description)
	if value == "" {
		if f != nil {
			t.Remove(f)
		}
		return nil
	}
	if f == nil {
		f = newFrame(FrameUserText, t.Version())
		if err := t.Add(f); err != nil {
			return err
		}
	}
	if err := f.SetEncoding(encodingFor(description, value)); err != nil {
		return err
	}
	if err := f.field(FieldDescription).SetText(description); err != nil {
		return err
	}
	return f.field(FieldText).SetText(value)
}
