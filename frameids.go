package id3

import "fmt"

// FrameID identifies the kind of a frame independently of the tag
// version. The wire id of a frame depends on the version it is written
// in; see WireID.
type FrameID int

const (
	// FrameNone is the id of a frame without fields.
	FrameNone FrameID = iota
	// FrameUnknown holds frames whose wire id is not in the table.
	// Their payload is kept verbatim in a single FieldData.
	FrameUnknown

	FrameAudioCrypto
	FramePicture
	FrameComment
	FrameEventTiming
	FrameGeneralObject
	FrameGroupingReg
	FrameCDID
	FrameOwnership
	FramePrivate
	FramePlayCounter
	FramePopularimeter
	FrameSyncedLyrics
	FrameSyncedTempo
	FrameUniqueFileID
	FrameTermsOfUse
	FrameUnsyncedLyrics

	FrameAlbum
	FrameBPM
	FrameComposer
	FrameContentType
	FrameCopyright
	FrameDate
	FramePlaylistDelay
	FrameEncodedBy
	FrameLyricist
	FrameFileType
	FrameTime
	FrameContentGroup
	FrameTitle
	FrameSubtitle
	FrameInitialKey
	FrameLanguage
	FrameSongLen
	FrameMediaType
	FrameOrigAlbum
	FrameOrigFilename
	FrameOrigLyricist
	FrameOrigArtist
	FrameOrigYear
	FrameFileOwner
	FrameLeadArtist
	FrameBand
	FrameConductor
	FrameMixArtist
	FramePartInSet
	FramePublisher
	FrameTrackNum
	FrameRecordingDates
	FrameNetRadioStation
	FrameNetRadioOwner
	FrameSize
	FrameISRC
	FrameEncoderSettings
	FrameYear
	FrameUserText
	FrameInvolvedPeople

	FrameRecordingTime
	FrameOrigReleaseTime
	FrameEncodingTime
	FrameReleaseTime
	FrameTaggingTime
	FrameMusicianCredits
	FrameMood
	FrameProducedNotice
	FrameAlbumSortOrder
	FramePerformerSortOrder
	FrameTitleSortOrder
	FrameSetSubtitle
	FrameAlbumArtistSortOrder
	FrameComposerSortOrder

	FrameWWWCommercial
	FrameWWWCopyright
	FrameWWWAudioFile
	FrameWWWArtist
	FrameWWWAudioSource
	FrameWWWRadioPage
	FrameWWWPayment
	FrameWWWPublisher
	FrameWWWUser

	frameIDCount
)

type frameDef struct {
	id          FrameID
	v22         string
	v23         string
	v24         string
	description string
	fields      []FieldDef
}

var frameDefs = []frameDef{
	{FrameUnknown, "", "", "", "Unknown frame", fieldsData},

	{FrameAudioCrypto, "CRA", "AENC", "AENC", "Audio encryption", fieldsOwnerData},
	{FramePicture, "PIC", "APIC", "APIC", "Attached picture", fieldsPicture},
	{FrameComment, "COM", "COMM", "COMM", "Comments", fieldsComment},
	{FrameEventTiming, "ETC", "ETCO", "ETCO", "Event timing codes", fieldsTimedData},
	{FrameGeneralObject, "GEO", "GEOB", "GEOB", "General encapsulated object", fieldsObject},
	{FrameGroupingReg, "", "GRID", "GRID", "Group identification registration", fieldsGroupRegistration},
	{FrameCDID, "MCI", "MCDI", "MCDI", "Music CD identifier", fieldsData},
	{FrameOwnership, "", "OWNE", "OWNE", "Ownership frame", fieldsOwnership},
	{FramePrivate, "", "PRIV", "PRIV", "Private frame", fieldsOwnerData},
	{FramePlayCounter, "CNT", "PCNT", "PCNT", "Play counter", fieldsCounter},
	{FramePopularimeter, "POP", "POPM", "POPM", "Popularimeter", fieldsPopularimeter},
	{FrameSyncedLyrics, "SLT", "SYLT", "SYLT", "Synchronised lyric/text", fieldsSyncedLyrics},
	{FrameSyncedTempo, "STC", "SYTC", "SYTC", "Synchronised tempo codes", fieldsTimedData},
	{FrameUniqueFileID, "UFI", "UFID", "UFID", "Unique file identifier", fieldsOwnerData},
	{FrameTermsOfUse, "", "USER", "USER", "Terms of use", fieldsTermsOfUse},
	{FrameUnsyncedLyrics, "ULT", "USLT", "USLT", "Unsynchronised lyric/text transcription", fieldsComment},

	{FrameAlbum, "TAL", "TALB", "TALB", "Album/Movie/Show title", fieldsText},
	{FrameBPM, "TBP", "TBPM", "TBPM", "BPM (beats per minute)", fieldsText},
	{FrameComposer, "TCM", "TCOM", "TCOM", "Composer", fieldsText},
	{FrameContentType, "TCO", "TCON", "TCON", "Content type", fieldsText},
	{FrameCopyright, "TCR", "TCOP", "TCOP", "Copyright message", fieldsText},
	{FrameDate, "TDA", "TDAT", "", "Date", fieldsText},
	{FramePlaylistDelay, "TDY", "TDLY", "TDLY", "Playlist delay", fieldsText},
	{FrameEncodedBy, "TEN", "TENC", "TENC", "Encoded by", fieldsText},
	{FrameLyricist, "TXT", "TEXT", "TEXT", "Lyricist/Text writer", fieldsText},
	{FrameFileType, "TFT", "TFLT", "TFLT", "File type", fieldsText},
	{FrameTime, "TIM", "TIME", "", "Time", fieldsText},
	{FrameContentGroup, "TT1", "TIT1", "TIT1", "Content group description", fieldsText},
	{FrameTitle, "TT2", "TIT2", "TIT2", "Title/songname/content description", fieldsText},
	{FrameSubtitle, "TT3", "TIT3", "TIT3", "Subtitle/Description refinement", fieldsText},
	{FrameInitialKey, "TKE", "TKEY", "TKEY", "Initial key", fieldsText},
	{FrameLanguage, "TLA", "TLAN", "TLAN", "Language(s)", fieldsText},
	{FrameSongLen, "TLE", "TLEN", "TLEN", "Length", fieldsText},
	{FrameMediaType, "TMT", "TMED", "TMED", "Media type", fieldsText},
	{FrameOrigAlbum, "TOT", "TOAL", "TOAL", "Original album/movie/show title", fieldsText},
	{FrameOrigFilename, "TOF", "TOFN", "TOFN", "Original filename", fieldsText},
	{FrameOrigLyricist, "TOL", "TOLY", "TOLY", "Original lyricist(s)/text writer(s)", fieldsText},
	{FrameOrigArtist, "TOA", "TOPE", "TOPE", "Original artist(s)/performer(s)", fieldsText},
	{FrameOrigYear, "TOR", "TORY", "", "Original release year", fieldsText},
	{FrameFileOwner, "", "TOWN", "TOWN", "File owner/licensee", fieldsText},
	{FrameLeadArtist, "TP1", "TPE1", "TPE1", "Lead performer(s)/Soloist(s)", fieldsText},
	{FrameBand, "TP2", "TPE2", "TPE2", "Band/orchestra/accompaniment", fieldsText},
	{FrameConductor, "TP3", "TPE3", "TPE3", "Conductor/performer refinement", fieldsText},
	{FrameMixArtist, "TP4", "TPE4", "TPE4", "Interpreted, remixed, or otherwise modified by", fieldsText},
	{FramePartInSet, "TPA", "TPOS", "TPOS", "Part of a set", fieldsText},
	{FramePublisher, "TPB", "TPUB", "TPUB", "Publisher", fieldsText},
	{FrameTrackNum, "TRK", "TRCK", "TRCK", "Track number/Position in set", fieldsText},
	{FrameRecordingDates, "TRD", "TRDA", "", "Recording dates", fieldsText},
	{FrameNetRadioStation, "", "TRSN", "TRSN", "Internet radio station name", fieldsText},
	{FrameNetRadioOwner, "", "TRSO", "TRSO", "Internet radio station owner", fieldsText},
	{FrameSize, "TSI", "TSIZ", "", "Size", fieldsText},
	{FrameISRC, "TRC", "TSRC", "TSRC", "ISRC (international standard recording code)", fieldsText},
	{FrameEncoderSettings, "TSS", "TSSE", "TSSE", "Software/Hardware and settings used for encoding", fieldsText},
	{FrameYear, "TYE", "TYER", "", "Year", fieldsText},
	{FrameUserText, "TXX", "TXXX", "TXXX", "User defined text information frame", fieldsUserText},
	{FrameInvolvedPeople, "IPL", "IPLS", "TIPL", "Involved people list", fieldsText},

	{FrameRecordingTime, "", "", "TDRC", "Recording time", fieldsText},
	{FrameOrigReleaseTime, "", "", "TDOR", "Original release time", fieldsText},
	{FrameEncodingTime, "", "", "TDEN", "Encoding time", fieldsText},
	{FrameReleaseTime, "", "", "TDRL", "Release time", fieldsText},
	{FrameTaggingTime, "", "", "TDTG", "Tagging time", fieldsText},
	{FrameMusicianCredits, "", "", "TMCL", "Musician credits list", fieldsText},
	{FrameMood, "", "", "TMOO", "Mood", fieldsText},
	{FrameProducedNotice, "", "", "TPRO", "Produced notice", fieldsText},
	{FrameAlbumSortOrder, "", "", "TSOA", "Album sort order", fieldsText},
	{FramePerformerSortOrder, "", "", "TSOP", "Performer sort order", fieldsText},
	{FrameTitleSortOrder, "", "", "TSOT", "Title sort order", fieldsText},
	{FrameSetSubtitle, "", "", "TSST", "Set subtitle", fieldsText},
	{FrameAlbumArtistSortOrder, "TS2", "TSO2", "TSO2", "Album Artist sort order", fieldsText}, // iTunes extension
	{FrameComposerSortOrder, "TSC", "TSOC", "TSOC", "Composer sort order", fieldsText},        // iTunes extension

	{FrameWWWCommercial, "WCM", "WCOM", "WCOM", "Commercial information", fieldsURL},
	{FrameWWWCopyright, "WCP", "WCOP", "WCOP", "Copyright/Legal information", fieldsURL},
	{FrameWWWAudioFile, "WAF", "WOAF", "WOAF", "Official audio file webpage", fieldsURL},
	{FrameWWWArtist, "WAR", "WOAR", "WOAR", "Official artist/performer webpage", fieldsURL},
	{FrameWWWAudioSource, "WAS", "WOAS", "WOAS", "Official audio source webpage", fieldsURL},
	{FrameWWWRadioPage, "", "WORS", "WORS", "Official Internet radio station homepage", fieldsURL},
	{FrameWWWPayment, "", "WPAY", "WPAY", "Payment", fieldsURL},
	{FrameWWWPublisher, "WPB", "WPUB", "WPUB", "Publishers official webpage", fieldsURL},
	{FrameWWWUser, "WXX", "WXXX", "WXXX", "User defined URL link frame", fieldsUserURL},
}

var (
	frameDefByID  = make(map[FrameID]*frameDef, len(frameDefs))
	frameIDsByV22 = make(map[string]FrameID)
	frameIDsByV23 = make(map[string]FrameID)
	frameIDsByV24 = make(map[string]FrameID)
)

func init() {
	for i := range frameDefs {
		d := &frameDefs[i]
		frameDefByID[d.id] = d
		if d.v22 != "" {
			frameIDsByV22[d.v22] = d.id
		}
		if d.v23 != "" {
			frameIDsByV23[d.v23] = d.id
		}
		if d.v24 != "" {
			frameIDsByV24[d.v24] = d.id
		}
	}
}

// PictureTypes names the values of a picture frame's FieldPictureType.
var PictureTypes = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

// PictureType is the value of a picture frame's FieldPictureType.
type PictureType byte

const (
	PictureOther      PictureType = 0
	PictureFrontCover PictureType = 3
	PictureBackCover  PictureType = 4
)

func (p PictureType) String() string {
	if int(p) >= len(PictureTypes) {
		return ""
	}
	return PictureTypes[p]
}

// Valid reports whether id is a frame id that can carry fields.
func (id FrameID) Valid() bool {
	_, ok := frameDefByID[id]
	return ok
}

func (id FrameID) String() string {
	if d, ok := frameDefByID[id]; ok {
		return d.description
	}
	if id == FrameNone {
		return "No frame"
	}
	return fmt.Sprintf("FrameID(%d)", int(id))
}

// WireID returns the id the frame is written with in a tag of version
// v, or "" if the frame does not exist in that version.
func (id FrameID) WireID(v Version) string {
	d, ok := frameDefByID[id]
	if !ok {
		return ""
	}
	switch v.Major() {
	case 2:
		return d.v22
	case 3:
		return d.v23
	default:
		return d.v24
	}
}

// LookupFrameID returns the frame id for a wire id read from a tag of
// version v. Four character ids are looked up in both the v2.3 and
// the v2.4 tables, as writers mix them freely. Unknown ids yield
// FrameUnknown.
func LookupFrameID(wire string, v Version) FrameID {
	if v.Major() == 2 {
		if id, ok := frameIDsByV22[wire]; ok {
			return id
		}
		return FrameUnknown
	}
	first, second := frameIDsByV24, frameIDsByV23
	if v.Major() == 3 {
		first, second = second, first
	}
	if id, ok := first[wire]; ok {
		return id
	}
	if id, ok := second[wire]; ok {
		return id
	}
	return FrameUnknown
}

func (id FrameID) fields() []FieldDef {
	if d, ok := frameDefByID[id]; ok {
		return d.fields
	}
	return nil
}
