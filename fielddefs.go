package id3

import "fmt"

// FieldID names the semantic role of a field within a frame.
type FieldID int

const (
	FieldNone FieldID = iota
	FieldTextEnc
	FieldText
	FieldURL
	FieldData
	FieldDescription
	FieldOwner
	FieldEmail
	FieldRating
	FieldFilename
	FieldLanguage
	FieldPictureType
	FieldImageFormat
	FieldMimeType
	FieldCounter
	FieldSymbol
	FieldTimestampFormat
	FieldContentType
	FieldPrice
	FieldDate
	FieldSeller
)

var fieldNames = [...]string{
	FieldNone:            "NOFIELD",
	FieldTextEnc:         "TEXTENC",
	FieldText:            "TEXT",
	FieldURL:             "URL",
	FieldData:            "DATA",
	FieldDescription:     "DESCRIPTION",
	FieldOwner:           "OWNER",
	FieldEmail:           "EMAIL",
	FieldRating:          "RATING",
	FieldFilename:        "FILENAME",
	FieldLanguage:        "LANGUAGE",
	FieldPictureType:     "PICTURETYPE",
	FieldImageFormat:     "IMAGEFORMAT",
	FieldMimeType:        "MIMETYPE",
	FieldCounter:         "COUNTER",
	FieldSymbol:          "SYMBOL",
	FieldTimestampFormat: "TIMESTAMPFORMAT",
	FieldContentType:     "CONTENTTYPE",
	FieldPrice:           "PRICE",
	FieldDate:            "DATE",
	FieldSeller:          "SELLER",
}

func (id FieldID) String() string {
	if id >= 0 && int(id) < len(fieldNames) {
		return fieldNames[id]
	}
	return fmt.Sprintf("FieldID(%d)", int(id))
}

// FieldType selects the value representation of a field.
type FieldType int

const (
	FieldBinary FieldType = iota
	FieldInteger
	FieldTextString
)

func (t FieldType) String() string {
	switch t {
	case FieldBinary:
		return "binary"
	case FieldInteger:
		return "integer"
	case FieldTextString:
		return "text"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// FieldFlags modify how a field is parsed and rendered.
type FieldFlags uint8

const (
	FlagNone FieldFlags = 0
	// FlagCString marks a NUL terminated string.
	FlagCString FieldFlags = 1 << iota
	// FlagEncodable marks text that follows the frame's text encoding.
	// Other text is always ISO-8859-1.
	FlagEncodable
	// FlagList marks text holding several NUL separated items.
	FlagList
)

// Scope says on which side of a FieldDef's MinVersion the field exists.
type Scope int

const (
	// ScopeHigher fields exist at MinVersion and above.
	ScopeHigher Scope = iota
	// ScopeLower fields exist at MinVersion and below.
	ScopeLower
)

// FieldDef describes one field of a frame layout.
type FieldDef struct {
	ID         FieldID
	Type       FieldType
	FixedSize  int
	MinVersion Version
	Scope      Scope
	Flags      FieldFlags
}

// InScope reports whether the field exists in a tag of version v.
// Revisions do not change the field layout, so only the major
// version is compared.
func (d FieldDef) InScope(v Version) bool {
	if d.Scope == ScopeLower {
		return v.Major() <= d.MinVersion.Major()
	}
	return v.Major() >= d.MinVersion.Major()
}

// Field layouts, in wire order. A FieldDef without MinVersion exists in
// every version.
var (
	fieldsText = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldText, Type: FieldTextString, Flags: FlagEncodable | FlagList},
	}
	fieldsUserText = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldText, Type: FieldTextString, Flags: FlagEncodable},
	}
	fieldsURL = []FieldDef{
		{ID: FieldURL, Type: FieldTextString},
	}
	fieldsUserURL = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldURL, Type: FieldTextString},
	}
	fieldsComment = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldLanguage, Type: FieldTextString, FixedSize: 3},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldText, Type: FieldTextString, Flags: FlagEncodable},
	}
	fieldsPicture = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldImageFormat, Type: FieldTextString, FixedSize: 3, MinVersion: V22, Scope: ScopeLower},
		{ID: FieldMimeType, Type: FieldTextString, MinVersion: V23, Scope: ScopeHigher, Flags: FlagCString},
		{ID: FieldPictureType, Type: FieldInteger, FixedSize: 1},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsObject = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldMimeType, Type: FieldTextString, Flags: FlagCString},
		{ID: FieldFilename, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsOwnerData = []FieldDef{
		{ID: FieldOwner, Type: FieldTextString, Flags: FlagCString},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsCounter = []FieldDef{
		{ID: FieldCounter, Type: FieldInteger, FixedSize: 4},
	}
	fieldsPopularimeter = []FieldDef{
		{ID: FieldEmail, Type: FieldTextString, Flags: FlagCString},
		{ID: FieldRating, Type: FieldInteger, FixedSize: 1},
		{ID: FieldCounter, Type: FieldInteger, FixedSize: 4},
	}
	fieldsTermsOfUse = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldLanguage, Type: FieldTextString, FixedSize: 3},
		{ID: FieldText, Type: FieldTextString, Flags: FlagEncodable},
	}
	fieldsGroupRegistration = []FieldDef{
		{ID: FieldOwner, Type: FieldTextString, Flags: FlagCString},
		{ID: FieldSymbol, Type: FieldInteger, FixedSize: 1},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsSyncedLyrics = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldLanguage, Type: FieldTextString, FixedSize: 3},
		{ID: FieldTimestampFormat, Type: FieldInteger, FixedSize: 1},
		{ID: FieldContentType, Type: FieldInteger, FixedSize: 1},
		{ID: FieldDescription, Type: FieldTextString, Flags: FlagCString | FlagEncodable},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsTimedData = []FieldDef{
		{ID: FieldTimestampFormat, Type: FieldInteger, FixedSize: 1},
		{ID: FieldData, Type: FieldBinary},
	}
	fieldsOwnership = []FieldDef{
		{ID: FieldTextEnc, Type: FieldInteger, FixedSize: 1},
		{ID: FieldPrice, Type: FieldTextString, Flags: FlagCString},
		{ID: FieldDate, Type: FieldTextString, FixedSize: 8},
		{ID: FieldSeller, Type: FieldTextString, Flags: FlagEncodable},
	}
	fieldsData = []FieldDef{
		{ID: FieldData, Type: FieldBinary},
	}
)
