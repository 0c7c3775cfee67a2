package id3

import "fmt"

// ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	NoMemory ErrorKind = iota + 1
	NoData
	BadData
	NoBuffer
	SmallBuffer
	InvalidFrameID
	FieldNotFound
	UnknownFieldType
	InvalidVersion
	Zlib
	TooLarge
	NoFile
	ReadOnly
)

var errorKindNames = map[ErrorKind]string{
	NoMemory:         "no memory",
	NoData:           "no data",
	BadData:          "bad data",
	NoBuffer:         "no buffer",
	SmallBuffer:      "buffer too small",
	InvalidFrameID:   "invalid frame id",
	FieldNotFound:    "field not found",
	UnknownFieldType: "unknown field type",
	InvalidVersion:   "invalid tag version",
	Zlib:             "zlib error",
	TooLarge:         "tag too large",
	NoFile:           "no file",
	ReadOnly:         "read only",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the structured error returned by the codec. Two errors
// compare equal under errors.Is when their kinds match.
type Error struct {
	Kind ErrorKind
	Desc string
	Err  error
}

// Sentinels for use with errors.Is.
var (
	ErrNoData           = &Error{Kind: NoData}
	ErrBadData          = &Error{Kind: BadData}
	ErrInvalidFrameID   = &Error{Kind: InvalidFrameID}
	ErrFieldNotFound    = &Error{Kind: FieldNotFound}
	ErrUnknownFieldType = &Error{Kind: UnknownFieldType}
	ErrInvalidVersion   = &Error{Kind: InvalidVersion}
	ErrZlib             = &Error{Kind: Zlib}
	ErrTooLarge         = &Error{Kind: TooLarge}
	ErrNoFile           = &Error{Kind: NoFile}
	ErrReadOnly         = &Error{Kind: ReadOnly}

	// ErrNoTag is returned by the Decoder when the input does not
	// start with an ID3v2 tag.
	ErrNoTag = &Error{Kind: NoData, Desc: "no ID3v2 tag"}
)

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Desc: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, desc string) *Error {
	return &Error{Kind: kind, Desc: desc, Err: err}
}

func (e *Error) Error() string {
	s := "id3: " + e.Kind.String()
	if e.Desc != "" {
		s += ": " + e.Desc
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
