package id3

import "github.com/rs/zerolog"

// Logger receives the codec's diagnostics: skipped frames at warn
// level, parsed frames and version migrations at debug level. It
// discards everything unless replaced with SetLogger.
var Logger = zerolog.Nop()

// SetLogger replaces the package logger. It must not be called
// concurrently with parsing or rendering.
func SetLogger(l zerolog.Logger) {
	Logger = l.With().Str("component", "id3").Logger()
}
