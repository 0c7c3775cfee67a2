// Package config loads the tag writing defaults of the command line
// tools from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	id3 "github.com/ryandesign/id3lib-sub001"
)

// Config holds how tags are written.
type Config struct {
	Version  id3.Version
	Padding  int
	Unsync   bool
	Compress bool
	// Encoding, when set, is forced on every frame with a text
	// encoding.
	Encoding *id3.Encoding
	LogLevel string
}

type fileConfig struct {
	Version  string `toml:"version"`
	Padding  int    `toml:"padding"`
	Unsync   bool   `toml:"unsync"`
	Compress bool   `toml:"compress"`
	Encoding string `toml:"encoding"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Version:  id3.DefaultVersion,
		Padding:  1024,
		LogLevel: "info",
	}
}

// Load overlays the keys defined in the file at path on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("version") {
		v, err := ParseVersion(raw.Version)
		if err != nil {
			return Config{}, err
		}
		cfg.Version = v
	}
	if meta.IsDefined("padding") {
		if raw.Padding < 0 {
			return Config{}, fmt.Errorf("parse padding: negative value %d", raw.Padding)
		}
		cfg.Padding = raw.Padding
	}
	if meta.IsDefined("unsync") {
		cfg.Unsync = raw.Unsync
	}
	if meta.IsDefined("compress") {
		cfg.Compress = raw.Compress
	}
	if meta.IsDefined("encoding") {
		e, err := ParseEncoding(raw.Encoding)
		if err != nil {
			return Config{}, err
		}
		cfg.Encoding = &e
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

// ParseVersion accepts "2.3", "v2.3", "3" and the like.
func ParseVersion(raw string) (id3.Version, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "v")
	s = strings.TrimPrefix(s, "2.")
	switch s {
	case "2":
		return id3.V22, nil
	case "3":
		return id3.V23, nil
	case "4":
		return id3.V24, nil
	}
	return 0, fmt.Errorf("parse version: unsupported version %q", raw)
}

func ParseEncoding(raw string) (id3.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "iso-8859-1", "iso88591", "latin1":
		return id3.ISO88591, nil
	case "utf-16", "utf16":
		return id3.UTF16, nil
	case "utf-16be", "utf16be":
		return id3.UTF16BE, nil
	case "utf-8", "utf8":
		return id3.UTF8, nil
	}
	return 0, fmt.Errorf("parse encoding: unknown encoding %q", raw)
}

// Apply sets the version, padding, unsynchronisation and frame options
// of t.
func (c Config) Apply(t *id3.Tag) error {
	if err := t.SetVersion(c.Version); err != nil {
		return err
	}
	if c.Encoding != nil && !c.Encoding.ValidFor(c.Version) {
		return fmt.Errorf("encoding %s cannot be written in %s", *c.Encoding, c.Version)
	}
	t.SetPadding(c.Padding)
	t.SetUnsync(c.Unsync)
	for _, f := range t.Frames() {
		f.SetCompression(c.Compress)
		if c.Encoding != nil {
			if err := f.SetEncoding(*c.Encoding); err != nil {
				return err
			}
		}
	}
	return nil
}
