package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	id3 "github.com/ryandesign/id3lib-sub001"
	"github.com/ryandesign/id3lib-sub001/internal/config"
	"github.com/ryandesign/id3lib-sub001/internal/logging"
)

type options struct {
	title, artist, album string
	comment, picture     string
	version, encoding    string
	padding              int
	unsync, compress     bool
	strip                bool
	configPath           string
}

func parseFlags() (options, map[string]bool) {
	var o options
	flag.StringVar(&o.title, "title", "", "set the title")
	flag.StringVar(&o.artist, "artist", "", "set the lead artist")
	flag.StringVar(&o.album, "album", "", "set the album")
	flag.StringVar(&o.comment, "comment", "", "add a comment")
	flag.StringVar(&o.picture, "picture", "", "attach an image file as front cover")
	flag.StringVar(&o.version, "version", "", "tag version to write: 2.2, 2.3 or 2.4")
	flag.StringVar(&o.encoding, "encoding", "", "force a text encoding on every frame")
	flag.IntVar(&o.padding, "padding", 0, "bytes of padding to reserve")
	flag.BoolVar(&o.unsync, "unsync", false, "unsynchronise the tag")
	flag.BoolVar(&o.compress, "compress", false, "compress frames")
	flag.BoolVar(&o.strip, "strip", false, "remove the tag instead of editing it")
	flag.StringVar(&o.configPath, "config", "", "TOML file with writing defaults")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set
}

func loadConfig(o options, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if set["version"] {
		v, err := config.ParseVersion(o.version)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Version = v
	}
	if set["encoding"] {
		e, err := config.ParseEncoding(o.encoding)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Encoding = &e
	}
	if set["padding"] {
		cfg.Padding = o.padding
	}
	if set["unsync"] {
		cfg.Unsync = o.unsync
	}
	if set["compress"] {
		cfg.Compress = o.compress
	}
	return cfg, nil
}

func edit(file *id3.File, o options) error {
	if o.title != "" {
		if err := file.SetTitle(o.title); err != nil {
			return err
		}
	}
	if o.artist != "" {
		if err := file.SetArtist(o.artist); err != nil {
			return err
		}
	}
	if o.album != "" {
		if err := file.SetAlbum(o.album); err != nil {
			return err
		}
	}
	if o.comment != "" {
		if err := file.AddComment(id3.Comment{Text: o.comment}); err != nil {
			return err
		}
	}
	if o.picture != "" {
		data, err := os.ReadFile(o.picture)
		if err != nil {
			return err
		}
		mime := mimetype.Detect(data)
		if !mime.Is("image/jpeg") && !mime.Is("image/png") && !mime.Is("image/gif") {
			return fmt.Errorf("%s: unsupported picture type %s", o.picture, mime)
		}
		err = file.AddPicture(id3.Picture{
			MIMEType: mime.String(),
			Type:     id3.PictureFrontCover,
			Data:     data,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func run(log zerolog.Logger, name string, o options, cfg config.Config) error {
	file, err := id3.Open(name)
	if err != nil {
		return err
	}
	if o.strip {
		log.Info().Str("file", name).Int64("size", file.TagSize()).Msg("stripping tag")
		return file.Strip()
	}
	if err := edit(file, o); err != nil {
		return err
	}
	if err := cfg.Apply(file.Tag); err != nil {
		return err
	}
	if err := file.Save(); err != nil {
		return err
	}
	log.Info().
		Str("file", name).
		Stringer("version", file.Version()).
		Int("frames", file.NumFrames()).
		Int64("size", file.TagSize()).
		Msg("tag written")
	return nil
}

func main() {
	o, set := parseFlags()

	logging.ConfigureRuntime()
	log := logging.Logger()

	cfg, err := loadConfig(o, set)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		log = log.Level(lvl)
	}
	id3.SetLogger(log)

	failed := false
	for _, name := range flag.Args() {
		if err := run(log, name, o, cfg); err != nil {
			log.Error().Err(err).Str("file", name).Msg("editing tag")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
