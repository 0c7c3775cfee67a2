package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	id3 "github.com/ryandesign/id3lib-sub001"
	"github.com/ryandesign/id3lib-sub001/internal/logging"
)

type fileReport struct {
	File    string        `yaml:"file"`
	Version string        `yaml:"version"`
	Size    int           `yaml:"size"`
	Padding int           `yaml:"padding"`
	Skipped int           `yaml:"skipped,omitempty"`
	Frames  []frameReport `yaml:"frames"`
}

type frameReport struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Fields      map[string]string `yaml:"fields"`
}

func fieldValue(fl *id3.Field) string {
	switch fl.Type() {
	case id3.FieldInteger:
		if fl.ID() == id3.FieldTextEnc {
			return id3.Encoding(fl.Int()).String()
		}
		return fmt.Sprint(fl.Int())
	case id3.FieldBinary:
		return fmt.Sprintf("<%d bytes>", len(fl.Binary()))
	default:
		return strings.Join(fl.TextItems(), ", ")
	}
}

func report(name string, tag *id3.Tag) fileReport {
	r := fileReport{
		File:    name,
		Version: tag.Version().String(),
		Size:    int(tag.Header().Size),
		Padding: tag.Padding(),
		Skipped: tag.Skipped(),
	}
	for _, f := range tag.Frames() {
		fr := frameReport{
			ID:          f.WireID(),
			Description: f.ID().String(),
			Fields:      make(map[string]string),
		}
		for _, fl := range f.Fields() {
			fr.Fields[fl.ID().String()] = fieldValue(fl)
		}
		r.Frames = append(r.Frames, fr)
	}
	return r
}

func printText(r fileReport) {
	fmt.Printf("%s: %s, %d bytes\n", r.File, r.Version, r.Size)
	for _, f := range r.Frames {
		var vals []string
		for _, key := range []string{"DESCRIPTION", "TEXT", "URL", "MIMETYPE", "IMAGEFORMAT", "DATA"} {
			if v := f.Fields[key]; v != "" {
				vals = append(vals, v)
			}
		}
		fmt.Printf("%s (%s): %s\n", f.Description, f.ID, strings.Join(vals, ": "))
	}
	if r.Skipped > 0 {
		fmt.Printf("%d frames skipped\n", r.Skipped)
	}
}

func printFile(name, format string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	ok, err := id3.Check(r)
	if err != nil {
		return err
	}
	if !ok {
		log := logging.Logger()
		log.Info().Str("file", name).Msg("no ID3 tag")
		return nil
	}

	tag, err := id3.NewDecoder(r).Parse()
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		b, err := yaml.Marshal(report(name, tag))
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", b)
	case "dump":
		spew.Dump(tag.Frames())
	default:
		printText(report(name, tag))
		fmt.Println()
	}
	return nil
}

func main() {
	format := flag.String("format", "text", "output format: text, yaml or dump")
	flag.Parse()

	logging.ConfigureRuntime()
	id3.SetLogger(logging.Logger())
	log := logging.Logger()

	failed := false
	for _, name := range flag.Args() {
		if err := printFile(name, *format); err != nil {
			log.Error().Err(err).Str("file", name).Msg("reading tag")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
