// Command scripta converts HTML documents to plain text on the command
// line, optionally emitting annotation spans as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/scripta"
	"github.com/tsawler/scripta/model"
)

func main() {
	cmd := &cli.Command{
		Name:      "scripta",
		Usage:     "convert HTML documents to annotated plain text",
		ArgsUsage: "[files...] (stdin when no files are given)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "links", Aliases: []string{"l"}, Usage: "display link targets"},
			&cli.BoolFlag{Name: "anchors", Usage: "display anchor names when no link target is shown"},
			&cli.BoolFlag{Name: "images", Aliases: []string{"i"}, Usage: "display image captions"},
			&cli.BoolFlag{Name: "dedup-captions", Usage: "suppress repeated image captions"},
			&cli.StringFlag{Name: "profile", Value: "relaxed", Usage: "style profile: strict or relaxed"},
			&cli.StringFlag{Name: "annotations", Aliases: []string{"a"}, Usage: "annotation mapping file (JSON or YAML)"},
			&cli.BoolFlag{Name: "json", Usage: "emit text and annotations as a JSON object"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("preparing logs: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	mapping, err := loadMapping(cmd.String("annotations"))
	if err != nil {
		return err
	}

	out := os.Stdout
	if name := cmd.String("output"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		files = []string{"-"}
	}

	var errs error
	for _, file := range files {
		log.Debug("converting", zap.String("file", file))
		if err := convertOne(cmd, file, mapping, out); err != nil {
			log.Error("conversion failed", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}
	return errs
}

func convertOne(cmd *cli.Command, file string, mapping map[string][]string, out *os.File) error {
	var conv *scripta.Converter
	if file == "-" {
		conv = scripta.FromReader(os.Stdin)
	} else {
		conv = scripta.Open(file)
	}

	if cmd.String("profile") == "strict" {
		conv = conv.StrictProfile()
	} else if cmd.String("profile") != "relaxed" {
		return fmt.Errorf("unknown profile %q", cmd.String("profile"))
	}
	if cmd.Bool("links") {
		conv = conv.DisplayLinks()
	}
	if cmd.Bool("anchors") {
		conv = conv.DisplayAnchors()
	}
	if cmd.Bool("images") {
		conv = conv.DisplayImages()
	}
	if cmd.Bool("dedup-captions") {
		conv = conv.DeduplicateCaptions()
	}
	if mapping != nil {
		conv = conv.Annotate(mapping)
	}

	result, err := conv.Convert()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(out)
		return enc.Encode(struct {
			Text        string             `json:"text"`
			Annotations []model.Annotation `json:"annotations"`
		}{result.Text, result.Annotations})
	}

	_, err = fmt.Fprintln(out, result.Text)
	return err
}

// loadMapping reads an annotation mapping file. YAML and JSON are
// distinguished by file extension; JSON matches the mapping format used
// by annotation profiles elsewhere.
func loadMapping(name string) (map[string][]string, error) {
	if name == "" {
		return nil, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading annotation mapping: %w", err)
	}

	mapping := make(map[string][]string)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &mapping); err != nil {
			return nil, fmt.Errorf("parsing annotation mapping %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &mapping); err != nil {
			return nil, fmt.Errorf("parsing annotation mapping %s: %w", name, err)
		}
	}
	return mapping, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
