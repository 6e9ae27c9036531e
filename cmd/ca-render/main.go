package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/sims/elementary"

	"github.com/guptarohit/asciigraph"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "rule.png", "output file (.png or .svg), - for stdout")
	format := flag.String("format", "", "output format: png or svg (default from -out extension)")
	thumb := flag.String("thumbnail", "", "also write a one-pixel-per-cell PNG here")
	stats := flag.Bool("stats", false, "print a chart of live-cell density per generation")
	set := flag.String("set", "", "override parameters as k=v pairs (rule, steps, cell, seed, seeding, random)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params := cfg.Automaton()
	if *set != "" {
		pairs, err := elementary.ParsePairs(*set)
		if err != nil {
			log.Fatalf("-set: %v", err)
		}
		params, err = overlay(params, pairs)
		if err != nil {
			log.Fatalf("-set: %v", err)
		}
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	display := cfg.Display(0)
	if err := elementary.CheckDisplay(params, display); err != nil {
		log.Fatal(err)
	}

	frame := elementary.New(params, display).Frame()
	logger.Info("generated",
		"rule", params.Rule,
		"table", frame.Table().String(),
		"seeding", params.Seeding.String(),
		"cols", frame.Cols(),
		"rows", frame.Rows(),
		"canvas", fmt.Sprintf("%dx%d", frame.Canvas().W, frame.Canvas().H))

	kind, err := outputFormat(*format, *out)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeFile(*out, func(w io.Writer) error {
		return encode(w, kind, frame)
	}); err != nil {
		log.Fatal(err)
	}
	logger.Info("wrote", "path", *out, "format", kind)

	if *thumb != "" {
		img := render.Thumbnail(frame.Grid(), render.DefaultStyle())
		if err := writeFile(*thumb, func(w io.Writer) error { return render.WritePNG(w, img) }); err != nil {
			log.Fatal(err)
		}
		logger.Info("wrote", "path", *thumb, "format", "thumbnail")
	}

	if *stats && frame.Rows() > 1 {
		density := elementary.Density(frame.Grid())
		fmt.Fprintln(os.Stderr, asciigraph.Plot(density,
			asciigraph.Height(8),
			asciigraph.Width(min(len(density), 72)),
			asciigraph.Precision(2),
			asciigraph.Caption(fmt.Sprintf("rule %d live-cell density per generation", params.Rule))))
	}
}

// overlay applies -set pairs on top of the flag values.
func overlay(base elementary.Config, pairs map[string]string) (elementary.Config, error) {
	merged := map[string]string{
		"rule":    fmt.Sprint(base.Rule),
		"steps":   fmt.Sprint(base.Steps),
		"cell":    fmt.Sprint(base.CellSize),
		"seed":    fmt.Sprint(base.Seed),
		"seeding": base.Seeding.String(),
	}
	for k, v := range pairs {
		if k == "random" {
			delete(merged, "seeding")
		}
		merged[k] = v
	}
	return elementary.FromMap(merged)
}

func outputFormat(format, path string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if format == "" {
			format = "png"
		}
	}
	switch format {
	case "png", "svg":
		return format, nil
	}
	return "", fmt.Errorf("unsupported output format %q", format)
}

func encode(w io.Writer, kind string, f *elementary.Frame) error {
	style := render.DefaultStyle()
	if kind == "svg" {
		title := fmt.Sprintf("Rule %d", f.Config().Rule)
		return render.WriteSVG(w, f.Grid(), f.CellSize(), f.Canvas(), style, title)
	}
	return render.WritePNG(w, render.Render(f.Grid(), f.CellSize(), f.Canvas(), style))
}

func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
