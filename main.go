// main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// --- Main Program Logic ---

func main() {
	// --- Argument Parsing using flag package ---
	settingsFile := flag.String("settings", "", "Path to the JSON settings file (default: built-in settings)")
	width := flag.Int("width", 0, "Canvas width in pixels (overrides settings)")
	height := flag.Int("height", 0, "Canvas height in pixels (overrides settings)")
	rasterizer := flag.String("rasterizer", "", "Rasterizer: rsvg or chrome (overrides settings)")
	rsvgConvert := flag.String("rsvg-convert", "", "Path to the rsvg-convert binary (overrides settings)")
	timeout := flag.String("timeout", "", "Rasterizer timeout, e.g. 30s (overrides settings)")
	strict := flag.Bool("strict", false, "Fail when the rasterizer fails instead of only logging it")
	format := flag.String("format", "", "Output format: png or jpg (overrides settings)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <photo.json> <output-dir>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <photo.json>   Path to the photo info file (file_name, width, height, title, author, source, ref_url).")
		fmt.Fprintln(os.Stderr, "  <output-dir>   Directory holding the photo; the decorated files are written there.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	photoFile := args[0]
	outputDir := args[1]

	// --- Settings ---
	if *settingsFile != "" {
		log.Printf("Loading settings: %s", *settingsFile)
	}
	settings, err := loadSettings(*settingsFile)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	if *width > 0 {
		settings.Dimensions[0] = *width
	}
	if *height > 0 {
		settings.Dimensions[1] = *height
	}
	if *rasterizer != "" {
		settings.Rasterizer = *rasterizer
	}
	if *rsvgConvert != "" {
		settings.RsvgConvert = *rsvgConvert
	}
	if *timeout != "" {
		settings.Timeout = *timeout
	}
	if *format != "" {
		settings.Format = *format
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			settings.Strict = *strict
		}
	})
	if err := settings.validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	// --- Photo Info ---
	log.Printf("Reading photo info file: %s", photoFile)
	photoBytes, err := os.ReadFile(photoFile)
	if err != nil {
		log.Fatalf("Error reading photo info file '%s': %v", photoFile, err)
	}
	var photo PhotoInfo
	if err := json.Unmarshal(photoBytes, &photo); err != nil {
		log.Fatalf("Error parsing photo info JSON '%s': %v", photoFile, err)
	}
	if strings.TrimSpace(photo.FileName) == "" {
		log.Fatalf("Photo info error: file_name is missing in '%s'", photoFile)
	}
	photo, err = probePhotoSize(photo, outputDir)
	if err != nil {
		log.Fatalf("Error determining photo size: %v", err)
	}

	// --- Decoration ---
	canvas, err := settings.Canvas()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	opts, err := settings.decoratorOptions()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	decorator, err := NewDecorator(canvas, opts...)
	if err != nil {
		log.Fatalf("Error creating decorator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Decorating %s for a %dx%d canvas", photo.FileName, canvas.Width, canvas.Height)
	outputPath, err := decorator.Decorate(ctx, photo, outputDir)
	if err != nil {
		log.Fatalf("Error decorating photo: %v", err)
	}
	log.Printf("Output saved to: %s", outputPath)
	fmt.Println(outputPath)
}
