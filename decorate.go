package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"
)

// ErrConversionFailed is returned by a strict Decorator when the rasterizer fails.
var ErrConversionFailed = errors.New("conversion failed")

// ErrNoExtension is returned when the photo file name has no extension to replace,
// so the decorated output would overwrite the photo itself.
var ErrNoExtension = errors.New("photo file name has no extension")

// Decorator composes decorated wallpapers for one fixed canvas size.
// It holds no mutable state and is safe to reuse.
type Decorator struct {
	canvas      CanvasSpec
	style       Style
	rasterizer  Rasterizer
	timeout     time.Duration
	strict      bool
	jpeg        bool
	jpegQuality int
}

// Option configures a Decorator.
type Option func(*Decorator)

// WithStyle replaces the default fonts and colors.
func WithStyle(style Style) Option {
	return func(d *Decorator) {
		d.style = style
	}
}

// WithRasterizer replaces the default rsvg-convert rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(d *Decorator) {
		d.rasterizer = r
	}
}

// WithTimeout bounds how long the rasterizer may run. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Decorator) {
		d.timeout = timeout
	}
}

// WithStrict makes Decorate return ErrConversionFailed when the rasterizer fails.
// By default such failures are only logged and the PNG path is returned anyway.
func WithStrict(strict bool) Option {
	return func(d *Decorator) {
		d.strict = strict
	}
}

// WithJPEG re-encodes the rasterized PNG as a JPEG and returns the JPEG path instead.
func WithJPEG(quality int) Option {
	return func(d *Decorator) {
		d.jpeg = true
		d.jpegQuality = quality
	}
}

// NewDecorator creates a Decorator for the given canvas.
func NewDecorator(canvas CanvasSpec, opts ...Option) (*Decorator, error) {
	if err := canvas.validate(); err != nil {
		return nil, fmt.Errorf("decorator: %w", err)
	}
	d := &Decorator{
		canvas:     canvas,
		style:      DefaultStyle(),
		rasterizer: RsvgConverter{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Canvas returns the canvas the Decorator draws on.
func (d *Decorator) Canvas() CanvasSpec { return d.canvas }

// Decorate writes {outputDir}/{base}-decorated.svg for the photo, rasterizes it and returns
// the path of the resulting image.
//
// Unless the Decorator is strict, the rasterizer's outcome is not checked: the returned
// path may not exist if the conversion failed. Callers rely on this leniency. A partially
// written SVG is left in place on failure and nothing is retried.
func (d *Decorator) Decorate(ctx context.Context, photo PhotoInfo, outputDir string) (string, error) {
	doc, err := buildDocument(d.canvas, d.style, photo)
	if err != nil {
		return "", err
	}

	svgName := svgFileName(photo.FileName)
	if svgName == photo.FileName {
		return "", fmt.Errorf("decorate %q: %w", photo.FileName, ErrNoExtension)
	}
	svgPath := filepath.Join(outputDir, svgName)
	if err := writeDocument(svgPath, doc); err != nil {
		return "", err
	}

	pngPath, result := convert(ctx, d.rasterizer, svgPath, d.timeout)
	if !result.OK() {
		if d.strict {
			return "", fmt.Errorf("%w: %s", ErrConversionFailed, result)
		}
		log.Printf("Warning: rasterizer did not succeed, returning %s anyway (%s)", pngPath, result)
		return pngPath, nil
	}

	if !d.jpeg {
		return pngPath, nil
	}
	jpgPath, err := encodeJPEG(pngPath, d.jpegQuality)
	if err != nil {
		return "", err
	}
	return jpgPath, nil
}
