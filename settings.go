package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

var defaultDimensions = []int{1920, 1080}

// loadSettings reads the JSON settings file. An empty path or a missing file yields the
// defaults so the decorator runs without any configuration.
func loadSettings(path string) (Settings, error) {
	settings := Settings{Dimensions: append([]int(nil), defaultDimensions...)}
	if strings.TrimSpace(path) == "" {
		return settings, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("load settings: open %q: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return settings, fmt.Errorf("load settings: read %q: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("load settings: parse %q: %w", path, err)
	}
	if err := settings.validate(); err != nil {
		return settings, fmt.Errorf("load settings: %q: %w", path, err)
	}
	return settings, nil
}

func (s Settings) validate() error {
	if _, err := s.Canvas(); err != nil {
		return err
	}
	switch strings.ToLower(s.Rasterizer) {
	case "", "rsvg", "chrome":
	default:
		return fmt.Errorf("rasterizer must be 'rsvg' or 'chrome', got %q", s.Rasterizer)
	}
	switch strings.ToLower(s.Format) {
	case "", "png", "jpg", "jpeg":
	default:
		return fmt.Errorf("format must be 'png' or 'jpg', got %q", s.Format)
	}
	if _, err := s.timeout(); err != nil {
		return err
	}
	if s.JPEGQuality < 0 || s.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", s.JPEGQuality)
	}
	return nil
}

func (s Settings) timeout() (time.Duration, error) {
	if strings.TrimSpace(s.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %s", d)
	}
	return d, nil
}

// decoratorOptions turns the settings into Decorator options.
func (s Settings) decoratorOptions() ([]Option, error) {
	canvas, err := s.Canvas()
	if err != nil {
		return nil, err
	}
	timeout, err := s.timeout()
	if err != nil {
		return nil, err
	}

	var rasterizer Rasterizer = RsvgConverter{Binary: s.RsvgConvert}
	if strings.EqualFold(s.Rasterizer, "chrome") {
		rasterizer = ChromeRasterizer{Width: canvas.Width, Height: canvas.Height}
	}

	opts := []Option{
		WithStyle(getEffectiveStyle(DefaultStyle(), s.Style)),
		WithRasterizer(rasterizer),
		WithTimeout(timeout),
		WithStrict(s.Strict),
	}
	switch strings.ToLower(s.Format) {
	case "jpg", "jpeg":
		opts = append(opts, WithJPEG(s.JPEGQuality))
	}
	return opts, nil
}
