package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"
)

const defaultRsvgConvert = "rsvg-convert"

// ConvertResult captures what happened when the rasterizer ran.
type ConvertResult struct {
	Command  []string
	ExitCode int    // -1 when the process could not be started or was killed
	Output   []byte // combined stdout and stderr
	Err      error
}

// OK reports whether the conversion finished with exit status 0.
func (r ConvertResult) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

func (r ConvertResult) String() string {
	status := fmt.Sprintf("exit status %d", r.ExitCode)
	if r.Err != nil {
		status = r.Err.Error()
	}
	out := strings.TrimSpace(string(r.Output))
	if out == "" {
		return fmt.Sprintf("%s: %s", strings.Join(r.Command, " "), status)
	}
	return fmt.Sprintf("%s: %s: %s", strings.Join(r.Command, " "), status, out)
}

// Rasterizer turns an SVG file into a PNG file.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath, pngPath string) ConvertResult
}

// RsvgConverter runs librsvg's command line converter.
type RsvgConverter struct {
	Binary string // defaults to "rsvg-convert" on PATH
}

// Rasterize runs `rsvg-convert <svgPath> -o <pngPath>` and waits for it to exit.
func (c RsvgConverter) Rasterize(ctx context.Context, svgPath, pngPath string) ConvertResult {
	bin := c.Binary
	if bin == "" {
		bin = defaultRsvgConvert
	}
	args := []string{svgPath, "-o", pngPath}
	result := ConvertResult{Command: append([]string{bin}, args...)}

	cmd := exec.CommandContext(ctx, bin, args...)
	output, err := cmd.CombinedOutput()
	result.Output = output
	result.ExitCode = exitCode(cmd, err)

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		result.Err = fmt.Errorf("rsvg-convert interrupted: %w", ctx.Err())
	case err != nil && !errors.As(err, &exitErr):
		result.Err = fmt.Errorf("run %s: %w", bin, err)
	}
	return result
}

func exitCode(cmd *exec.Cmd, err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil || cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

// writeDocument writes the document to path, replacing whatever was there.
func writeDocument(path string, doc Document) error {
	log.Printf("Writing SVG file: %s", path)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create SVG file '%s': %w", path, err)
	}
	if _, err := doc.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("write SVG file '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close SVG file '%s': %w", path, err)
	}
	return nil
}

// convert rasterizes svgPath next to itself and returns the PNG path along with the
// rasterizer's result. The PNG path is returned even when the conversion failed.
// A timeout of zero waits for the rasterizer indefinitely.
func convert(ctx context.Context, r Rasterizer, svgPath string, timeout time.Duration) (string, ConvertResult) {
	pngPath := pngFileName(svgPath)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	log.Printf("Converting %s to %s", svgPath, pngPath)
	return pngPath, r.Rasterize(ctx, svgPath, pngPath)
}
