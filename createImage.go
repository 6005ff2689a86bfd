package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
)

const defaultJPEGQuality = 90

// ChromeRasterizer renders the SVG in headless Chrome and saves a screenshot of the
// root svg element. Useful where librsvg is not installed.
type ChromeRasterizer struct {
	Width, Height int // browser window size; zero keeps chromedp's default
}

// Rasterize loads svgPath from disk so that relative image links resolve against its directory.
func (c ChromeRasterizer) Rasterize(ctx context.Context, svgPath, pngPath string) ConvertResult {
	result := ConvertResult{Command: []string{"chromedp", svgPath, pngPath}, ExitCode: -1}

	absPath, err := filepath.Abs(svgPath)
	if err != nil {
		result.Err = fmt.Errorf("resolve SVG path '%s': %w", svgPath, err)
		return result
	}
	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}).String()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	if c.Width > 0 && c.Height > 0 {
		opts = append(opts, chromedp.WindowSize(c.Width, c.Height))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(fileURL),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		result.Err = fmt.Errorf("chromedp execution failed: %w", err)
		return result
	}
	if len(screenshotBuf) == 0 {
		result.Err = fmt.Errorf("screenshot buffer is empty, screenshot failed")
		return result
	}

	if err := os.WriteFile(pngPath, screenshotBuf, 0o644); err != nil {
		result.Err = fmt.Errorf("write PNG '%s': %w", pngPath, err)
		return result
	}
	result.ExitCode = 0
	return result
}

// encodeJPEG re-encodes the PNG as a JPEG next to it and returns the JPEG path.
func encodeJPEG(pngPath string, quality int) (string, error) {
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}
	img, err := imaging.Open(pngPath)
	if err != nil {
		return "", fmt.Errorf("failed to decode PNG '%s': %w", pngPath, err)
	}
	jpgPath := jpgFileName(pngPath)
	if err := imaging.Save(img, jpgPath, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("failed to encode JPEG '%s': %w", jpgPath, err)
	}
	log.Printf("Re-encoded %s as JPEG (quality %d)", jpgPath, quality)
	return jpgPath, nil
}
