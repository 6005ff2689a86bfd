package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// probePhotoSize fills in a missing width or height by reading the image header of the
// photo, which is expected in dir. Photo infos that already carry both sizes are returned as is.
func probePhotoSize(photo PhotoInfo, dir string) (PhotoInfo, error) {
	if photo.Width > 0 && photo.Height > 0 {
		return photo, nil
	}
	path := filepath.Join(dir, photo.FileName)
	log.Printf("Photo size missing, probing %s", path)

	file, err := os.Open(path)
	if err != nil {
		return photo, fmt.Errorf("probe photo: open '%s': %w", path, err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return photo, fmt.Errorf("probe photo: decode '%s': %w", path, err)
	}
	log.Printf("Probed %s photo: %dx%d", format, cfg.Width, cfg.Height)

	photo.Width = cfg.Width
	photo.Height = cfg.Height
	return photo, nil
}
