package utils

import (
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// GenerateThumbnail writes a 320px-wide thumbnail next to the source image,
// under a thumbs/ subdirectory. Missing source files are not an error: seed
// records may reference pictures that were never shipped.
func GenerateThumbnail(imageDir, filename string) error {
	src := filepath.Join(imageDir, filename)
	if _, err := os.Stat(src); err != nil {
		return nil
	}

	img, err := imaging.Open(src)
	if err != nil {
		return err
	}

	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	thumbDir := filepath.Join(imageDir, "thumbs")
	if err := os.MkdirAll(thumbDir, os.ModePerm); err != nil {
		return err
	}
	return imaging.Save(thumb, filepath.Join(thumbDir, filename))
}
