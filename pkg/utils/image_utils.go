package utils

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type ImageProbe struct {
	log *zap.Logger
}

func NewImageProbe(log *zap.Logger) *ImageProbe {
	return &ImageProbe{log: log}
}

// Dimensions reads the pixel size from the image header without decoding
// the full bitmap. A file that cannot be parsed reports 0x0; the slideshow
// classifier substitutes its landscape placeholder, so a broken header never
// blocks an upload.
func (p *ImageProbe) Dimensions(fileBytes []byte) (width, height int) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(fileBytes))
	if err != nil {
		p.log.Warn("Failed to read image dimensions", zap.Error(err))
		return 0, 0
	}

	p.log.Debug("Image dimensions probed",
		zap.String("format", format),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	return cfg.Width, cfg.Height
}

// ContentTypeForFilename maps a filename extension to its MIME type,
// defaulting to JPEG.
func ContentTypeForFilename(filename string) string {
	if strings.ToLower(filepath.Ext(filename)) == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}
