package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const maxPhotoDimension = 1200

// PhotoProcessor validates uploaded photos and downscales oversized ones
// before they reach the archive store.
type PhotoProcessor struct {
	MaxSize int64 // bytes
}

func NewPhotoProcessor() *PhotoProcessor {
	return &PhotoProcessor{MaxSize: 5 * 1024 * 1024}
}

func (p *PhotoProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("photo exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// Normalize re-encodes photos larger than maxPhotoDimension as JPEG quality 90.
// Photos already within bounds pass through untouched.
func (p *PhotoProcessor) Normalize(data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	if cfg.Width <= maxPhotoDimension && cfg.Height <= maxPhotoDimension {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, maxPhotoDimension, maxPhotoDimension, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}
