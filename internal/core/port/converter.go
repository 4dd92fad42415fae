package port

import (
	"context"
	"image"

	"filekit/internal/core/domain"
)

type ImageCodec interface {
	// Load reads and fully decodes the image at path.
	Load(path string) (*domain.Raster, error)
	// Save encodes img in the format implied by the extension of path and writes it there.
	Save(path string, img image.Image) error
}

type ImageScaler interface {
	// Scale fits the raster within target without enlarging it and centres it on a transparent canvas of exactly
	// target size.
	Scale(raster *domain.Raster, target domain.Size) (*image.NRGBA, error)
}

type BatchScaler interface {
	// ScaleFiles scales each path in order, recording failures without stopping.
	ScaleFiles(ctx context.Context, paths []string, target domain.Size, suffix string) domain.Report
	// ScaleDir scales every file in dir matching pattern.
	ScaleDir(ctx context.Context, dir, pattern string, target domain.Size, suffix string) (domain.Report, error)
}
