package converter

import (
	"fmt"
	"image"
	"image/color"

	"filekit/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

// Lanczos fits images into a fixed canvas using a resampling filter, Lanczos by default.
type Lanczos struct {
	filter imaging.ResampleFilter
}

func NewLanczos() *Lanczos {
	return &Lanczos{filter: imaging.Lanczos}
}

// Scale fits the raster within target, never enlarging it, and pastes it centred onto a canvas of exactly
// target size whose remaining pixels are transparent black. Pasting replaces destination pixels.
func (s *Lanczos) Scale(raster *domain.Raster, target domain.Size) (*image.NRGBA, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	src := Normalize(raster)
	srcSize := domain.Size{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}
	if srcSize.Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", domain.ErrDecode)
	}

	fit := target.Fit(srcSize)

	resized := src
	if fit != srcSize {
		resized = imaging.Resize(src, fit.Width, fit.Height, s.filter)
	}

	offset := target.Center(fit)

	log.Debug().
		Stringer("source", srcSize).
		Stringer("resized", fit).
		Stringer("canvas", target).
		Int("offsetX", offset.X).
		Int("offsetY", offset.Y).
		Msg("fitting image onto canvas")

	canvas := imaging.New(target.Width, target.Height, color.NRGBA{})
	return imaging.Paste(canvas, resized, offset), nil
}

// Normalize converts the raster to 8-bit non-premultiplied RGBA anchored at the origin. Layouts without an
// alpha channel come out fully opaque. The result never shares pixel memory with the raster.
//
// The conversion follows the concrete pixel storage of raster.Image; raster.Layout is only reported in the
// debug log and a mismatched tag does not change the result.
func Normalize(raster *domain.Raster) *image.NRGBA {
	if !raster.Layout.HasAlpha() {
		log.Debug().Stringer("layout", raster.Layout).Msg("adding opaque alpha channel")
	}
	return imaging.Clone(raster.Image)
}
