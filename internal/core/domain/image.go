package domain

import (
	"fmt"
	"image"
)

// Layout is the channel layout of a decoded image.
type Layout int

const (
	LayoutUnknown Layout = iota
	LayoutGray
	LayoutRGB
	LayoutRGBA
	LayoutPaletted
	LayoutCMYK
	LayoutYCbCr
	LayoutYCbCrA
)

var layoutNames = map[Layout]string{
	LayoutUnknown:  "unknown",
	LayoutGray:     "gray",
	LayoutRGB:      "rgb",
	LayoutRGBA:     "rgba",
	LayoutPaletted: "paletted",
	LayoutCMYK:     "cmyk",
	LayoutYCbCr:    "ycbcr",
	LayoutYCbCrA:   "ycbcra",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// HasAlpha reports whether the layout can carry per-pixel transparency.
// Paletted images may hold transparent palette entries.
func (l Layout) HasAlpha() bool {
	switch l {
	case LayoutRGBA, LayoutPaletted, LayoutYCbCrA:
		return true
	default:
		return false
	}
}

// LayoutOf classifies the concrete pixel storage of img.
func LayoutOf(img image.Image) Layout {
	switch i := img.(type) {
	case *image.Gray, *image.Gray16:
		return LayoutGray
	case *image.RGBA:
		if i.Opaque() {
			return LayoutRGB
		}
		return LayoutRGBA
	case *image.RGBA64:
		if i.Opaque() {
			return LayoutRGB
		}
		return LayoutRGBA
	case *image.NRGBA, *image.NRGBA64:
		return LayoutRGBA
	case *image.Paletted:
		return LayoutPaletted
	case *image.CMYK:
		return LayoutCMYK
	case *image.NYCbCrA:
		return LayoutYCbCrA
	case *image.YCbCr:
		return LayoutYCbCr
	default:
		return LayoutUnknown
	}
}

// Raster is a decoded image tagged with its channel layout and source format.
type Raster struct {
	Layout Layout
	Format string
	Image  image.Image
}

func NewRaster(img image.Image, format string) *Raster {
	return &Raster{Layout: LayoutOf(img), Format: format, Image: img}
}

func (r *Raster) Size() Size {
	b := r.Image.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}
