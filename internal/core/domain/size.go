package domain

import (
	"fmt"
	"image"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %s, width and height must be positive", ErrInvalidSize, s)
	}
	return nil
}

func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Fit returns the size src takes when scaled to fit within s, keeping its aspect
// ratio. Sources that already fit are returned unchanged: Fit never enlarges.
// The limiting dimension matches the bound exactly; the other is floored and
// kept at one pixel or more.
func (s Size) Fit(src Size) Size {
	if src.Width <= s.Width && src.Height <= s.Height {
		return src
	}

	// s.Width/src.Width <= s.Height/src.Height, cross-multiplied.
	if s.Width*src.Height <= s.Height*src.Width {
		return Size{Width: s.Width, Height: max(1, src.Height*s.Width/src.Width)}
	}

	return Size{Width: max(1, src.Width*s.Height/src.Height), Height: s.Height}
}

// Center returns the offset that centres inner within s. When the free space is
// odd the extra pixel lands on the right or bottom.
func (s Size) Center(inner Size) image.Point {
	return image.Pt((s.Width-inner.Width)/2, (s.Height-inner.Height)/2)
}
