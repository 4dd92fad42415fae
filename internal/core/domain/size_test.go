package domain

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    Size
		wantErr bool
	}{
		{name: "default", size: Size{Width: 250, Height: 250}},
		{name: "single pixel", size: Size{Width: 1, Height: 1}},
		{name: "zero width", size: Size{Width: 0, Height: 250}, wantErr: true},
		{name: "negative height", size: Size{Width: 250, Height: -1}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.size.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSize)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSizeFit(t *testing.T) {
	tests := []struct {
		name   string
		bound  Size
		source Size
		want   Size
	}{
		{
			name:   "wide source touches width",
			bound:  Size{Width: 250, Height: 250},
			source: Size{Width: 500, Height: 100},
			want:   Size{Width: 250, Height: 50},
		},
		{
			name:   "tall source touches height",
			bound:  Size{Width: 250, Height: 250},
			source: Size{Width: 100, Height: 1000},
			want:   Size{Width: 25, Height: 250},
		},
		{
			name:   "smaller source is not enlarged",
			bound:  Size{Width: 250, Height: 250},
			source: Size{Width: 40, Height: 30},
			want:   Size{Width: 40, Height: 30},
		},
		{
			name:   "exact fit is unchanged",
			bound:  Size{Width: 64, Height: 64},
			source: Size{Width: 64, Height: 64},
			want:   Size{Width: 64, Height: 64},
		},
		{
			name:   "larger in one dimension only",
			bound:  Size{Width: 250, Height: 250},
			source: Size{Width: 300, Height: 100},
			want:   Size{Width: 250, Height: 83},
		},
		{
			name:   "non-square bound",
			bound:  Size{Width: 300, Height: 100},
			source: Size{Width: 400, Height: 400},
			want:   Size{Width: 100, Height: 100},
		},
		{
			name:   "extreme aspect keeps one pixel",
			bound:  Size{Width: 250, Height: 250},
			source: Size{Width: 10000, Height: 2},
			want:   Size{Width: 250, Height: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.bound.Fit(tc.source)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, got.Width, tc.bound.Width)
			assert.LessOrEqual(t, got.Height, tc.bound.Height)
		})
	}
}

func TestSizeFitPreservesAspect(t *testing.T) {
	bound := Size{Width: 250, Height: 250}

	for _, src := range []Size{{1920, 1080}, {1080, 1920}, {333, 777}, {1001, 999}, {251, 13}} {
		t.Run(src.String(), func(t *testing.T) {
			got := bound.Fit(src)
			require.True(t, got.Width == bound.Width || got.Height == bound.Height)

			// Compare against the ideal, unrounded counterpart of the bound-touching side.
			if got.Width == bound.Width {
				ideal := float64(src.Height) * float64(bound.Width) / float64(src.Width)
				assert.InDelta(t, ideal, float64(got.Height), 1)
			} else {
				ideal := float64(src.Width) * float64(bound.Height) / float64(src.Height)
				assert.InDelta(t, ideal, float64(got.Width), 1)
			}
		})
	}
}

func TestSizeCenter(t *testing.T) {
	tests := []struct {
		name  string
		outer Size
		inner Size
		want  image.Point
	}{
		{name: "wide strip", outer: Size{250, 250}, inner: Size{250, 50}, want: image.Pt(0, 100)},
		{name: "full cover", outer: Size{64, 64}, inner: Size{64, 64}, want: image.Pt(0, 0)},
		{name: "odd padding goes right and bottom", outer: Size{10, 10}, inner: Size{7, 3}, want: image.Pt(1, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.outer.Center(tc.inner))
		})
	}
}
