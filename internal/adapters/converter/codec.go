package converter

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"filekit/internal/adapters/file"
	"filekit/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp" // decode-only webp support
)

// Codec loads and saves images on the local filesystem. Decoding accepts every format registered with the
// image package; encoding is limited to what imaging can write, chosen from the file extension.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) Load(path string) (*domain.Raster, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInputNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDecode, path, err)
	}

	raster := domain.NewRaster(img, format)

	log.Debug().
		Str("path", path).
		Str("format", format).
		Stringer("layout", raster.Layout).
		Stringer("size", raster.Size()).
		Msg("decoded image")

	return raster, nil
}

func (c *Codec) Save(path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, domain.ErrUnsupportedFormat)
	}

	err = file.WriteAtomic(path, func(w io.Writer) error {
		return imaging.Encode(w, img, format)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, err)
	}

	return nil
}
