package service

import (
	"context"
	"fmt"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

// ScaleService fits image files onto transparent canvases and writes the result next to the original.
type ScaleService struct {
	codec  port.ImageCodec
	scaler port.ImageScaler
}

func NewScaleService(codec port.ImageCodec, scaler port.ImageScaler) *ScaleService {
	return &ScaleService{codec: codec, scaler: scaler}
}

// ScaleFile writes the scaled copy of inputPath to the path derived from suffix and returns that path. On any
// failure it returns an empty path and the classified error; no output file is left behind.
func (s *ScaleService) ScaleFile(ctx context.Context, inputPath string, target domain.Size, suffix string) (string, error) {
	l := log.With().Str("input", inputPath).Stringer("size", target).Logger()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	outputPath := domain.DerivedPath(inputPath, suffix)
	if outputPath == inputPath {
		err := fmt.Errorf("%w: empty suffix would overwrite %s", domain.ErrInvalidInput, inputPath)
		l.Error().Err(err).Msg("refusing to scale image")
		return "", err
	}

	raster, err := s.codec.Load(inputPath)
	if err != nil {
		l.Error().Err(err).Msg("could not load image")
		return "", err
	}

	canvas, err := s.scaler.Scale(raster, target)
	if err != nil {
		l.Error().Err(err).Msg("could not scale image")
		return "", err
	}

	if err := s.codec.Save(outputPath, canvas); err != nil {
		l.Error().Err(err).Msg("could not save scaled image")
		return "", err
	}

	l.Info().Str("output", outputPath).Msg("scaled image")

	return outputPath, nil
}

func (s *ScaleService) ScaleFiles(ctx context.Context, paths []string, target domain.Size, suffix string) domain.Report {
	var report domain.Report

	for _, path := range paths {
		if ctx.Err() != nil {
			log.Warn().Int("remaining", len(paths)-len(report.Outcomes)).Msg("scaling interrupted")
			break
		}

		output, err := s.ScaleFile(ctx, path, target, suffix)
		report.Add(path, output, err)
	}

	return report
}

// ScaleDir scales the files directly inside dir that match pattern, skipping earlier outputs that already
// carry suffix.
func (s *ScaleService) ScaleDir(ctx context.Context, dir, pattern string, target domain.Size, suffix string) (domain.Report, error) {
	matches, err := listFiles(dir, pattern)
	if err != nil {
		return domain.Report{}, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if domain.HasSuffix(m, suffix) {
			log.Debug().Str("path", m).Msg("skipping previously scaled image")
			continue
		}
		paths = append(paths, m)
	}

	log.Info().Str("dir", dir).Str("pattern", pattern).Int("files", len(paths)).Msg("scanning for images")

	return s.ScaleFiles(ctx, paths, target, suffix), nil
}
