package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Gatherer pulls files with a given extension out of sub-directories into their common root.
type Gatherer struct {
	mover port.FileMover
}

func NewGatherer(mover port.FileMover) *Gatherer {
	return &Gatherer{mover: mover}
}

// Gather moves every file below root, but not directly in it, whose name ends with ext into root under its
// base name. Files already in root are left alone. Per-file failures are recorded and the run continues.
func (g *Gatherer) Gather(ctx context.Context, root, ext string, overwrite bool) (domain.Report, error) {
	if ext == "" {
		return domain.Report{}, fmt.Errorf("%w: empty extension", domain.ErrInvalidInput)
	}

	root = filepath.Clean(root)
	l := log.With().Str("root", root).Str("ext", ext).Logger()

	candidates, err := findBelow(ctx, root, ext)
	if err != nil {
		return domain.Report{}, err
	}

	l.Info().Int("files", len(candidates)).Msg("gathering files")

	var report domain.Report
	for _, src := range candidates {
		if ctx.Err() != nil {
			l.Warn().Int("remaining", len(candidates)-len(report.Outcomes)).Msg("gathering interrupted")
			break
		}

		dst := filepath.Join(root, filepath.Base(src))
		err := g.mover.Move(src, dst, overwrite)
		report.Add(src, dst, err)

		switch {
		case err == nil:
			l.Info().Str("from", src).Str("to", dst).Msg("moved file")
		case errors.Is(err, domain.ErrDestinationExists):
			l.Warn().Str("from", src).Str("to", dst).Msg("destination exists, skipping")
		default:
			l.Error().Err(err).Str("from", src).Msg("failed to move file")
		}
	}

	return report, nil
}

func findBelow(ctx context.Context, root, ext string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, root, err)
			}
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || filepath.Dir(path) == root {
			return nil
		}

		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ext) {
			found = append(found, path)
		}

		return nil
	})

	return found, err
}
