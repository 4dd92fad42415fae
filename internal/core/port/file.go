package port

import (
	"context"

	"filekit/internal/core/domain"
)

type FileMover interface {
	// Move relocates src to dst. Unless overwrite is set an existing dst is left untouched and
	// domain.ErrDestinationExists is returned.
	Move(src, dst string, overwrite bool) error
}

type FileGatherer interface {
	// Gather moves files below root whose name ends in ext up into root.
	Gather(ctx context.Context, root, ext string, overwrite bool) (domain.Report, error)
}
