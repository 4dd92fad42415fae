package port

import (
	"context"

	"filekit/internal/core/domain"
)

type WorkbookReader interface {
	// ReadRows returns the cell text of the first sheet of the workbook at path.
	ReadRows(path string) ([][]string, error)
}

type WorkbookWriter interface {
	// WriteRows writes rows to a new workbook at path with a single sheet of the given name.
	WriteRows(path, sheet string, rows [][]any) error
}

type TableWriter interface {
	// WriteTable writes rows as comma-separated text to path.
	WriteTable(path string, rows [][]string) error
}

type SheetConverter interface {
	ConvertFiles(ctx context.Context, paths []string) domain.Report
	ConvertDir(ctx context.Context, dir string) (domain.Report, error)
}

type SampleWriter interface {
	WriteSample(ctx context.Context, path string) error
}
