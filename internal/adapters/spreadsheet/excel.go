package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"filekit/internal/adapters/file"
	"filekit/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Excel reads and writes .xlsx workbooks.
type Excel struct{}

func NewExcel() *Excel {
	return &Excel{}
}

func (e *Excel) ReadRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDecode, path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", domain.ErrDecode, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: sheet %q: %w", domain.ErrDecode, path, sheets[0], err)
	}

	log.Debug().Str("path", path).Str("sheet", sheets[0]).Int("rows", len(rows)).Msg("read workbook")

	return rows, nil
}

func (e *Excel) WriteRows(path, sheet string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != domain.DefaultSheetName {
		if err := f.SetSheetName(domain.DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%w: %s: row %d: %w", domain.ErrEncodeOrWrite, path, i+1, err)
		}
	}

	err := file.WriteAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, err)
	}

	return nil
}
