package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"filekit/internal/adapters/file"
	"filekit/internal/core/domain"
)

// CSV writes comma-separated text files.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (c *CSV) WriteTable(path string, rows [][]string) error {
	err := file.WriteAtomic(path, func(w io.Writer) error {
		return csv.NewWriter(w).WriteAll(rows)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEncodeOrWrite, path, err)
	}

	return nil
}
