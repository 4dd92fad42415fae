package service

import (
	"context"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

var sampleRows = [][]any{
	{"Name", "Age", "Email"},
	{"John", 30, "john@example.com"},
	{"Jane", 25, "jane@example.com"},
	{"Bob", 40, "bob@example.com"},
}

// SheetService converts workbooks to CSV and writes sample workbooks.
type SheetService struct {
	reader port.WorkbookReader
	writer port.WorkbookWriter
	table  port.TableWriter
}

func NewSheetService(reader port.WorkbookReader, writer port.WorkbookWriter, table port.TableWriter) *SheetService {
	return &SheetService{reader: reader, writer: writer, table: table}
}

// ConvertFile writes the first sheet of the workbook at path to a .csv file beside it and returns its path.
func (s *SheetService) ConvertFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rows, err := s.reader.ReadRows(path)
	if err != nil {
		log.Error().Err(err).Str("input", path).Msg("failed to convert workbook")
		return "", err
	}

	csvPath := domain.ReplaceExt(path, ".csv")
	if err := s.table.WriteTable(csvPath, padRows(rows)); err != nil {
		log.Error().Err(err).Str("input", path).Msg("failed to convert workbook")
		return "", err
	}

	log.Info().Str("input", path).Str("output", csvPath).Int("rows", len(rows)).Msg("converted workbook")

	return csvPath, nil
}

func (s *SheetService) ConvertFiles(ctx context.Context, paths []string) domain.Report {
	var report domain.Report

	for _, path := range paths {
		if ctx.Err() != nil {
			log.Warn().Int("remaining", len(paths)-len(report.Outcomes)).Msg("conversion interrupted")
			break
		}

		output, err := s.ConvertFile(ctx, path)
		report.Add(path, output, err)
	}

	return report
}

// ConvertDir converts every workbook directly inside dir, ignoring office lock files.
func (s *SheetService) ConvertDir(ctx context.Context, dir string) (domain.Report, error) {
	matches, err := listFiles(dir, domain.WorkbookPattern)
	if err != nil {
		return domain.Report{}, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if !domain.IsWorkbookLock(m) {
			paths = append(paths, m)
		}
	}

	return s.ConvertFiles(ctx, paths), nil
}

func (s *SheetService) WriteSample(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.writer.WriteRows(path, domain.DefaultSheetName, sampleRows); err != nil {
		return err
	}

	log.Info().Str("output", path).Int("rows", len(sampleRows)-1).Msg("created sample workbook")

	return nil
}

// padRows extends ragged rows with empty cells so every CSV record has the same number of fields.
func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, width)
		copy(out[i], row)
	}

	return out
}
