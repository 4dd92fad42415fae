package commands

import (
	"context"
	"path/filepath"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

type SampleHandler struct {
	writer  port.SampleWriter
	command string
}

func NewSampleHandler(writer port.SampleWriter, command string) *SampleHandler {
	return &SampleHandler{writer: writer, command: command}
}

func (h *SampleHandler) GetCommand() string {
	return h.command
}

func (h *SampleHandler) Describe() string {
	return "Write a small sample workbook"
}

func (h *SampleHandler) Respond(ctx context.Context, invocation *domain.Invocation) error {
	path := filepath.Join(invocation.Settings.Dir, invocation.Settings.Sheet.SampleName)

	l := log.With().
		Str("command", h.GetCommand()).
		Str("path", path).
		Logger()

	if err := h.writer.WriteSample(ctx, path); err != nil {
		l.Error().Err(err).Msg("failed writing sample workbook")
		return err
	}

	l.Info().Msg("sample workbook created")

	return nil
}
