package commands

import (
	"context"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

type ConvertHandler struct {
	converter port.SheetConverter
	command   string
}

func NewConvertHandler(converter port.SheetConverter, command string) *ConvertHandler {
	return &ConvertHandler{converter: converter, command: command}
}

func (h *ConvertHandler) GetCommand() string {
	return h.command
}

func (h *ConvertHandler) Describe() string {
	return "Convert the first sheet of .xlsx workbooks to .csv"
}

func (h *ConvertHandler) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := log.With().
		Str("command", h.GetCommand()).
		Str("dir", invocation.Settings.Dir).
		Logger()

	l.Info().Msg("handling request")

	var report domain.Report
	if len(invocation.Args) > 0 {
		report = h.converter.ConvertFiles(ctx, invocation.Args)
	} else {
		var err error
		report, err = h.converter.ConvertDir(ctx, invocation.Settings.Dir)
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		l.Warn().Err(err).Int("processed", len(report.Outcomes)).Msg("conversion interrupted")
		return err
	}

	if len(report.Outcomes) == 0 {
		l.Info().Msg("No .xlsx files found")
		return nil
	}

	l.Info().
		Int("converted", len(report.Succeeded())).
		Int("failed", len(report.Failed())).
		Msg("conversion complete")

	return nil
}
