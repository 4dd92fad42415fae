package commands

import (
	"context"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

type GatherHandler struct {
	gatherer port.FileGatherer
	command  string
}

func NewGatherHandler(gatherer port.FileGatherer, command string) *GatherHandler {
	return &GatherHandler{gatherer: gatherer, command: command}
}

func (h *GatherHandler) GetCommand() string {
	return h.command
}

func (h *GatherHandler) Describe() string {
	return "Move files with a given ending from sub-directories into the working directory"
}

func (h *GatherHandler) Respond(ctx context.Context, invocation *domain.Invocation) error {
	settings := invocation.Settings.Gather

	l := log.With().
		Str("command", h.GetCommand()).
		Str("dir", invocation.Settings.Dir).
		Str("ext", settings.Ext).
		Logger()

	l.Info().Bool("overwrite", settings.Overwrite).Msg("handling request")

	report, err := h.gatherer.Gather(ctx, invocation.Settings.Dir, settings.Ext, settings.Overwrite)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		l.Warn().Err(err).Int("processed", len(report.Outcomes)).Msg("gathering interrupted")
		return err
	}

	l.Info().
		Int("moved", len(report.Succeeded())).
		Int("skipped", len(report.Skipped())).
		Int("failed", len(report.Failed())).
		Msg("gathering complete")

	return nil
}
