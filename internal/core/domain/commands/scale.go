package commands

import (
	"context"
	"errors"
	"fmt"

	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog/log"
)

type ScaleHandler struct {
	scaler   port.BatchScaler
	prompter port.Prompter
	command  string
}

func NewScaleHandler(scaler port.BatchScaler, prompter port.Prompter, command string) *ScaleHandler {
	return &ScaleHandler{scaler: scaler, prompter: prompter, command: command}
}

func (h *ScaleHandler) GetCommand() string {
	return h.command
}

func (h *ScaleHandler) Describe() string {
	return "Fit images onto transparent canvases of a fixed size"
}

func (h *ScaleHandler) Respond(ctx context.Context, invocation *domain.Invocation) error {
	settings := invocation.Settings.Scale

	l := log.With().
		Str("command", h.GetCommand()).
		Str("dir", invocation.Settings.Dir).
		Logger()

	target := domain.Size{Width: settings.Width, Height: settings.Height}

	if settings.Interactive {
		var err error
		target, err = h.askSize(ctx)
		if err != nil {
			return err
		}
	}

	if err := target.Validate(); err != nil {
		return err
	}

	l.Info().Stringer("target", target).Str("suffix", settings.Suffix).Msg("handling request")

	var report domain.Report
	if len(invocation.Args) > 0 {
		report = h.scaler.ScaleFiles(ctx, invocation.Args, target, settings.Suffix)
	} else {
		var err error
		report, err = h.scaler.ScaleDir(ctx, invocation.Settings.Dir, settings.Pattern, target, settings.Suffix)
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		l.Warn().Err(err).Int("processed", len(report.Outcomes)).Msg("scaling interrupted")
		return err
	}

	if len(report.Outcomes) == 0 {
		l.Info().Str("pattern", settings.Pattern).Msg("no images found")
		return nil
	}

	l.Info().
		Int("scaled", len(report.Succeeded())).
		Int("failed", len(report.Failed())).
		Msg("scaling complete")

	return nil
}

func (h *ScaleHandler) askSize(ctx context.Context) (domain.Size, error) {
	width, err := h.prompter.AskInt(ctx, fmt.Sprintf("Enter target width (e.g., %d): ", domain.DefaultWidth))
	if err != nil {
		h.sayInvalid(err)
		return domain.Size{}, err
	}

	height, err := h.prompter.AskInt(ctx, fmt.Sprintf("Enter target height (e.g., %d): ", domain.DefaultHeight))
	if err != nil {
		h.sayInvalid(err)
		return domain.Size{}, err
	}

	return domain.Size{Width: width, Height: height}, nil
}

func (h *ScaleHandler) sayInvalid(err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		h.prompter.Say(invalidSizeMessage)
	}
}

const invalidSizeMessage = "Invalid input. Please enter integer values for width and height."
