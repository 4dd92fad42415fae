package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"filekit/internal/adapters/converter"
	"filekit/internal/adapters/file"
	"filekit/internal/adapters/handler"
	"filekit/internal/adapters/sender"
	"filekit/internal/adapters/spreadsheet"
	"filekit/internal/core/domain"
	"filekit/internal/core/domain/commands"
	"filekit/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	prompter := sender.NewTerminalPrompter(os.Stdin, os.Stdout)

	scaleService := service.NewScaleService(converter.NewCodec(), converter.NewLanczos())

	excel := spreadsheet.NewExcel()
	sheetService := service.NewSheetService(excel, excel, spreadsheet.NewCSV())

	gatherer := service.NewGatherer(file.NewMover())

	commandRegistry := &domain.CommandRegistry{}

	commandRegistry.Register(commands.NewScaleHandler(scaleService, prompter, "scale"))
	commandRegistry.Register(commands.NewConvertHandler(sheetService, "xlsx2csv"))
	commandRegistry.Register(commands.NewSampleHandler(sheetService, "sample-xlsx"))
	commandRegistry.Register(commands.NewGatherHandler(gatherer, "gather"))

	root := handler.NewRootCommand(commandRegistry, viper.New())

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		cancel()
		os.Exit(1)
	}
}
