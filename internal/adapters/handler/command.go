package handler

import (
	"filekit/internal/config"
	"filekit/internal/core/domain"
	"filekit/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the command tree with one sub-command per registered handler. Flags are bound to v so
// that they override the config file and defaults.
func NewRootCommand(commandRegistry port.CommandRegistry, v *viper.Viper) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "filekit",
		Short:         "Small single-shot utilities for local files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Load(v, configPath); err != nil {
				return err
			}
			zerolog.SetGlobalLevel(config.ParseLevel(v.GetString(config.KeyLogLevel)))
			return nil
		},
	}

	config.SetDefaults(v)

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./filekit.toml)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.String("dir", ".", "working directory the command operates on")
	bindFlags(v, flags, map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyDir:      "dir",
	})

	for _, name := range commandRegistry.ListCommands() {
		responder, err := commandRegistry.Get(name)
		if err != nil {
			log.Warn().Err(err).Str("command", name).Msg("skipping command")
			continue
		}
		root.AddCommand(newSubcommand(responder, v))
	}

	return root
}

func newSubcommand(responder domain.CommandResponder, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   responder.GetCommand(),
		Short: responder.Describe(),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Settings(v)
			if err != nil {
				return err
			}

			log.Debug().Str("command", responder.GetCommand()).Strs("args", args).Msg("received command")

			return responder.Respond(cmd.Context(), &domain.Invocation{Args: args, Settings: settings})
		},
	}

	if register, ok := commandFlags[responder.GetCommand()]; ok {
		register(cmd, v)
	}

	return cmd
}
