package handler

import (
	"filekit/internal/config"
	"filekit/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// commandFlags adds the flags of a sub-command, keyed by command name.
var commandFlags = map[string]func(cmd *cobra.Command, v *viper.Viper){
	"scale": func(cmd *cobra.Command, v *viper.Viper) {
		cmd.Use = "scale [files...]"
		flags := cmd.Flags()
		flags.Int("width", domain.DefaultWidth, "target canvas width in pixels")
		flags.Int("height", domain.DefaultHeight, "target canvas height in pixels")
		flags.String("suffix", domain.DefaultSuffix, "suffix inserted before the extension of each output file")
		flags.String("pattern", domain.DefaultPattern, "glob selecting images in --dir when no files are given")
		flags.BoolP("interactive", "i", false, "prompt for the target width and height")
		bindFlags(v, flags, map[string]string{
			config.KeyScaleWidth:       "width",
			config.KeyScaleHeight:      "height",
			config.KeyScaleSuffix:      "suffix",
			config.KeyScalePattern:     "pattern",
			config.KeyScaleInteractive: "interactive",
		})
	},
	"xlsx2csv": func(cmd *cobra.Command, _ *viper.Viper) {
		cmd.Use = "xlsx2csv [files...]"
	},
	"sample-xlsx": func(cmd *cobra.Command, v *viper.Viper) {
		flags := cmd.Flags()
		flags.String("name", domain.DefaultSampleName, "file name of the sample workbook inside --dir")
		bindFlags(v, flags, map[string]string{config.KeySampleName: "name"})
	},
	"gather": func(cmd *cobra.Command, v *viper.Viper) {
		flags := cmd.Flags()
		flags.String("ext", domain.DefaultGatherExt, "file name ending to collect")
		flags.Bool("overwrite", false, "replace files of the same name already in --dir")
		bindFlags(v, flags, map[string]string{
			config.KeyGatherExt:       "ext",
			config.KeyGatherOverwrite: "overwrite",
		})
	},
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			log.Warn().Err(err).Str("flag", name).Msg("could not bind flag")
		}
	}
}
