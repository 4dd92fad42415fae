// Package config resolves filekit settings from defaults, an optional TOML file and command-line flags.
package config

import (
	"errors"
	"fmt"

	"filekit/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	KeyDir              = "dir"
	KeyLogLevel         = "log.level"
	KeyScaleWidth       = "scale.width"
	KeyScaleHeight      = "scale.height"
	KeyScaleSuffix      = "scale.suffix"
	KeyScalePattern     = "scale.pattern"
	KeyScaleInteractive = "scale.interactive"
	KeySampleName       = "sheet.sample_name"
	KeyGatherExt        = "gather.ext"
	KeyGatherOverwrite  = "gather.overwrite"

	DefaultLogLevel = "info"
	configName      = "filekit"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyScaleWidth, domain.DefaultWidth)
	v.SetDefault(KeyScaleHeight, domain.DefaultHeight)
	v.SetDefault(KeyScaleSuffix, domain.DefaultSuffix)
	v.SetDefault(KeyScalePattern, domain.DefaultPattern)
	v.SetDefault(KeyScaleInteractive, false)
	v.SetDefault(KeySampleName, domain.DefaultSampleName)
	v.SetDefault(KeyGatherExt, domain.DefaultGatherExt)
	v.SetDefault(KeyGatherOverwrite, false)
}

// Load reads the config file at path, or ./filekit.toml when path is empty. Only an explicitly named file
// has to exist.
func Load(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			log.Debug().Msg("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("could not read config file: %w", err)
	}

	log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config file")

	return nil
}

func Settings(v *viper.Viper) (*domain.Settings, error) {
	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &s, nil
}

func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
