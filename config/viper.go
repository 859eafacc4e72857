package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keySeekStep          = "playback.seek_step"
	keyPlaybackRate      = "playback.rate"
	keyDarkTheme         = "display.dark_theme"
	keyFFmpegPath        = "export.ffmpeg_path"
	keyExportFormat      = "export.format"
	keyExportConcurrency = "export.concurrency"
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keySeekStep, 5.0)
	v.SetDefault(keyPlaybackRate, 1.0)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyFFmpegPath, "ffmpeg")
	v.SetDefault(keyExportFormat, "mp3")
	v.SetDefault(keyExportConcurrency, 4)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Playback.SeekStep = v.GetFloat64(keySeekStep)
	c.Playback.Rate = v.GetFloat64(keyPlaybackRate)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Export.FFmpegPath = v.GetString(keyFFmpegPath)
	c.Export.Format = v.GetString(keyExportFormat)
	c.Export.Concurrency = v.GetInt(keyExportConcurrency)

	if c.Playback.SeekStep <= 0 {
		return fmt.Errorf("%s must be greater than zero", keySeekStep)
	}

	if c.Export.Concurrency < 1 {
		c.Export.Concurrency = 1
	}

	return nil
}
