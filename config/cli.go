package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration overrides.
type CLIOptions struct {
	FFmpegPath string
	Format     string
	Rate       float64
	SeekStep   float64
	LightTheme bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			FFmpegPath: ctx.String("ffmpeg"),
			Format:     ctx.String("format"),
			Rate:       ctx.Float64("rate"),
			SeekStep:   ctx.Float64("seek-step"),
			LightTheme: ctx.Bool("light"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Unset flags leave the
// file-derived values alone.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.FFmpegPath != "" {
		c.Export.FFmpegPath = opts.FFmpegPath
	}

	if opts.Format != "" {
		c.Export.Format = opts.Format
	}

	if opts.Rate > 0 {
		c.Playback.Rate = opts.Rate
	}

	if opts.SeekStep > 0 {
		c.Playback.SeekStep = opts.SeekStep
	}

	if opts.LightTheme {
		c.Display.DarkTheme = false
	}
}
