// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings
	Config struct {
		Playback PlaybackConfig
		Display  DisplayConfig
		Export   ExportConfig
		System   SystemConfig
	}

	// PlaybackConfig holds review playback settings
	PlaybackConfig struct {
		// SeekStep is how far the arrow keys jump, in seconds
		SeekStep float64
		// Rate is the playback speed multiplier for review
		Rate float64
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool
	}

	// ExportConfig holds settings for the ffmpeg export pipeline
	ExportConfig struct {
		FFmpegPath  string
		Format      string
		Concurrency int
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "reclip"
	configFileName = "config.yml"
	dbFileName     = "reclip.db"
	logFileName    = "reclip.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	reclipEnv := strings.TrimSpace(os.Getenv("RECLIP_ENV"))
	if reclipEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", reclipEnv)
		dbFileName = fmt.Sprintf("reclip_%s.db", reclipEnv)
		logFileName = fmt.Sprintf("reclip_%s.log", reclipEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	cfg.System.ConfigPath = configFilePath
	cfg.System.DBPath = dbFilePath

	return cfg, nil
}
