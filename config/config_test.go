package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	// replace reclip directory to avoid overriding configuration
	configDir = "reclip_test"

	InitializePaths()

	pterm.DisableOutput()

	code := m.Run()

	// Cleanup test directory
	err := os.RemoveAll(filepath.Dir(configFilePath))
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(code)
}

func TestDefaultsWrittenOnFirstRun(t *testing.T) {
	cfg, err := New(WithViperConfig(ConfigFilePath()))
	if err != nil {
		t.Fatalf("creating config: %v", err)
	}

	if _, err := os.Stat(ConfigFilePath()); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}

	if cfg.Playback.SeekStep != 5.0 {
		t.Errorf("SeekStep = %v, want 5", cfg.Playback.SeekStep)
	}

	if cfg.Playback.Rate != 1.0 {
		t.Errorf("Rate = %v, want 1", cfg.Playback.Rate)
	}

	if cfg.Export.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want %q", cfg.Export.FFmpegPath, "ffmpeg")
	}

	if cfg.Export.Concurrency != 4 {
		t.Errorf("Concurrency = %v, want 4", cfg.Export.Concurrency)
	}

	if !cfg.Display.DarkTheme {
		t.Error("DarkTheme should default to true")
	}

	if cfg.System.DBPath != DBFilePath() {
		t.Errorf("DBPath = %q, want %q", cfg.System.DBPath, DBFilePath())
	}
}

func TestCLIOverrides(t *testing.T) {
	cfg := &Config{
		Playback: PlaybackConfig{SeekStep: 5, Rate: 1},
		Display:  DisplayConfig{DarkTheme: true},
		Export:   ExportConfig{FFmpegPath: "ffmpeg", Format: "mp3", Concurrency: 4},
	}

	applyCLIOptions(cfg, CLIOptions{
		Rate:       2,
		Format:     "aac",
		LightTheme: true,
	})

	if cfg.Playback.Rate != 2 {
		t.Errorf("Rate = %v, want 2", cfg.Playback.Rate)
	}

	if cfg.Export.Format != "aac" {
		t.Errorf("Format = %q, want %q", cfg.Export.Format, "aac")
	}

	if cfg.Display.DarkTheme {
		t.Error("light flag should disable the dark theme")
	}

	// untouched values survive
	if cfg.Playback.SeekStep != 5 || cfg.Export.FFmpegPath != "ffmpeg" {
		t.Errorf("unset flags must not clobber config: %+v", cfg)
	}
}
