package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Config holds the tool's tunables. The generation request itself (source
// path, capacity, prefix size, word count) always arrives on the input
// stream; the config only covers presentation and reproducibility knobs.
type Config struct {
	LogLevel     string `json:"log_level"`
	WordsPerLine int    `json:"words_per_line"`
	Seed         uint64 `json:"seed"`
}

// DefaultConfig returns a configuration with default values. The default
// seed of 8 is the tool's historical fixed seed, so default runs reproduce
// the same text across installs.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warn",
		WordsPerLine: 10,
		Seed:         8,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The run can still proceed on defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// parseLogLevel maps a config string to a slog level. Unknown strings fall
// back to warn, keeping the error stream quiet for a data-producing CLI.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
