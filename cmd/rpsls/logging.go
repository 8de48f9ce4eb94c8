package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/config"
)

// setupLogger builds the process logger. Flags win over the config file;
// a log file keeps log lines out of the game's terminal output.
func setupLogger(cli *CLI, settings *config.GameSettings) (*log.Logger, io.Closer, error) {
	levelName := settings.LogLevel
	if cli.LogLevel != "" {
		levelName = cli.LogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	path := settings.LogFile
	if cli.LogFile != "" {
		path = cli.LogFile
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadSettings reads the configuration and logger shared by every command.
func loadSettings(cli *CLI) (*config.Config, *log.Logger, io.Closer, error) {
	cfg, err := config.LoadConfig(cli.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer, err := setupLogger(cli, cfg.Game)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closer, nil
}
