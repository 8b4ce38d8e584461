package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mrsobakin/battleship/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Opens the log sink described by conf. Logs go to a JSON file, or nowhere
// when no file is configured, so they never mix with the game output.
func NewLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	if conf.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: conf.LogLevel})
	return slog.New(handler), file, nil
}
