package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mrsobakin/battleship/internal/match"
)

type UI string

const (
	UIConsole UI = "console"
	UITUI     UI = "tui"
)

type Config struct {
	Mode           match.Mode
	UI             UI
	ExtraShotOnHit bool

	LogLevel slog.Level
	// Empty means logs are discarded.
	LogFile string
}

func (c *Config) IsValid() error {
	if c.UI != UIConsole && c.UI != UITUI {
		return fmt.Errorf("unknown ui %q, expected %q or %q", c.UI, UIConsole, UITUI)
	}

	if c.Mode != match.ModeTwoPlayer && c.Mode != match.ModePractice {
		return fmt.Errorf("unknown mode %d", c.Mode)
	}

	return nil
}

func (c *Config) Rules() match.Rules {
	return match.Rules{
		Mode:           c.Mode,
		ExtraShotOnHit: c.ExtraShotOnHit,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// Loads envFile into the environment unless running in prod. A missing
// file is not an error. Variables that are already set are kept.
func loadEnvFile(envFile string) error {
	if os.Getenv("BATTLESHIP_STAGE") == "prod" || envFile == "" {
		return nil
	}

	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// Builds the configuration from envFile, the environment and the
// command-line args, later sources taking precedence.
func Load(envFile string, args []string, output io.Writer) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("battleship", flag.ContinueOnError)
	flags.SetOutput(output)

	mode := flags.String("mode", getEnvOrDefault("BATTLESHIP_MODE", match.ModeTwoPlayer.String()), "game mode: two-player or practice")
	ui := flags.String("ui", getEnvOrDefault("BATTLESHIP_UI", string(UIConsole)), "front end: console or tui")
	extraShot := flags.Bool("extra-shot", getEnvBoolOrDefault("BATTLESHIP_EXTRA_SHOT_ON_HIT", false), "let the shooter fire again after a hit")
	logLevel := flags.String("log-level", getEnvOrDefault("BATTLESHIP_LOG_LEVEL", "warn"), "log level: debug, info, warn or error")
	logFile := flags.String("log-file", getEnvOrDefault("BATTLESHIP_LOG_FILE", ""), "write JSON logs to this file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	conf := Config{
		UI:             UI(strings.ToLower(*ui)),
		ExtraShotOnHit: *extraShot,
		LogFile:        *logFile,
	}

	if err := conf.Mode.FromString(strings.ToLower(*mode)); err != nil {
		return Config{}, err
	}

	if err := conf.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}

	if err := conf.IsValid(); err != nil {
		return Config{}, err
	}

	return conf, nil
}
