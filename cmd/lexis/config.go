package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	TextPath  string
	PostsPath string
	Schema    string

	LexiconPath  string `env:"LEXIS_LEXICON"`
	TopTerms     int    `env:"LEXIS_TOP_TERMS"`
	PatternLimit int    `env:"LEXIS_PATTERN_LIMIT"`
	StopWords    string `env:"LEXIS_STOPWORDS"`
	Format       string `env:"LEXIS_FORMAT"`
	LogLevel     string `env:"LEXIS_LOG_LEVEL"`
	LogFormat    string `env:"LEXIS_LOG_FORMAT"`
}

func (c Config) Validate() error {
	if c.Schema != "" {
		if c.Schema != "text" && c.Schema != "collection" {
			return fmt.Errorf("schema must be text or collection, got %q", c.Schema)
		}
		return nil
	}
	if c.TextPath == "" && c.PostsPath == "" {
		return errors.New("missing -text or -posts")
	}
	if c.TextPath != "" && c.PostsPath != "" {
		return errors.New("-text and -posts are mutually exclusive")
	}
	if c.TopTerms < 0 {
		return errors.New("top must be >= 0")
	}
	if c.PatternLimit < 0 {
		return errors.New("patterns must be >= 0")
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text, got %q", c.Format)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		TopTerms:     10,
		PatternLimit: 10,
		Format:       "json",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// envConfig returns defaultConfig overridden by LEXIS_* variables, reading a
// .env file first when one exists. Unset variables keep their defaults.
func envConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := defaultConfig()
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return cfg, nil
}

func parseFlags(fs *flag.FlagSet, args []string, base Config) (Config, error) {
	cfg := base
	fs.StringVar(&cfg.TextPath, "text", cfg.TextPath, "Path to a UTF-8 text file to analyze (- reads stdin)")
	fs.StringVar(&cfg.PostsPath, "posts", cfg.PostsPath, "Path to a JSON array of posts to mine for patterns (- reads stdin)")
	fs.StringVar(&cfg.Schema, "schema", cfg.Schema, "Print the JSON Schema of a report (text or collection) and exit")
	fs.StringVar(&cfg.LexiconPath, "lexicon", cfg.LexiconPath, "Optional JSON or YAML sentiment lexicon replacing the built-in one")
	fs.IntVar(&cfg.TopTerms, "top", cfg.TopTerms, "Number of top terms to report (0 reports all)")
	fs.IntVar(&cfg.PatternLimit, "patterns", cfg.PatternLimit, "Maximum number of patterns to report (0 reports all)")
	fs.StringVar(&cfg.StopWords, "stopwords", cfg.StopWords, "Stop-word language for rankings: ISO 639-1 code or auto")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: json or text")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Schema = strings.ToLower(strings.TrimSpace(cfg.Schema))
	return cfg, nil
}

// newLogger builds a structured logger.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
