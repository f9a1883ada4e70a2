package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/config"
)

// Setup configures the global zerolog logger from the logging config.
// Console output is used outside production regardless of the configured format.
func Setup(cfg config.LoggingConfig, env string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	var out io.Writer = os.Stderr
	if env != "production" || strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if cfg.File != "" {
		fileWriter, err := newRotatingWriter(cfg.File, cfg.MaxAge)
		if err != nil {
			return err
		}
		out = zerolog.MultiLevelWriter(out, fileWriter)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func newRotatingWriter(path string, maxAge time.Duration) (io.Writer, error) {
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	w, err := rotatelogs.New(
		base+".%Y%m%d"+ext,
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rotating log file: %w", err)
	}
	return w, nil
}
