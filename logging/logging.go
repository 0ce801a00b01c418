package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FileName = "liberty-quiz.log"
	MaxSize  = 10 * 1024 * 1024 // rotate when the current file exceeds this
)

// Setup opens the debug log in dir and returns a JSON logger writing to it
// Disabled logging returns a no-op logger and a nil file; nothing ever goes to the terminal
// The caller closes the returned file
func Setup(enabled bool, dir, level string) (zerolog.Logger, *os.File, error) {
	if !enabled {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	logger.Info().Str("level", lvl.String()).Msg("logging started")
	return logger, f, nil
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	base := strings.TrimSuffix(FileName, filepath.Ext(FileName))
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s-%s.log", base, now.Format("20060102-150405")))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
