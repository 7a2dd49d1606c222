package bulk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for sheets in a local directory.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a loader for sheets under dir.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "bulk-file-loader").Logger(),
	}
}

// Load reads a sheet from the sheet directory. Names may not escape it.
func (l *fileLoader) Load(ctx context.Context, name string) (*Sheet, error) {
	filePath, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading bulk sheet")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open bulk sheet")
		return nil, fmt.Errorf("failed to open bulk sheet %s: %w", name, err)
	}
	defer file.Close()

	data, err := readAll(ctx, file)
	if err != nil {
		if ctx.Err() != nil {
			l.logger.Warn().Str("file", filePath).Msg("bulk sheet loading cancelled")
		}
		return nil, fmt.Errorf("failed to read bulk sheet %s: %w", name, err)
	}

	sheet, err := NewSheet(name, data)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("rows", sheet.Rows).
		Msg("bulk sheet loaded successfully")

	return sheet, nil
}

func (l *fileLoader) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", model.Validation(fmt.Sprintf("invalid sheet name %q", name))
	}
	if _, err := Extension(clean); err != nil {
		return "", err
	}
	return filepath.Join(l.dir, clean), nil
}
