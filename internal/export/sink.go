package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileSink delivers rendered artifacts to a local output directory. The
// chat front end substitutes its own sink that uploads the file instead.
type FileSink struct {
	dir string
	log *slog.Logger
}

// NewFileSink creates a sink writing into dir.
func NewFileSink(dir string, logger *slog.Logger) *FileSink {
	return &FileSink{dir: dir, log: logger.With("component", "sink")}
}

// Deliver writes data under the sink directory as filename.
func (s *FileSink) Deliver(ctx context.Context, bookTitle, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("export: create output dir: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", filename, err)
	}

	s.log.Info("exported book",
		slog.String("book", bookTitle),
		slog.String("path", path),
	)
	return nil
}
