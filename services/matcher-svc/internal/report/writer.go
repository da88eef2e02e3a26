package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"rostering/pkg/metrics"
)

// Writer renders a run into one or more formats and writes the files
// under a single output directory.
type Writer struct {
	outputDir string
	logger    *slog.Logger
}

// NewWriter creates a writer for the directory. Pass a nil logger to
// use the default.
func NewWriter(outputDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{outputDir: outputDir, logger: logger}
}

// Write renders data in every requested format. File names share the
// base name with a per-format extension. It returns the paths written;
// a failure in one format does not stop the others, the first error is
// returned after all formats were attempted.
func (w *Writer) Write(ctx context.Context, baseName string, formats []string, data *ReportData) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		paths    []string
		firstErr error
	)
	for _, raw := range formats {
		format, err := ParseFormat(raw)
		if err != nil {
			w.logger.Warn("skipping unknown report format", "format", raw)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		path, err := w.writeOne(ctx, baseName, format, data)
		if err != nil {
			metrics.Get().RecordReport(string(format), false)
			w.logger.Error("report generation failed",
				"format", format,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		metrics.Get().RecordReport(string(format), true)
		paths = append(paths, path)
	}
	return paths, firstErr
}

func (w *Writer) writeOne(ctx context.Context, baseName string, format Format, data *ReportData) (string, error) {
	gen, err := NewGenerator(format)
	if err != nil {
		return "", err
	}

	start := time.Now()
	payload, err := gen.Generate(ctx, data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.outputDir, baseName+format.Extension())
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", format, err)
	}

	w.logger.Info("report written",
		"format", format,
		"path", path,
		"bytes", len(payload),
		"duration", time.Since(start),
	)
	return path, nil
}

// DefaultBaseName builds a timestamped file base name for a run.
func DefaultBaseName(t time.Time) string {
	return "matching-" + t.Format("20060102-150405")
}
