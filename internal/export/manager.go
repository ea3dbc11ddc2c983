package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
	"quizforge/internal/service"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

// packageTimestampLayout qualifies the artifact names of one package run.
const packageTimestampLayout = "20060102_150405"

// Fixed artifact names for the single-format exports.
const (
	structuredFilename = "generated_quizzes.json"
	reportFilename     = "generated_quizzes.md"
)

// Manager serializes a batch into durable artifacts. Artifact writes inside
// Package are reported, not raised; only directory creation is fatal there.
// Writes are not transactional: a crash mid-package can leave a partial
// directory behind.
type Manager struct {
	aggregator *service.SummaryAggregator
	now        func() time.Time
}

// NewManager creates a Manager using the real clock.
func NewManager(aggregator *service.SummaryAggregator) *Manager {
	return &Manager{aggregator: aggregator, now: time.Now}
}

// NewManagerWithClock creates a Manager with a custom clock for the
// timestamp-qualified package filenames.
func NewManagerWithClock(aggregator *service.SummaryAggregator, now func() time.Time) *Manager {
	return &Manager{aggregator: aggregator, now: now}
}

// ExportStructured writes the full ordered record sequence as indented
// UTF-8 JSON. Non-ASCII text stays unescaped so the artifact remains
// human-readable.
func (m *Manager) ExportStructured(records []*domain.QuizRecord, path string) error {
	data, err := marshalIndentUnescaped(records)
	if err != nil {
		return domain.NewExportIOError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewExportIOError(path, err)
	}
	return nil
}

// ExportReport writes the human-readable Markdown report.
func (m *Manager) ExportReport(records []*domain.QuizRecord, path string) error {
	if err := os.WriteFile(path, []byte(RenderReport(records)), 0o644); err != nil {
		return domain.NewExportIOError(path, err)
	}
	return nil
}

// ExportSummary writes the summary artifact computed by the aggregator.
func (m *Manager) ExportSummary(records []*domain.QuizRecord, path string) error {
	data, err := marshalIndentUnescaped(m.aggregator.Summarize(records))
	if err != nil {
		return domain.NewExportIOError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewExportIOError(path, err)
	}
	return nil
}

// Export writes one artifact in the requested format ("json" or
// "markdown") under outputDir with its fixed filename, or delegates to
// Package for the "package" format.
func (m *Manager) Export(records []*domain.QuizRecord, format, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return domain.NewExportIOError(outputDir, err)
	}

	switch format {
	case "json":
		return m.ExportStructured(records, filepath.Join(outputDir, structuredFilename))
	case "markdown":
		return m.ExportReport(records, filepath.Join(outputDir, reportFilename))
	case "package":
		_, err := m.Package(records, outputDir)
		return err
	default:
		return domain.NewInvalidInputError(fmt.Sprintf("Unsupported export format: %s", format))
	}
}

// Package writes the structured, report and summary artifacts with
// timestamp-qualified names into outputDir and returns the directory path.
// Directory creation is the only fatal condition; individual write
// failures are logged and skipped so a partial package still lands.
func (m *Manager) Package(records []*domain.QuizRecord, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", domain.NewExportIOError(outputDir, err)
	}

	timestamp := m.now().Format(packageTimestampLayout)
	log := logger.Get()

	jsonPath := filepath.Join(outputDir, util.SanitizeFilename(fmt.Sprintf("generated_quiz_%s", timestamp))+".json")
	if err := m.ExportStructured(records, jsonPath); err != nil {
		log.Error("Failed to write structured artifact", zap.String("path", jsonPath), zap.Error(err))
	} else {
		log.Info("Wrote structured artifact", zap.String("path", jsonPath), zap.Int("records", len(records)))
	}

	mdPath := filepath.Join(outputDir, util.SanitizeFilename(fmt.Sprintf("generated_quiz_%s", timestamp))+".md")
	if err := m.ExportReport(records, mdPath); err != nil {
		log.Error("Failed to write report artifact", zap.String("path", mdPath), zap.Error(err))
	} else {
		log.Info("Wrote report artifact", zap.String("path", mdPath))
	}

	summaryPath := filepath.Join(outputDir, util.SanitizeFilename(fmt.Sprintf("quiz_summary_%s", timestamp))+".json")
	if err := m.ExportSummary(records, summaryPath); err != nil {
		log.Error("Failed to write summary artifact", zap.String("path", summaryPath), zap.Error(err))
	} else {
		log.Info("Wrote summary artifact", zap.String("path", summaryPath))
	}

	return outputDir, nil
}

// marshalIndentUnescaped is json.MarshalIndent without HTML escaping, so
// non-ASCII and punctuation survive verbatim in the artifacts.
func marshalIndentUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
