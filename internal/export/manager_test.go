package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quizforge/internal/domain"
	"quizforge/internal/logger"
	"quizforge/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Env: "development", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func testClock() func() time.Time {
	ts := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func testManager() *Manager {
	return NewManagerWithClock(service.NewSummaryAggregatorWithClock(testClock()), testClock())
}

func TestExportStructured_PreservesOrderAndUnicode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizzes.json")

	records := []*domain.QuizRecord{
		{Topic: "Qualité", Difficulty: "Expert", FillBlank: &domain.FillBlankQuestion{Question: "Q ___?", CorrectAnswer: "Réponse"}},
		nil,
		{Topic: "Audit", Difficulty: "Beginner", Error: "Failed to parse JSON"},
	}

	require.NoError(t, testManager().ExportStructured(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Non-ASCII stays unescaped; the artifact length tracks the batch.
	assert.Contains(t, string(data), "Qualité")
	assert.Contains(t, string(data), "Réponse")
	assert.NotContains(t, string(data), `\u`)

	var decoded []*domain.QuizRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(records))
	assert.Equal(t, "Qualité", decoded[0].Topic)
	assert.Nil(t, decoded[1])
	assert.Equal(t, "Audit", decoded[2].Topic)
}

func TestExportReport_WritesRenderedMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	records := []*domain.QuizRecord{sampleRecord(), nil}
	require.NoError(t, testManager().ExportReport(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "# Generated Quiz"))
	assert.Contains(t, content, "## Quiz 2 - Invalid Quiz")
}

func TestExportSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")

	records := []*domain.QuizRecord{sampleRecord()}
	require.NoError(t, testManager().ExportSummary(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary domain.SummaryReport
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 1, summary.TotalQuizzes)
	assert.Equal(t, "2026-08-25T10:30:00Z", summary.GenerationTimestamp)
}

func TestPackage_WritesAllArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	outputDir, err := testManager().Package([]*domain.QuizRecord{sampleRecord()}, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, outputDir)

	for _, name := range []string{
		"generated_quiz_20260825_103000.json",
		"generated_quiz_20260825_103000.md",
		"quiz_summary_20260825_103000.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected artifact %s", name)
	}
}

func TestPackage_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	m := testManager()

	_, err := m.Package([]*domain.QuizRecord{sampleRecord()}, dir)
	require.NoError(t, err)
	// Second run into the same directory succeeds.
	_, err = m.Package([]*domain.QuizRecord{sampleRecord()}, dir)
	assert.NoError(t, err)
}

func TestPackage_DirectoryCreationFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	_, err := testManager().Package([]*domain.QuizRecord{sampleRecord()}, filepath.Join(blocker, "exports"))
	require.Error(t, err)

	de := domain.AsDomainError(err)
	assert.Equal(t, domain.ErrExportIO, de.Code)
}

func TestExport_Formats(t *testing.T) {
	records := []*domain.QuizRecord{sampleRecord()}

	t.Run("JSON", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, testManager().Export(records, "json", dir))
		_, err := os.Stat(filepath.Join(dir, "generated_quizzes.json"))
		assert.NoError(t, err)
	})

	t.Run("Markdown", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, testManager().Export(records, "markdown", dir))
		_, err := os.Stat(filepath.Join(dir, "generated_quizzes.md"))
		assert.NoError(t, err)
	})

	t.Run("Package", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, testManager().Export(records, "package", dir))
		_, err := os.Stat(filepath.Join(dir, "quiz_summary_20260825_103000.json"))
		assert.NoError(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		err := testManager().Export(records, "xml", dir)
		require.Error(t, err)
		de := domain.AsDomainError(err)
		assert.Equal(t, domain.ErrInvalidInput, de.Code)
	})
}
