package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
)

// FileExtractor implements the domain.DocumentExtractor port. It dispatches
// on the file extension and enforces the configured size limit before any
// format-specific work happens. Extraction failures are fatal for the
// document they name and nothing else.
type FileExtractor struct {
	maxFileSizeBytes int64
}

var _ domain.DocumentExtractor = (*FileExtractor)(nil)

// NewFileExtractor creates a FileExtractor. maxFileSizeMB caps how large a
// source document may be; zero or negative disables the check.
func NewFileExtractor(maxFileSizeMB int) *FileExtractor {
	return &FileExtractor{
		maxFileSizeBytes: int64(maxFileSizeMB) * 1024 * 1024,
	}
}

// ExtractText pulls plain text out of the document at path. Supported
// extensions: .pdf, .docx, .md, .markdown.
func (e *FileExtractor) ExtractText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewNotFoundError(fmt.Sprintf("File not found: %s", path))
		}
		return "", domain.NewExtractionError(path, err)
	}
	if e.maxFileSizeBytes > 0 && info.Size() > e.maxFileSizeBytes {
		return "", domain.NewInvalidInputError(fmt.Sprintf(
			"File %s exceeds the maximum size of %d bytes", path, e.maxFileSizeBytes))
	}

	ext := strings.ToLower(filepath.Ext(path))
	logger.Get().Debug("Extracting document text",
		zap.String("path", path),
		zap.String("extension", ext),
		zap.Int64("size_bytes", info.Size()))

	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".md", ".markdown":
		return extractMarkdown(path)
	default:
		return "", domain.NewUnsupportedFormatError(ext)
	}
}

// normalizeText collapses Windows line endings and trims trailing blanks
// off every line so the chunker sees clean paragraph boundaries.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
