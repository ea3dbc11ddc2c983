package extract

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"

	"github.com/ledongthuc/pdf"
)

// extractPDF walks every page of the document and concatenates its plain
// text. Pages that fail to decode are skipped rather than failing the whole
// document; a PDF with no extractable text at all is an extraction error.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}
	defer f.Close()

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text := normalizeText(b.String())
	if text == "" {
		return "", domain.NewExtractionError(path, fmt.Errorf("no extractable text found in pdf"))
	}
	return text, nil
}
