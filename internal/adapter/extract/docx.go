package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"

	"quizforge/internal/domain"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDOCX reads word/document.xml out of the archive and strips the
// WordprocessingML markup, keeping paragraph and line-break structure.
func extractDOCX(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}
	defer r.Close()

	var documentXML []byte
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", domain.NewExtractionError(path, err)
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", domain.NewExtractionError(path, err)
			}
			break
		}
	}

	if len(documentXML) == 0 {
		return "", domain.NewExtractionError(path, fmt.Errorf("docx document.xml not found"))
	}

	text := normalizeText(stripDocXML(documentXML))
	if text == "" {
		return "", domain.NewExtractionError(path, fmt.Errorf("no extractable text found in docx"))
	}
	return text, nil
}

func stripDocXML(src []byte) string {
	s := string(src)

	// WordprocessingML paragraphs and line breaks become newlines.
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTagPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}
