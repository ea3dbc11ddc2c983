package export

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"
)

// RenderReport produces the human-readable Markdown report for a batch.
// Sections are numbered in input order; a nil entry renders as an explicit
// "Invalid Quiz" placeholder instead of aborting the export. Within a
// section the variants appear in fixed order: MCQ, True/False, Matching,
// Fill-Blank.
func RenderReport(records []*domain.QuizRecord) string {
	var b strings.Builder
	b.WriteString("# Generated Quiz\n\n")

	for i, record := range records {
		if record == nil {
			fmt.Fprintf(&b, "## Quiz %d - Invalid Quiz\n\n", i+1)
			b.WriteString("**Error:** This quiz could not be generated properly.\n\n")
			b.WriteString("---\n\n")
			continue
		}

		fmt.Fprintf(&b, "## Quiz %d\n\n", i+1)
		fmt.Fprintf(&b, "**Topic:** %s\n", orNA(record.Topic))
		fmt.Fprintf(&b, "**Difficulty:** %s\n\n", orNA(record.Difficulty))

		if record.IsError() {
			fmt.Fprintf(&b, "**Error:** %s\n\n", record.Error)
		}

		if mcq := record.MCQ; mcq != nil {
			b.WriteString("### 1. Multiple Choice Question\n")
			fmt.Fprintf(&b, "%s\n\n", orNA(mcq.Question))
			for j, option := range mcq.Options {
				fmt.Fprintf(&b, "%s %s\n", OptionLetter(j), option)
			}
			fmt.Fprintf(&b, "\n**Correct Answer:** %s\n", orNA(mcq.CorrectAnswer))
			fmt.Fprintf(&b, "**Explanation:** %s\n\n", orNA(mcq.Explanation))
		}

		if tf := record.TrueFalse; tf != nil {
			b.WriteString("### 2. True/False Question\n")
			fmt.Fprintf(&b, "%s\n\n", orNA(tf.Question))
			fmt.Fprintf(&b, "**Correct Answer:** %s\n", orNA(tf.CorrectAnswer))
			fmt.Fprintf(&b, "**Explanation:** %s\n\n", orNA(tf.Explanation))
		}

		if matching := record.Matching; matching != nil {
			b.WriteString("### 3. Matching Question\n")
			fmt.Fprintf(&b, "%s\n\n", orNA(matching.Question))
			for _, pair := range matching.Pairs {
				fmt.Fprintf(&b, "- %s → %s\n", orNA(pair.Term), orNA(pair.Definition))
			}
			fmt.Fprintf(&b, "\n**Explanation:** %s\n\n", orNA(matching.Explanation))
		}

		if fill := record.FillBlank; fill != nil {
			b.WriteString("### 4. Fill in the Blank\n")
			fmt.Fprintf(&b, "%s\n\n", orNA(fill.Question))
			fmt.Fprintf(&b, "**Correct Answer:** %s\n", orNA(fill.CorrectAnswer))
			fmt.Fprintf(&b, "**Explanation:** %s\n\n", orNA(fill.Explanation))
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}

// OptionLetter renders the MCQ option label for a zero-based index:
// "a)", "b)", "c)", "d)".
func OptionLetter(index int) string {
	return fmt.Sprintf("%c)", 'a'+index)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
