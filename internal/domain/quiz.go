package domain

// QuestionType identifies one of the four question archetypes a record can
// carry.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeTrueFalse QuestionType = "true_false"
	QuestionTypeMatching  QuestionType = "matching"
	QuestionTypeFillBlank QuestionType = "fill_blank"
)

// AllQuestionTypes returns the archetypes in their canonical processing
// order: MCQ, TrueFalse, Matching, FillBlank. Scoring, reporting and
// summaries all iterate in this order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionTypeMCQ,
		QuestionTypeTrueFalse,
		QuestionTypeMatching,
		QuestionTypeFillBlank,
	}
}

// PreviewLength is the number of leading characters of a chunk kept on each
// record for traceability.
const PreviewLength = 200

// TextChunk is one bounded slice of source text. Chunks are created by the
// chunker and never mutated afterward.
type TextChunk struct {
	Content string `json:"content"`
	Index   int    `json:"index"`
	Length  int    `json:"length"`
}

// Preview returns the first PreviewLength characters of the chunk content,
// suffixed with an ellipsis when truncated. Slicing is rune-safe so
// multi-byte text never gets cut mid-character.
func (c TextChunk) Preview() string {
	runes := []rune(c.Content)
	if len(runes) <= PreviewLength {
		return c.Content
	}
	return string(runes[:PreviewLength]) + "..."
}

// MCQQuestion is a four-option multiple choice question. CorrectAnswer holds
// the option letter (a/b/c/d).
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// TrueFalseQuestion expects CorrectAnswer to be the literal "True" or
// "False"; anything else is flagged by the validator.
type TrueFalseQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// MatchingPair is one term/definition pairing inside a matching question.
type MatchingPair struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// MatchingQuestion asks the taker to pair every term with its definition.
type MatchingQuestion struct {
	Question    string         `json:"question"`
	Pairs       []MatchingPair `json:"pairs"`
	Explanation string         `json:"explanation,omitempty"`
}

// FillBlankQuestion is a cloze question; the blank is rendered as ___ in the
// question text.
type FillBlankQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizRecord is the quiz content generated for one chunk. Variant fields are
// nil when the generator omitted that archetype. A record with a non-empty
// Error marks a failed generation: it carries no variants, keeps the chunk
// metadata for traceability, and may hold the raw unparseable reply in
// RawContent. Records are immutable once built; validation and scoring are
// pure reads.
type QuizRecord struct {
	ID           string             `json:"id,omitempty"`
	Topic        string             `json:"topic,omitempty"`
	Difficulty   string             `json:"difficulty,omitempty"`
	ChunkIndex   int                `json:"chunk_index"`
	ChunkPreview string             `json:"chunk_preview,omitempty"`
	MCQ          *MCQQuestion       `json:"mcq,omitempty"`
	TrueFalse    *TrueFalseQuestion `json:"true_false,omitempty"`
	Matching     *MatchingQuestion  `json:"matching,omitempty"`
	FillBlank    *FillBlankQuestion `json:"fill_blank,omitempty"`
	Error        string             `json:"error,omitempty"`
	RawContent   string             `json:"raw_content,omitempty"`
}

// IsError reports whether this record stands in for a failed generation.
func (r *QuizRecord) IsError() bool {
	return r != nil && r.Error != ""
}

// HasVariant reports whether the given archetype is present on the record.
func (r *QuizRecord) HasVariant(t QuestionType) bool {
	if r == nil {
		return false
	}
	switch t {
	case QuestionTypeMCQ:
		return r.MCQ != nil
	case QuestionTypeTrueFalse:
		return r.TrueFalse != nil
	case QuestionTypeMatching:
		return r.Matching != nil
	case QuestionTypeFillBlank:
		return r.FillBlank != nil
	}
	return false
}

// PresentTypes returns the archetypes present on the record, in canonical
// order.
func (r *QuizRecord) PresentTypes() []QuestionType {
	var present []QuestionType
	for _, t := range AllQuestionTypes() {
		if r.HasVariant(t) {
			present = append(present, t)
		}
	}
	return present
}
