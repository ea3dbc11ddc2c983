package domain

// ValidationResult reports a record's structural conformity. Errors
// invalidate the record; warnings are informational. Results are computed
// on demand and never stored back on the record.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AnswerSheet carries a taker's submitted answers for one record. MCQ holds
// the option letter, TrueFalse the literal, FillBlank the free text, and
// Matching maps each term to the proposed definition. Fields for variants
// the record does not carry are ignored by the scorer.
type AnswerSheet struct {
	MCQ       string            `json:"mcq,omitempty"`
	TrueFalse string            `json:"true_false,omitempty"`
	Matching  map[string]string `json:"matching,omitempty"`
	FillBlank string            `json:"fill_blank,omitempty"`
}

// QuestionResult is the per-variant outcome of a scoring pass.
type QuestionResult struct {
	Correct     bool   `json:"correct"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation,omitempty"`
}

// ScoreResult is the outcome of scoring one answer sheet against one
// record. DetailedResults is keyed by the variant kind; Feedback carries
// one qualitative line chosen from the fixed percentage thresholds.
// Ephemeral: one per scoring call.
type ScoreResult struct {
	TotalQuestions  int                             `json:"total_questions"`
	CorrectAnswers  int                             `json:"correct_answers"`
	ScorePercentage float64                         `json:"score_percentage"`
	DetailedResults map[QuestionType]QuestionResult `json:"detailed_results"`
	Feedback        []string                        `json:"feedback"`
}

// SummaryReport aggregates a batch: occurrence histograms for topics,
// difficulties and variant kinds, plus the generation timestamp (ISO-8601).
type SummaryReport struct {
	TotalQuizzes        int            `json:"total_quizzes"`
	Topics              map[string]int `json:"topics"`
	Difficulties        map[string]int `json:"difficulties"`
	QuestionTypes       map[string]int `json:"question_types"`
	GenerationTimestamp string         `json:"generation_timestamp"`
}
