package service

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"
)

// AnswerScorer computes a deterministic score for a record given an answer
// sheet. Scoring is a pure read over the record; every call produces a
// fresh ScoreResult.
type AnswerScorer struct{}

// NewAnswerScorer creates an AnswerScorer.
func NewAnswerScorer() *AnswerScorer {
	return &AnswerScorer{}
}

// Score evaluates the sheet against every variant present on the record, in
// canonical order. MCQ and True/False compare case-insensitively after
// trimming; FillBlank likewise. Matching counts per-pair hits but only
// credits the aggregate when every pair matches; its feedback always
// carries the fractional count. A record with no variants scores zero
// without faulting.
func (s *AnswerScorer) Score(answers domain.AnswerSheet, record *domain.QuizRecord) domain.ScoreResult {
	result := domain.ScoreResult{
		DetailedResults: make(map[domain.QuestionType]domain.QuestionResult),
		Feedback:        []string{},
	}
	if record == nil {
		result.Feedback = append(result.Feedback, thresholdFeedback(0))
		return result
	}

	if mcq := record.MCQ; mcq != nil {
		result.TotalQuestions++
		if answersMatch(answers.MCQ, mcq.CorrectAnswer) {
			result.CorrectAnswers++
			result.DetailedResults[domain.QuestionTypeMCQ] = domain.QuestionResult{
				Correct:  true,
				Feedback: "Correct!",
			}
		} else {
			result.DetailedResults[domain.QuestionTypeMCQ] = domain.QuestionResult{
				Correct:     false,
				Feedback:    fmt.Sprintf("Incorrect. The correct answer is %s.", mcq.CorrectAnswer),
				Explanation: mcq.Explanation,
			}
		}
	}

	if tf := record.TrueFalse; tf != nil {
		result.TotalQuestions++
		if answersMatch(answers.TrueFalse, tf.CorrectAnswer) {
			result.CorrectAnswers++
			result.DetailedResults[domain.QuestionTypeTrueFalse] = domain.QuestionResult{
				Correct:  true,
				Feedback: "Correct!",
			}
		} else {
			result.DetailedResults[domain.QuestionTypeTrueFalse] = domain.QuestionResult{
				Correct:     false,
				Feedback:    fmt.Sprintf("Incorrect. The correct answer is %s.", tf.CorrectAnswer),
				Explanation: tf.Explanation,
			}
		}
	}

	if matching := record.Matching; matching != nil {
		result.TotalQuestions++
		correctMatches := 0
		totalPairs := len(matching.Pairs)
		for _, pair := range matching.Pairs {
			if answers.Matching[pair.Term] == pair.Definition {
				correctMatches++
			}
		}

		// All-or-nothing in the aggregate; the fractional count only ever
		// appears in the feedback text.
		if correctMatches == totalPairs {
			result.CorrectAnswers++
			result.DetailedResults[domain.QuestionTypeMatching] = domain.QuestionResult{
				Correct:  true,
				Feedback: "Perfect matching!",
			}
		} else {
			result.DetailedResults[domain.QuestionTypeMatching] = domain.QuestionResult{
				Correct:     false,
				Feedback:    fmt.Sprintf("Partially correct. You got %d/%d matches right.", correctMatches, totalPairs),
				Explanation: matching.Explanation,
			}
		}
	}

	if fill := record.FillBlank; fill != nil {
		result.TotalQuestions++
		if answersMatch(answers.FillBlank, fill.CorrectAnswer) {
			result.CorrectAnswers++
			result.DetailedResults[domain.QuestionTypeFillBlank] = domain.QuestionResult{
				Correct:  true,
				Feedback: "Correct!",
			}
		} else {
			result.DetailedResults[domain.QuestionTypeFillBlank] = domain.QuestionResult{
				Correct:     false,
				Feedback:    fmt.Sprintf("Incorrect. The correct answer is '%s'.", fill.CorrectAnswer),
				Explanation: fill.Explanation,
			}
		}
	}

	if result.TotalQuestions > 0 {
		result.ScorePercentage = float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100
	}
	result.Feedback = append(result.Feedback, thresholdFeedback(result.ScorePercentage))

	return result
}

// answersMatch normalizes both sides with trimming and lowercasing before
// comparing, so "B" matches a stored "b" and padded fill-blank input still
// counts.
func answersMatch(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// thresholdFeedback maps the percentage onto the fixed qualitative bands:
// 90, 70 and 50.
func thresholdFeedback(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent! You have a strong understanding of this topic."
	case percentage >= 70:
		return "Good job! You understand most of the concepts."
	case percentage >= 50:
		return "Fair performance. Consider reviewing the material."
	default:
		return "You may need to review this topic more thoroughly."
	}
}
