package service

import (
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func validRecord() *domain.QuizRecord {
	return &domain.QuizRecord{
		Topic:      "GMP",
		Difficulty: "Intermediate",
		MCQ: &domain.MCQQuestion{
			Question:      "What does GMP stand for?",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "a",
		},
		TrueFalse: &domain.TrueFalseQuestion{
			Question:      "GMP is optional.",
			CorrectAnswer: "False",
		},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	v := NewSchemaValidator()
	result := v.Validate(validRecord())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_NilRecord(t *testing.T) {
	v := NewSchemaValidator()
	result := v.Validate(nil)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_MissingTopic(t *testing.T) {
	record := validRecord()
	record.Topic = ""

	result := NewSchemaValidator().Validate(record)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Missing required field: topic")
}

func TestValidate_MissingDifficulty(t *testing.T) {
	record := validRecord()
	record.Difficulty = ""

	result := NewSchemaValidator().Validate(record)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Missing required field: difficulty")
}

func TestValidate_NoQuestionTypes(t *testing.T) {
	record := &domain.QuizRecord{Topic: "GMP", Difficulty: "Expert"}

	result := NewSchemaValidator().Validate(record)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "No question types found")
}

func TestValidate_MCQWarnings(t *testing.T) {
	t.Run("ThreeOptionsIsWarningOnly", func(t *testing.T) {
		record := validRecord()
		record.MCQ.Options = []string{"a", "b", "c"}

		result := NewSchemaValidator().Validate(record)
		assert.True(t, result.IsValid)
		assert.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "4 options")
	})

	t.Run("MissingFields", func(t *testing.T) {
		record := validRecord()
		record.MCQ.CorrectAnswer = ""

		result := NewSchemaValidator().Validate(record)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "MCQ missing required fields")
	})
}

func TestValidate_TrueFalseWarnings(t *testing.T) {
	t.Run("BadLiteral", func(t *testing.T) {
		record := validRecord()
		record.TrueFalse.CorrectAnswer = "Maybe"

		result := NewSchemaValidator().Validate(record)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "True/False answer should be 'True' or 'False'")
	})

	t.Run("MissingFields", func(t *testing.T) {
		record := validRecord()
		record.TrueFalse.Question = ""

		result := NewSchemaValidator().Validate(record)
		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "True/False question missing required fields")
	})
}

// Matching and FillBlank are deliberately only checked for presence; a
// matching question with no pairs still validates.
func TestValidate_MatchingAndFillBlankPresenceOnly(t *testing.T) {
	record := &domain.QuizRecord{
		Topic:      "GMP",
		Difficulty: "Beginner",
		Matching:   &domain.MatchingQuestion{},
		FillBlank:  &domain.FillBlankQuestion{},
	}

	result := NewSchemaValidator().Validate(record)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}

func TestValidate_ErrorRecordIsInvalid(t *testing.T) {
	record := &domain.QuizRecord{
		Topic:        "GMP",
		Difficulty:   "Expert",
		ChunkIndex:   2,
		ChunkPreview: "preview",
		Error:        "Quiz generation failed for this chunk",
	}

	result := NewSchemaValidator().Validate(record)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "No question types found")
}
