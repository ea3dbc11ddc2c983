package service

import (
	"fmt"

	"quizforge/internal/domain"
)

// SchemaValidator checks a record's structural conformity. Validation is a
// pure read: it never mutates the record and its result is never stored
// back on it.
type SchemaValidator struct{}

// NewSchemaValidator creates a SchemaValidator.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

// Validate returns the record's errors (invalidating) and warnings
// (informational). Matching and FillBlank are only checked for presence,
// not for field completeness; that gap matches the shallow checks the
// validator has always done and downstream rendering tolerates it.
func (v *SchemaValidator) Validate(record *domain.QuizRecord) domain.ValidationResult {
	result := domain.ValidationResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if record == nil {
		result.IsValid = false
		result.Errors = append(result.Errors, "Record is missing")
		return result
	}

	if record.Topic == "" {
		result.IsValid = false
		result.Errors = append(result.Errors, "Missing required field: topic")
	}
	if record.Difficulty == "" {
		result.IsValid = false
		result.Errors = append(result.Errors, "Missing required field: difficulty")
	}

	if len(record.PresentTypes()) == 0 {
		result.IsValid = false
		result.Errors = append(result.Errors, "No question types found")
	}

	if mcq := record.MCQ; mcq != nil {
		if mcq.Question == "" || len(mcq.Options) == 0 || mcq.CorrectAnswer == "" {
			result.Warnings = append(result.Warnings, "MCQ missing required fields")
		} else if len(mcq.Options) != 4 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("MCQ should have exactly 4 options, got %d", len(mcq.Options)))
		}
	}

	if tf := record.TrueFalse; tf != nil {
		if tf.Question == "" || tf.CorrectAnswer == "" {
			result.Warnings = append(result.Warnings, "True/False question missing required fields")
		} else if tf.CorrectAnswer != "True" && tf.CorrectAnswer != "False" {
			result.Warnings = append(result.Warnings, "True/False answer should be 'True' or 'False'")
		}
	}

	return result
}
