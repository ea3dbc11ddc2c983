package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"quizforge/internal/domain"
)

// parseQuizReply turns the untrusted model reply into the typed variant
// union. The reply goes through fence stripping and brace extraction first,
// is decoded into a generic document, and is then projected field by field
// with explicit presence checks; no field type is ever assumed. The returned
// record carries only topic, difficulty and the variants — chunk metadata is
// attached by the orchestrator.
func parseQuizReply(raw string) (*domain.QuizRecord, error) {
	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		return nil, domain.NewGenerationParseError(err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return nil, domain.NewGenerationParseError(fmt.Errorf("invalid JSON in reply: %w", err))
	}

	record := &domain.QuizRecord{
		Topic:      stringField(doc, "topic"),
		Difficulty: stringField(doc, "difficulty"),
	}

	if mcqDoc, ok := objectField(doc, "mcq"); ok {
		record.MCQ = &domain.MCQQuestion{
			Question:      stringField(mcqDoc, "question"),
			Options:       stringSliceField(mcqDoc, "options"),
			CorrectAnswer: stringField(mcqDoc, "correct_answer"),
			Explanation:   stringField(mcqDoc, "explanation"),
		}
	}

	if tfDoc, ok := objectField(doc, "true_false"); ok {
		record.TrueFalse = &domain.TrueFalseQuestion{
			Question:      stringField(tfDoc, "question"),
			CorrectAnswer: stringField(tfDoc, "correct_answer"),
			Explanation:   stringField(tfDoc, "explanation"),
		}
	}

	if matchDoc, ok := objectField(doc, "matching"); ok {
		record.Matching = &domain.MatchingQuestion{
			Question:    stringField(matchDoc, "question"),
			Pairs:       pairsField(matchDoc, "pairs"),
			Explanation: stringField(matchDoc, "explanation"),
		}
	}

	if fillDoc, ok := objectField(doc, "fill_blank"); ok {
		record.FillBlank = &domain.FillBlankQuestion{
			Question:      stringField(fillDoc, "question"),
			CorrectAnswer: stringField(fillDoc, "correct_answer"),
			Explanation:   stringField(fillDoc, "explanation"),
		}
	}

	return record, nil
}

// extractJSONObject rescues the JSON object out of a reply that may wrap it
// in markdown code fences or surrounding prose. It returns the text between
// the first '{' and the last '}'.
func extractJSONObject(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return cleaned[start : end+1], nil
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func objectField(doc map[string]any, key string) (map[string]any, bool) {
	if v, ok := doc[key]; ok {
		if obj, ok := v.(map[string]any); ok {
			return obj, true
		}
	}
	return nil, false
}

func stringSliceField(doc map[string]any, key string) []string {
	v, ok := doc[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func pairsField(doc map[string]any, key string) []domain.MatchingPair {
	v, ok := doc[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	pairs := make([]domain.MatchingPair, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		pairs = append(pairs, domain.MatchingPair{
			Term:       stringField(obj, "term"),
			Definition: stringField(obj, "definition"),
		})
	}
	return pairs
}
