package service

import (
	"time"

	"quizforge/internal/domain"
)

// SummaryAggregator computes cross-batch histograms. The clock is
// injectable so tests stay deterministic; it defaults to time.Now.
type SummaryAggregator struct {
	now func() time.Time
}

// NewSummaryAggregator creates a SummaryAggregator using the real clock.
func NewSummaryAggregator() *SummaryAggregator {
	return &SummaryAggregator{now: time.Now}
}

// NewSummaryAggregatorWithClock creates a SummaryAggregator with a custom
// clock.
func NewSummaryAggregatorWithClock(now func() time.Time) *SummaryAggregator {
	return &SummaryAggregator{now: now}
}

// Summarize tallies topic occurrences, difficulty occurrences and
// variant-kind presence across the batch. Records with no topic or
// difficulty count under "Unknown". Error records still contribute their
// metadata, so the summary stays 1:1 with the batch.
func (a *SummaryAggregator) Summarize(records []*domain.QuizRecord) domain.SummaryReport {
	report := domain.SummaryReport{
		TotalQuizzes:        len(records),
		Topics:              make(map[string]int),
		Difficulties:        make(map[string]int),
		QuestionTypes:       make(map[string]int),
		GenerationTimestamp: a.now().Format(time.RFC3339),
	}

	for _, record := range records {
		topic := "Unknown"
		difficulty := "Unknown"
		if record != nil {
			if record.Topic != "" {
				topic = record.Topic
			}
			if record.Difficulty != "" {
				difficulty = record.Difficulty
			}
		}
		report.Topics[topic]++
		report.Difficulties[difficulty]++

		for _, qt := range domain.AllQuestionTypes() {
			if record.HasVariant(qt) {
				report.QuestionTypes[string(qt)]++
			}
		}
	}

	return report
}
