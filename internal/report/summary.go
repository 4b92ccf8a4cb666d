package report

import (
	"github.com/skanade/panvet/internal/model"
)

// Summarizer derives the aggregate counts from a classification run
type Summarizer struct{}

// NewSummarizer creates a new summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize computes the counters for one run. rawCount is the number of
// ingested records before cleaning; cleanedCount the size of the candidate
// set. TotalUnclassified is cleaned minus the classified total: anything
// other than zero means a verdict was lost, which Summary.Check surfaces as
// a defect.
func (s *Summarizer) Summarize(rawCount, cleanedCount int, results []model.Classification) model.Summary {
	valid := 0
	invalid := 0
	for _, r := range results {
		switch r.Verdict {
		case model.VerdictValid:
			valid++
		case model.VerdictInvalid:
			invalid++
		}
	}

	return model.Summary{
		TotalRaw:          rawCount,
		TotalCleaned:      cleanedCount,
		TotalValid:        valid,
		TotalInvalid:      invalid,
		TotalUnclassified: cleanedCount - (valid + invalid),
	}
}
