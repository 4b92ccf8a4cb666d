package classify

import "github.com/skanade/panvet/internal/model"

// Classifier applies the structural rule set to cleaned candidates
type Classifier struct{}

// NewClassifier creates a new classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the verdict for a single candidate. Every candidate
// receives exactly one verdict; there is no error path. A candidate is
// valid iff it matches the PAN format, has no adjacent repeated characters,
// and neither the 5-letter prefix nor the 4-digit block is a perfect
// ascending run.
//
// All four checks are pure, so evaluation order cannot change the verdict.
// The format check runs first only because it is the cheapest gate: when it
// fails, the positional slices below would be meaningless anyway.
func (c *Classifier) Classify(candidate string) model.Classification {
	result := model.Classification{Candidate: candidate}

	if !MatchesFormat(candidate) {
		result.Verdict = model.VerdictInvalid
		result.Reasons = append(result.Reasons, model.ReasonFormatMismatch)
		return result
	}

	if HasAdjacentRepeat(candidate) {
		result.Reasons = append(result.Reasons, model.ReasonAdjacentRepeat)
	}
	if IsAscendingRun(candidate[0:5]) {
		result.Reasons = append(result.Reasons, model.ReasonSequentialPrefix)
	}
	if IsAscendingRun(candidate[5:9]) {
		result.Reasons = append(result.Reasons, model.ReasonSequentialDigits)
	}

	if len(result.Reasons) > 0 {
		result.Verdict = model.VerdictInvalid
	} else {
		result.Verdict = model.VerdictValid
	}
	return result
}

// ClassifyAll classifies a candidate set sequentially, preserving input
// order. The pipeline uses its own concurrent fan-out for large sets; this
// is the simple path for library callers.
func (c *Classifier) ClassifyAll(candidates []string) []model.Classification {
	results := make([]model.Classification, len(candidates))
	for i, candidate := range candidates {
		results[i] = c.Classify(candidate)
	}
	return results
}
