package classify

import (
	"testing"

	"github.com/skanade/panvet/internal/model"
)

func TestClassifier_Verdicts(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		candidate string
		expected  model.Verdict
		reason    model.Reason // one reason that must be present for Invalid
	}{
		{"ABCDE1234F", model.VerdictInvalid, model.ReasonSequentialPrefix},
		{"AABCD1234E", model.VerdictInvalid, model.ReasonAdjacentRepeat},
		{"MNOPQ1234Z", model.VerdictInvalid, model.ReasonSequentialPrefix},
		{"VWXYZ1234A", model.VerdictInvalid, model.ReasonSequentialPrefix},
		{"AZZZZ1111B", model.VerdictInvalid, model.ReasonAdjacentRepeat},
		{"XKPLR9382Q", model.VerdictValid, ""},
		{"abcde1234f", model.VerdictInvalid, model.ReasonFormatMismatch},
		{"1234567890", model.VerdictInvalid, model.ReasonFormatMismatch},
		{"XKPLR1234Q", model.VerdictInvalid, model.ReasonSequentialDigits},
	}

	for _, tt := range tests {
		result := classifier.Classify(tt.candidate)
		if result.Verdict != tt.expected {
			t.Errorf("Classify(%q).Verdict = %q, expected %q (reasons: %v)", tt.candidate, result.Verdict, tt.expected, result.Reasons)
			continue
		}
		if result.Candidate != tt.candidate {
			t.Errorf("Classify(%q).Candidate = %q", tt.candidate, result.Candidate)
		}
		if tt.expected == model.VerdictValid {
			if len(result.Reasons) != 0 {
				t.Errorf("Classify(%q): valid verdict should carry no reasons, got %v", tt.candidate, result.Reasons)
			}
			continue
		}
		found := false
		for _, r := range result.Reasons {
			if r == tt.reason {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Classify(%q): expected reason %q, got %v", tt.candidate, tt.reason, result.Reasons)
		}
	}
}

func TestClassifier_FormatMismatchShortCircuits(t *testing.T) {
	classifier := NewClassifier()

	// Candidates that fail the format gate must report only the format
	// mismatch; positional checks would slice out of range on short input.
	for _, candidate := range []string{"AB", "abcde1234f", "ABCDE12", ""} {
		result := classifier.Classify(candidate)
		if result.Verdict != model.VerdictInvalid {
			t.Errorf("Classify(%q) = %q, expected invalid", candidate, result.Verdict)
		}
		if len(result.Reasons) != 1 || result.Reasons[0] != model.ReasonFormatMismatch {
			t.Errorf("Classify(%q): expected [format_mismatch], got %v", candidate, result.Reasons)
		}
	}
}

func TestClassifier_MultipleReasons(t *testing.T) {
	classifier := NewClassifier()

	// AZZZZ1111B: adjacent repeats in both blocks but nothing sequential.
	result := classifier.Classify("AZZZZ1111B")
	if result.Verdict != model.VerdictInvalid {
		t.Fatalf("expected invalid, got %q", result.Verdict)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != model.ReasonAdjacentRepeat {
		t.Errorf("expected [adjacent_repeat], got %v", result.Reasons)
	}

	// ABCDE1234F: both blocks sequential, no adjacent repeats.
	result = classifier.Classify("ABCDE1234F")
	if len(result.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", result.Reasons)
	}
	if result.Reasons[0] != model.ReasonSequentialPrefix || result.Reasons[1] != model.ReasonSequentialDigits {
		t.Errorf("expected [sequential_prefix sequential_digits], got %v", result.Reasons)
	}
}

func TestClassifier_Totality(t *testing.T) {
	classifier := NewClassifier()

	candidates := []string{
		"XKPLR9382Q", "ABCDE1234F", "AABCD1234E", "MNOPQ1234Z",
		"VWXYZ1234A", "AZZZZ1111B", "ZZZZZ", "", "Q", "AAAAA1111A",
	}

	results := classifier.ClassifyAll(candidates)
	if len(results) != len(candidates) {
		t.Fatalf("expected %d results, got %d", len(candidates), len(results))
	}
	for i, r := range results {
		if r.Verdict != model.VerdictValid && r.Verdict != model.VerdictInvalid {
			t.Errorf("candidate %q received no definite verdict: %q", candidates[i], r.Verdict)
		}
	}
}
