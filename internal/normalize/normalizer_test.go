package normalize

import (
	"testing"

	"github.com/skanade/panvet/internal/model"
)

func TestClean(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abcde1234f", "ABCDE1234F"},
		{"  ABCDE1234F  ", "ABCDE1234F"},
		{"\tabcde1234f\n", "ABCDE1234F"},
		{"", ""},
		{"   ", ""},
		{"MiXeD1234z", "MIXED1234Z"},
	}

	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.expected {
			t.Errorf("Clean(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{"abcde1234f", "  ABCDE1234F ", "", "  ", "xKpLr9382q"}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCandidates_FiltersAndDedupes(t *testing.T) {
	raws := []model.RawRecord{
		model.NewRawRecord("ABCDE1234F"),
		model.NewRawRecord("abcde1234f"),
		model.NewRawRecord("  ABCDE1234F  "),
		model.NullRecord(),
		model.NewRawRecord(""),
	}

	candidates := Candidates(raws)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %v", len(candidates), candidates)
	}
	if candidates[0] != "ABCDE1234F" {
		t.Errorf("expected ABCDE1234F, got %q", candidates[0])
	}
}

func TestCandidates_WhitespaceOnlyDiscarded(t *testing.T) {
	raws := []model.RawRecord{
		model.NewRawRecord("   "),
		model.NewRawRecord("\t\n"),
		model.NullRecord(),
	}

	if got := Candidates(raws); len(got) != 0 {
		t.Errorf("expected empty candidate set, got %v", got)
	}
}

func TestCandidates_SortedDeterministic(t *testing.T) {
	raws := []model.RawRecord{
		model.NewRawRecord("ZZZZZ9999Z"),
		model.NewRawRecord("AAAAA1111A"),
		model.NewRawRecord("MNOPQ1234Z"),
	}

	candidates := Candidates(raws)

	expected := []string{"AAAAA1111A", "MNOPQ1234Z", "ZZZZZ9999Z"}
	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates, got %d", len(expected), len(candidates))
	}
	for i, want := range expected {
		if candidates[i] != want {
			t.Errorf("candidate[%d] = %q, expected %q", i, candidates[i], want)
		}
	}
}

func TestCandidates_Empty(t *testing.T) {
	if got := Candidates(nil); len(got) != 0 {
		t.Errorf("expected empty set for nil input, got %v", got)
	}
	if got := Candidates([]model.RawRecord{}); len(got) != 0 {
		t.Errorf("expected empty set for empty input, got %v", got)
	}
}
