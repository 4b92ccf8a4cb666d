package model

// RawRecord is a single ingested value before cleaning. A nil Value models
// a missing (NULL) field in the source; Value may also point at an empty or
// whitespace-padded string.
type RawRecord struct {
	Value *string `json:"value"`
}

// NewRawRecord wraps a present string value.
func NewRawRecord(s string) RawRecord {
	return RawRecord{Value: &s}
}

// NullRecord returns a record with no value.
func NullRecord() RawRecord {
	return RawRecord{}
}

// Verdict is the classification outcome for a candidate
type Verdict string

const (
	VerdictValid   Verdict = "Valid PAN"
	VerdictInvalid Verdict = "Invalid PAN"
)

func (v Verdict) String() string {
	return string(v)
}

// Reason explains why a candidate was rejected
type Reason string

const (
	ReasonFormatMismatch    Reason = "format_mismatch"    // Does not match [A-Z]{5}[0-9]{4}[A-Z]
	ReasonAdjacentRepeat    Reason = "adjacent_repeat"    // Two identical consecutive characters
	ReasonSequentialPrefix  Reason = "sequential_prefix"  // Letter prefix is a perfect ascending run
	ReasonSequentialDigits  Reason = "sequential_digits"  // Digit block is a perfect ascending run
)

// Classification pairs a cleaned candidate with its verdict.
// Reasons are diagnostic only; they never influence the verdict itself.
type Classification struct {
	Candidate string   `json:"candidate"`
	Verdict   Verdict  `json:"verdict"`
	Reasons   []Reason `json:"reasons,omitempty"`
}
