package model

import (
	"fmt"
	"time"
)

// Report represents the complete vetting report for one source
type Report struct {
	Source    string     `json:"source"`               // File path or URL that was checked
	CheckedAt time.Time  `json:"checked_at"`           // When the check occurred
	FetchMeta *FetchMeta `json:"fetch_meta,omitempty"` // HTTP metadata (URL sources only)

	Results []Classification `json:"results"` // One entry per cleaned candidate
	Summary Summary          `json:"summary"` // Aggregate counts
}

// FetchMeta contains HTTP metadata from fetching a URL source
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}

// Summary holds the aggregate counts for one vetting run
type Summary struct {
	TotalRaw          int `json:"total_raw"`          // Records ingested, including null/empty
	TotalCleaned      int `json:"total_cleaned"`      // Candidates after normalization and dedup
	TotalValid        int `json:"total_valid"`
	TotalInvalid      int `json:"total_invalid"`
	TotalUnclassified int `json:"total_unclassified"` // Always 0 for a correct classifier
}

// Check verifies the totality invariant: every cleaned candidate received
// exactly one verdict. A non-zero unclassified count indicates a classifier
// defect, not a data problem.
func (s Summary) Check() error {
	if s.TotalUnclassified != 0 {
		return fmt.Errorf("summary invariant violated: %d of %d candidates unclassified", s.TotalUnclassified, s.TotalCleaned)
	}
	if s.TotalCleaned != s.TotalValid+s.TotalInvalid {
		return fmt.Errorf("summary invariant violated: cleaned=%d but valid+invalid=%d", s.TotalCleaned, s.TotalValid+s.TotalInvalid)
	}
	return nil
}
