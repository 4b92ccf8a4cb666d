package normalize

import (
	"sort"
	"strings"

	"github.com/skanade/panvet/internal/model"
)

// Clean trims and upper-cases a single raw value. It is idempotent:
// Clean(Clean(s)) == Clean(s) for every input.
func Clean(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Candidates cleans a sequence of raw records into the deduplicated
// candidate set. Null records and records that are empty after trimming are
// discarded; exact duplicates (post-trim, post-uppercase) collapse to a
// single entry. The result is sorted so downstream output is deterministic;
// the set semantics carry no meaningful order.
//
// This stage never fails, it only filters.
func Candidates(raws []model.RawRecord) []string {
	seen := make(map[string]bool)
	var candidates []string

	for _, r := range raws {
		if r.Value == nil {
			continue
		}
		cleaned := Clean(*r.Value)
		if cleaned == "" {
			continue
		}
		if !seen[cleaned] {
			seen[cleaned] = true
			candidates = append(candidates, cleaned)
		}
	}

	sort.Strings(candidates)
	return candidates
}
