package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/skanade/panvet/internal/model"
)

// Renderer writes reports to files and the terminal
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(rep *model.Report, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderCSV writes (candidate, verdict) pairs. The verdict column carries
// the exact "Valid PAN" / "Invalid PAN" strings existing consumers expect.
func (r *Renderer) RenderCSV(rep *model.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"pan", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, result := range rep.Results {
		if err := w.Write([]string{result.Candidate, result.Verdict.String()}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(rep *model.Report, path string) error {
	var buf strings.Builder

	buf.WriteString("# PAN Vetting Report\n\n")
	buf.WriteString(fmt.Sprintf("**Source:** %s\n\n", rep.Source))
	buf.WriteString(fmt.Sprintf("**Checked:** %s\n\n", rep.CheckedAt.Format("2006-01-02 15:04:05 UTC")))

	buf.WriteString("## Summary\n\n")
	buf.WriteString("| Counter | Value |\n")
	buf.WriteString("|---------|-------|\n")
	buf.WriteString(fmt.Sprintf("| Raw records | %d |\n", rep.Summary.TotalRaw))
	buf.WriteString(fmt.Sprintf("| Cleaned candidates | %d |\n", rep.Summary.TotalCleaned))
	buf.WriteString(fmt.Sprintf("| Valid | %d |\n", rep.Summary.TotalValid))
	buf.WriteString(fmt.Sprintf("| Invalid | %d |\n", rep.Summary.TotalInvalid))
	buf.WriteString(fmt.Sprintf("| Unclassified | %d |\n\n", rep.Summary.TotalUnclassified))

	buf.WriteString("## Results\n\n")
	buf.WriteString("| PAN | Status | Reasons |\n")
	buf.WriteString("|-----|--------|--------|\n")
	for _, result := range rep.Results {
		reasons := make([]string, len(result.Reasons))
		for i, reason := range result.Reasons {
			reasons[i] = string(reason)
		}
		buf.WriteString(fmt.Sprintf("| %s | %s | %s |\n", result.Candidate, result.Verdict, strings.Join(reasons, ", ")))
	}

	if r.includeFooter {
		buf.WriteString("\n---\n\nGenerated by panvet. Structural vetting only; verdicts say nothing about whether a PAN was actually issued.\n")
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the run summary to stdout
func (r *Renderer) RenderSummary(rep *model.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  PAN Vetting Summary")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Source:       %s\n", rep.Source)
	fmt.Printf("  Raw records:  %d\n", rep.Summary.TotalRaw)
	fmt.Printf("  Cleaned:      %d\n", rep.Summary.TotalCleaned)
	fmt.Printf("  ✓ Valid:      %d\n", rep.Summary.TotalValid)
	fmt.Printf("  ✗ Invalid:    %d\n", rep.Summary.TotalInvalid)
	if rep.Summary.TotalUnclassified != 0 {
		fmt.Printf("  ⚠ Unclassified: %d (classifier defect)\n", rep.Summary.TotalUnclassified)
	}
	fmt.Println()
}
