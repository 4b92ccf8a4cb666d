package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skanade/panvet/internal/ingest"
	"github.com/skanade/panvet/internal/model"
	"github.com/skanade/panvet/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outCSV      string
	outMD       string
	column      string
	hasHeader   bool
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	insecureTLS bool
	workers     int
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <source>",
	Short: "Vet PAN values from a file or URL",
	Long: `Check ingests raw values from a source, cleans them, and vets every
cleaned candidate against the structural rule set:
- Positional format: 5 uppercase letters, 4 digits, 1 uppercase letter
- No two identical consecutive characters
- Letter prefix must not be a perfect ascending run (ABCDE)
- Digit block must not be a perfect ascending run (1234)

The source is a local file or an http(s) URL. CSV sources take values from
a configurable column; HTML sources are read cell by cell.

Example:
  panvet check pans.txt
  panvet check pans.csv --column pan --header --csv verdicts.csv
  panvet check https://example.com/pans.csv --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	checkCmd.Flags().StringVar(&outCSV, "csv", "", "output CSV verdict path (optional)")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Input flags
	checkCmd.Flags().StringVar(&column, "column", "0", "CSV column holding the values (index or header name)")
	checkCmd.Flags().BoolVar(&hasHeader, "header", false, "first CSV row is a header")

	// HTTP flags
	checkCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall check timeout")
	checkCmd.Flags().StringVar(&userAgent, "ua", "panvet/0.2 (+https://github.com/skanade/panvet)", "HTTP User-Agent")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	checkCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// Pipeline flags
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verdict cache")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	checkCmd.Flags().IntVar(&workers, "workers", 8, "classification workers per source")
}

func runCheck(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Input.Column = column
	cfg.Input.HasHeader = hasHeader
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.ClassifyWorkers = workers
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Ingesting records...\n")
	}

	rep, err := p.Check(ctx, ingest.Detect(source, cfg))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Ingested %d raw records\n", rep.Summary.TotalRaw)
		fmt.Fprintf(os.Stderr, "✓ Cleaned to %d candidates\n", rep.Summary.TotalCleaned)
		fmt.Fprintf(os.Stderr, "✓ Classified: %d valid, %d invalid\n", rep.Summary.TotalValid, rep.Summary.TotalInvalid)
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(rep, outJSON, outCSV, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	// A non-zero unclassified count is a classifier defect, not bad data
	return rep.Summary.Check()
}
