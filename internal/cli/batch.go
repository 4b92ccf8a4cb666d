package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/skanade/panvet/internal/model"
	"github.com/skanade/panvet/internal/pipeline"
	"github.com/skanade/panvet/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	rps          float64
	burst        int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Vet multiple sources from a file in parallel",
	Long: `Batch processes multiple sources concurrently:
- Read source specs from the input file (one file path or URL per line)
- Process sources in parallel with configurable worker count
- Throttle URL sources per host
- Generate an individual report for each source

Example:
  panvet batch sources.txt
  panvet batch sources.txt --concurrency 10 --output-dir ./reports
  panvet batch sources.txt --rps 1 --burst 2`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./panvet-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Rate limiting flags (URL sources only)
	batchCmd.Flags().Float64Var(&rps, "rps", 2.0, "max requests per second per host (0 disables)")
	batchCmd.Flags().IntVar(&burst, "burst", 5, "rate limit burst size")

	// Shared source flags
	batchCmd.Flags().StringVar(&column, "column", "0", "CSV column holding the values (index or header name)")
	batchCmd.Flags().BoolVar(&hasHeader, "header", false, "first CSV row is a header")
	batchCmd.Flags().DurationVar(&timeout, "fetch-timeout", 30*time.Second, "timeout for individual URL fetches")
	batchCmd.Flags().StringVar(&userAgent, "ua", "panvet/0.2 (+https://github.com/skanade/panvet)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verdict cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  panvet Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.Input.Column = column
	cfg.Input.HasHeader = hasHeader
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.RequestsPerSecond = rps
	cfg.RateLimiting.BurstSize = burst
	cfg.Output.Verbose = verbose

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	// Create batch processor
	processor := worker.NewBatchProcessor(p, concurrency, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	// Process sources
	fmt.Fprintf(os.Stderr, "⚙️  Reading sources from file...\n")
	results, err := processor.ProcessFile(ctx, file, cfg)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d sources\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Processing sources with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Render results
	renderer := pipeline.NewRenderer(true)
	successCount := 0
	failureCount := 0
	totals := model.Summary{}

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Source, result.Error)
			continue
		}

		jsonPath := filepath.Join(outputDir, slugify(result.Source)+".json")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", result.Source, err)
			continue
		}

		successCount++
		s := result.Report.Summary
		totals.TotalRaw += s.TotalRaw
		totals.TotalCleaned += s.TotalCleaned
		totals.TotalValid += s.TotalValid
		totals.TotalInvalid += s.TotalInvalid
		totals.TotalUnclassified += s.TotalUnclassified
		fmt.Fprintf(os.Stderr, "✓ %s: %d valid / %d invalid, wrote %s\n", result.Source, s.TotalValid, s.TotalInvalid, jsonPath)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch complete: %d sources ok, %d failed\n", successCount, failureCount)
	fmt.Fprintf(os.Stderr, "  Raw %d, cleaned %d, valid %d, invalid %d\n", totals.TotalRaw, totals.TotalCleaned, totals.TotalValid, totals.TotalInvalid)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")

	if err := totals.Check(); err != nil {
		return err
	}
	if failureCount > 0 {
		return fmt.Errorf("%d of %d sources failed", failureCount, len(results))
	}
	return nil
}

// slugify turns a source spec into a safe report filename
func slugify(source string) string {
	s := strings.TrimPrefix(source, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
