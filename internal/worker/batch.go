package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skanade/panvet/internal/ingest"
	"github.com/skanade/panvet/internal/model"
)

// Checker defines the interface for vetting one source
type Checker interface {
	Check(ctx context.Context, src ingest.Source) (*model.Report, error)
}

// CheckJob vets a single source
type CheckJob struct {
	Source  ingest.Source
	Checker Checker
	Limiter *Limiter // nil for unthrottled sources
}

// Execute executes the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Source.Name()); err != nil {
			return &CheckResult{Source: j.Source.Name(), Error: err}
		}
	}

	report, err := j.Checker.Check(ctx, j.Source)
	if err != nil {
		return &CheckResult{Source: j.Source.Name(), Error: err}
	}
	return &CheckResult{Source: j.Source.Name(), Report: report}
}

// CheckResult represents the result of a check job
type CheckResult struct {
	Source string
	Report *model.Report
	Error  error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor vets multiple sources concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. URL sources sharing a
// host are throttled to requestsPerSecond; zero disables throttling.
func NewBatchProcessor(checker Checker, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	var limiter *Limiter
	if requestsPerSecond > 0 {
		limiter = NewLimiter(requestsPerSecond, burst)
	}

	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessSources vets multiple source specs concurrently
func (b *BatchProcessor) ProcessSources(ctx context.Context, specs []string, cfg *model.Config) []*CheckResult {
	if len(specs) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, spec := range specs {
		job := &CheckJob{
			Source:  ingest.Detect(spec, cfg),
			Checker: b.checker,
		}
		// Rate limiting applies to URL sources only
		if b.limiter != nil && strings.HasPrefix(spec, "http") {
			job.Limiter = b.limiter
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}

	return checkResults
}

// ProcessFile reads source specs from a file and vets them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, cfg *model.Config) ([]*CheckResult, error) {
	specs, err := ReadSourcesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	return b.ProcessSources(ctx, specs, cfg), nil
}

// ReadSourcesFromFile reads source specs from a file (one per line)
func ReadSourcesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var specs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate sources
		if !seen[line] {
			seen[line] = true
			specs = append(specs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return specs, nil
}
