package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/skanade/panvet/internal/cache"
	"github.com/skanade/panvet/internal/classify"
	"github.com/skanade/panvet/internal/ingest"
	"github.com/skanade/panvet/internal/model"
	"github.com/skanade/panvet/internal/normalize"
	"github.com/skanade/panvet/internal/report"
)

// Pipeline orchestrates the complete vetting process for one source
type Pipeline struct {
	classifier *classify.Classifier
	summarizer *report.Summarizer
	renderer   *Renderer
	verdicts   cache.Cache // nil when caching is disabled
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var verdicts cache.Cache
	if cfg.Cache.Enabled {
		verdicts = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	return &Pipeline{
		classifier: classify.NewClassifier(),
		summarizer: report.NewSummarizer(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		verdicts:   verdicts,
		config:     cfg,
	}
}

// Check runs the full pipeline for one source and produces a report
func (p *Pipeline) Check(ctx context.Context, src ingest.Source) (*model.Report, error) {
	// 1. Ingest raw records
	payload, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	// 2. Clean and deduplicate into the candidate set. This happens
	// single-threaded, before any fan-out, so dedup needs no locking.
	candidates := normalize.Candidates(payload.Records)

	// 3. Classify candidates concurrently
	results := p.classifyAll(ctx, candidates)

	// 4. Aggregate counts
	summary := p.summarizer.Summarize(len(payload.Records), len(candidates), results)

	return &model.Report{
		Source:    src.Name(),
		CheckedAt: time.Now().UTC(),
		FetchMeta: payload.Meta,
		Results:   results,
		Summary:   summary,
	}, nil
}

// classifyAll fans classification out across candidates with a bounded
// number of goroutines. Each candidate is independent, and results are
// written by index, so the output order matches the (sorted) candidate set
// regardless of scheduling.
func (p *Pipeline) classifyAll(ctx context.Context, candidates []string) []model.Classification {
	if len(candidates) == 0 {
		return []model.Classification{}
	}

	workers := p.config.Concurrency.ClassifyWorkers
	if workers <= 0 {
		workers = 1
	}

	results := make([]model.Classification, len(candidates))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, workers)

	for i, candidate := range candidates {
		wg.Add(1)
		go func(idx int, c string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				// Classification is pure CPU work measured in
				// microseconds. Finishing inline on cancellation keeps
				// the totality invariant: no candidate is ever left
				// without a verdict.
				results[idx] = p.classifyOne(c)
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = p.classifyOne(c)
		}(i, candidate)
	}

	wg.Wait()
	return results
}

// classifyOne classifies a single candidate, consulting the verdict cache
// when enabled
func (p *Pipeline) classifyOne(candidate string) model.Classification {
	if p.verdicts == nil {
		return p.classifier.Classify(candidate)
	}

	key := cache.Key(candidate)
	if data, found := p.verdicts.Get(key); found {
		var cached model.Classification
		if err := json.Unmarshal(data, &cached); err == nil && cached.Candidate == candidate {
			return cached
		}
	}

	result := p.classifier.Classify(candidate)
	if data, err := json.Marshal(result); err == nil {
		_ = p.verdicts.Set(key, data, 0)
	}
	return result
}

// RenderReport renders the report to the configured outputs and prints the
// summary to stdout
func (p *Pipeline) RenderReport(rep *model.Report, jsonPath, csvPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(rep, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if csvPath != "" {
		if err := p.renderer.RenderCSV(rep, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote CSV: %s\n", csvPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(rep, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(rep)

	return nil
}
