package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/skanade/panvet/internal/ingest"
	"github.com/skanade/panvet/internal/model"
)

// mockChecker implements the Checker interface
type mockChecker struct {
	ShouldError bool
}

func (m *mockChecker) Check(ctx context.Context, src ingest.Source) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("check error")
	}
	return &model.Report{
		Source: src.Name(),
		Summary: model.Summary{
			TotalRaw:     1,
			TotalCleaned: 1,
			TotalInvalid: 1,
		},
	}, nil
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	checker := &mockChecker{}
	processor := NewBatchProcessor(checker, 2, 0, 0)

	specs := []string{"a.txt", "b.csv", "c.txt"}
	ctx := context.Background()

	results := processor.ProcessSources(ctx, specs, model.DefaultConfig())

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Report == nil {
				t.Error("expected report for successful check")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Source, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessSources_Error(t *testing.T) {
	checker := &mockChecker{ShouldError: true}
	processor := NewBatchProcessor(checker, 2, 0, 0)

	results := processor.ProcessSources(context.Background(), []string{"a.txt"}, model.DefaultConfig())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessSources_Empty(t *testing.T) {
	checker := &mockChecker{}
	processor := NewBatchProcessor(checker, 2, 0, 0)

	results := processor.ProcessSources(context.Background(), []string{}, model.DefaultConfig())
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	content := `pans-north.csv
# comment
https://example.com/pans.csv

pans-south.txt   `

	tmpfile, err := os.CreateTemp("", "sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	specs, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	expected := []string{"pans-north.csv", "https://example.com/pans.csv", "pans-south.txt"}
	if len(specs) != len(expected) {
		t.Fatalf("expected %d sources, got %d", len(expected), len(specs))
	}

	for i, spec := range specs {
		if spec != expected[i] {
			t.Errorf("expected source %s at index %d, got %s", expected[i], i, spec)
		}
	}
}

func TestReadSourcesFromFile_NonExistent(t *testing.T) {
	_, err := ReadSourcesFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestCheckResult_GetError(t *testing.T) {
	r1 := &CheckResult{Source: "a.txt", Error: nil}
	if r1.GetError() != nil {
		t.Error("expected nil error")
	}

	wantErr := errors.New("boom")
	r2 := &CheckResult{Source: "b.txt", Error: wantErr}
	if !errors.Is(r2.GetError(), wantErr) {
		t.Error("expected wrapped error returned as-is")
	}
}
