package ingest

import (
	"context"
	"strings"

	"github.com/skanade/panvet/internal/model"
)

// Payload is the raw record sequence produced by a source, plus HTTP
// metadata when the source was fetched over the network.
type Payload struct {
	Records []model.RawRecord
	Meta    *model.FetchMeta
}

// Source provides a sequence of optional text values for vetting
type Source interface {
	// Name returns the source description used in reports (path or URL)
	Name() string
	// Read produces the raw records. Null records are preserved so the
	// raw count reflects the source faithfully.
	Read(ctx context.Context) (*Payload, error)
}

// Format describes how source content is interpreted
type Format int

const (
	FormatLines Format = iota // One value per line
	FormatCSV                 // Delimited, one column selected
	FormatHTML                // Values extracted from markup
)

// Detect builds a source for the given spec. Specs with an http(s) scheme
// become URL sources; everything else is a local file path.
func Detect(spec string, cfg *model.Config) Source {
	if strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://") {
		return NewHTTPSource(spec, cfg)
	}
	return NewFileSource(spec, cfg.Input)
}

// formatForName guesses the content format from a path or URL suffix
func formatForName(name string) Format {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return FormatHTML
	default:
		return FormatLines
	}
}
