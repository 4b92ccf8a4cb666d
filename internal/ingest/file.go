package ingest

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skanade/panvet/internal/model"
)

// FileSource reads raw records from a local file. Line files yield one
// record per non-comment line; CSV files yield one record per row from the
// configured column.
type FileSource struct {
	path  string
	input model.InputConfig
}

// NewFileSource creates a file source
func NewFileSource(path string, input model.InputConfig) *FileSource {
	return &FileSource{path: path, input: input}
}

// Name returns the file path
func (f *FileSource) Name() string {
	return f.path
}

// Read parses the file into raw records
func (f *FileSource) Read(ctx context.Context) (*Payload, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = file.Close() }()

	var records []model.RawRecord
	switch formatForName(f.path) {
	case FormatCSV:
		records, err = ParseCSV(file, f.input)
	case FormatHTML:
		records, err = ParseHTML(file)
	default:
		records, err = ParseLines(file)
	}
	if err != nil {
		return nil, err
	}

	return &Payload{Records: records}, nil
}

// ParseLines reads one raw record per line. Blank lines stay in the record
// sequence as empty values so the raw count matches the source; lines
// starting with '#' are comments and skipped entirely.
func ParseLines(r io.Reader) ([]model.RawRecord, error) {
	var records []model.RawRecord

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		records = append(records, model.NewRawRecord(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan source: %w", err)
	}

	return records, nil
}

// ParseCSV reads one raw record per data row, taking the value from the
// configured column. The column is either a 0-based index or, when the
// input declares a header row, a header name. An absent field or a literal
// NULL / \N marker becomes a null record.
func ParseCSV(r io.Reader, input model.InputConfig) ([]model.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = false

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := 0
	start := 0
	if input.HasHeader {
		start = 1
		idx, err := resolveColumn(rows[0], input.Column)
		if err != nil {
			return nil, err
		}
		col = idx
	} else if input.Column != "" {
		idx, err := strconv.Atoi(input.Column)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("column %q: expected a 0-based index for headerless input", input.Column)
		}
		col = idx
	}

	var records []model.RawRecord
	for _, row := range rows[start:] {
		if col >= len(row) {
			records = append(records, model.NullRecord())
			continue
		}
		value := row[col]
		if value == "NULL" || value == `\N` {
			records = append(records, model.NullRecord())
			continue
		}
		records = append(records, model.NewRawRecord(value))
	}

	return records, nil
}

// resolveColumn maps a column spec to an index using the header row
func resolveColumn(header []string, column string) (int, error) {
	if column == "" {
		return 0, nil
	}
	if idx, err := strconv.Atoi(column); err == nil {
		if idx < 0 || idx >= len(header) {
			return 0, fmt.Errorf("column index %d out of range (header has %d fields)", idx, len(header))
		}
		return idx, nil
	}
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", column, header)
}
