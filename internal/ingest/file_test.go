package ingest

import (
	"strings"
	"testing"

	"github.com/skanade/panvet/internal/model"
)

func TestParseLines(t *testing.T) {
	input := "ABCDE1234F\n# comment line\n\n  xkplr9382q  \nNULL\n"

	records, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Comment skipped; blank line kept as an empty record; the literal
	// NULL marker is meaningful only in CSV, here it is an ordinary value.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].Value == nil || *records[0].Value != "ABCDE1234F" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if records[1].Value == nil || *records[1].Value != "" {
		t.Errorf("expected blank line to stay as empty record, got %v", records[1])
	}
	if records[2].Value == nil || *records[2].Value != "  xkplr9382q  " {
		t.Errorf("expected padding preserved for the normalizer, got %v", records[2])
	}
	if records[3].Value == nil || *records[3].Value != "NULL" {
		t.Errorf("expected literal NULL kept in line mode, got %v", records[3])
	}
}

func TestParseCSV_HeaderColumn(t *testing.T) {
	input := "id,pan,name\n1,ABCDE1234F,first\n2,NULL,second\n3,xkplr9382q,third\n"

	records, err := ParseCSV(strings.NewReader(input), model.InputConfig{Column: "pan", HasHeader: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Value == nil || *records[0].Value != "ABCDE1234F" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if records[1].Value != nil {
		t.Errorf("expected NULL marker to yield null record, got %q", *records[1].Value)
	}
	if records[2].Value == nil || *records[2].Value != "xkplr9382q" {
		t.Errorf("unexpected third record: %v", records[2])
	}
}

func TestParseCSV_IndexColumn(t *testing.T) {
	input := "1,ABCDE1234F\n2,AABCD1234E\n"

	records, err := ParseCSV(strings.NewReader(input), model.InputConfig{Column: "1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if *records[0].Value != "ABCDE1234F" || *records[1].Value != "AABCD1234E" {
		t.Errorf("unexpected records: %v %v", records[0], records[1])
	}
}

func TestParseCSV_RaggedRowYieldsNull(t *testing.T) {
	input := "1,ABCDE1234F\n2\n"

	records, err := ParseCSV(strings.NewReader(input), model.InputConfig{Column: "1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Value != nil {
		t.Errorf("expected null record for missing field, got %q", *records[1].Value)
	}
}

func TestParseCSV_UnknownColumn(t *testing.T) {
	input := "id,pan\n1,ABCDE1234F\n"

	_, err := ParseCSV(strings.NewReader(input), model.InputConfig{Column: "nope", HasHeader: true})
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestFormatForName(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"pans.csv", FormatCSV},
		{"pans.CSV", FormatCSV},
		{"list.html", FormatHTML},
		{"list.htm", FormatHTML},
		{"pans.txt", FormatLines},
		{"pans", FormatLines},
	}

	for _, tt := range tests {
		if got := formatForName(tt.name); got != tt.expected {
			t.Errorf("formatForName(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
