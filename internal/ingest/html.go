package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/skanade/panvet/internal/model"
	"golang.org/x/net/html"
)

// ParseHTML extracts raw records from markup. Identifier lists published as
// web pages usually arrive as tables or lists, so each <td> or <li> becomes
// one record. Documents without cells fall back to one record per visible
// text line. Scripts and styles are never part of the record stream.
func ParseHTML(r io.Reader) ([]model.RawRecord, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	values := extractCellValues(doc)
	if len(values) == 0 {
		values = strings.FieldsFunc(extractVisibleText(doc), func(r rune) bool {
			return r == '\n'
		})
	}

	records := make([]model.RawRecord, 0, len(values))
	for _, v := range values {
		records = append(records, model.NewRawRecord(v))
	}
	return records, nil
}

// extractCellValues collects the text content of each table cell and list
// item as a single value
func extractCellValues(n *html.Node) []string {
	var values []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "td", "li":
				values = append(values, nodeText(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return values
}

// nodeText concatenates the text nodes under n
func nodeText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// extractVisibleText extracts text nodes from the document, one line per
// text node, skipping non-visible elements
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
