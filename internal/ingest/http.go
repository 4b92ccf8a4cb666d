package ingest

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/skanade/panvet/internal/model"
)

// HTTPSource fetches raw records from a URL. The response body is
// interpreted by Content-Type first, URL suffix second: HTML is parsed for
// cells, CSV by column, anything else line by line.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	input      model.InputConfig
}

// NewHTTPSource creates a URL source with the configured HTTP behavior
func NewHTTPSource(url string, cfg *model.Config) *HTTPSource {
	transport := &http.Transport{}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		input:     cfg.Input,
	}
}

// Name returns the source URL
func (h *HTTPSource) Name() string {
	return h.url
}

// Read fetches the URL and parses the body into raw records
func (h *HTTPSource) Read(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,text/html;q=0.8,*/*;q=0.5")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	meta := &model.FetchMeta{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
		ETag:         resp.Header.Get("ETag"),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	// Read body with size limit
	limitedReader := io.LimitReader(resp.Body, h.maxBytes)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var records []model.RawRecord
	switch h.format(meta.ContentType) {
	case FormatHTML:
		records, err = ParseHTML(bytes.NewReader(body))
	case FormatCSV:
		records, err = ParseCSV(bytes.NewReader(body), h.input)
	default:
		records, err = ParseLines(bytes.NewReader(body))
	}
	if err != nil {
		return nil, err
	}

	return &Payload{Records: records, Meta: meta}, nil
}

// format resolves the body format from Content-Type, falling back to the
// URL suffix for servers that send a generic type
func (h *HTTPSource) format(contentType string) Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/html"), strings.Contains(ct, "application/xhtml"):
		return FormatHTML
	case strings.Contains(ct, "text/csv"), strings.Contains(ct, "application/csv"):
		return FormatCSV
	case strings.Contains(ct, "text/plain"):
		return FormatLines
	default:
		return formatForName(h.url)
	}
}
