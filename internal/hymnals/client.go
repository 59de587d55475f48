// Package hymnals downloads remote hymnal JSON documents and imports them
// into the database, replacing the hymn table wholesale.
package hymnals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client fetches hymnal JSON documents.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new hymnal download client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// HymnRecord is a single hymn in the remote document. Content may carry
// legacy HTML markup.
type HymnRecord struct {
	Number  FlexInt `json:"number"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
}

// FlexInt accepts both JSON numbers and numeric strings; published hymnal
// documents are inconsistent about which they use.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid hymn number %q: %w", s, err)
	}
	*f = FlexInt(n)
	return nil
}

// Document is a parsed hymnal.
type Document struct {
	Title    string
	Language string
	Hymns    []HymnRecord
}

// wrappedDocument is the object form: hymn list plus metadata.
type wrappedDocument struct {
	Title    string       `json:"title"`
	Language string       `json:"language"`
	Hymns    []HymnRecord `json:"hymns"`
}

// Download fetches and parses the hymnal document at url. The document is
// either a bare JSON list of hymn records or an object wrapping the list
// with title and language metadata.
func (c *Client) Download(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return ParseDocument(body)
}

// ParseDocument decodes either accepted document shape.
func ParseDocument(data []byte) (*Document, error) {
	var records []HymnRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return &Document{
			Title:    "Christ in Song",
			Language: "English",
			Hymns:    records,
		}, nil
	}

	var wrapped wrappedDocument
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Hymns != nil {
		doc := &Document{
			Title:    wrapped.Title,
			Language: wrapped.Language,
			Hymns:    wrapped.Hymns,
		}
		if doc.Title == "" {
			doc.Title = "Christ in Song"
		}
		if doc.Language == "" {
			doc.Language = "English"
		}
		return doc, nil
	}

	return nil, fmt.Errorf("cannot parse hymnal data: unexpected JSON format")
}
