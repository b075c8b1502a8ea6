package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"artpiece/internal/domain"
)

// DefaultURL is the published art catalog.
const DefaultURL = "https://stud.hosted.hr.nl/1056617/data.json"

// DefaultTimeout bounds one catalog request.
const DefaultTimeout = 15 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// HTTP fetches the catalog from URL.
type HTTP struct {
	URL  string
	HTTP *http.Client
}

// NewHTTP returns a client for url. A nil client gets DefaultTimeout.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTP{URL: url, HTTP: client}
}

// FetchItems reads the catalog once. Items without a title are dropped and
// repeated titles are kept once, first occurrence wins.
func (c *HTTP) FetchItems(ctx context.Context) ([]domain.CatalogItem, error) {
	var raw []domain.CatalogItem
	if err := c.getJSON(ctx, &raw); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]domain.CatalogItem, 0, len(raw))
	for _, it := range raw {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, domain.CatalogItem{Title: title})
	}
	return out, nil
}

func (c *HTTP) getJSON(ctx context.Context, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", domain.ErrFetch, c.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return fmt.Errorf("%w: get %s: %s", domain.ErrFetch, c.URL, resp.Status)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrFetch, c.URL, err)
	}
	return nil
}

// Compile-time assertion that HTTP implements domain.CatalogClient.
var _ domain.CatalogClient = (*HTTP)(nil)
