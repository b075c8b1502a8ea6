package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"artpiece/internal/domain"
)

// DefaultURL is the IP-geolocation endpoint used when none is configured.
const DefaultURL = "https://ipapi.co/json/"

// HTTPLocator reads the approximate position from an IP-geolocation service.
type HTTPLocator struct {
	URL  string
	HTTP *http.Client
	now  func() time.Time
}

// NewHTTPLocator returns a locator for url. A nil client gets a 10s timeout.
func NewHTTPLocator(url string, client *http.Client) *HTTPLocator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLocator{URL: url, HTTP: client, now: time.Now}
}

type geoResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  float64  `json:"accuracy"`
}

// CurrentPosition performs one lookup.
func (l *HTTPLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return domain.Position{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.HTTP.Do(req)
	if err != nil {
		return domain.Position{}, fmt.Errorf("locate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Position{}, fmt.Errorf("locate get %s: %s", l.URL, resp.Status)
	}

	var g geoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&g); err != nil {
		return domain.Position{}, fmt.Errorf("locate decode: %w", err)
	}
	if g.Status == "fail" || g.Error {
		msg := g.Message
		if msg == "" {
			msg = g.Reason
		}
		return domain.Position{}, fmt.Errorf("locate: provider error: %s", msg)
	}

	lat, lon := g.Lat, g.Lon
	if lat == nil || lon == nil {
		lat, lon = g.Latitude, g.Longitude
	}
	if lat == nil || lon == nil {
		return domain.Position{}, errors.New("locate: response has no coordinates")
	}
	pos := domain.Position{
		Latitude:  *lat,
		Longitude: *lon,
		Accuracy:  g.Accuracy,
		Source:    "ip",
		Timestamp: l.now().UTC(),
	}
	if err := Validate(pos); err != nil {
		return domain.Position{}, err
	}
	return pos, nil
}

// Validate rejects coordinates outside the WGS84 range.
func Validate(p domain.Position) error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", p.Longitude)
	}
	return nil
}

// StaticLocator always reports the same coordinates.
type StaticLocator struct {
	Latitude  float64
	Longitude float64
}

// CurrentPosition returns the configured coordinates.
func (s StaticLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	pos := domain.Position{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Source:    "static",
		Timestamp: time.Now().UTC(),
	}
	return pos, Validate(pos)
}

var (
	_ domain.Locator = (*HTTPLocator)(nil)
	_ domain.Locator = StaticLocator{}
)
