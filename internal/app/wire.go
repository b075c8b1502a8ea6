package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"artpiece/internal/biometric"
	"artpiece/internal/catalog"
	"artpiece/internal/domain"
	"artpiece/internal/location"
	"artpiece/internal/notify"
	catalogsvc "artpiece/internal/services/catalog"
	"artpiece/internal/services/enrollment"
	"artpiece/internal/services/favorites"
	locationsvc "artpiece/internal/services/location"
	"artpiece/internal/store"
)

// Streams are the terminal handles a session talks to.
type Streams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config Config
	Log    *slog.Logger

	KV          domain.KeyValueStore
	Credentials domain.CredentialStore
	Gate        domain.BiometricGate
	Enrollment  domain.EnrollmentService
	Favorites   *favorites.Service
	Catalog     domain.CatalogService
	Location    *locationsvc.Service
	HTTP        *http.Client

	closers []func() error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, streams Streams, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	w := &Wire{Config: cfg, Log: log}

	// Key-value backend
	switch cfg.Storage {
	case StorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		w.KV = store.NewRedisKV(client, cfg.RedisPrefix)
		w.closers = append(w.closers, client.Close)
	default:
		w.KV = store.NewFileKV(cfg.Home)
	}

	// Ensure an HTTP client is available for outbound calls
	w.HTTP = cfg.HTTP
	if w.HTTP == nil {
		w.HTTP = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	// Biometric gate
	w.Credentials = store.NewCredentialFileStore(cfg.Home)
	auth := biometric.NewTerminalAuthenticator(w.Credentials, secretReader(cfg, streams), cfg.PromptTimeout)
	w.Gate = biometric.NewGate(auth, log.With("component", "biometric"))
	w.Enrollment = enrollment.New(w.Credentials, cfg.DeviceID)

	// Favorites workflow
	w.Favorites = favorites.New(
		w.Gate,
		store.NewFavoritesStore(w.KV),
		notify.NewWriterNotifier(streams.Out),
		log.With("component", "favorites"),
	)

	// Catalog
	w.Catalog = catalogsvc.New(catalog.NewHTTP(cfg.CatalogURL, w.HTTP), log.With("component", "catalog"))

	// Location
	var locator domain.Locator = location.NewHTTPLocator(cfg.LocationURL, w.HTTP)
	if cfg.StaticLocation != "" {
		lat, lon, _ := ParseLatLon(cfg.StaticLocation) // checked by Validate
		locator = location.StaticLocator{Latitude: lat, Longitude: lon}
	}
	var prompter domain.Prompter = location.NewLinePrompter(streams.In, streams.Out)
	if cfg.AssumeYes {
		prompter = location.FixedPrompter(true)
	}
	w.Location = locationsvc.New(
		locator,
		store.NewPermissionStore(w.KV),
		prompter,
		log.With("component", "location"),
	)

	return w, nil
}

// Close releases backend connections.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("close: %w", errors.Join(errs...))
	}
	return nil
}

// secretReader picks where challenge secrets come from: a configured
// passphrase, piped stdin, or the terminal. A non-terminal stdin without
// either leaves the gate without hardware.
func secretReader(cfg Config, streams Streams) biometric.SecretReader {
	switch {
	case cfg.Passphrase != "":
		return biometric.NewStaticReader(cfg.Passphrase)
	case cfg.PassphraseStdin && streams.In != nil:
		return biometric.NewLineReader(streams.In, streams.Err)
	default:
		return biometric.NewTTYReader(streams.In, streams.Err)
	}
}
