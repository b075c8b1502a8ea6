package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"artpiece/internal/biometric"
	"artpiece/internal/catalog"
	"artpiece/internal/location"
	"artpiece/internal/store"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "ARTPIECE_"

// ConfigFilename is looked up in the home directory when no file is given.
const ConfigFilename = "config.yaml"

// Storage backends.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-" env:"HOME"` // config directory, e.g. $HOME/.artpiece

	CatalogURL  string        `yaml:"catalogURL" env:"CATALOG_URL"`
	HTTPTimeout time.Duration `yaml:"httpTimeout" env:"HTTP_TIMEOUT"`

	Storage     string `yaml:"storage" env:"STORAGE"` // "file" or "redis"
	RedisAddr   string `yaml:"redisAddr" env:"REDIS_ADDR"`
	RedisDB     int    `yaml:"redisDB" env:"REDIS_DB"`
	RedisPrefix string `yaml:"redisPrefix" env:"REDIS_PREFIX"`

	LocationURL    string `yaml:"locationURL" env:"LOCATION_URL"`
	StaticLocation string `yaml:"staticLocation" env:"STATIC_LOCATION"` // "lat,lon"; overrides LocationURL

	DeviceID        string        `yaml:"deviceID" env:"DEVICE_ID"`
	PromptTimeout   time.Duration `yaml:"promptTimeout" env:"PROMPT_TIMEOUT"`
	Passphrase      string        `yaml:"-" env:"PASSPHRASE"`
	PassphraseStdin bool          `yaml:"-"`
	AssumeYes       bool          `yaml:"-"`

	LogLevel  string `yaml:"logLevel" env:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" env:"LOG_FORMAT"`

	HTTP *http.Client `yaml:"-"` // optional; built from HTTPTimeout when nil
}

// Default returns the built-in configuration rooted at home.
func Default(home string) Config {
	return Config{
		Home:          home,
		CatalogURL:    catalog.DefaultURL,
		HTTPTimeout:   catalog.DefaultTimeout,
		Storage:       StorageFile,
		RedisAddr:     "127.0.0.1:6379",
		RedisPrefix:   store.DefaultRedisPrefix,
		LocationURL:   location.DefaultURL,
		PromptTimeout: biometric.DefaultPromptTimeout,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// DefaultHome returns ~/.artpiece.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".artpiece"), nil
}

// Load resolves home (argument, then ARTPIECE_HOME, then DefaultHome), reads
// file (or <home>/config.yaml when file is empty and that exists) and applies
// the environment on top.
func Load(home, file string) (Config, error) {
	if home == "" {
		home = os.Getenv(EnvPrefix + "HOME")
	}
	if home == "" {
		var err error
		if home, err = DefaultHome(); err != nil {
			return Config{}, err
		}
	}
	cfg := Default(home)

	explicit := file != ""
	if !explicit {
		file = filepath.Join(home, ConfigFilename)
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", file, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Home = home
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("config: home is required")
	}
	u, err := url.Parse(c.CatalogURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("config: catalogURL %q is not an http(s) URL", c.CatalogURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("config: httpTimeout must be positive")
	}
	if c.PromptTimeout <= 0 {
		return errors.New("config: promptTimeout must be positive")
	}
	switch c.Storage {
	case StorageFile:
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("config: redisAddr is required for redis storage")
		}
	default:
		return fmt.Errorf("config: unknown storage %q (want %s or %s)", c.Storage, StorageFile, StorageRedis)
	}
	if c.StaticLocation != "" {
		if _, _, err := ParseLatLon(c.StaticLocation); err != nil {
			return fmt.Errorf("config: staticLocation: %w", err)
		}
	}
	return nil
}

// ParseLatLon parses "lat,lon".
func ParseLatLon(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: want \"lat,lon\"", s)
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}
