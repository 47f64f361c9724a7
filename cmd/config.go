package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront/internal/pkg/errs"
)

const (
	DefaultHTTPPort    = "8080"
	DefaultNATSURL     = "nats://127.0.0.1:4222"
	DefaultCatalogPath = "catalog.yaml"
	DefaultAPIBaseURL  = "http://127.0.0.1:8080"
	DefaultCartTTL     = 24 * time.Hour
	DefaultAPITimeout  = 10 * time.Second
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	NATSURL            string
	CatalogPath        string
	StaffTokenSecret   string
	APIBaseURL         string
	APITimeout         time.Duration
	StaffToken         string
	CartTTL            time.Duration
	CartExpirySchedule string
	RefreshSchedule    string
	NotifySound        bool
	OpenAPIValidation  bool
}

// LoadConfig reads the configuration through getenv. Unset keys take their
// defaults; malformed durations and booleans are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:           withDefault(getenv("HTTP_PORT"), DefaultHTTPPort),
		DBHost:             getenv("DB_HOST"),
		DBPort:             withDefault(getenv("DB_PORT"), "5432"),
		DBUser:             getenv("DB_USER"),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME"),
		DBSslMode:          withDefault(getenv("DB_SSLMODE"), "disable"),
		NATSURL:            withDefault(getenv("NATS_URL"), DefaultNATSURL),
		CatalogPath:        withDefault(getenv("CATALOG_PATH"), DefaultCatalogPath),
		StaffTokenSecret:   getenv("STAFF_TOKEN_SECRET"),
		APIBaseURL:         withDefault(getenv("API_BASE_URL"), DefaultAPIBaseURL),
		StaffToken:         getenv("STAFF_TOKEN"),
		CartExpirySchedule: getenv("CART_EXPIRY_SCHEDULE"),
		RefreshSchedule:    getenv("REFRESH_SCHEDULE"),
	}

	var problems []error
	var err error
	if cfg.CartTTL, err = parseDuration(getenv, "CART_TTL", DefaultCartTTL); err != nil {
		problems = append(problems, err)
	}
	if cfg.APITimeout, err = parseDuration(getenv, "API_TIMEOUT", DefaultAPITimeout); err != nil {
		problems = append(problems, err)
	}
	if cfg.NotifySound, err = parseBool(getenv, "NOTIFY_SOUND", true); err != nil {
		problems = append(problems, err)
	}
	if cfg.OpenAPIValidation, err = parseBool(getenv, "OPENAPI_VALIDATION", true); err != nil {
		problems = append(problems, err)
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN renders the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ValidateServer checks the keys the HTTP server cannot start without.
func (c Config) ValidateServer() error {
	var problems []error
	required := []struct{ key, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"STAFF_TOKEN_SECRET", c.StaffTokenSecret},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}
	return errors.Join(problems...)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("duration %s is not positive", d))
	}
	return d, nil
}

func parseBool(getenv func(string) string, key string, fallback bool) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return b, nil
}
