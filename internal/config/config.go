package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"nuclight.org/pollview/internal/richtext"
)

const (
	DefaultLocale      = "en"
	DefaultEditedColor = "#8D97A5"
	DefaultEditedSize  = 12
	DefaultWorkers     = 4
)

type Config struct {
	Locale      language.Tag
	EditedStyle richtext.Style
	Workers     int
	SentryDSN   string
}

// Load reads configuration from the environment. Variables from a .env
// file in the working directory are applied first when the file exists;
// they never override variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	localeStr := getenv("POLLVIEW_LOCALE", DefaultLocale)
	locale, err := language.Parse(localeStr)
	if err != nil {
		return nil, fmt.Errorf("POLLVIEW_LOCALE must be a BCP 47 tag: %w", err)
	}

	style := richtext.Style{
		Color: getenv("POLLVIEW_EDITED_COLOR", DefaultEditedColor),
	}
	style.TextSize, err = positiveInt("POLLVIEW_EDITED_SIZE", DefaultEditedSize)
	if err != nil {
		return nil, err
	}
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("POLLVIEW_EDITED_COLOR must be #RRGGBB: %w", err)
	}

	workers, err := positiveInt("POLLVIEW_WORKERS", DefaultWorkers)
	if err != nil {
		return nil, err
	}

	return &Config{
		Locale:      locale,
		EditedStyle: style,
		Workers:     workers,
		SentryDSN:   os.Getenv("SENTRY_DSN"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
