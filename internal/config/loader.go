package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures environment driven configuration values for the resolver.
type Config struct {
	SQLiteDSN    string
	SearchDays   int
	LLMModel     string
	OpenAIAPIKey string
}

// Load parses configuration values from the current process environment.
//
// Every field has a sensible default; values that are present but malformed
// are reported together rather than one at a time.
func Load() (Config, error) {
	cfg := Config{
		SQLiteDSN:  "file:events.db",
		SearchDays: 7,
		LLMModel:   "gpt-4",
	}

	invalid := make([]string, 0, 1)

	if dsn := strings.TrimSpace(os.Getenv("RESOLVER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if daysValue := strings.TrimSpace(os.Getenv("RESOLVER_SEARCH_DAYS")); daysValue != "" {
		days, err := strconv.Atoi(daysValue)
		if err != nil || days <= 0 {
			invalid = append(invalid, "RESOLVER_SEARCH_DAYS")
		} else {
			cfg.SearchDays = days
		}
	}

	if model := strings.TrimSpace(os.Getenv("RESOLVER_LLM_MODEL")); model != "" {
		cfg.LLMModel = model
	}

	cfg.OpenAIAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// NarratorEnabled reports whether an LLM narrator can be constructed.
func (c Config) NarratorEnabled() bool {
	return c.OpenAIAPIKey != ""
}
