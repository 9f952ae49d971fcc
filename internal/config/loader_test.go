package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"RESOLVER_SQLITE_DSN", "RESOLVER_SEARCH_DAYS", "RESOLVER_LLM_MODEL", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SQLiteDSN != "file:events.db" {
		t.Fatalf("SQLiteDSN = %q", cfg.SQLiteDSN)
	}
	if cfg.SearchDays != 7 {
		t.Fatalf("SearchDays = %d, want 7", cfg.SearchDays)
	}
	if cfg.LLMModel != "gpt-4" {
		t.Fatalf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.NarratorEnabled() {
		t.Fatal("narrator must be disabled without an API key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RESOLVER_SQLITE_DSN", "file:other.db")
	t.Setenv("RESOLVER_SEARCH_DAYS", "14")
	t.Setenv("RESOLVER_LLM_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SQLiteDSN != "file:other.db" {
		t.Fatalf("SQLiteDSN = %q", cfg.SQLiteDSN)
	}
	if cfg.SearchDays != 14 {
		t.Fatalf("SearchDays = %d", cfg.SearchDays)
	}
	if cfg.LLMModel != "gpt-4o" {
		t.Fatalf("LLMModel = %q", cfg.LLMModel)
	}
	if !cfg.NarratorEnabled() {
		t.Fatal("narrator must be enabled with an API key")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "soon"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RESOLVER_SEARCH_DAYS", tc.value)

			if _, err := Load(); err == nil {
				t.Fatal("expected error for invalid RESOLVER_SEARCH_DAYS")
			}
		})
	}
}
