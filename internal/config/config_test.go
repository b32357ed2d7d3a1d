package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("JWT_SECRET", "this_is_a_test_secret_key_with_32_chars")
	os.Setenv("DB_PASSWORD", "test_password")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("DB_PASSWORD")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}

	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want default localhost", cfg.DBHost)
	}

	if cfg.SuggestionLimit != 5 {
		t.Errorf("SuggestionLimit = %d, want default 5", cfg.SuggestionLimit)
	}
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() should fail without JWT_SECRET")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "linkup",
		DBPassword: "secret",
		DBName:     "linkup_db",
		DBSSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=linkup password=secret dbname=linkup_db sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("SUGGESTION_LIMIT", "12")
	defer os.Unsetenv("SUGGESTION_LIMIT")

	if got := getEnvInt("SUGGESTION_LIMIT", 5); got != 12 {
		t.Errorf("getEnvInt = %d, want 12", got)
	}

	os.Setenv("SUGGESTION_LIMIT", "not_a_number")

	if got := getEnvInt("SUGGESTION_LIMIT", 5); got != 5 {
		t.Errorf("getEnvInt with invalid value = %d, want fallback 5", got)
	}
}
