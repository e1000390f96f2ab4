package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Fields    FieldsConfig
	Telephone TelephoneConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// FieldsConfig locates the YAML file declaring the field instances.
type FieldsConfig struct {
	Path string
}

// TelephoneConfig holds the defaults new telephone fields start from.
type TelephoneConfig struct {
	DefaultCountryCode  string
	ShowCountrySelector bool
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "Telephone"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level: strings.ToLower(env("LOG_LEVEL", "info")),
		},
		Fields: FieldsConfig{
			Path: env("FIELDS_CONFIG", "config/fields.yaml"),
		},
		Telephone: TelephoneConfig{
			DefaultCountryCode:  strings.ToUpper(env("TELEPHONE_DEFAULT_COUNTRY", "US")),
			ShowCountrySelector: envBool("TELEPHONE_SHOW_COUNTRY_SELECTOR", false),
		},
	}
}

// IsLocal reports whether the app runs in the local environment.
func (c *Config) IsLocal() bool { return c.App.Env == "local" }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
