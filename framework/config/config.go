package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-laravel/framework/support"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Providers ProvidersConfig

	// Warnings collects non-fatal problems found while parsing, such as a
	// malformed APP_PROVIDERS_REPLACE pair. Loading itself never fails.
	Warnings []string
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
	Key   string
}

// IsProduction reports whether APP_ENV is "production".
func (a AppConfig) IsProduction() bool { return a.Env == "production" }

type LogConfig struct {
	Level          string // debug | info | warn | error
	Format         string // text | json
	FilePath       string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// ProvidersConfig edits the bootstrap provider list.
//
//	APP_PROVIDERS=                      # empty → built-in defaults
//	APP_PROVIDERS_MERGE=App\Providers\AppServiceProvider
//	APP_PROVIDERS_REPLACE=Illuminate\Cache\CacheServiceProvider=App\Providers\CacheServiceProvider
//	APP_PROVIDERS_EXCEPT=Illuminate\Redis\RedisServiceProvider,Illuminate\Queue\QueueServiceProvider
//	APP_PROVIDERS_STRICT=false
type ProvidersConfig struct {
	List    []string
	Merge   []string
	Replace []support.Replacement
	Except  []string
	Strict  bool // unknown identifiers fail bootstrap instead of being skipped
}

// Build returns the provider list these settings describe: List (or the
// built-in defaults when it is empty), then Merge, Replace and Except.
func (p ProvidersConfig) Build() support.DefaultProviders {
	return support.NewDefaultProviders(p.List...).
		Merge(p.Merge...).
		Replace(p.Replace...).
		Except(p.Except...)
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

	cfg := &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "GoLaravel"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
			Key:   env("APP_KEY", ""),
		},
		Log: LogConfig{
			Level:          env("LOG_LEVEL", "info"),
			Format:         env("LOG_FORMAT", "text"),
			FilePath:       env("LOG_FILE", ""),
			FileMaxSizeMB:  GetInt("LOG_FILE_MAX_SIZE_MB", 100),
			FileMaxBackups: GetInt("LOG_FILE_MAX_BACKUPS", 3),
			FileMaxAgeDays: GetInt("LOG_FILE_MAX_AGE_DAYS", 30),
		},
		Providers: ProvidersConfig{
			List:   envList("APP_PROVIDERS"),
			Merge:  envList("APP_PROVIDERS_MERGE"),
			Except: envList("APP_PROVIDERS_EXCEPT"),
			Strict: envBool("APP_PROVIDERS_STRICT", false),
		},
	}

	replace, warnings := parseReplacements(envList("APP_PROVIDERS_REPLACE"))
	cfg.Providers.Replace = replace
	cfg.Warnings = append(cfg.Warnings, warnings...)

	return cfg
}

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

// envList splits a comma separated value, dropping blank items.
func envList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseReplacements turns "from=to" items into replacements, keeping their order.
func parseReplacements(items []string) ([]support.Replacement, []string) {
	var (
		out      []support.Replacement
		warnings []string
	)
	for _, item := range items {
		from, to, ok := strings.Cut(item, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			warnings = append(warnings, fmt.Sprintf("APP_PROVIDERS_REPLACE: ignoring malformed pair %q (want from=to)", item))
			continue
		}
		out = append(out, support.Replacement{From: from, To: to})
	}
	return out, warnings
}
