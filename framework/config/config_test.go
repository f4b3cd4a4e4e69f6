package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel/framework/config"
	"github.com/km-arc/go-laravel/framework/support"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoLaravel"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"App.URL", cfg.App.URL, "http://localhost"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Log.FilePath", cfg.Log.FilePath, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}

	require.True(t, cfg.App.Debug)
	require.Equal(t, 100, cfg.Log.FileMaxSizeMB)
	require.Equal(t, 3, cfg.Log.FileMaxBackups)
	require.Equal(t, 30, cfg.Log.FileMaxAgeDays)
	require.Empty(t, cfg.Providers.List)
	require.False(t, cfg.Providers.Strict)
	require.Empty(t, cfg.Warnings)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load("testdata/empty.env")

	require.Equal(t, "MyApp", cfg.App.Name)
	require.Equal(t, "production", cfg.App.Env)
	require.Equal(t, "9000", cfg.App.Port)
	require.False(t, cfg.App.Debug)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	// godotenv writes straight into the process environment.
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("APP_PROVIDERS_MERGE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg := config.Load("testdata/providers.env")

	require.Equal(t, "FromDotEnv", cfg.App.Name)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, []string{`App\Providers\AppServiceProvider`}, cfg.Providers.Merge)
}

// ── Providers ─────────────────────────────────────────────────────────────────

func TestLoad_ProviderLists(t *testing.T) {
	t.Setenv("APP_PROVIDERS", " a, b ,,c ")
	t.Setenv("APP_PROVIDERS_MERGE", "d")
	t.Setenv("APP_PROVIDERS_EXCEPT", "b")
	t.Setenv("APP_PROVIDERS_STRICT", "true")

	cfg := config.Load("testdata/empty.env")

	require.Equal(t, []string{"a", "b", "c"}, cfg.Providers.List)
	require.Equal(t, []string{"d"}, cfg.Providers.Merge)
	require.Equal(t, []string{"b"}, cfg.Providers.Except)
	require.True(t, cfg.Providers.Strict)
}

func TestLoad_ProviderReplacementsKeepOrder(t *testing.T) {
	t.Setenv("APP_PROVIDERS_REPLACE", "a=b, b=c")

	cfg := config.Load("testdata/empty.env")

	require.Equal(t, []support.Replacement{{From: "a", To: "b"}, {From: "b", To: "c"}}, cfg.Providers.Replace)
	require.Empty(t, cfg.Warnings)
}

func TestLoad_MalformedReplacementIsWarning(t *testing.T) {
	t.Setenv("APP_PROVIDERS_REPLACE", "a=b,nope,=x,y=")

	cfg := config.Load("testdata/empty.env")

	require.Equal(t, []support.Replacement{{From: "a", To: "b"}}, cfg.Providers.Replace)
	require.Len(t, cfg.Warnings, 3)
}

func TestProvidersConfig_Build(t *testing.T) {
	p := config.ProvidersConfig{
		List:    []string{"a", "b", "c"},
		Merge:   []string{"d"},
		Replace: []support.Replacement{{From: "a", To: "x"}},
		Except:  []string{"c"},
	}

	require.Equal(t, []string{"x", "b", "d"}, p.Build().ToArray())
}

func TestProvidersConfig_BuildEmptyUsesDefaults(t *testing.T) {
	var p config.ProvidersConfig
	require.Equal(t, support.NewDefaultProviders().ToArray(), p.Build().ToArray())
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "hello")
	require.Equal(t, "hello", config.Get("CUSTOM_KEY", "default"))

	os.Unsetenv("MISSING_KEY")
	require.Equal(t, "fallback", config.Get("MISSING_KEY", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	require.Equal(t, 42, config.GetInt("SOME_INT", 0))

	t.Setenv("SOME_INT", "notanint")
	require.Equal(t, 99, config.GetInt("SOME_INT", 99))
}

func TestGetBool(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		t.Setenv("BOOL_KEY", val)
		require.True(t, config.GetBool("BOOL_KEY", false), val)
	}

	t.Setenv("BOOL_KEY", "false")
	require.False(t, config.GetBool("BOOL_KEY", true))

	t.Setenv("BOOL_KEY", "notabool")
	require.True(t, config.GetBool("BOOL_KEY", true))
}
