package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

func envFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, path, contents string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func baseOptions(t *testing.T) LoadOptions {
	t.Helper()
	home := t.TempDir()
	return LoadOptions{
		Home:      home,
		EnvFile:   filepath.Join(home, "missing.env"),
		LookupEnv: envFrom(nil),
	}
}

func TestLoad_DefaultsWithEnvironment(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.LookupEnv = envFrom(map[string]string{EnvBackendURL: "http://localhost:5000/"})

	cfg, err := Load(opts)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000", cfg.BackendURL)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, time.Duration(0), cfg.Timeout)
	require.Equal(t, filepath.Join(opts.Home, DirName, "preferences.json"), cfg.PreferencesPath)
}

func TestLoad_MissingBackendURL(t *testing.T) {
	t.Parallel()

	_, err := Load(baseOptions(t))
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "backend_url", validationErr.Field)
}

func TestLoad_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.Overrides.BackendURL = "localhost:5000"

	_, err := Load(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "absolute http(s) URL")
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	writeFile(t, DefaultPath(opts.Home), `backend_url: "http://from-file:1"
timeout: 20s
log_level: warn
page_size: 25
`)
	opts.LookupEnv = envFrom(map[string]string{EnvBackendURL: "http://from-env:2"})

	cfg, err := Load(opts)
	require.NoError(t, err)
	require.Equal(t, "http://from-env:2", cfg.BackendURL)
	require.Equal(t, 20*time.Second, cfg.Timeout)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 25, cfg.PageSize)

	timeout := 3 * time.Second
	opts.Overrides = Overrides{BackendURL: "https://from-flag", Timeout: &timeout, LogLevel: "DEBUG"}
	cfg, err = Load(opts)
	require.NoError(t, err)
	require.Equal(t, "https://from-flag", cfg.BackendURL)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotenvAndLegacyName(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.EnvFile = writeFile(t, filepath.Join(opts.Home, ".env"), "VITE_BACKEND_URL=http://legacy:3\nSPACEDECK_TIMEOUT=7\n")

	cfg, err := Load(opts)
	require.NoError(t, err)
	require.Equal(t, "http://legacy:3", cfg.BackendURL)
	require.Equal(t, 7*time.Second, cfg.Timeout)

	opts.LookupEnv = envFrom(map[string]string{EnvBackendURL: "http://real-env:4"})
	cfg, err = Load(opts)
	require.NoError(t, err)
	require.Equal(t, "http://real-env:4", cfg.BackendURL)
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.LookupEnv = envFrom(map[string]string{EnvBackendURL: "http://x", EnvTimeout: "soon"})

	_, err := Load(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "timeout")
}

func TestLoad_InvalidYAMLReportsLine(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.Path = writeFile(t, filepath.Join(opts.Home, "bad.yaml"), "backend_url: http://x\npage_size: [1, 2\n")

	_, err := Load(opts)
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, opts.Path, parseErr.Path)
	require.Positive(t, parseErr.Line)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t)
	opts.Path = filepath.Join(opts.Home, "nope.yaml")

	_, err := Load(opts)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidate_FieldRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "page size too large", mutate: func(c *Config) { c.PageSize = 500 }, field: "page_size"},
		{name: "page size zero", mutate: func(c *Config) { c.PageSize = 0 }, field: "page_size"},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "chatty" }, field: "log_level"},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, field: "log_format"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, field: "timeout"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults(t.TempDir())
			cfg.BackendURL = "http://localhost:5000"
			tc.mutate(&cfg)

			err := Validate(&cfg)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestIsBackendURL(t *testing.T) {
	t.Parallel()

	require.True(t, IsBackendURL("http://localhost:5000"))
	require.True(t, IsBackendURL("https://api.example.com/base"))
	require.False(t, IsBackendURL(""))
	require.False(t, IsBackendURL("ftp://example.com"))
	require.False(t, IsBackendURL("https://"))
}
