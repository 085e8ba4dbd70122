package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// Environment variables consulted by Load.
const (
	EnvBackendURL       = "SPACEDECK_BACKEND_URL"
	EnvTimeout          = "SPACEDECK_TIMEOUT"
	EnvLogLevel         = "SPACEDECK_LOG_LEVEL"
	legacyEnvBackendURL = "VITE_BACKEND_URL"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Overrides carries values supplied on the command line. Zero values are ignored.
type Overrides struct {
	BackendURL string
	Timeout    *time.Duration
	LogLevel   string
}

// LoadOptions controls where Load reads configuration from.
type LoadOptions struct {
	// Home is the user's home directory. Required.
	Home string
	// Path is an explicit config file. When empty the default path is used
	// and a missing file is not an error.
	Path string
	// EnvFile is a dotenv file; defaults to ".env". Missing files are ignored.
	EnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	Overrides Overrides
}

// Load assembles the configuration from defaults, the YAML file, the dotenv
// file, the environment and overrides, in that order of precedence, and
// validates the result.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Defaults(opts.Home)

	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath(opts.Home)
	}
	if err := mergeFile(&cfg, path, explicit); err != nil {
		return nil, err
	}

	lookup, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if err := mergeEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	mergeOverrides(&cfg, opts.Overrides)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	return &cfg, nil
}

func mergeFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func envLookup(opts LoadOptions) (func(string) (string, bool), error) {
	base := opts.LookupEnv
	if base == nil {
		base = os.LookupEnv
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, apperrors.NewParseError(envFile, 0, err)
	}

	// Real environment wins over the dotenv file.
	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func mergeEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(legacyEnvBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := lookup(EnvBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return apperrors.NewValidationError("timeout", fmt.Sprintf("%s: %v", EnvTimeout, err))
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

func mergeOverrides(cfg *Config, o Overrides) {
	if o.BackendURL != "" {
		cfg.BackendURL = o.BackendURL
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(o.LogLevel)
	}
}

// parseTimeout accepts Go durations ("15s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
