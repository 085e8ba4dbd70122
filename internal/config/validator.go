package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("backend_url", func(fl validator.FieldLevel) bool {
			return IsBackendURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// IsBackendURL reports whether raw is an absolute http(s) URL with a host.
func IsBackendURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil")
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return apperrors.NewValidationError("config", err.Error())
	}

	fe := ves[0]
	field := yamlFieldNames[fe.StructField()]
	if field == "" {
		field = strings.ToLower(fe.StructField())
	}

	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "backend_url":
		return apperrors.NewValidationError(field, fmt.Sprintf("%q must be an absolute http(s) URL", fe.Value()))
	case "oneof":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be one of: %s", fe.Param()))
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("failed validation for tag '%s'", fe.Tag()))
	}
}

var yamlFieldNames = map[string]string{
	"BackendURL":      "backend_url",
	"Timeout":         "timeout",
	"LogLevel":        "log_level",
	"LogFormat":       "log_format",
	"LogPath":         "log_path",
	"PreferencesPath": "preferences_path",
	"PageSize":        "page_size",
}
