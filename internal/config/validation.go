package config

import "github.com/scarff-dev/scarff/pkg/models"

// Validate checks the config for values scarff cannot act on. All problems
// are collected into one ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "unknown log level",
			Value:   cfg.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "unknown log format",
			Value:   cfg.Log.Format,
			Wrapped: ErrInvalidLogFormat,
		})
	}

	d := cfg.Defaults
	if d.Language != "" {
		if _, ok := models.ParseLanguage(d.Language); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.language",
				Message: "unknown language",
				Value:   d.Language,
				Wrapped: ErrUnknownDefault,
			})
		}
	}
	if d.Kind != "" {
		if _, ok := models.ParseProjectKind(d.Kind); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.kind",
				Message: "unknown project kind",
				Value:   d.Kind,
				Wrapped: ErrUnknownDefault,
			})
		}
	}
	if d.Framework != "" {
		if _, ok := models.ParseFramework(d.Framework); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.framework",
				Message: "unknown framework",
				Value:   d.Framework,
				Wrapped: ErrUnknownDefault,
			})
		}
	}
	if d.Architecture != "" {
		if _, ok := models.ParseArchitecture(d.Architecture); !ok {
			errs = append(errs, ValidationError{
				Field:   "defaults.architecture",
				Message: "unknown architecture",
				Value:   d.Architecture,
				Wrapped: ErrUnknownDefault,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
