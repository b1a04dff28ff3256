package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the config for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Service.Concurrency < 1 {
		return &ValidationError{Field: "service.concurrency", Message: "must be at least 1"}
	}
	if c.IO.InputPath == "" {
		return &ValidationError{Field: "io.input_path", Message: "is required"}
	}
	if c.IO.OutputDir == "" {
		return &ValidationError{Field: "io.output_dir", Message: "is required"}
	}
	if c.Analysis.PositiveThreshold <= 0 || c.Analysis.PositiveThreshold > 1 {
		return &ValidationError{Field: "analysis.positive_threshold", Message: "must be in (0, 1]"}
	}
	if c.Analysis.NegativeThreshold >= 0 || c.Analysis.NegativeThreshold < -1 {
		return &ValidationError{Field: "analysis.negative_threshold", Message: "must be in [-1, 0)"}
	}
	if c.Analysis.ThemeTopK < 1 {
		return &ValidationError{Field: "analysis.theme_top_k", Message: "must be at least 1"}
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return validateLogFormat(c.Logging.Format)
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
}

func validateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: "logging.format", Message: "must be one of: json, console"}
	}
}
