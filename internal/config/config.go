// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep defaults in New and layer file/env on top in Load.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ModelPath points at the pre-trained ONNX classifier artifact.
	ModelPath string `koanf:"model_path"`

	// MetadataPath points at the artifact metadata (shapes, classes,
	// feature encoding).
	MetadataPath string `koanf:"metadata_path"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8000",
		ModelPath:    "models/obesity_model.onnx",
		MetadataPath: "models/model_metadata.json",
	}
}
