package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrModelUnavailable means the model artifact never loaded. With the
	// fail-fast startup this is a defensive guard; it should not be reachable
	// in normal operation.
	ErrModelUnavailable = errors.New("model not loaded")

	// ErrInference wraps model failures on input that passed validation and
	// normalization. Detail is logged server-side and never leaked to callers.
	ErrInference = errors.New("prediction failed")
)
