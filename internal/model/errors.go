package model

import "errors"

// Sentinel kinds for model errors. Load errors are startup-fatal; encode and
// inference errors are per-request.
var (
	ErrLoad      = errors.New("model load failed")
	ErrMetadata  = errors.New("invalid model metadata")
	ErrEncode    = errors.New("record encoding failed")
	ErrInference = errors.New("inference failed")
)
