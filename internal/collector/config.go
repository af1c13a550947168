package collector

import "time"

// Config holds configuration for one collector run.
type Config struct {
	BaseURL     string        // Base URL of the prediction service
	Timeout     time.Duration // HTTP request timeout
	Interactive bool          // Prompt for each attribute instead of using flags
}

// PredictionResponse mirrors the service's success payload.
type PredictionResponse struct {
	PredictionCode  int    `json:"prediction_code"`
	PredictionLabel string `json:"prediction_label"`
}

// errorBody mirrors the service's failure payload.
type errorBody struct {
	Error string `json:"error"`
}
