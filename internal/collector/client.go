package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/healthml/obesity-predictor/internal/domain/record"
)

// Client submits input records to the prediction service.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a client with the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Predict posts the record to /predict and returns the parsed result.
// Failures are classified into the three collector error categories so the
// caller can render them distinctly.
func (c *Client) Predict(ctx context.Context, in record.InputRecord) (*PredictionResponse, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrBadPayload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := serverErrorMessage(body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrHTTPStatus, resp.StatusCode, msg)
	}

	var result PredictionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	return &result, nil
}

// Health checks the service readiness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrHTTPStatus, resp.StatusCode)
	}
	return nil
}

// serverErrorMessage extracts the "error" field from a failure body, falling
// back to the raw body when it is not the expected JSON shape.
func serverErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	return strings.TrimSpace(string(body))
}
