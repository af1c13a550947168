// Package collector implements the terminal front end: it gathers the 16
// health attributes from a user, submits them to the prediction service and
// renders the predicted class with an advisory message.
package collector

import (
	"context"
	"io"

	"github.com/healthml/obesity-predictor/internal/domain/record"
	"github.com/healthml/obesity-predictor/pkg/logger"
)

// Run submits one record and renders the outcome. When cfg.Interactive is
// set the record argument is ignored and the attributes are prompted for on
// the terminal instead.
func Run(ctx context.Context, cfg *Config, rec record.InputRecord, in io.Reader, out io.Writer) error {
	if cfg.Interactive {
		form := NewForm(in, out)
		filled, err := form.Fill()
		if err != nil {
			return err
		}
		rec = filled
	}

	client := NewClient(cfg.BaseURL, cfg.Timeout)

	logger.Get().Debug(ctx, "submitting prediction request",
		logger.String("baseURL", cfg.BaseURL))

	resp, err := client.Predict(ctx, rec)
	if err != nil {
		RenderError(out, err)
		return err
	}

	RenderResult(out, resp)
	return nil
}
