package collector

import (
	"errors"
	"fmt"
	"io"

	"github.com/healthml/obesity-predictor/internal/domain/label"
)

// RenderResult prints the prediction outcome with its advisory band.
func RenderResult(out io.Writer, resp *PredictionResponse) {
	fmt.Fprintf(out, "\nPredicted class: %s (code %d)\n", resp.PredictionLabel, resp.PredictionCode)
	if advisory := label.Advisory(resp.PredictionCode); advisory != "" {
		fmt.Fprintf(out, "%s\n", advisory)
	}
}

// RenderError prints a failure in its category-specific form. The three
// categories stay visually distinct so the user knows whether to fix the
// server, the request, or the network.
func RenderError(out io.Writer, err error) {
	switch {
	case errors.Is(err, ErrConnection):
		fmt.Fprintf(out, "\nConnection error: could not reach the prediction server. Make sure it is running and the URL is correct.\n(%v)\n", err)
	case errors.Is(err, ErrHTTPStatus):
		fmt.Fprintf(out, "\nServer error: %v\n", err)
	case errors.Is(err, ErrBadPayload):
		fmt.Fprintf(out, "\nData error: the server returned a response this client could not parse.\n(%v)\n", err)
	default:
		fmt.Fprintf(out, "\nUnexpected error: %v\n", err)
	}
}

// ExitCode maps a failure category to a distinct process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConnection):
		return 2
	case errors.Is(err, ErrHTTPStatus):
		return 3
	case errors.Is(err, ErrBadPayload):
		return 4
	default:
		return 1
	}
}
