// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	app "github.com/healthml/obesity-predictor/internal/app"
	"github.com/healthml/obesity-predictor/internal/domain/record"
	"github.com/healthml/obesity-predictor/pkg/logger"
)

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /predict requests.
//
// Error mapping:
//   - malformed JSON or unknown members -> 400 with decode detail
//   - schema validation failure         -> 400 with per-field detail
//   - model unavailable                 -> 500 with the fixed unavailable message
//   - inference failure                 -> 500 with the fixed opaque message
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var in record.InputRecord
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.deps.Predict(r.Context(), in)
	if err != nil {
		h.writePredictError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PredictHandler) writePredictError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *record.ValidationError
	switch {
	case errors.As(err, &verr):
		// Validation failures carry enough detail to fix the request.
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  verr.Error(),
			Fields: verr.Fields,
		})
	case errors.Is(err, app.ErrModelUnavailable):
		writeError(w, http.StatusInternalServerError, msgModelUnavailable)
	default:
		// Inference failures stay opaque to callers; the service already
		// logged the full detail.
		logger.Get().Error(r.Context(), "prediction request failed",
			logger.String("request_id", RequestIDFrom(r.Context())),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, msgInternalPrediction)
	}
}
