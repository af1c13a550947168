// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// welcomeMessage is the static payload served at the root endpoint.
const welcomeMessage = "Welcome to the Obesity Prediction API. Submit your health data to get instant insights."

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type welcomeResponse struct {
	Message string `json:"message"`
}

// HandleRoot handles GET / requests with a static welcome payload. Any other
// path falling through the mux is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, welcomeResponse{Message: welcomeMessage})
}
