// Package site serves the embedded browser form for submitting health data.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("form site serve failed")
)

// Register attaches the embedded form routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded form under /form
	mux.Handle("/form/", http.StripPrefix("/form/", http.FileServer(FS())))
	mux.HandleFunc("/form", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/form/", http.StatusMovedPermanently)
	})
}
