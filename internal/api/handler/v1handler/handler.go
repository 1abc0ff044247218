// Package v1handler implements the v1 extraction endpoints. Requests and
// responses are JSON, encoded and decoded with jx.
package v1handler

import (
	"net/http"

	"emailsieve/internal/extractor"
	"emailsieve/pkg/logger"

	"github.com/go-faster/jx"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	// Extractor is the email extraction engine serving this API.
	Extractor extractor.Extractor
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New returns a Handler backed by the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/extract", h.ExtractEmails)
	mux.HandleFunc("POST /v1/domains", h.ExtractDomains)
}

// writeJSON writes an encoded JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError responds with a JSON error object.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Debug(r.Context(), msg)

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	writeJSON(w, status, e.Bytes())
}
