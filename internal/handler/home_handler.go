package handler

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var homePage []byte

// HomeHandler serves the static welcome page
type HomeHandler struct{}

// NewHomeHandler creates a new home page handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET /
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(homePage)
}
