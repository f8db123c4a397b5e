package handlers

import "net/http"

// RootHandler serves the hello endpoint at the API root.
type RootHandler struct{}

// NewRootHandler creates a new RootHandler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Hello returns the fixed greeting. It takes no inputs and cannot fail.
func (h *RootHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Hello, World!")
}
