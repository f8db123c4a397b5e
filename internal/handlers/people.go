package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seanharvey/people-starter/internal/people"
)

// PeopleHandler serves the person listing. The list is rebuilt on every
// request, so the handler carries no state and needs no locking.
type PeopleHandler struct{}

// NewPeopleHandler creates a new PeopleHandler.
func NewPeopleHandler() *PeopleHandler {
	return &PeopleHandler{}
}

// Routes registers all people routes on the given chi router.
func (h *PeopleHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
}

// List returns the fixed person list as a JSON array. There are no query
// parameters and no pagination; repeated calls are byte-identical.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, people.List())
}
