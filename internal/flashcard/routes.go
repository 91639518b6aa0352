package flashcard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Get("/user/{sessionID}", h.ListBySession)
	r.Get("/{setID}", h.Get)
	return r
}
