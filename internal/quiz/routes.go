package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Get("/next", h.NextQuestion)
	r.Post("/submit", h.Submit)
	r.Post("/finalize", h.Finalize)
	return r
}
