package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skabbuzaid/AiBackend/internal/config"
)

type Handler struct {
	service ProgressService
}

func NewHandler(s ProgressService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		config.Error(w, http.StatusBadRequest, "sessionID is required")
		return
	}

	summary, err := h.service.Summary(r.Context(), sessionID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("failed to build progress summary")
		config.Error(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
