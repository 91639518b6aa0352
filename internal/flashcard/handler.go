package flashcard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skabbuzaid/AiBackend/internal/config"
)

type Handler struct {
	service FlashcardService
}

func NewHandler(s FlashcardService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		config.Error(w, http.StatusBadRequest, "topic is required")
		return
	}
	if req.SessionID == "" {
		config.Error(w, http.StatusBadRequest, "session_id is required")
		return
	}

	set, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to generate flashcards")
		config.Error(w, http.StatusInternalServerError, "failed to generate flashcards")
		return
	}

	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setID := chi.URLParam(r, "setID")
	set, err := h.service.Get(r.Context(), setID)
	if err != nil {
		if errors.Is(err, ErrSetNotFound) {
			config.Error(w, http.StatusNotFound, "flashcard set not found")
			return
		}
		log.WithError(err).Error("failed to fetch flashcard set")
		config.Error(w, http.StatusInternalServerError, "failed to fetch flashcard set")
		return
	}

	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "sessionID")
	summaries, err := h.service.ListBySession(r.Context(), sessionID)
	if err != nil {
		log.WithError(err).Error("failed to list flashcard sets")
		config.Error(w, http.StatusInternalServerError, "failed to list flashcard sets")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"flashcard_sets": summaries,
	})
}
