package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skabbuzaid/AiBackend/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
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
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}
	if !req.Difficulty.IsValid() {
		config.Error(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}

	q, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to generate quiz")
		config.Error(w, http.StatusInternalServerError, "failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID == "" {
		config.Error(w, http.StatusBadRequest, "quiz_id is required")
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	result, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "quiz not found")
			return
		}
		log.WithError(err).Error("failed to submit quiz")
		config.Error(w, http.StatusInternalServerError, "failed to submit quiz")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "quizID")
	q, err := h.service.Get(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "quiz not found")
			return
		}
		log.WithError(err).Error("failed to fetch quiz")
		config.Error(w, http.StatusInternalServerError, "failed to fetch quiz")
		return
	}

	config.JSON(w, http.StatusOK, q)
}
