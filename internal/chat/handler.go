package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/llm"
)

type Handler struct {
	service ChatService
}

func NewHandler(s ChatService) *Handler {
	return &Handler{service: s}
}

type messagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages  []messagePayload `json:"messages"`
	SessionID string           `json:"session_id"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		config.Error(w, http.StatusBadRequest, "messages list cannot be empty")
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	last := req.Messages[len(req.Messages)-1]
	if last.Role != RoleUser {
		config.Error(w, http.StatusBadRequest, "last message must be from user")
		return
	}

	reply, err := h.service.Respond(r.Context(), req.SessionID, last.Content)
	if err != nil {
		if errors.Is(err, llm.ErrUnconfigured) {
			config.Error(w, http.StatusServiceUnavailable, "AI model is not configured")
			return
		}
		log.WithError(err).Error("chat turn failed")
		config.Error(w, http.StatusInternalServerError, "failed to generate response")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"id":        fmt.Sprintf("chat-%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		"response":  reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "sessionID")
	turns, err := h.service.History(r.Context(), sessionID)
	if err != nil {
		log.WithError(err).Error("failed to load chat history")
		config.Error(w, http.StatusInternalServerError, "failed to load chat history")
		return
	}

	history := make([]messagePayload, 0, len(turns))
	for _, turn := range turns {
		history = append(history, messagePayload{Role: turn.Role, Content: turn.Content})
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"history": history,
	})
}
