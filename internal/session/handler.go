package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/skabbuzaid/AiBackend/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Create issues a fresh session identifier. Sessions carry no server
// state of their own: the id is just the key the client sends back on
// every call.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"session_id": uuid.NewString(),
	})
}
