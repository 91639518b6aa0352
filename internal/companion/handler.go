package companion

import (
	"encoding/json"
	"net/http"

	"github.com/skabbuzaid/AiBackend/internal/config"
)

type Handler struct {
	brain *Brain
}

func NewHandler(b *Brain) *Handler {
	return &Handler{brain: b}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	var ctx Context
	if err := json.NewDecoder(r.Body).Decode(&ctx); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	config.JSON(w, http.StatusOK, h.brain.React(ctx))
}
