// internal/adapters/in/http/handlers/assistant_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"borgo/internal/application/assistant"
)

// AssistantHandler serves /assistant/recommendations, the personal shopper
// entry point. Open to visitors; no auth required.
type AssistantHandler struct {
	shopper *assistant.PersonalShopper
}

func NewAssistantHandler(shopper *assistant.PersonalShopper) http.Handler {
	return &AssistantHandler{shopper: shopper}
}

func (h *AssistantHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.shopper == nil {
		writeErr(w, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}

	switch {
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/assistant/recommendations"):
		h.recommend(w, r)
	default:
		notFound(w)
	}
}

// POST /assistant/recommendations
func (h *AssistantHandler) recommend(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Request string `json:"request"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := h.shopper.Chat(r.Context(), body.Request)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyRequest):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, assistant.ErrBadModelOutput):
			writeErr(w, http.StatusBadGateway, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}
