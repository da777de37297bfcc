package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/verba-en/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Assist(w http.ResponseWriter, r *http.Request) {
	var req models.AssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Kind == "" {
		req.Kind = models.AssistExplain
	}
	if !models.ValidAssistKinds[req.Kind] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "kind must be 'explain', 'translate', or 'define'"})
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	resp, err := h.service.Assist(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Assistant unavailable: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
