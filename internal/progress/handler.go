package progress

import (
	"encoding/json"
	"net/http"

	"github.com/verba-en/backend/internal/models"
)

type Handler struct {
	service *Service
	catalog []models.Level
}

func NewHandler(service *Service, catalog []models.Level) *Handler {
	return &Handler{service: service, catalog: catalog}
}

// getLearnerID extracts the authenticated learner ID from the request context.
func getLearnerID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value("learner_id").(int64)
	return id, ok
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	rec, persisted := h.service.GetProgress(learnerID)
	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: rec, Persisted: persisted})
}

// ListLevels merges the static catalog with the learner's unlock frontier and
// best scores, for the level-selection screen.
func (h *Handler) ListLevels(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	rec, _ := h.service.GetProgress(learnerID)

	statuses := make([]models.LevelStatus, 0, len(h.catalog))
	for _, level := range h.catalog {
		unlocked, err := h.service.IsLevelUnlocked(learnerID, level.ID)
		if err != nil {
			continue
		}
		statuses = append(statuses, models.LevelStatus{
			Level:     level,
			Unlocked:  unlocked,
			Completed: rec.Completed(level.ID),
			BestScore: rec.LevelScores[level.ID],
		})
	}

	writeJSON(w, http.StatusOK, statuses)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	result, err := h.service.Reset(learnerID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to reset progress"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
