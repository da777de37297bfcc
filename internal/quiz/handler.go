package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/verba-en/backend/internal/models"
	"github.com/verba-en/backend/internal/progress"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getLearnerID extracts the authenticated learner ID from the request context.
func getLearnerID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value("learner_id").(int64)
	return id, ok
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	vars := mux.Vars(r)
	levelID, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid level ID"})
		return
	}

	session, err := h.service.StartSession(learnerID, levelID)
	switch {
	case errors.Is(err, progress.ErrUnknownLevel):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unknown level"})
		return
	case errors.Is(err, ErrLevelLocked):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Complete the previous level first"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to start session"})
		return
	}

	writeJSON(w, http.StatusCreated, session.Snapshot())
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	switch err := session.SelectAnswer(req); {
	case errors.Is(err, ErrInvalidAnswer):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Answer does not match the question type"})
		return
	case errors.Is(err, ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Session already submitted"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record answer"})
		return
	}

	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.Advance(); err != nil {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Answer the current question first"})
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := session.Retreat(); err != nil {
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Already at the first question"})
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	result, err := h.service.Submit(learnerID, mux.Vars(r)["id"])
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
		return
	case errors.Is(err, ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Answer every question before submitting"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit session"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// session resolves the {id} route variable to the caller's session, writing
// the error response itself when it cannot.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	learnerID, ok := getLearnerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return nil, false
	}

	session, err := h.service.Get(learnerID, mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
		return nil, false
	}
	return session, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
