package handler

import (
	"animalquiz/internal/model"
	"animalquiz/internal/service"
	"animalquiz/internal/transport/rest/middleware"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AttemptHandler handles quiz attempt endpoints
type AttemptHandler struct {
	attemptSvc *service.AttemptService
	logger     *zap.Logger
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attemptSvc *service.AttemptService, logger *zap.Logger) *AttemptHandler {
	return &AttemptHandler{
		attemptSvc: attemptSvc,
		logger:     logger,
	}
}

// Info handles GET /v1/quiz
func (h *AttemptHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.attemptSvc.Info())
}

// Start handles POST /v1/attempts
func (h *AttemptHandler) Start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attemptSvc.Start(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Current handles GET /v1/attempts/current
func (h *AttemptHandler) Current(w http.ResponseWriter, r *http.Request) {
	view, err := h.attemptSvc.Current(r.Context(), middleware.GetAttemptID(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Answer handles POST /v1/attempts/current/answers
func (h *AttemptHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionIndex == nil {
		writeError(w, http.StatusBadRequest, "optionIndex is required")
		return
	}

	view, err := h.attemptSvc.Answer(r.Context(), middleware.GetAttemptID(r.Context()), *req.OptionIndex)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Reset handles POST /v1/attempts/current/reset
func (h *AttemptHandler) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := h.attemptSvc.Reset(r.Context(), middleware.GetAttemptID(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *AttemptHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, status, err.Error())
}
