package handler

import (
	"animalquiz/internal/cache"
	"animalquiz/internal/quiz"
	"animalquiz/internal/service"
	"encoding/json"
	"errors"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, cache.ErrAttemptNotFound), errors.Is(err, quiz.ErrInvalidSnapshot):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
