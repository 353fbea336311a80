package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"membrane-calculator/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to a status code.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParameters):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPresetNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		zap.S().Named("http").Errorw("request failed", "path", r.URL.Path, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
