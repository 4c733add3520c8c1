package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-config/internal/app"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/MKhiriev/go-chat-config/internal/utils"
)

// errorStatuses maps service error classes to response statuses. Every
// service error wraps exactly one class, so the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrExpired, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrCompanyRegistryUnavailable, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every error answer.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with its mapped status. Messages of
// server side failures are never exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = app.MsgInternalServerError
	case http.StatusBadGateway:
		message = app.MsgCompanyRegistryUnavailable
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, message, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, app.MsgNotFound, http.StatusNotFound)
}
