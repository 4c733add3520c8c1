package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-config/internal/app"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
)

// exchangeToken trades an application credential for a bearer JWT. Every
// credential failure gets the same answer.
func (h *Handler) exchangeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.ExchangeToken(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrExpired) {
			log.Info().Err(err).Str("code", request.Code).Msg("token exchange refused")
			writeMessage(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		writeError(w, r, err)
		return
	}

	response := models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
	}
	if token.ExpiresAt != nil {
		response.ExpiresAt = token.ExpiresAt.Time
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
