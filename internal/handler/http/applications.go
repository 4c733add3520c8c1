package http

import (
	"net/http"

	"github.com/MKhiriev/go-chat-config/internal/app"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerApplication(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterApplicationRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registered, err := h.services.ApplicationService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) issueCredential(w http.ResponseWriter, r *http.Request) {
	var request models.IssueCredentialRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.Issue(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusCreated)
}

func (h *Handler) validateCredential(w http.ResponseWriter, r *http.Request) {
	var request models.ValidateCredentialRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.Validate(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusOK)
}

type revokeResponse struct {
	Revoked bool `json:"revoked"`
}

func (h *Handler) revokeCredential(w http.ResponseWriter, r *http.Request) {
	revoked, err := h.services.CredentialService.Revoke(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, revokeResponse{Revoked: revoked}, http.StatusOK)
}

func (h *Handler) rotateCredential(w http.ResponseWriter, r *http.Request) {
	credential, err := h.services.CredentialService.Rotate(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusOK)
}
