package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-chat-config/internal/app"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) resolveConfiguration(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.services.ConfigService.Resolve(r.Context(), chi.URLParam(r, "code"), r.URL.Query().Get("company_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resolved, http.StatusOK)
}

// updateApplicationConfig takes a flat object of dotted keys, e.g.
// {"chat.maxMessageLength": 500, "interface.theme": null}.
func (h *Handler) updateApplicationConfig(w http.ResponseWriter, r *http.Request) {
	var values map[string]any
	if err := utils.DecodeJSON(r, &values); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resolved, err := h.services.ConfigService.UpdateApplicationConfig(r.Context(), chi.URLParam(r, "code"), values)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resolved, http.StatusOK)
}

// setApplicationDefault takes {"value": ...}; a null value resets the key.
// The value field itself is required.
func (h *Handler) setApplicationDefault(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := utils.DecodeJSON(r, &body); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	value, ok := body["value"]
	if !ok {
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resolved, err := h.services.ConfigService.SetApplicationDefault(r.Context(), chi.URLParam(r, "code"), chi.URLParam(r, "key"), value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resolved, http.StatusOK)
}

func (h *Handler) listCompanyOverrides(w http.ResponseWriter, r *http.Request) {
	includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("include_inactive"))

	overrides, err := h.services.ConfigService.ListCompanyOverrides(r.Context(), chi.URLParam(r, "code"), chi.URLParam(r, "companyID"), includeInactive)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, overrides, http.StatusOK)
}

func (h *Handler) setCompanyOverride(w http.ResponseWriter, r *http.Request) {
	var request models.SetCompanyOverrideRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resolved, err := h.services.ConfigService.SetCompanyOverride(r.Context(),
		chi.URLParam(r, "code"), chi.URLParam(r, "companyID"), chi.URLParam(r, "key"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resolved, http.StatusOK)
}

func (h *Handler) copyFromApplication(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.services.ConfigService.CopyFromApplication(r.Context(), chi.URLParam(r, "code"), chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, resolved, http.StatusOK)
}

type restoreResponse struct {
	Restored      bool                        `json:"restored"`
	Configuration models.UnifiedConfiguration `json:"configuration"`
}

func (h *Handler) restoreDefaults(w http.ResponseWriter, r *http.Request) {
	restored, resolved, err := h.services.ConfigService.RestoreDefaults(r.Context(), chi.URLParam(r, "code"), chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, restoreResponse{Restored: restored, Configuration: resolved}, http.StatusOK)
}
