package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/app"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/MKhiriev/go-chat-config/internal/utils"
	"github.com/go-chi/chi/v5"
)

const adminKeyHeader = "X-Admin-Key"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the
// application code and token scopes in the request context.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, malformed or carries an invalid or expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeMessage(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				writeError(w, r, err)
				return
			}
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithApplication(ctx, token.ApplicationCode, token.Scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sameApplication rejects tokens used on another application's routes.
func (h *Handler) sameApplication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, ok := utils.GetApplicationCodeFromContext(r.Context())
		if !ok || code != chi.URLParam(r, "code") {
			writeError(w, r, service.ErrWrongApplication)
			return
		}

		ctx := logger.FromRequest(r).WithApplication(code).WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireScope lets a request through only if its token grants scope.
func (h *Handler) requireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scopes, _ := utils.GetScopeFromContext(r.Context())
			for _, s := range strings.Fields(scopes) {
				if s == scope {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, r, service.ErrWriteScopeRequired)
		})
	}
}

// adminOnly guards management routes with the X-Admin-Key header. The
// presented and configured keys are compared as HMAC digests in constant
// time. An unset admin key disables the routes.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get(adminKeyHeader)
		if h.adminKey == "" || presented == "" || !hmac.Equal(adminDigest(presented, h.adminKey), adminDigest(h.adminKey, h.adminKey)) {
			logger.FromRequest(r).Warn().Err(ErrInvalidAdminKey).Str("remote_addr", r.RemoteAddr).Send()
			writeMessage(w, app.MsgAdminKeyRequired, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func adminDigest(value, key string) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	return mac.Sum(nil)
}
