package sessionhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"staffhub/internal/auth"
	"staffhub/internal/domain/session"
	"staffhub/internal/platform/validate"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	Sessions *session.Manager
	Secret   string
}

func NewHandler(sessions *session.Manager, secret string) *Handler {
	return &Handler{Sessions: sessions, Secret: secret}
}

type credentialsPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  session.UserProfile `json:"user"`
	Token string              `json:"token"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	profile, err := h.Sessions.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		failSession(w, err, requestID)
		return
	}

	h.respondWithToken(w, profile, requestID)
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	profile, err := h.Sessions.Signup(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		failSession(w, err, requestID)
		return
	}

	h.respondWithToken(w, profile, requestID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Sessions.Logout(r.Context()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "logout_failed", err.Error(), requestID)
		return
	}
	api.Success(w, map[string]string{"message": "logged out"}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	profile, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	api.Success(w, profile, requestID)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, profile session.UserProfile, requestID string) {
	token, err := auth.GenerateToken(h.Secret, auth.Claims{Name: profile.Name, Email: profile.Email}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "could not issue session token", requestID)
		return
	}
	api.Success(w, sessionResponse{User: profile, Token: token}, requestID)
}

func failSession(w http.ResponseWriter, err error, requestID string) {
	if verr, ok := validate.AsError(err); ok {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": verr.Issues}, requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "session_failed", err.Error(), requestID)
}
