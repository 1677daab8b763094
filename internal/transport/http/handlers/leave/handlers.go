package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/leave"
	"staffhub/internal/platform/validate"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
)

type Handler struct {
	Registry *leave.Registry
}

func NewHandler(registry *leave.Registry) *Handler {
	return &Handler{Registry: registry}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/stats", h.handleStats)
		r.Post("/", h.handleSubmit)
		r.Post("/{applicationID}/review", h.handleReview)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	applications := leave.Search(h.Registry.List(), r.URL.Query().Get("query"), leave.Filter{
		Status:    r.URL.Query().Get("status"),
		LeaveType: r.URL.Query().Get("type"),
	})
	api.Success(w, applications, requestID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, leave.Aggregate(h.Registry.List()), requestID)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var app leave.LeaveApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	submitted, err := h.Registry.Submit(r.Context(), app)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Created(w, submitted, requestID)
}

type reviewPayload struct {
	Decision string `json:"decision"`
	Comments string `json:"comments"`
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	reviewer, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	var payload reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	reviewed, err := h.Registry.Review(r.Context(), chi.URLParam(r, "applicationID"), payload.Decision, reviewer.Name, payload.Comments)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, reviewed, requestID)
}

func failLeave(w http.ResponseWriter, err error, requestID string) {
	if verr, ok := validate.AsError(err); ok {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": verr.Issues}, requestID)
		return
	}
	switch {
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave application not found", requestID)
	case errors.Is(err, leave.ErrAlreadyReviewed):
		api.Fail(w, http.StatusConflict, "already_reviewed", "leave application has already been reviewed", requestID)
	case errors.Is(err, leave.ErrInvalidDecision):
		api.Fail(w, http.StatusBadRequest, "invalid_decision", "review decision must be approved or rejected", requestID)
	case errors.Is(err, leave.ErrDuplicateID):
		api.Fail(w, http.StatusConflict, "duplicate_id", "leave application id already exists", requestID)
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_request", err.Error(), requestID)
	}
}
