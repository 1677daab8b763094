package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/directory"
	"staffhub/internal/platform/validate"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
)

type Handler struct {
	Directory *directory.Directory
}

func NewHandler(dir *directory.Directory) *Handler {
	return &Handler{Directory: dir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/stats", h.handleStats)
		r.Get("/{employeeID}", h.handleGet)
		r.Post("/", h.handleCreate)
		r.Post("/save", h.handleSave)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employees := directory.Search(h.Directory.List(), r.URL.Query().Get("query"), directory.Filter{
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	})
	api.Success(w, employees, requestID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, directory.Aggregate(h.Directory.List()), requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	emp, err := h.Directory.Get(chi.URLParam(r, "employeeID"))
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var emp directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	created, err := h.Directory.Create(r.Context(), emp)
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Created(w, created, requestID)
}

// handleSave is the UI's save operation: update when the id exists,
// create otherwise.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var emp directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	saved, err := h.Directory.Upsert(r.Context(), emp)
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, saved, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var emp directory.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}
	emp.ID = chi.URLParam(r, "employeeID")

	if err := h.Directory.Update(r.Context(), emp); err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Directory.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"message": "deleted"}, requestID)
}

func failDirectory(w http.ResponseWriter, err error, requestID string) {
	if verr, ok := validate.AsError(err); ok {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": verr.Issues}, requestID)
		return
	}
	switch {
	case errors.Is(err, directory.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, directory.ErrDuplicateID):
		api.Fail(w, http.StatusConflict, "duplicate_id", "employee id already exists", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", err.Error(), requestID)
	}
}
