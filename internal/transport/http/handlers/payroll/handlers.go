package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/payroll"
	"staffhub/internal/platform/validate"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
)

type Handler struct {
	Ledger *payroll.Ledger
}

func NewHandler(ledger *payroll.Ledger) *Handler {
	return &Handler{Ledger: ledger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/records", h.handleRecords)
		r.Post("/records", h.handleAddRecord)
		r.Get("/stats", h.handleStats)
		r.Get("/slips", h.handleSlips)
		r.Post("/slips", h.handleGenerateSlip)
		r.Get("/slips/{slipID}/download", h.handleDownloadSlip)
	})
}

func (h *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	records := payroll.Search(h.Ledger.Records(),
		r.URL.Query().Get("query"), r.URL.Query().Get("status"))
	api.Success(w, records, requestID)
}

func (h *Handler) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var record payroll.PayrollRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	saved, err := h.Ledger.AddRecord(r.Context(), record)
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Created(w, saved, requestID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, payroll.Aggregate(h.Ledger.Records()), requestID)
}

func (h *Handler) handleSlips(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, h.Ledger.Slips(), requestID)
}

func (h *Handler) handleGenerateSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var slip payroll.SalarySlip
	if err := json.NewDecoder(r.Body).Decode(&slip); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid JSON body", requestID)
		return
	}

	generated, err := h.Ledger.GenerateSlip(r.Context(), slip)
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Created(w, generated, requestID)
}

func (h *Handler) handleDownloadSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	slip, err := h.Ledger.Slip(chi.URLParam(r, "slipID"))
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}

	pdf, err := payroll.RenderSlipPDF(slip)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_error", "failed to render salary slip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="salary-slip-%s-%s-%d.pdf"`, slip.EmployeeID, slip.Month, slip.Year))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func failPayroll(w http.ResponseWriter, err error, requestID string) {
	if verr, ok := validate.AsError(err); ok {
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
			map[string]any{"fields": verr.Issues}, requestID)
		return
	}
	switch {
	case errors.Is(err, payroll.ErrRecordNotFound), errors.Is(err, payroll.ErrSlipNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payroll entry not found", requestID)
	case errors.Is(err, payroll.ErrDuplicateID):
		api.Fail(w, http.StatusConflict, "duplicate_id", "payroll id already exists", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", requestID)
	}
}
