package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/payroll"
	"github.com/absensi-rfid/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	ListPayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GeneratePayroll implements PayrollHandler
func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), req)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll report generated", "month", req.Month, "year", req.Year)
	response.Created(w, "Payroll report generated successfully", result)
}

// GetPayroll implements PayrollHandler
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll report ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPayroll implements PayrollHandler
func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListPayroll(r.Context())
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdatePayroll implements PayrollHandler
func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll report ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.UpdatePayroll(r.Context(), req)
	if err != nil {
		slog.Error("Update payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll report updated successfully", result)
}

// DeletePayroll implements PayrollHandler
func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll report ID is required", nil)
		return
	}

	if err := h.payrollService.DeletePayroll(r.Context(), id); err != nil {
		slog.Error("Delete payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Payroll report deleted successfully")
}
