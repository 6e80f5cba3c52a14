package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/payroll"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/middleware"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	recordService payroll.RecordService
}

func NewPayrollHandler(recordService payroll.RecordService) PayrollHandler {
	return &PayrollHandlerImpl{recordService: recordService}
}

// Generate implements PayrollHandler.
func (p *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var generateReq payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&generateReq); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, isNew, err := p.recordService.Generate(r.Context(), &generateReq)
	if err != nil {
		slog.Error("Generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if isNew {
		response.Created(w, "Payroll record generated", record)
		return
	}
	response.SuccessWithMessage(w, "Payroll record up to date", record)
}

// MarkPaid implements PayrollHandler.
func (p *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	record, err := p.recordService.MarkPaid(r.Context(), chi.URLParam(r, "payrollID"))
	if err != nil {
		slog.Error("MarkPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record paid", record)
}

// History implements PayrollHandler.
func (p *PayrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	history, err := p.recordService.History(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// MyHistory implements PayrollHandler.
func (p *PayrollHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	history, err := p.recordService.History(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		slog.Error("MyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
