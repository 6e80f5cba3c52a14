package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffloop/hrm-backend-go/internal/domain/leave"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/middleware"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	ledgerService leave.LedgerService
}

func NewLeaveHandler(ledgerService leave.LedgerService) LeaveHandler {
	return &LeaveHandlerImpl{ledgerService: ledgerService}
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.EmployeeID = middleware.EmployeeID(r.Context())

	request, err := l.ledgerService.Submit(r.Context(), &submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", request)
}

// Review implements LeaveHandler.
func (l *LeaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var reviewReq leave.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reviewReq.LeaveID = chi.URLParam(r, "leaveID")
	reviewReq.ReviewerID = middleware.UserID(r.Context())

	request, err := l.ledgerService.Review(r.Context(), &reviewReq)
	if err != nil {
		slog.Error("Review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed", request)
}

// List implements LeaveHandler.
//
// Employees see their own requests; HR and Admin see everyone's and may
// filter by employee_id.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var listReq leave.ListRequest

	query := r.URL.Query()
	if user.Role(middleware.Role(r.Context())).CanReview() {
		if employeeID := query.Get("employee_id"); employeeID != "" {
			listReq.EmployeeID = &employeeID
		}
	} else {
		own := middleware.EmployeeID(r.Context())
		listReq.EmployeeID = &own
	}
	if status := query.Get("status"); status != "" {
		listReq.Status = &status
	}
	listReq.Page, _ = strconv.Atoi(query.Get("page"))
	listReq.Limit, _ = strconv.Atoi(query.Get("limit"))

	requests, err := l.ledgerService.List(r.Context(), &listReq)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests.Requests, &response.Meta{
		Page:       requests.Page,
		Limit:      requests.Limit,
		TotalItems: requests.TotalCount,
		TotalPages: requests.TotalPages,
	})
}
