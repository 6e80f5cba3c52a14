package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staffloop/hrm-backend-go/internal/domain/attendance"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/middleware"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	sessionService attendance.SessionService
}

func NewAttendanceHandler(sessionService attendance.SessionService) AttendanceHandler {
	return &AttendanceHandlerImpl{sessionService: sessionService}
}

// PunchIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var punchInReq attendance.PunchInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&punchInReq); err != nil {
			slog.Error("PunchIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	punchInReq.EmployeeID = middleware.EmployeeID(r.Context())

	session, err := a.sessionService.PunchIn(r.Context(), punchInReq)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in", session)
}

// PunchOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	session, err := a.sessionService.PunchOut(r.Context(), middleware.EmployeeID(r.Context()))
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out", session)
}

// History implements AttendanceHandler.
//
// Employees see their own history; HR and Admin may pass ?employee_id to
// inspect someone else's.
func (a *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	historyReq := attendance.HistoryRequest{
		EmployeeID: middleware.EmployeeID(r.Context()),
	}

	query := r.URL.Query()
	if other := query.Get("employee_id"); other != "" && user.Role(middleware.Role(r.Context())).CanReview() {
		historyReq.EmployeeID = other
	}
	if start := query.Get("start_date"); start != "" {
		historyReq.StartDate = &start
	}
	if end := query.Get("end_date"); end != "" {
		historyReq.EndDate = &end
	}
	historyReq.Page, _ = strconv.Atoi(query.Get("page"))
	historyReq.Limit, _ = strconv.Atoi(query.Get("limit"))

	sessions, err := a.sessionService.History(r.Context(), historyReq)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, sessions.Sessions, &response.Meta{
		Page:       sessions.Page,
		Limit:      sessions.Limit,
		TotalItems: sessions.TotalCount,
		TotalPages: sessions.TotalPages,
	})
}
