package report

// Summary is the organization-wide snapshot served by the reports endpoint.
type Summary struct {
	TotalEmployees       int64
	ActiveEmployees      int64
	OnLeaveEmployees     int64
	TerminatedEmployees  int64
	PendingLeaveRequests int64
	OpenSessions         int64
	PaidPayrollRecords   int64
}

type SummaryResponse struct {
	TotalEmployees       int64 `json:"total_employees"`
	ActiveEmployees      int64 `json:"active_employees"`
	OnLeaveEmployees     int64 `json:"on_leave_employees"`
	TerminatedEmployees  int64 `json:"terminated_employees"`
	PendingLeaveRequests int64 `json:"pending_leave_requests"`
	OpenSessions         int64 `json:"open_sessions"`
	PaidPayrollRecords   int64 `json:"paid_payroll_records"`
}

func ToResponse(s Summary) SummaryResponse {
	return SummaryResponse(s)
}
