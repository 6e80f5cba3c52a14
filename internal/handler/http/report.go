package http

import (
	"log/slog"
	"net/http"

	"github.com/staffloop/hrm-backend-go/internal/domain/report"
	"github.com/staffloop/hrm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	summaryService report.SummaryService
}

func NewReportHandler(summaryService report.SummaryService) ReportHandler {
	return &ReportHandlerImpl{summaryService: summaryService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryService.GetSummary(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
