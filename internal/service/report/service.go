package report

import (
	"context"
	"fmt"

	"github.com/staffloop/hrm-backend-go/internal/domain/report"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
)

type SummaryServiceImpl struct {
	db *database.DB
	report.SummaryRepository
}

func NewSummaryService(db *database.DB, summaryRepository report.SummaryRepository) report.SummaryService {
	return &SummaryServiceImpl{
		db:                db,
		SummaryRepository: summaryRepository,
	}
}

// GetSummary implements report.SummaryService.
func (s *SummaryServiceImpl) GetSummary(ctx context.Context) (report.SummaryResponse, error) {
	ctx, cancel := s.db.QueryTimeout(ctx)
	defer cancel()

	summary, err := s.SummaryRepository.GetSummary(ctx)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to build summary report: %w", database.MapError(err))
	}
	return report.ToResponse(summary), nil
}
