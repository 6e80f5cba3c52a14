package report

import "context"

type SummaryService interface {
	GetSummary(ctx context.Context) (SummaryResponse, error)
}
