package report

import "context"

// SummaryRepository aggregates the counts behind the summary report.
type SummaryRepository interface {
	GetSummary(ctx context.Context) (Summary, error)
}
