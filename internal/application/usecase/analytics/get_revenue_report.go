package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// GetRevenueReportInput represents the input for building a revenue report.
type GetRevenueReportInput struct {
	SalonID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetRevenueReportUseCase fetches a salon's completed transactions for a
// period and aggregates them into a RevenueReport.
type GetRevenueReportUseCase struct {
	repo Repository
	opts BuilderOptions
}

// NewGetRevenueReportUseCase creates a new GetRevenueReportUseCase instance.
func NewGetRevenueReportUseCase(repo Repository, opts BuilderOptions) *GetRevenueReportUseCase {
	return &GetRevenueReportUseCase{
		repo: repo,
		opts: opts,
	}
}

// Execute builds the revenue report for the given period.
func (uc *GetRevenueReportUseCase) Execute(ctx context.Context, input GetRevenueReportInput) (*RevenueReport, error) {
	if err := validatePeriodInput(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	period, err := NewRevenuePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListCompletedTransactions(ctx, input.SalonID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed transactions: %w", err)
	}

	return BuildReport(records, period, uc.opts)
}

// validatePeriodInput rejects zero-valued dates before period construction.
func validatePeriodInput(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	return nil
}
