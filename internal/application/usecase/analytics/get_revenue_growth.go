package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetRevenueGrowthInput represents the input for a growth comparison.
type GetRevenueGrowthInput struct {
	SalonID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetRevenueGrowthOutput compares the requested period against the
// immediately preceding period of equal length.
type GetRevenueGrowthOutput struct {
	CurrentPeriod     RevenuePeriod `json:"current_period"`
	PreviousPeriod    RevenuePeriod `json:"previous_period"`
	CurrentTotals     RevenueTotals `json:"current_totals"`
	PreviousTotals    RevenueTotals `json:"previous_totals"`
	RevenueGrowth     GrowthResult  `json:"revenue_growth"`
	TransactionGrowth GrowthResult  `json:"transaction_growth"`
	CurrentCount      int           `json:"current_count"`
	PreviousCount     int           `json:"previous_count"`
}

// GetRevenueGrowthUseCase handles period-over-period revenue comparisons.
// Both record sets are fetched through the same repository so callers can
// provide a consistent snapshot; the engine itself cannot detect skew
// between the two reads.
type GetRevenueGrowthUseCase struct {
	repo Repository
	opts BuilderOptions
}

// NewGetRevenueGrowthUseCase creates a new GetRevenueGrowthUseCase instance.
func NewGetRevenueGrowthUseCase(repo Repository, opts BuilderOptions) *GetRevenueGrowthUseCase {
	return &GetRevenueGrowthUseCase{
		repo: repo,
		opts: opts,
	}
}

// Execute compares the period's totals against the preceding period.
func (uc *GetRevenueGrowthUseCase) Execute(ctx context.Context, input GetRevenueGrowthInput) (*GetRevenueGrowthOutput, error) {
	if err := validatePeriodInput(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	current, err := NewRevenuePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	previous := current.Previous()

	currentRecords, err := uc.repo.ListCompletedTransactions(ctx, input.SalonID, current)
	if err != nil {
		return nil, fmt.Errorf("failed to list current period transactions: %w", err)
	}

	previousRecords, err := uc.repo.ListCompletedTransactions(ctx, input.SalonID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to list previous period transactions: %w", err)
	}

	currentReport, err := BuildReport(currentRecords, current, uc.opts)
	if err != nil {
		return nil, err
	}

	previousReport, err := BuildReport(previousRecords, previous, uc.opts)
	if err != nil {
		return nil, err
	}

	return &GetRevenueGrowthOutput{
		CurrentPeriod:  current,
		PreviousPeriod: previous,
		CurrentTotals:  currentReport.Totals,
		PreviousTotals: previousReport.Totals,
		RevenueGrowth: ComputeGrowth(
			currentReport.Totals.GrossRevenue,
			previousReport.Totals.GrossRevenue,
		),
		TransactionGrowth: ComputeGrowth(
			intToDecimal(currentReport.Transactions.Count),
			intToDecimal(previousReport.Transactions.Count),
		),
		CurrentCount:  currentReport.Transactions.Count,
		PreviousCount: previousReport.Transactions.Count,
	}, nil
}
