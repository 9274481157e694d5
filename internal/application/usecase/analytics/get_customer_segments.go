package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetCustomerSegmentsInput represents the input for roster classification.
// AsOf is the single reference "now" for every time-windowed predicate; the
// controller fills it from the request, never this use case.
type GetCustomerSegmentsInput struct {
	SalonID uuid.UUID
	AsOf    time.Time
}

// GetCustomerSegmentsOutput represents the classified roster.
type GetCustomerSegmentsOutput struct {
	AsOf       time.Time `json:"as_of"`
	RosterSize int       `json:"roster_size"`
	Segments   []Segment `json:"segments"`
}

// GetCustomerSegmentsUseCase classifies a salon's customer roster into
// overlapping behavioral segments.
type GetCustomerSegmentsUseCase struct {
	repo Repository
	opts ClassifierOptions
}

// NewGetCustomerSegmentsUseCase creates a new GetCustomerSegmentsUseCase instance.
func NewGetCustomerSegmentsUseCase(repo Repository, opts ClassifierOptions) *GetCustomerSegmentsUseCase {
	return &GetCustomerSegmentsUseCase{
		repo: repo,
		opts: opts,
	}
}

// Execute classifies the roster as of the given reference time.
func (uc *GetCustomerSegmentsUseCase) Execute(ctx context.Context, input GetCustomerSegmentsInput) (*GetCustomerSegmentsOutput, error) {
	roster, err := uc.repo.ListCustomers(ctx, input.SalonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &GetCustomerSegmentsOutput{
		AsOf:       input.AsOf,
		RosterSize: len(roster),
		Segments:   Classify(roster, input.AsOf, uc.opts),
	}, nil
}
