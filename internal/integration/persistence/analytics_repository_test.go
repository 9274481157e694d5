package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/usecase/analytics"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// End-to-end slice: seed sales through the repository, run the report use
// case on top of the analytics repository, check the aggregated numbers.
func TestAnalyticsRepository_ReportFlow(t *testing.T) {
	db := openTestDB(t)
	salesRepo := NewTransactionRepository(db)
	analyticsRepo := NewAnalyticsRepository(db)
	ctx := context.Background()

	salonID := uuid.New()
	haircut := &entity.ServiceRef{ID: uuid.New(), Name: "Haircut"}
	alice := &entity.StaffRef{ID: uuid.New(), Name: "Alice"}

	for _, gross := range []int64{100, 50, 25} {
		sale := entity.NewTransaction(
			salonID, nil,
			time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC),
			decimal.NewFromInt(gross), decimal.Zero, decimal.Zero, decimal.Zero,
			haircut, alice, entity.PaymentMethodCard,
		)
		if err := salesRepo.Create(ctx, sale); err != nil {
			t.Fatalf("failed to seed sale: %v", err)
		}
	}

	useCase := analytics.NewGetRevenueReportUseCase(analyticsRepo, analytics.DefaultBuilderOptions())
	report, err := useCase.Execute(ctx, analytics.GetRevenueReportInput{
		SalonID:   salonID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("report use case failed: %v", err)
	}

	if !report.Totals.GrossRevenue.Equal(decimal.NewFromInt(175)) {
		t.Errorf("expected gross 175, got %s", report.Totals.GrossRevenue)
	}
	if report.Transactions.Count != 3 {
		t.Errorf("expected 3 transactions, got %d", report.Transactions.Count)
	}
	if len(report.Breakdown.ByService) != 1 || report.Breakdown.ByService[0].ServiceName != "Haircut" {
		t.Errorf("unexpected service breakdown: %+v", report.Breakdown.ByService)
	}
}

func TestAnalyticsRepository_ListCustomers(t *testing.T) {
	db := openTestDB(t)
	customerRepo := NewCustomerRepository(db)
	analyticsRepo := NewAnalyticsRepository(db)
	ctx := context.Background()

	salonID := uuid.New()
	for _, name := range []string{"A", "B", "C"} {
		if err := customerRepo.Create(ctx, entity.NewCustomer(salonID, name, "", "")); err != nil {
			t.Fatalf("failed to seed customer: %v", err)
		}
	}
	if err := customerRepo.Create(ctx, entity.NewCustomer(uuid.New(), "Foreign", "", "")); err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	roster, err := analyticsRepo.ListCustomers(ctx, salonID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roster) != 3 {
		t.Errorf("expected roster of 3, got %d", len(roster))
	}
}
