package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// DefaultCommissionRate is the staff commission applied when no rate is
// configured. The 30% figure is the product default and can be overridden
// per deployment via ANALYTICS_COMMISSION_RATE.
var DefaultCommissionRate = decimal.NewFromFloat(0.30)

var hundred = decimal.NewFromInt(100)

// RevenueTotals holds the aggregated money totals for a period.
type RevenueTotals struct {
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
	NetRevenue     decimal.Decimal `json:"net_revenue"`
	TaxCollected   decimal.Decimal `json:"tax_collected"`
	DiscountsGiven decimal.Decimal `json:"discounts_given"`
	TipsCollected  decimal.Decimal `json:"tips_collected"`
	RefundsIssued  decimal.Decimal `json:"refunds_issued"`
}

// DailyRevenue is one calendar day's aggregated revenue.
type DailyRevenue struct {
	Date         string          `json:"date"`
	Revenue      decimal.Decimal `json:"revenue"`
	Transactions int             `json:"transactions"`
}

// ServiceRevenue is the aggregated revenue of one service.
type ServiceRevenue struct {
	ServiceID         uuid.UUID       `json:"service_id"`
	ServiceName       string          `json:"service_name"`
	QuantitySold      int             `json:"quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AveragePrice      decimal.Decimal `json:"average_price"`
	PercentageOfTotal decimal.Decimal `json:"percentage_of_total"`
}

// StaffRevenue is the aggregated performance of one staff member.
type StaffRevenue struct {
	StaffID           uuid.UUID       `json:"staff_id"`
	StaffName         string          `json:"staff_name"`
	ServicesPerformed int             `json:"services_performed"`
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	CommissionEarned  decimal.Decimal `json:"commission_earned"`
	TipsReceived      decimal.Decimal `json:"tips_received"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
}

// PaymentMethodRevenue is the aggregated revenue of one payment method.
type PaymentMethodRevenue struct {
	Method           entity.PaymentMethod `json:"method"`
	TransactionCount int                  `json:"transaction_count"`
	TotalAmount      decimal.Decimal      `json:"total_amount"`
	Percentage       decimal.Decimal      `json:"percentage"`
}

// RevenueBreakdown groups the period's transactions along four dimensions.
type RevenueBreakdown struct {
	ByDay           []DailyRevenue         `json:"by_day"`
	ByService       []ServiceRevenue       `json:"by_service"`
	ByStaff         []StaffRevenue         `json:"by_staff"`
	ByPaymentMethod []PaymentMethodRevenue `json:"by_payment_method"`
}

// TransactionSummary describes the distribution of transaction values.
type TransactionSummary struct {
	Count        int             `json:"count"`
	AverageValue decimal.Decimal `json:"average_value"`
	HighestValue decimal.Decimal `json:"highest_value"`
	LowestValue  decimal.Decimal `json:"lowest_value"`
}

// RevenueReport is the full multi-dimensional revenue report for a period.
// It is a value object: the builder never retains or mutates its inputs, and
// every slice in the report is freshly allocated.
type RevenueReport struct {
	Period       RevenuePeriod      `json:"period"`
	Totals       RevenueTotals      `json:"totals"`
	Breakdown    RevenueBreakdown   `json:"breakdown"`
	Transactions TransactionSummary `json:"transactions"`
}

// RefundRecord is a refund issued during the period. Refunds are recorded
// separately from sales and only feed Totals.RefundsIssued.
type RefundRecord struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// BuilderOptions carries the configurable inputs of the report builder.
type BuilderOptions struct {
	// CommissionRate is the fraction of gross service revenue credited to
	// the performing staff member. Must be within [0,1].
	CommissionRate decimal.Decimal

	// Refunds, when supplied, are summed into Totals.RefundsIssued.
	Refunds []RefundRecord
}

// DefaultBuilderOptions returns options with the default commission rate.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{CommissionRate: DefaultCommissionRate}
}

// BuildReport aggregates a pre-filtered set of completed transactions into a
// RevenueReport.
//
// The caller is responsible for restricting records to status=completed and
// to the given period; the builder aggregates what it is handed and does not
// re-derive the period from record timestamps. Records without a service or
// staff ref count toward the totals but are excluded from the corresponding
// breakdown.
func BuildReport(records []*entity.Transaction, period RevenuePeriod, opts BuilderOptions) (*RevenueReport, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if opts.CommissionRate.IsNegative() || opts.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidCommissionRate,
			"commission rate must be between 0 and 1",
			domainerror.ErrInvalidCommissionRate,
		)
	}

	report := &RevenueReport{Period: period}

	// Accumulation pass over the flat record list.
	var highest, lowest decimal.Decimal
	for i, record := range records {
		report.Totals.GrossRevenue = report.Totals.GrossRevenue.Add(record.GrossAmount)
		report.Totals.TaxCollected = report.Totals.TaxCollected.Add(record.TaxAmount)
		report.Totals.DiscountsGiven = report.Totals.DiscountsGiven.Add(record.DiscountAmount)
		report.Totals.TipsCollected = report.Totals.TipsCollected.Add(record.TipAmount)

		if i == 0 {
			highest = record.GrossAmount
			lowest = record.GrossAmount
		} else {
			if record.GrossAmount.GreaterThan(highest) {
				highest = record.GrossAmount
			}
			if record.GrossAmount.LessThan(lowest) {
				lowest = record.GrossAmount
			}
		}
	}
	report.Totals.NetRevenue = report.Totals.GrossRevenue.Sub(report.Totals.TaxCollected)

	for _, refund := range opts.Refunds {
		report.Totals.RefundsIssued = report.Totals.RefundsIssued.Add(refund.Amount)
	}

	// Grouping pass.
	serviceRows := make(map[uuid.UUID]*ServiceRevenue)
	staffRows := make(map[uuid.UUID]*StaffRevenue)
	methodRows := make(map[entity.PaymentMethod]*PaymentMethodRevenue)
	dayRows := make(map[string]*DailyRevenue)

	for _, record := range records {
		if record.Service != nil {
			row, ok := serviceRows[record.Service.ID]
			if !ok {
				row = &ServiceRevenue{ServiceID: record.Service.ID, ServiceName: record.Service.Name}
				serviceRows[record.Service.ID] = row
			}
			row.QuantitySold++
			row.TotalRevenue = row.TotalRevenue.Add(record.GrossAmount)
		}

		if record.Staff != nil {
			row, ok := staffRows[record.Staff.ID]
			if !ok {
				row = &StaffRevenue{StaffID: record.Staff.ID, StaffName: record.Staff.Name}
				staffRows[record.Staff.ID] = row
			}
			row.ServicesPerformed++
			row.GrossRevenue = row.GrossRevenue.Add(record.GrossAmount)
			row.TipsReceived = row.TipsReceived.Add(record.TipAmount)
		}

		methodRow, ok := methodRows[record.PaymentMethod]
		if !ok {
			methodRow = &PaymentMethodRevenue{Method: record.PaymentMethod}
			methodRows[record.PaymentMethod] = methodRow
		}
		methodRow.TransactionCount++
		methodRow.TotalAmount = methodRow.TotalAmount.Add(record.GrossAmount)

		key := dayKey(record.OccurredAt)
		dayRow, ok := dayRows[key]
		if !ok {
			dayRow = &DailyRevenue{Date: key}
			dayRows[key] = dayRow
		}
		dayRow.Transactions++
		dayRow.Revenue = dayRow.Revenue.Add(record.GrossAmount)
	}

	// Derivation pass. Every ratio carries an explicit zero-denominator
	// branch so the report never contains NaN or infinity.
	grossIsZero := report.Totals.GrossRevenue.IsZero()

	report.Breakdown.ByService = make([]ServiceRevenue, 0, len(serviceRows))
	for _, row := range serviceRows {
		// QuantitySold >= 1 for any existing row.
		row.AveragePrice = row.TotalRevenue.Div(decimal.NewFromInt(int64(row.QuantitySold)))
		if !grossIsZero {
			row.PercentageOfTotal = row.TotalRevenue.Mul(hundred).Div(report.Totals.GrossRevenue)
		}
		report.Breakdown.ByService = append(report.Breakdown.ByService, *row)
	}

	report.Breakdown.ByStaff = make([]StaffRevenue, 0, len(staffRows))
	for _, row := range staffRows {
		// TotalEarnings is the staff member's take-home: commission is a
		// fraction of the gross, which itself belongs to the salon.
		row.CommissionEarned = row.GrossRevenue.Mul(opts.CommissionRate)
		row.TotalEarnings = row.CommissionEarned.Add(row.TipsReceived)
		report.Breakdown.ByStaff = append(report.Breakdown.ByStaff, *row)
	}

	report.Breakdown.ByPaymentMethod = make([]PaymentMethodRevenue, 0, len(methodRows))
	for _, row := range methodRows {
		if !grossIsZero {
			row.Percentage = row.TotalAmount.Mul(hundred).Div(report.Totals.GrossRevenue)
		}
		report.Breakdown.ByPaymentMethod = append(report.Breakdown.ByPaymentMethod, *row)
	}

	report.Breakdown.ByDay = make([]DailyRevenue, 0, len(dayRows))
	for _, row := range dayRows {
		report.Breakdown.ByDay = append(report.Breakdown.ByDay, *row)
	}

	// Deterministic ordering: days ascending, everything else by revenue
	// descending with a name tie-break. Map iteration order must never
	// leak into the output.
	sort.Slice(report.Breakdown.ByDay, func(i, j int) bool {
		return report.Breakdown.ByDay[i].Date < report.Breakdown.ByDay[j].Date
	})
	sort.Slice(report.Breakdown.ByService, func(i, j int) bool {
		a, b := report.Breakdown.ByService[i], report.Breakdown.ByService[j]
		if !a.TotalRevenue.Equal(b.TotalRevenue) {
			return a.TotalRevenue.GreaterThan(b.TotalRevenue)
		}
		return a.ServiceName < b.ServiceName
	})
	sort.Slice(report.Breakdown.ByStaff, func(i, j int) bool {
		a, b := report.Breakdown.ByStaff[i], report.Breakdown.ByStaff[j]
		if !a.GrossRevenue.Equal(b.GrossRevenue) {
			return a.GrossRevenue.GreaterThan(b.GrossRevenue)
		}
		return a.StaffName < b.StaffName
	})
	sort.Slice(report.Breakdown.ByPaymentMethod, func(i, j int) bool {
		a, b := report.Breakdown.ByPaymentMethod[i], report.Breakdown.ByPaymentMethod[j]
		if !a.TotalAmount.Equal(b.TotalAmount) {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
		return a.Method < b.Method
	})

	// Transaction summary.
	report.Transactions.Count = len(records)
	if len(records) > 0 {
		report.Transactions.AverageValue = report.Totals.GrossRevenue.Div(decimal.NewFromInt(int64(len(records))))
		report.Transactions.HighestValue = highest
		report.Transactions.LowestValue = lowest
	}

	return report, nil
}
