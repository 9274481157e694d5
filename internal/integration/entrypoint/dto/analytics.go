// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/usecase/analytics"
)

// Presentation rounding: money stays at 2 decimals from storage, derived
// ratios round to 2 and growth rates to 1. The engine keeps full precision;
// only the DTOs round.
const (
	ratioScale = 2
	rateScale  = 1
)

// RevenueReportResponse represents the revenue report in API responses.
type RevenueReportResponse struct {
	Period       PeriodResponse             `json:"period"`
	Totals       analytics.RevenueTotals    `json:"totals"`
	Breakdown    BreakdownResponse          `json:"breakdown"`
	Transactions TransactionSummaryResponse `json:"transactions"`
}

// PeriodResponse represents a reporting period in API responses.
type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BreakdownResponse represents the revenue breakdown in API responses.
type BreakdownResponse struct {
	ByDay           []analytics.DailyRevenue `json:"by_day"`
	ByService       []ServiceRevenueResponse `json:"by_service"`
	ByStaff         []StaffRevenueResponse   `json:"by_staff"`
	ByPaymentMethod []PaymentMethodResponse  `json:"by_payment_method"`
}

// ServiceRevenueResponse represents one service row with rounded ratios.
type ServiceRevenueResponse struct {
	ServiceID         string          `json:"service_id"`
	ServiceName       string          `json:"service_name"`
	QuantitySold      int             `json:"quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AveragePrice      decimal.Decimal `json:"average_price"`
	PercentageOfTotal decimal.Decimal `json:"percentage_of_total"`
}

// StaffRevenueResponse represents one staff row with rounded earnings.
type StaffRevenueResponse struct {
	StaffID           string          `json:"staff_id"`
	StaffName         string          `json:"staff_name"`
	ServicesPerformed int             `json:"services_performed"`
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	CommissionEarned  decimal.Decimal `json:"commission_earned"`
	TipsReceived      decimal.Decimal `json:"tips_received"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
}

// PaymentMethodResponse represents one payment method row with rounded share.
type PaymentMethodResponse struct {
	Method     string          `json:"method"`
	Revenue    decimal.Decimal `json:"revenue"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TransactionSummaryResponse represents the transaction summary with a
// rounded average.
type TransactionSummaryResponse struct {
	Count        int             `json:"count"`
	AverageValue decimal.Decimal `json:"average_value"`
	HighestValue decimal.Decimal `json:"highest_value"`
	LowestValue  decimal.Decimal `json:"lowest_value"`
}

// GrowthResponse represents a period-over-period comparison in API responses.
// Rate is null when the previous period had no revenue.
type GrowthResponse struct {
	Rate      *decimal.Decimal `json:"rate"`
	Direction string           `json:"direction"`
}

// RevenueGrowthResponse represents the growth endpoint response.
type RevenueGrowthResponse struct {
	CurrentPeriod     PeriodResponse          `json:"current_period"`
	PreviousPeriod    PeriodResponse          `json:"previous_period"`
	CurrentTotals     analytics.RevenueTotals `json:"current_totals"`
	PreviousTotals    analytics.RevenueTotals `json:"previous_totals"`
	RevenueGrowth     GrowthResponse          `json:"revenue_growth"`
	TransactionGrowth GrowthResponse          `json:"transaction_growth"`
	CurrentCount      int                     `json:"current_count"`
	PreviousCount     int                     `json:"previous_count"`
}

// SegmentMemberResponse represents one customer inside a segment.
type SegmentMemberResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	VisitCount int             `json:"visit_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// SegmentResponse represents one behavioral segment.
type SegmentResponse struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	Size    int                     `json:"size"`
	Members []SegmentMemberResponse `json:"members"`
	Metrics SegmentMetricsResponse  `json:"metrics"`
}

// SegmentMetricsResponse represents rounded per-segment metrics.
type SegmentMetricsResponse struct {
	AvgSpend   decimal.Decimal `json:"avg_spend"`
	AvgVisits  decimal.Decimal `json:"avg_visits"`
	ActiveRate decimal.Decimal `json:"active_rate"`
}

// CustomerSegmentsResponse represents the segmentation endpoint response.
type CustomerSegmentsResponse struct {
	AsOf       time.Time         `json:"as_of"`
	RosterSize int               `json:"roster_size"`
	Segments   []SegmentResponse `json:"segments"`
}

// ToRevenueReportResponse converts an engine report to its API shape.
func ToRevenueReportResponse(report *analytics.RevenueReport) RevenueReportResponse {
	services := make([]ServiceRevenueResponse, len(report.Breakdown.ByService))
	for i, service := range report.Breakdown.ByService {
		services[i] = ServiceRevenueResponse{
			ServiceID:         service.ServiceID.String(),
			ServiceName:       service.ServiceName,
			QuantitySold:      service.QuantitySold,
			TotalRevenue:      service.TotalRevenue,
			AveragePrice:      service.AveragePrice.Round(ratioScale),
			PercentageOfTotal: service.PercentageOfTotal.Round(ratioScale),
		}
	}

	staff := make([]StaffRevenueResponse, len(report.Breakdown.ByStaff))
	for i, member := range report.Breakdown.ByStaff {
		staff[i] = StaffRevenueResponse{
			StaffID:           member.StaffID.String(),
			StaffName:         member.StaffName,
			ServicesPerformed: member.ServicesPerformed,
			GrossRevenue:      member.GrossRevenue,
			CommissionEarned:  member.CommissionEarned.Round(ratioScale),
			TipsReceived:      member.TipsReceived,
			TotalEarnings:     member.TotalEarnings.Round(ratioScale),
		}
	}

	methods := make([]PaymentMethodResponse, len(report.Breakdown.ByPaymentMethod))
	for i, method := range report.Breakdown.ByPaymentMethod {
		methods[i] = PaymentMethodResponse{
			Method:     string(method.Method),
			Revenue:    method.TotalAmount,
			Count:      method.TransactionCount,
			Percentage: method.Percentage.Round(ratioScale),
		}
	}

	return RevenueReportResponse{
		Period: toPeriodResponse(report.Period),
		Totals: report.Totals,
		Breakdown: BreakdownResponse{
			ByDay:           report.Breakdown.ByDay,
			ByService:       services,
			ByStaff:         staff,
			ByPaymentMethod: methods,
		},
		Transactions: TransactionSummaryResponse{
			Count:        report.Transactions.Count,
			AverageValue: report.Transactions.AverageValue.Round(ratioScale),
			HighestValue: report.Transactions.HighestValue,
			LowestValue:  report.Transactions.LowestValue,
		},
	}
}

// ToRevenueGrowthResponse converts the growth use case output to its API shape.
func ToRevenueGrowthResponse(output *analytics.GetRevenueGrowthOutput) RevenueGrowthResponse {
	return RevenueGrowthResponse{
		CurrentPeriod:     toPeriodResponse(output.CurrentPeriod),
		PreviousPeriod:    toPeriodResponse(output.PreviousPeriod),
		CurrentTotals:     output.CurrentTotals,
		PreviousTotals:    output.PreviousTotals,
		RevenueGrowth:     toGrowthResponse(output.RevenueGrowth),
		TransactionGrowth: toGrowthResponse(output.TransactionGrowth),
		CurrentCount:      output.CurrentCount,
		PreviousCount:     output.PreviousCount,
	}
}

// ToCustomerSegmentsResponse converts the segmentation output to its API shape.
func ToCustomerSegmentsResponse(output *analytics.GetCustomerSegmentsOutput) CustomerSegmentsResponse {
	segments := make([]SegmentResponse, len(output.Segments))
	for i, segment := range output.Segments {
		members := make([]SegmentMemberResponse, len(segment.Members))
		for j, member := range segment.Members {
			members[j] = SegmentMemberResponse{
				ID:         member.ID.String(),
				Name:       member.Name,
				VisitCount: member.VisitCount,
				TotalSpent: member.TotalSpent,
			}
		}
		segments[i] = SegmentResponse{
			ID:      string(segment.ID),
			Name:    segment.Name,
			Size:    len(segment.Members),
			Members: members,
			Metrics: SegmentMetricsResponse{
				AvgSpend:   segment.Metrics.AvgSpend.Round(ratioScale),
				AvgVisits:  segment.Metrics.AvgVisits.Round(ratioScale),
				ActiveRate: segment.Metrics.ActiveRate.Round(ratioScale),
			},
		}
	}

	return CustomerSegmentsResponse{
		AsOf:       output.AsOf,
		RosterSize: output.RosterSize,
		Segments:   segments,
	}
}

func toPeriodResponse(period analytics.RevenuePeriod) PeriodResponse {
	return PeriodResponse{
		StartDate: period.Start.Format("2006-01-02"),
		EndDate:   period.End.Format("2006-01-02"),
	}
}

func toGrowthResponse(growth analytics.GrowthResult) GrowthResponse {
	response := GrowthResponse{Direction: string(growth.Direction)}
	if growth.Rate != nil {
		rounded := growth.Rate.Round(rateScale)
		response.Rate = &rounded
	}
	return response
}
