package analytics

import "github.com/shopspring/decimal"

// GrowthDirection indicates which way a metric moved between two periods.
type GrowthDirection string

const (
	GrowthDirectionUp   GrowthDirection = "up"
	GrowthDirectionDown GrowthDirection = "down"
	GrowthDirectionFlat GrowthDirection = "flat"
)

// GrowthResult compares a metric across two periods. Rate is a percentage at
// full precision; rounding happens at the presentation boundary only. A nil
// Rate means the comparison is undefined because the previous period was
// zero, which is distinct from a genuine 0%.
type GrowthResult struct {
	Rate      *decimal.Decimal `json:"rate"`
	Direction GrowthDirection  `json:"direction"`
}

// ComputeGrowth computes period-over-period growth of a metric.
func ComputeGrowth(current, previous decimal.Decimal) GrowthResult {
	if previous.IsZero() {
		direction := GrowthDirectionFlat
		if current.IsPositive() {
			direction = GrowthDirectionUp
		}
		return GrowthResult{Rate: nil, Direction: direction}
	}

	rate := current.Sub(previous).Mul(hundred).Div(previous)

	direction := GrowthDirectionFlat
	switch {
	case current.GreaterThan(previous):
		direction = GrowthDirectionUp
	case current.LessThan(previous):
		direction = GrowthDirectionDown
	}

	return GrowthResult{Rate: &rate, Direction: direction}
}

// intToDecimal converts a count metric for growth comparison.
func intToDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
