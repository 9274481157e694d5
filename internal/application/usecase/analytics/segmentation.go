package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// SegmentID identifies a behavioral customer segment.
type SegmentID string

const (
	SegmentNew       SegmentID = "new"
	SegmentVIP       SegmentID = "vip"
	SegmentRegular   SegmentID = "regular"
	SegmentHighValue SegmentID = "high-value"
	SegmentEngaged   SegmentID = "engaged"
	SegmentLoyal     SegmentID = "loyal"
	SegmentAtRisk    SegmentID = "at-risk"
	SegmentChurned   SegmentID = "churned"
)

// Segmentation time windows, all measured against the injected as-of time.
const (
	newCustomerWindow = 30 * 24 * time.Hour
	engagedWindow     = 7 * 24 * time.Hour
	atRiskInnerWindow = 30 * 24 * time.Hour
	atRiskOuterWindow = 60 * 24 * time.Hour
	churnedWindow     = 90 * 24 * time.Hour
	regularVisitFloor = 3
	loyalVisitFloor   = 10
)

// DefaultHighValueShare is the fraction of the roster classified as
// high-value. Overridable via ANALYTICS_HIGH_VALUE_SHARE.
const DefaultHighValueShare = 0.2

// SegmentMetrics summarizes the members of one segment. All three metrics
// are explicit zeros for an empty segment.
type SegmentMetrics struct {
	AvgSpend   decimal.Decimal `json:"avg_spend"`
	AvgVisits  decimal.Decimal `json:"avg_visits"`
	ActiveRate decimal.Decimal `json:"active_rate"`
}

// Segment is a named, possibly-overlapping subset of the customer roster.
// Segments carry no persisted state: every classification call recomputes
// them from scratch.
type Segment struct {
	ID      SegmentID          `json:"id"`
	Name    string             `json:"name"`
	Members []*entity.Customer `json:"members"`
	Metrics SegmentMetrics     `json:"metrics"`
}

// ClassifierOptions carries the configurable inputs of the classifier.
type ClassifierOptions struct {
	// HighValueShare is the fraction of the roster (by total spend) placed
	// in the high-value segment. Values outside (0,1] fall back to the
	// default.
	HighValueShare float64
}

// DefaultClassifierOptions returns options with the default high-value share.
func DefaultClassifierOptions() ClassifierOptions {
	return ClassifierOptions{HighValueShare: DefaultHighValueShare}
}

// Classify evaluates every segment predicate independently over the roster.
// A customer may belong to zero, one, or several segments. All time windows
// are measured against asOf, never the live clock, so classification of a
// fixed roster is fully reproducible.
func Classify(roster []*entity.Customer, asOf time.Time, opts ClassifierOptions) []Segment {
	share := opts.HighValueShare
	if share <= 0 || share > 1 {
		share = DefaultHighValueShare
	}

	segments := []Segment{
		newSegment(SegmentNew, "New Customers", roster, func(c *entity.Customer) bool {
			return c.CreatedAt.After(asOf.Add(-newCustomerWindow))
		}),
		newSegment(SegmentVIP, "VIP", roster, func(c *entity.Customer) bool {
			return c.IsVIP
		}),
		newSegment(SegmentRegular, "Regulars", roster, func(c *entity.Customer) bool {
			return c.VisitCount >= regularVisitFloor && !c.IsVIP
		}),
		highValueSegment(roster, share),
		newSegment(SegmentEngaged, "Engaged", roster, func(c *entity.Customer) bool {
			return c.LastVisitAt != nil && c.LastVisitAt.After(asOf.Add(-engagedWindow))
		}),
		newSegment(SegmentLoyal, "Loyal", roster, func(c *entity.Customer) bool {
			return c.VisitCount >= loyalVisitFloor
		}),
		newSegment(SegmentAtRisk, "At Risk", roster, func(c *entity.Customer) bool {
			if c.LastVisitAt == nil {
				return false
			}
			inner := asOf.Add(-atRiskInnerWindow)
			outer := asOf.Add(-atRiskOuterWindow)
			return !c.LastVisitAt.After(inner) && !c.LastVisitAt.Before(outer)
		}),
		newSegment(SegmentChurned, "Churned", roster, func(c *entity.Customer) bool {
			return c.LastVisitAt != nil && c.LastVisitAt.Before(asOf.Add(-churnedWindow))
		}),
	}

	return segments
}

// newSegment builds a predicate-based segment, preserving roster order.
func newSegment(id SegmentID, name string, roster []*entity.Customer, predicate func(*entity.Customer) bool) Segment {
	members := make([]*entity.Customer, 0)
	for _, customer := range roster {
		if predicate(customer) {
			members = append(members, customer)
		}
	}
	return Segment{
		ID:      id,
		Name:    name,
		Members: members,
		Metrics: computeSegmentMetrics(members),
	}
}

// highValueSegment selects the top ceil(share * len(roster)) customers by
// total spend. The sort is fully deterministic: total spend descending, then
// customer ID ascending, and the cutoff is inclusive of the ceil count.
func highValueSegment(roster []*entity.Customer, share float64) Segment {
	ranked := make([]*entity.Customer, len(roster))
	copy(ranked, roster)

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].TotalSpent.Equal(ranked[j].TotalSpent) {
			return ranked[i].TotalSpent.GreaterThan(ranked[j].TotalSpent)
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	cutoff := int(math.Ceil(share * float64(len(ranked))))
	if cutoff > len(ranked) {
		cutoff = len(ranked)
	}
	members := ranked[:cutoff]

	return Segment{
		ID:      SegmentHighValue,
		Name:    "High Value",
		Members: members,
		Metrics: computeSegmentMetrics(members),
	}
}

// computeSegmentMetrics derives per-segment averages with explicit
// zero-denominator guards.
func computeSegmentMetrics(members []*entity.Customer) SegmentMetrics {
	if len(members) == 0 {
		return SegmentMetrics{}
	}

	var totalSpend decimal.Decimal
	var totalVisits int64
	var activeCount int64
	for _, customer := range members {
		totalSpend = totalSpend.Add(customer.TotalSpent)
		totalVisits += int64(customer.VisitCount)
		if customer.IsActive {
			activeCount++
		}
	}

	size := decimal.NewFromInt(int64(len(members)))
	return SegmentMetrics{
		AvgSpend:   totalSpend.Div(size),
		AvgVisits:  decimal.NewFromInt(totalVisits).Div(size),
		ActiveRate: decimal.NewFromInt(activeCount).Div(size),
	}
}
