package analytics

import (
	"fmt"
	"strings"
)

// ratioScale is the decimal precision used for derived ratio columns
// (average price, percentages) in the export.
const ratioScale = 2

// ExportFile is a rendered export ready to be served as a text/csv download.
type ExportFile struct {
	Content  string
	Filename string
}

// ExportCSV renders a RevenueReport as sectioned CSV text. The section order
// is fixed, sections are separated by a single blank line, name columns are
// double-quoted, and numeric columns are written without currency symbols or
// thousands separators so the file re-parses losslessly.
func ExportCSV(report *RevenueReport) ExportFile {
	var b strings.Builder

	b.WriteString("REVENUE SUMMARY\n")
	fmt.Fprintf(&b, "Period,%s\n", report.Period.Label())
	fmt.Fprintf(&b, "Gross Revenue,%s\n", report.Totals.GrossRevenue.String())
	fmt.Fprintf(&b, "Net Revenue,%s\n", report.Totals.NetRevenue.String())
	fmt.Fprintf(&b, "Tax Collected,%s\n", report.Totals.TaxCollected.String())
	fmt.Fprintf(&b, "Tips Collected,%s\n", report.Totals.TipsCollected.String())
	fmt.Fprintf(&b, "Discounts Given,%s\n", report.Totals.DiscountsGiven.String())

	b.WriteString("\nDAILY BREAKDOWN\n")
	b.WriteString("Date,Revenue,Transactions\n")
	for _, day := range report.Breakdown.ByDay {
		fmt.Fprintf(&b, "%s,%s,%d\n", day.Date, day.Revenue.String(), day.Transactions)
	}

	b.WriteString("\nSERVICE BREAKDOWN\n")
	b.WriteString("Service,Quantity,Revenue,Average Price,% of Total\n")
	for _, service := range report.Breakdown.ByService {
		fmt.Fprintf(&b, "%s,%d,%s,%s,%s\n",
			quoteName(service.ServiceName),
			service.QuantitySold,
			service.TotalRevenue.String(),
			service.AveragePrice.Round(ratioScale).String(),
			service.PercentageOfTotal.Round(ratioScale).String(),
		)
	}

	b.WriteString("\nSTAFF PERFORMANCE\n")
	b.WriteString("Staff Member,Services,Revenue,Commission,Tips,Total Earnings\n")
	for _, staff := range report.Breakdown.ByStaff {
		fmt.Fprintf(&b, "%s,%d,%s,%s,%s,%s\n",
			quoteName(staff.StaffName),
			staff.ServicesPerformed,
			staff.GrossRevenue.String(),
			staff.CommissionEarned.Round(ratioScale).String(),
			staff.TipsReceived.String(),
			staff.TotalEarnings.Round(ratioScale).String(),
		)
	}

	return ExportFile{
		Content: b.String(),
		Filename: fmt.Sprintf("revenue_report_%s_to_%s.csv",
			report.Period.Start.Format(dateKeyFormat),
			report.Period.End.Format(dateKeyFormat),
		),
	}
}

// quoteName double-quotes a name column, escaping embedded quotes CSV-style.
func quoteName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
