package analytics

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

func buildExportFixture(t *testing.T) *RevenueReport {
	t.Helper()

	haircut := &entity.ServiceRef{ID: haircutID, Name: "Haircut"}
	coloring := &entity.ServiceRef{ID: coloringID, Name: `Cut "Deluxe"`}
	alice := &entity.StaffRef{ID: aliceID, Name: "Alice"}

	records := []*entity.Transaction{
		makeSale("2024-01-01", 100, haircut, alice, entity.PaymentMethodCard),
		makeSale("2024-01-02", 50, coloring, alice, entity.PaymentMethodCash),
		makeSale("2024-01-02", 25, haircut, alice, entity.PaymentMethodCard),
	}
	period := mustPeriod(t, "2024-01-01", "2024-01-31")

	report, err := BuildReport(records, period, DefaultBuilderOptions())
	if err != nil {
		t.Fatalf("unexpected error building fixture: %v", err)
	}
	return report
}

func TestExportCSV(t *testing.T) {
	report := buildExportFixture(t)
	file := ExportCSV(report)

	t.Run("filename embeds the period", func(t *testing.T) {
		want := "revenue_report_2024-01-01_to_2024-01-31.csv"
		if file.Filename != want {
			t.Errorf("expected filename %s, got %s", want, file.Filename)
		}
	})

	t.Run("sections in fixed order", func(t *testing.T) {
		sections := []string{"REVENUE SUMMARY", "DAILY BREAKDOWN", "SERVICE BREAKDOWN", "STAFF PERFORMANCE"}
		lastIndex := -1
		for _, section := range sections {
			index := strings.Index(file.Content, section)
			if index == -1 {
				t.Fatalf("section %s missing from export", section)
			}
			if index <= lastIndex {
				t.Errorf("section %s out of order", section)
			}
			lastIndex = index
		}
	})

	t.Run("blank line separates sections", func(t *testing.T) {
		if !strings.Contains(file.Content, "\n\nDAILY BREAKDOWN\n") {
			t.Error("expected a blank line before DAILY BREAKDOWN")
		}
	})

	t.Run("summary lines", func(t *testing.T) {
		if !strings.Contains(file.Content, "Period,2024-01-01 to 2024-01-31\n") {
			t.Error("expected period label line")
		}
		if !strings.Contains(file.Content, "Gross Revenue,175\n") {
			t.Error("expected unformatted gross revenue line")
		}
	})

	t.Run("names are double-quoted and escaped", func(t *testing.T) {
		if !strings.Contains(file.Content, `"Haircut",2,125`) {
			t.Error("expected quoted service name row")
		}
		if !strings.Contains(file.Content, `"Cut ""Deluxe""",1,50`) {
			t.Error("expected embedded quotes to be doubled")
		}
		if !strings.Contains(file.Content, `"Alice",3,175`) {
			t.Error("expected quoted staff name row")
		}
	})

	t.Run("daily rows re-parse losslessly", func(t *testing.T) {
		daily := extractSection(t, file.Content, "DAILY BREAKDOWN")

		reader := csv.NewReader(strings.NewReader(daily))
		rows, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("daily section is not valid CSV: %v", err)
		}

		// Header plus one row per day.
		if len(rows) != 1+len(report.Breakdown.ByDay) {
			t.Fatalf("expected %d rows, got %d", 1+len(report.Breakdown.ByDay), len(rows))
		}
		for i, day := range report.Breakdown.ByDay {
			row := rows[i+1]
			if row[0] != day.Date {
				t.Errorf("row %d: expected date %s, got %s", i, day.Date, row[0])
			}
			parsed, err := decimal.NewFromString(row[1])
			if err != nil {
				t.Fatalf("row %d: revenue %q does not parse: %v", i, row[1], err)
			}
			if !parsed.Equal(day.Revenue) {
				t.Errorf("row %d: expected revenue %s, got %s", i, day.Revenue, parsed)
			}
		}
	})

	t.Run("service rows re-parse with rounded ratios", func(t *testing.T) {
		services := extractSection(t, file.Content, "SERVICE BREAKDOWN")

		reader := csv.NewReader(strings.NewReader(services))
		rows, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("service section is not valid CSV: %v", err)
		}
		if len(rows) != 1+len(report.Breakdown.ByService) {
			t.Fatalf("expected %d rows, got %d", 1+len(report.Breakdown.ByService), len(rows))
		}

		// Haircut: 125 of 175 is 71.43% after rounding.
		haircutRow := rows[1]
		if haircutRow[0] != "Haircut" {
			t.Fatalf("expected Haircut first, got %s", haircutRow[0])
		}
		if haircutRow[4] != "71.43" {
			t.Errorf("expected percentage 71.43, got %s", haircutRow[4])
		}
		if haircutRow[3] != "62.5" {
			t.Errorf("expected average price 62.5, got %s", haircutRow[3])
		}
	})
}

func TestExportCSV_EmptyReport(t *testing.T) {
	period := mustPeriod(t, "2024-01-01", "2024-01-31")
	report, err := BuildReport(nil, period, DefaultBuilderOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file := ExportCSV(report)

	// All four section headers render even with no rows.
	for _, section := range []string{"REVENUE SUMMARY", "DAILY BREAKDOWN", "SERVICE BREAKDOWN", "STAFF PERFORMANCE"} {
		if !strings.Contains(file.Content, section) {
			t.Errorf("section %s missing from empty export", section)
		}
	}
	if !strings.Contains(file.Content, "Gross Revenue,0\n") {
		t.Error("expected zero gross revenue line")
	}
	if !strings.Contains(file.Content, "Date,Revenue,Transactions\n\n") {
		t.Error("expected empty daily section to end at its header row")
	}
}

// extractSection returns the CSV body of one section (header row included,
// section title excluded), up to the next blank line or end of file.
func extractSection(t *testing.T, content, title string) string {
	t.Helper()

	start := strings.Index(content, title+"\n")
	if start == -1 {
		t.Fatalf("section %s not found", title)
	}
	body := content[start+len(title)+1:]
	if end := strings.Index(body, "\n\n"); end != -1 {
		body = body[:end+1]
	}
	return body
}
