package analytics

import (
	"context"
)

// ExportRevenueReportUseCase builds a period's revenue report and renders it
// as a CSV download.
type ExportRevenueReportUseCase struct {
	getReport *GetRevenueReportUseCase
}

// NewExportRevenueReportUseCase creates a new ExportRevenueReportUseCase instance.
func NewExportRevenueReportUseCase(getReport *GetRevenueReportUseCase) *ExportRevenueReportUseCase {
	return &ExportRevenueReportUseCase{
		getReport: getReport,
	}
}

// Execute builds and serializes the revenue report for the given period.
func (uc *ExportRevenueReportUseCase) Execute(ctx context.Context, input GetRevenueReportInput) (*ExportFile, error) {
	report, err := uc.getReport.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	file := ExportCSV(report)
	return &file, nil
}
