package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/report"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/utils"
)

// Sheet names of the exported workbook, in tab order.
const (
	SheetDailySummary    = "Daily Summary"
	SheetEngagementSales = "Engagement Sales"
	SheetPosSales        = "Point of Sale Sales"
	SheetStatistics      = "Statistics"
)

const filenamePrefix = "Daily_Sales_Report"

const dayFormat = "2006-01-02"
const fullDateFormat = "Monday, 02 January 2006"

// Filename is the deterministic artifact name for a window. Repeated
// exports with the same window produce the same name; callers own any
// overwrite/versioning policy.
func Filename(w report.Window) string {
	return fmt.Sprintf("%s_%s_to_%s.xlsx", filenamePrefix,
		w.Start.Format(dayFormat), w.End.Format(dayFormat))
}

// BuildWorkbook renders the aggregated buckets and their summary into a
// four-sheet workbook. Buckets must already be in ledger order (most
// recent day first); rows are written in exactly that order, detail
// lines in fold order within each day.
func BuildWorkbook(buckets []*report.DayBucket, summary report.PeriodSummary, w report.Window) (*excelize.File, error) {
	f := excelize.NewFile()

	// 1. Rename the default sheet and create the other three
	if err := f.SetSheetName(f.GetSheetName(0), SheetDailySummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetEngagementSales, SheetPosSales, SheetStatistics} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	// 2. Daily Summary - one row per bucket
	if err := writeRow(f, SheetDailySummary, 1, []interface{}{
		"Date", "Engagement Sales", "POS Sales", "Total Sales",
		"Revenue", "Revenue (Formatted)", "Average Sale", "Salespersons",
	}); err != nil {
		return nil, err
	}
	for i, bucket := range buckets {
		err := writeRow(f, SheetDailySummary, i+2, []interface{}{
			bucket.Date.Format(fullDateFormat),
			bucket.EngagementCount,
			bucket.POSCount,
			bucket.TotalCount(),
			bucket.EngagementRevenue,
			utils.FormatRupees(bucket.EngagementRevenue),
			bucket.AverageSale(),
			bucket.SalespersonsJoined(),
		})
		if err != nil {
			return nil, err
		}
	}

	// 3. Engagement Sales - one row per closed follow-up line
	if err := writeRow(f, SheetEngagementSales, 1, []interface{}{
		"Date", "Customer", "Mobile", "Amount", "Amount (Formatted)",
		"Salesperson", "Location", "Remarks",
	}); err != nil {
		return nil, err
	}
	row := 2
	for _, bucket := range buckets {
		for _, line := range bucket.EngagementDetails {
			err := writeRow(f, SheetEngagementSales, row, []interface{}{
				bucket.Date.Format(fullDateFormat),
				line.CustomerName,
				line.Mobile,
				line.Amount,
				utils.FormatRupees(line.Amount),
				line.SalespersonName,
				line.Location,
				line.Remarks,
			})
			if err != nil {
				return nil, err
			}
			row++
		}
	}

	// 4. Point of Sale Sales - one row per counter sale
	if err := writeRow(f, SheetPosSales, 1, []interface{}{
		"Date", "Customer", "Product", "Brand", "Model", "Quantity", "Bill Number",
	}); err != nil {
		return nil, err
	}
	row = 2
	for _, bucket := range buckets {
		for _, line := range bucket.POSDetails {
			err := writeRow(f, SheetPosSales, row, []interface{}{
				bucket.Date.Format(fullDateFormat),
				line.CustomerName,
				line.ProductName,
				line.BrandName,
				line.ModelNumber,
				line.Quantity,
				line.BillNumber,
			})
			if err != nil {
				return nil, err
			}
			row++
		}
	}

	// 5. Statistics - one row per summary field, raw plus formatted
	statRows := []struct {
		label     string
		raw       interface{}
		formatted string
	}{
		{"Report Window", nil, w.Start.Format(dayFormat) + " to " + w.End.Format(dayFormat)},
		{"Total Revenue", summary.TotalRevenue, utils.FormatRupees(summary.TotalRevenue)},
		{"Total Engagement Sales", summary.TotalEngagementSales, fmt.Sprintf("%d", summary.TotalEngagementSales)},
		{"Total POS Sales", summary.TotalPosSales, fmt.Sprintf("%d", summary.TotalPosSales)},
		{"Total Sales", summary.TotalSales, fmt.Sprintf("%d", summary.TotalSales)},
		{"Active Days", summary.ActiveDays, fmt.Sprintf("%d days", summary.ActiveDays)},
		{"Total Units Sold (POS)", summary.TotalUnitsFromPos, fmt.Sprintf("%d units", summary.TotalUnitsFromPos)},
		{"Average Daily Revenue", summary.AverageDailyRevenue, utils.FormatRupees(summary.AverageDailyRevenue)},
		{"Average Sale Amount", summary.AverageSaleAmount, utils.FormatRupees(summary.AverageSaleAmount)},
	}
	if err := writeRow(f, SheetStatistics, 1, []interface{}{"Metric", "Value", "Formatted"}); err != nil {
		return nil, err
	}
	for i, stat := range statRows {
		if err := writeRow(f, SheetStatistics, i+2, []interface{}{stat.label, stat.raw, stat.formatted}); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Save writes the workbook under dir with the deterministic filename and
// returns the full path. A failure here leaves the in-memory aggregation
// untouched; the caller may retry without re-aggregating.
func Save(f *excelize.File, dir string, w report.Window) (string, error) {
	path := filepath.Join(dir, Filename(w))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report workbook: %w", err)
	}
	return path, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
