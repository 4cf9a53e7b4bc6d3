package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/export"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/report"
)

func reportFixture(t *testing.T) ([]*report.DayBucket, report.PeriodSummary, report.Window) {
	t.Helper()
	window, err := report.NewWindow("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	customers := []models.Customer{
		{
			Name:            "Arun",
			Mobile:          "9876501234",
			Location:        "Madurai",
			SalespersonID:   1,
			SalespersonName: "Kumar",
			FollowUps: []models.FollowUp{
				{Date: "2024-03-15", Status: models.StatusClosedWon, Amount: 5000, Remarks: "panel order"},
			},
		},
	}
	sales := []models.StockSale{
		{
			ProductName:  "Ceiling Fan",
			BrandName:    "Crompton",
			ModelNumber:  "CF-48",
			SaleDate:     "2024-03-15",
			CustomerName: "Walk-in",
			BillNumber:   "VE-AABBCCDD",
			Quantity:     3,
		},
	}

	buckets := report.SortedBuckets(report.Aggregate(customers, sales, window, report.Filters{}))
	return buckets, report.Summarize(buckets), window
}

func TestFilename(t *testing.T) {
	window, err := report.NewWindow("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	name := export.Filename(window)
	assert.Equal(t, "Daily_Sales_Report_2024-03-01_to_2024-03-31.xlsx", name)
	// Deterministic: same window, same artifact name
	assert.Equal(t, name, export.Filename(window))
}

func TestBuildWorkbookSheets(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{
		export.SheetDailySummary,
		export.SheetEngagementSales,
		export.SheetPosSales,
		export.SheetStatistics,
	}, workbook.GetSheetList())
}

func TestBuildWorkbookDailySummaryRows(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetDailySummary)
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one bucket

	assert.Equal(t, []string{
		"Date", "Engagement Sales", "POS Sales", "Total Sales",
		"Revenue", "Revenue (Formatted)", "Average Sale", "Salespersons",
	}, rows[0])

	day := rows[1]
	assert.Equal(t, "Friday, 15 March 2024", day[0])
	assert.Equal(t, "1", day[1])
	assert.Equal(t, "1", day[2])
	assert.Equal(t, "2", day[3])
	assert.Equal(t, "5000", day[4])
	assert.Equal(t, "₹5,000.00", day[5])
	assert.Equal(t, "Kumar", day[7])
}

func TestBuildWorkbookDetailSheets(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	engagement, err := workbook.GetRows(export.SheetEngagementSales)
	require.NoError(t, err)
	require.Len(t, engagement, 2)
	assert.Equal(t, "Arun", engagement[1][1])
	assert.Equal(t, "₹5,000.00", engagement[1][4])
	assert.Equal(t, "panel order", engagement[1][7])

	pos, err := workbook.GetRows(export.SheetPosSales)
	require.NoError(t, err)
	require.Len(t, pos, 2)
	assert.Equal(t, "Ceiling Fan", pos[1][2])
	assert.Equal(t, "3", pos[1][5])
	assert.Equal(t, "VE-AABBCCDD", pos[1][6])
}

func TestBuildWorkbookRowOrderAcrossDays(t *testing.T) {
	window, err := report.NewWindow("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	// Two active days, two engagement lines and two pos lines each.
	// Sheets must list the most recent day's rows first, keeping fold
	// order within a day.
	customers := []models.Customer{
		{
			Name: "Arun", SalespersonName: "Kumar",
			FollowUps: []models.FollowUp{
				{Date: "2024-03-10", Status: models.StatusClosedWon, Amount: 1000},
				{Date: "2024-03-20", Status: models.StatusClosedWon, Amount: 3000},
			},
		},
		{
			Name: "Bala", SalespersonName: "Ravi",
			FollowUps: []models.FollowUp{
				{Date: "2024-03-10", Status: models.StatusClosedWon, Amount: 2000},
				{Date: "2024-03-20", Status: models.StatusClosedWon, Amount: 4000},
			},
		},
	}
	sales := []models.StockSale{
		{ProductName: "Switch", SaleDate: "2024-03-10", Quantity: 1},
		{ProductName: "MCB", SaleDate: "2024-03-20", Quantity: 2},
		{ProductName: "Tube Light", SaleDate: "2024-03-10", Quantity: 3},
		{ProductName: "Ceiling Fan", SaleDate: "2024-03-20", Quantity: 4},
	}

	buckets := report.SortedBuckets(report.Aggregate(customers, sales, window, report.Filters{}))
	require.Len(t, buckets, 2)

	workbook, err := export.BuildWorkbook(buckets, report.Summarize(buckets), window)
	require.NoError(t, err)
	defer workbook.Close()

	daily, err := workbook.GetRows(export.SheetDailySummary)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "Wednesday, 20 March 2024", daily[1][0])
	assert.Equal(t, "Sunday, 10 March 2024", daily[2][0])

	engagement, err := workbook.GetRows(export.SheetEngagementSales)
	require.NoError(t, err)
	require.Len(t, engagement, 5)
	// March 20 block first (fold order: Arun then Bala), then March 10
	assert.Equal(t, "Wednesday, 20 March 2024", engagement[1][0])
	assert.Equal(t, "Arun", engagement[1][1])
	assert.Equal(t, "Bala", engagement[2][1])
	assert.Equal(t, "Sunday, 10 March 2024", engagement[3][0])
	assert.Equal(t, "Arun", engagement[3][1])
	assert.Equal(t, "Bala", engagement[4][1])

	pos, err := workbook.GetRows(export.SheetPosSales)
	require.NoError(t, err)
	require.Len(t, pos, 5)
	assert.Equal(t, "MCB", pos[1][2])
	assert.Equal(t, "Ceiling Fan", pos[2][2])
	assert.Equal(t, "Switch", pos[3][2])
	assert.Equal(t, "Tube Light", pos[4][2])
}

func TestBuildWorkbookStatistics(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	windowCell, err := workbook.GetCellValue(export.SheetStatistics, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 to 2024-03-31", windowCell)

	total, err := workbook.GetCellValue(export.SheetStatistics, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", total)

	formatted, err := workbook.GetCellValue(export.SheetStatistics, "C3")
	require.NoError(t, err)
	assert.Equal(t, "₹5,000.00", formatted)
}

func TestSaveWritesDeterministicArtifact(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	dir := t.TempDir()
	path, err := export.Save(workbook, dir, window)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, export.Filename(window)), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveFailureSurfaced(t *testing.T) {
	buckets, summary, window := reportFixture(t)

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	require.NoError(t, err)
	defer workbook.Close()

	_, err = export.Save(workbook, filepath.Join(t.TempDir(), "missing", "nested"), window)
	assert.Error(t, err)
}
