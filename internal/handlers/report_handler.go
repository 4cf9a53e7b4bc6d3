package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/database"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/export"
	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/report"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DailyLedgerResponse is the display-layer feed: buckets most recent
// first, plus the period statistics derived from that same bucket set.
type DailyLedgerResponse struct {
	Window  report.Window        `json:"window"`
	Buckets []*report.DayBucket  `json:"buckets"`
	Summary report.PeriodSummary `json:"summary"`
}

// parseReportQuery reads start/end/salesperson_id/channel from the query
// string. It writes the 400 response itself so the handlers stay flat.
func parseReportQuery(c *gin.Context) (report.Window, report.Filters, bool) {
	window, err := report.NewWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return report.Window{}, report.Filters{}, false
	}

	channel, err := report.ParseChannel(c.Query("channel"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return report.Window{}, report.Filters{}, false
	}

	filters := report.Filters{Channel: channel}
	if raw := c.Query("salesperson_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salesperson_id"})
			return report.Window{}, report.Filters{}, false
		}
		filters.SalespersonID = uint(id)
	}

	return window, filters, true
}

// aggregateForRequest runs one full aggregation for the request
// parameters. Every call is independent; nothing is cached between
// filter changes.
func aggregateForRequest(c *gin.Context, window report.Window, filters report.Filters) ([]*report.DayBucket, report.PeriodSummary, bool) {
	customers, err := database.GetEngagementRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer records"})
		return nil, report.PeriodSummary{}, false
	}
	sales, err := database.GetStockSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock sales"})
		return nil, report.PeriodSummary{}, false
	}

	buckets := report.SortedBuckets(report.Aggregate(customers, sales, window, filters))
	return buckets, report.Summarize(buckets), true
}

// --- GET: /api/reports/daily ---
func GetDailyLedger(c *gin.Context) {
	window, filters, ok := parseReportQuery(c)
	if !ok {
		return
	}

	buckets, summary, ok := aggregateForRequest(c, window, filters)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DailyLedgerResponse{
		Window:  window,
		Buckets: buckets,
		Summary: summary,
	})
}

// --- GET: /api/reports/daily/export ---
// Streams the four-sheet workbook as a download. The workbook is built
// into memory first so an export failure can still answer with a clean
// 500 instead of a half-written response body.
func ExportDailyReport(c *gin.Context) {
	window, filters, ok := parseReportQuery(c)
	if !ok {
		return
	}

	buckets, summary, ok := aggregateForRequest(c, window, filters)
	if !ok {
		return
	}

	workbook, err := export.BuildWorkbook(buckets, summary, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report workbook"})
		return
	}
	defer workbook.Close()

	var buf bytes.Buffer
	if _, err := workbook.WriteTo(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write report workbook"})
		return
	}

	// Optional archive copy on disk. A failed copy is logged, not fatal:
	// the aggregation is still valid and the download still goes out.
	if dir := os.Getenv("EXPORT_DIR"); dir != "" {
		if path, err := export.Save(workbook, dir, window); err != nil {
			log.Println("Warning: could not archive report copy:", err)
		} else {
			log.Println("Report archived to", path)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(window)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
