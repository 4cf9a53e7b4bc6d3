package report

// PeriodSummary is the flat statistics record derived from one
// aggregation run. Every field is a pure function of the bucket set.
type PeriodSummary struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalEngagementSales int     `json:"total_engagement_sales"`
	TotalPosSales        int     `json:"total_pos_sales"`
	TotalSales           int     `json:"total_sales"`
	AverageDailyRevenue  float64 `json:"average_daily_revenue"`
	AverageSaleAmount    float64 `json:"average_sale_amount"`
	ActiveDays           int     `json:"active_days"`
	TotalUnitsFromPos    int     `json:"total_units_from_pos"`
}

// Summarize reduces a bucket list to period totals and averages.
// Divisions are zero-safe: an empty period yields an all-zero summary,
// never NaN.
func Summarize(buckets []*DayBucket) PeriodSummary {
	var summary PeriodSummary

	for _, bucket := range buckets {
		summary.TotalRevenue += bucket.EngagementRevenue
		summary.TotalEngagementSales += bucket.EngagementCount
		summary.TotalPosSales += bucket.POSCount
		if bucket.TotalCount() > 0 {
			summary.ActiveDays++
		}
		for _, line := range bucket.POSDetails {
			summary.TotalUnitsFromPos += line.Quantity
		}
	}

	summary.TotalSales = summary.TotalEngagementSales + summary.TotalPosSales
	if len(buckets) > 0 {
		summary.AverageDailyRevenue = summary.TotalRevenue / float64(len(buckets))
	}
	if summary.TotalEngagementSales > 0 {
		summary.AverageSaleAmount = summary.TotalRevenue / float64(summary.TotalEngagementSales)
	}

	return summary
}
