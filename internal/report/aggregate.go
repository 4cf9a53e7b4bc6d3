package report

import (
	"sort"
	"strings"
	"time"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"
)

// EngagementSaleLine is one closed follow-up sale inside a day bucket.
type EngagementSaleLine struct {
	CustomerName    string  `json:"customer_name"`
	Mobile          string  `json:"mobile"`
	Amount          float64 `json:"amount"`
	SalespersonName string  `json:"salesperson_name"`
	Remarks         string  `json:"remarks"`
	Location        string  `json:"location"`
}

// PosSaleLine is one point-of-sale transaction inside a day bucket.
type PosSaleLine struct {
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	BrandName    string `json:"brand_name"`
	ModelNumber  string `json:"model_number"`
	Quantity     int    `json:"quantity"`
	BillNumber   string `json:"bill_number,omitempty"`
}

// DayBucket is the per-calendar-day aggregate of both revenue streams.
// Buckets are rebuilt on every call and only exist for days with at
// least one qualifying event.
type DayBucket struct {
	Date              time.Time            `json:"date"`
	EngagementRevenue float64              `json:"engagement_revenue"`
	EngagementCount   int                  `json:"engagement_count"`
	POSCount          int                  `json:"pos_count"`
	EngagementDetails []EngagementSaleLine `json:"engagement_details"`
	POSDetails        []PosSaleLine        `json:"pos_details"`
	// Salespersons holds the distinct names behind this day's engagement
	// lines, in first-seen fold order.
	Salespersons []string `json:"salespersons"`
}

// TotalCount is the combined event count for the day.
func (b *DayBucket) TotalCount() int {
	return b.EngagementCount + b.POSCount
}

// AverageSale is the day's revenue per closed engagement sale, zero-safe.
func (b *DayBucket) AverageSale() float64 {
	if b.EngagementCount == 0 {
		return 0
	}
	return b.EngagementRevenue / float64(b.EngagementCount)
}

// SalespersonsJoined renders the salesperson set for display/export.
func (b *DayBucket) SalespersonsJoined() string {
	return strings.Join(b.Salespersons, ", ")
}

func (b *DayBucket) addSalesperson(name string) {
	if name == "" {
		return
	}
	for _, existing := range b.Salespersons {
		if existing == name {
			return
		}
	}
	b.Salespersons = append(b.Salespersons, name)
}

// Aggregate folds both record sources into a map keyed by calendar day
// (YYYY-MM-DD). Both channels are ALWAYS folded, whatever the channel
// filter says; an engagement-only or pos-only filter is applied
// afterwards by dropping buckets the requested channel never touched;
// the summary a caller derives always comes from the bucket set it was
// handed.
//
// Detail lines keep source-iteration order within each bucket; records
// with unparseable dates silently match no window.
func Aggregate(customers []models.Customer, sales []models.StockSale, w Window, f Filters) map[string]*DayBucket {
	buckets := make(map[string]*DayBucket)

	// 1. Fold the follow-up pipeline (engagement channel)
	for _, customer := range customers {
		for _, fu := range customer.FollowUps {
			day, ok := followUpDay(w, f, customer, fu)
			if !ok {
				continue
			}
			bucket := fetchBucket(buckets, day)
			bucket.EngagementRevenue += fu.Amount
			bucket.EngagementCount++
			bucket.EngagementDetails = append(bucket.EngagementDetails, EngagementSaleLine{
				CustomerName:    customer.Name,
				Mobile:          customer.Mobile,
				Amount:          fu.Amount,
				SalespersonName: customer.SalespersonName,
				Remarks:         fu.Remarks,
				Location:        customer.Location,
			})
			bucket.addSalesperson(customer.SalespersonName)
		}
	}

	// 2. Fold the counter sales (point-of-sale channel)
	for _, sale := range sales {
		day, ok := stockSaleDay(w, sale)
		if !ok {
			continue
		}
		bucket := fetchBucket(buckets, day)
		bucket.POSCount++
		bucket.POSDetails = append(bucket.POSDetails, PosSaleLine{
			CustomerName: sale.CustomerName,
			ProductName:  sale.ProductName,
			BrandName:    sale.BrandName,
			ModelNumber:  sale.ModelNumber,
			Quantity:     sale.Quantity,
			BillNumber:   sale.BillNumber,
		})
	}

	// 3. Display filter: drop days the requested channel never touched
	switch f.Channel {
	case ChannelEngagement:
		for key, bucket := range buckets {
			if bucket.EngagementCount == 0 {
				delete(buckets, key)
			}
		}
	case ChannelPOS:
		for key, bucket := range buckets {
			if bucket.POSCount == 0 {
				delete(buckets, key)
			}
		}
	}

	return buckets
}

func fetchBucket(buckets map[string]*DayBucket, day time.Time) *DayBucket {
	key := dayKey(day)
	bucket, exists := buckets[key]
	if !exists {
		bucket = &DayBucket{Date: day}
		buckets[key] = bucket
	}
	return bucket
}

// SortedBuckets flattens the bucket map into the enumeration order the
// ledger shows: most recent day first.
func SortedBuckets(buckets map[string]*DayBucket) []*DayBucket {
	result := make([]*DayBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}
