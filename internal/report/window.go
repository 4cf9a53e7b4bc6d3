package report

import (
	"fmt"
	"time"

	"github.com/CharanR12/vasantham-enterprises---Electrical-sub000/internal/models"
)

// Channel selects which revenue stream the ledger displays.
type Channel string

const (
	ChannelAll        Channel = "all"
	ChannelEngagement Channel = "engagement"
	ChannelPOS        Channel = "pos"
)

// ParseChannel maps a query-string value onto a Channel. An empty value
// means "all"; anything unrecognised is rejected.
func ParseChannel(value string) (Channel, error) {
	switch Channel(value) {
	case "", ChannelAll:
		return ChannelAll, nil
	case ChannelEngagement:
		return ChannelEngagement, nil
	case ChannelPOS:
		return ChannelPOS, nil
	default:
		return "", fmt.Errorf("unknown channel: %q", value)
	}
}

// Window is the inclusive reporting date range, both ends truncated to
// local calendar days. An inverted window (Start after End) matches
// nothing; it is not an error, so a half-typed filter in the UI just
// shows an empty ledger.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a Window from the two calendar-date strings the
// operator picked. Unlike record dates, an unparseable window bound IS
// an error: it is caller input, not data.
func NewWindow(start, end string) (Window, error) {
	startDay, ok := parseDay(start)
	if !ok {
		return Window{}, fmt.Errorf("invalid start date: %q", start)
	}
	endDay, ok := parseDay(end)
	if !ok {
		return Window{}, fmt.Errorf("invalid end date: %q", end)
	}
	return Window{Start: startDay, End: endDay}, nil
}

// Contains reports whether a calendar day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Filters narrows the aggregation: an optional salesperson (0 = all)
// and a display channel.
type Filters struct {
	SalespersonID uint
	Channel       Channel
}

// MatchFollowUp reports whether a follow-up on the given customer counts
// as a closed engagement sale inside the window. The salesperson filter
// applies here; point-of-sale records carry no salesperson attribution.
func MatchFollowUp(w Window, f Filters, customer models.Customer, fu models.FollowUp) bool {
	_, ok := followUpDay(w, f, customer, fu)
	return ok
}

// MatchStockSale reports whether a point-of-sale record falls inside the
// window.
func MatchStockSale(w Window, sale models.StockSale) bool {
	_, ok := stockSaleDay(w, sale)
	return ok
}

// followUpDay applies the engagement predicate and, on a match, hands
// back the calendar day the event buckets under.
func followUpDay(w Window, f Filters, customer models.Customer, fu models.FollowUp) (time.Time, bool) {
	if f.SalespersonID != 0 && customer.SalespersonID != f.SalespersonID {
		return time.Time{}, false
	}
	// Status before amount: a stray amount on a non-won status must never
	// count as revenue.
	if fu.Status != models.StatusClosedWon || fu.Amount <= 0 {
		return time.Time{}, false
	}
	day, ok := parseDay(fu.Date)
	if !ok || !w.Contains(day) {
		return time.Time{}, false
	}
	return day, true
}

func stockSaleDay(w Window, sale models.StockSale) (time.Time, bool) {
	day, ok := parseDay(sale.SaleDate)
	if !ok || !w.Contains(day) {
		return time.Time{}, false
	}
	return day, true
}
