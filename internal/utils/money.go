package utils

import (
	"fmt"
	"math"
)

// FormatRupees renders an amount as an Indian-grouped currency string,
// e.g. 1234567.5 -> "₹12,34,567.50". Negative amounts keep the sign in
// front of the symbol.
func FormatRupees(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	paise := int64(math.Round(amount * 100))
	rupees := paise / 100
	fraction := paise % 100

	formatted := fmt.Sprintf("₹%s.%02d", groupIndian(rupees), fraction)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupIndian applies lakh/crore digit grouping: the last three digits
// form one group, every pair after that gets its own comma.
func groupIndian(value int64) string {
	digits := fmt.Sprintf("%d", value)
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	grouped := ""
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return head + grouped + "," + tail
}
