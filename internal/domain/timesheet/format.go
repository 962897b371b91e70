package timesheet

import (
	"fmt"
	"math"
)

// FormatHours renders fractional hours as H"h"MM, e.g. 7.5 -> "7h30".
func FormatHours(hours float64) string {
	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	return fmt.Sprintf("%dh%02d", int(whole), int(minutes))
}

// FormatCurrency renders a monetary amount for display, e.g. "R$ 22.50".
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("R$ %.2f", amount)
}
