// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a dollar amount to two decimal places. All internal
// arithmetic stays in full float precision; this is the only place amounts
// get rounded.
func FormatMoney(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatMoneyWhole formats a dollar amount with no cents, comma-grouped.
// e.g., 12345.67 -> "$12,346"
func FormatMoneyWhole(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	n, _ := strconv.ParseInt(d.String(), 10, 64)
	return "$" + FormatNumber(n)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value to one decimal.
// e.g., 35 -> "35.0%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatClock converts an HH:MM time to 12-hour display form.
// e.g., "14:30" -> "2:30 PM"
func FormatClock(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// FormatDay renders a stored date as Today, Yesterday, or a short
// weekday-month-day form.
func FormatDay(date string, now time.Time) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	switch date {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}
	return d.Format("Mon, Jan 2")
}
