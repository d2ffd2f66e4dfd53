package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"jims/models"
)

// paymentStampLayout is the legacy payroll stamp. The field order
// (YY-DD-MM) and the dash in the time part come from the original
// system; downstream reports parse this exact shape.
const paymentStampLayout = "06-02-01 15-04"

// DateLayout is the calendar date format used across the API
const DateLayout = "2006-01-02"

var monthMap = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// NormalizeMonth accepts a month name ("September") or number ("9")
// and returns the month number.
func NormalizeMonth(month string) (int, error) {
	m := strings.ToLower(strings.TrimSpace(month))
	if n, ok := monthMap[m]; ok {
		return n, nil
	}

	if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 12 {
		return n, nil
	}

	return 0, fmt.Errorf("invalid month %q", month)
}

// MonthName returns the English name for a month number
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// ComputeNetSalary derives the net from basic salary and deductions
func ComputeNetSalary(basicSalary, deductions float64) float64 {
	return basicSalary - deductions
}

// FormatPaymentStamp renders a payment date in the legacy stamp shape
func FormatPaymentStamp(t time.Time) string {
	return t.Format(paymentStampLayout)
}

// FormatDate renders a calendar date with no timezone conversion, so
// a stored DATE column round-trips to the same calendar day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a date-only time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// PayrollTotalsByStatus sums netSalary grouped by status over the
// given (already filtered) records.
func PayrollTotalsByStatus(records []models.PayrollRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.Status] += r.NetSalary
	}
	return totals
}

// PayrollCountsByStatus counts records per status
func PayrollCountsByStatus(records []models.PayrollRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}
