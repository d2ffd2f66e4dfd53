package services

import (
	"time"

	"jims/constants"
	"jims/dto"
	"jims/models"
)

// newHireWindow is the lookback for counting an employee as a new hire
const newHireWindow = 7 * 24 * time.Hour

// CalculateEmployeeStats aggregates over a snapshot of the employee
// list. now is explicit so the same snapshot always yields the same
// buckets.
func CalculateEmployeeStats(employees []models.Employee, now time.Time) dto.EmployeeStatsResponse {
	stats := dto.EmployeeStatsResponse{
		TotalEmployees: len(employees),
	}

	departments := make(map[string]bool)
	for _, e := range employees {
		if e.Status == constants.EmployeeStatusActive {
			stats.ActiveEmployees++
		}
		if e.Department != "" {
			departments[e.Department] = true
		}
		if e.LastLogin != nil && now.Sub(*e.LastLogin) <= newHireWindow && !e.LastLogin.After(now) {
			stats.NewHires++
		}
	}
	stats.Departments = len(departments)

	return stats
}

// CalculateSalesStats aggregates sales records into the dashboard
// revenue figures. now anchors the month/week windows.
func CalculateSalesStats(sales []models.SalesRecord, now time.Time) dto.SalesStatsResponse {
	var stats dto.SalesStatsResponse

	currentMonth := now.Format("2006-01")
	lastMonth := now.AddDate(0, -1, 0).Format("2006-01")
	weekStart := DateOnly(now.AddDate(0, 0, -int(now.Weekday())))
	weekEnd := weekStart.AddDate(0, 0, 7)

	for _, sale := range sales {
		stats.TotalRevenue += sale.Total

		saleMonth := sale.Date.Format("2006-01")
		if saleMonth == currentMonth {
			stats.CurrentMonthRevenue += sale.Total
		}
		if saleMonth == lastMonth {
			stats.LastMonthRevenue += sale.Total
		}

		if !sale.Date.Before(weekStart) && sale.Date.Before(weekEnd) {
			stats.CurrentWeekRevenue += sale.Total
		}
	}

	currentYear := now.Year()
	for i := 1; i <= 12; i++ {
		var revenue float64
		var orderCount int
		monthKey := time.Date(currentYear, time.Month(i), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")

		for _, sale := range sales {
			if sale.Date.Format("2006-01") == monthKey {
				revenue += sale.Total
				orderCount++
			}
		}

		stats.MonthlyRevenue = append(stats.MonthlyRevenue, dto.MonthRevenue{
			Month:      MonthName(i),
			Revenue:    revenue,
			OrderCount: orderCount,
		})
	}

	return stats
}

// CalculatePayrollStats sums netSalary per status over the filtered
// payroll set.
func CalculatePayrollStats(records []models.PayrollRecord) dto.PayrollStatsResponse {
	totals := PayrollTotalsByStatus(records)
	counts := PayrollCountsByStatus(records)

	stats := dto.PayrollStatsResponse{
		TotalPaid:    totals[constants.PayrollStatusPaid],
		TotalPending: totals[constants.PayrollStatusPending],
		TotalOverdue: totals[constants.PayrollStatusOverdue],
	}

	for _, status := range []string{constants.PayrollStatusPaid, constants.PayrollStatusPending, constants.PayrollStatusOverdue} {
		stats.ByStatus = append(stats.ByStatus, dto.PayrollStatusTotal{
			Status: status,
			Total:  totals[status],
			Count:  counts[status],
		})
	}

	return stats
}
