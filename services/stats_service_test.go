package services_test

import (
	"testing"
	"time"

	"jims/models"
	"jims/services"
)

func TestCalculateEmployeeStats(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -3)
	old := now.AddDate(0, 0, -30)

	employees := []models.Employee{
		{Status: "Active", Department: "Sales", LastLogin: &recent},
		{Status: "Active", Department: "Sales", LastLogin: &old},
		{Status: "Inactive", Department: "Warehouse"},
		{Status: "Active", Department: ""},
	}

	stats := services.CalculateEmployeeStats(employees, now)

	if stats.TotalEmployees != 4 {
		t.Errorf("TotalEmployees = %d, want 4", stats.TotalEmployees)
	}
	if stats.ActiveEmployees != 3 {
		t.Errorf("ActiveEmployees = %d, want 3", stats.ActiveEmployees)
	}
	if stats.Departments != 2 {
		t.Errorf("Departments = %d, want 2", stats.Departments)
	}
	if stats.NewHires != 1 {
		t.Errorf("NewHires = %d, want 1", stats.NewHires)
	}
}

func TestCalculateSalesStats(t *testing.T) {
	// June 15 2025 is a Sunday, so the week window starts that day
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	sales := []models.SalesRecord{
		{Date: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), Total: 100},
		{Date: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), Total: 50},
		{Date: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), Total: 30},
		{Date: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), Total: 20},
	}

	stats := services.CalculateSalesStats(sales, now)

	if stats.TotalRevenue != 200 {
		t.Errorf("TotalRevenue = %v, want 200", stats.TotalRevenue)
	}
	if stats.CurrentMonthRevenue != 150 {
		t.Errorf("CurrentMonthRevenue = %v, want 150", stats.CurrentMonthRevenue)
	}
	if stats.LastMonthRevenue != 30 {
		t.Errorf("LastMonthRevenue = %v, want 30", stats.LastMonthRevenue)
	}
	if stats.CurrentWeekRevenue != 100 {
		t.Errorf("CurrentWeekRevenue = %v, want 100", stats.CurrentWeekRevenue)
	}

	if len(stats.MonthlyRevenue) != 12 {
		t.Fatalf("MonthlyRevenue has %d entries, want 12", len(stats.MonthlyRevenue))
	}
	june := stats.MonthlyRevenue[5]
	if june.Month != "June" || june.Revenue != 150 || june.OrderCount != 2 {
		t.Errorf("June = %+v, want {June 150 2}", june)
	}
	may := stats.MonthlyRevenue[4]
	if may.Revenue != 30 || may.OrderCount != 1 {
		t.Errorf("May = %+v, want revenue 30 with 1 order", may)
	}
}

func TestCalculatePayrollStats(t *testing.T) {
	records := []models.PayrollRecord{
		{Status: "Paid", NetSalary: 12000},
		{Status: "Paid", NetSalary: 8000},
		{Status: "Pending", NetSalary: 9000},
	}

	stats := services.CalculatePayrollStats(records)

	if stats.TotalPaid != 20000 {
		t.Errorf("TotalPaid = %v, want 20000", stats.TotalPaid)
	}
	if stats.TotalPending != 9000 {
		t.Errorf("TotalPending = %v, want 9000", stats.TotalPending)
	}
	if stats.TotalOverdue != 0 {
		t.Errorf("TotalOverdue = %v, want 0", stats.TotalOverdue)
	}

	if len(stats.ByStatus) != 3 {
		t.Fatalf("ByStatus has %d entries, want 3", len(stats.ByStatus))
	}
	if stats.ByStatus[0].Status != "Paid" || stats.ByStatus[0].Count != 2 {
		t.Errorf("ByStatus[0] = %+v, want Paid with count 2", stats.ByStatus[0])
	}
}
