package services_test

import (
	"testing"
	"time"

	"jims/models"
	"jims/services"
)

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"full name", "September", 9, false},
		{"lowercase name", "january", 1, false},
		{"padded name", "  December ", 12, false},
		{"numeric", "9", 9, false},
		{"numeric december", "12", 12, false},
		{"zero", "0", 0, true},
		{"thirteen", "13", 0, true},
		{"garbage", "Septembre", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.NormalizeMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeMonth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "January"},
		{9, "September"},
		{12, "December"},
		{0, ""},
		{13, ""},
	}

	for _, tt := range tests {
		if got := services.MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestComputeNetSalary(t *testing.T) {
	tests := []struct {
		name        string
		basic, dedu float64
		want        float64
	}{
		{"plain", 20000, 1500, 18500},
		{"no deductions", 15000, 0, 15000},
		{"deductions exceed basic", 1000, 1500, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ComputeNetSalary(tt.basic, tt.dedu); got != tt.want {
				t.Errorf("ComputeNetSalary(%v, %v) = %v, want %v", tt.basic, tt.dedu, got, tt.want)
			}
		})
	}
}

func TestFormatPaymentStamp(t *testing.T) {
	// year, then day, then month, with a dash between hour and minute
	stamp := services.FormatPaymentStamp(time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC))
	if stamp != "25-07-03 14-30" {
		t.Errorf("FormatPaymentStamp = %q, want %q", stamp, "25-07-03 14-30")
	}
}

func TestDateRoundTrip(t *testing.T) {
	dates := []string{"2025-01-01", "2025-02-28", "2024-02-29", "2025-12-31"}

	for _, s := range dates {
		parsed, err := services.ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", s, err)
		}
		if got := services.FormatDate(parsed); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, s := range []string{"2025-13-01", "01-01-2025", "yesterday", ""} {
		if _, err := services.ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestPayrollTotalsByStatus(t *testing.T) {
	records := []models.PayrollRecord{
		{Status: "Paid", NetSalary: 10000},
		{Status: "Paid", NetSalary: 5000},
		{Status: "Pending", NetSalary: 7000},
		{Status: "Overdue", NetSalary: 2000},
	}

	totals := services.PayrollTotalsByStatus(records)
	counts := services.PayrollCountsByStatus(records)

	if totals["Paid"] != 15000 {
		t.Errorf("Paid total = %v, want 15000", totals["Paid"])
	}
	if totals["Pending"] != 7000 {
		t.Errorf("Pending total = %v, want 7000", totals["Pending"])
	}
	if totals["Overdue"] != 2000 {
		t.Errorf("Overdue total = %v, want 2000", totals["Overdue"])
	}
	if counts["Paid"] != 2 || counts["Pending"] != 1 || counts["Overdue"] != 1 {
		t.Errorf("counts = %v, want Paid:2 Pending:1 Overdue:1", counts)
	}
}
