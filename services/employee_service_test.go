package services_test

import (
	"testing"

	"jims/services"
)

func TestFormatEmpID(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "EMP001"},
		{42, "EMP042"},
		{999, "EMP999"},
		{1000, "EMP1000"},
	}

	for _, tt := range tests {
		if got := services.FormatEmpID(tt.n); got != tt.want {
			t.Errorf("FormatEmpID(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseEmpID(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    int
		wantErr bool
	}{
		{"padded", "EMP001", 1, false},
		{"three digits", "EMP123", 123, false},
		{"four digits", "EMP1000", 1000, false},
		{"missing prefix", "001", 0, true},
		{"wrong prefix", "STF001", 0, true},
		{"no digits", "EMPabc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.ParseEmpID(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEmpID(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEmpID(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestEmpIDRoundTrip(t *testing.T) {
	for _, n := range []int{1, 9, 99, 999, 1234} {
		got, err := services.ParseEmpID(services.FormatEmpID(n))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip of %d gave %d", n, got)
		}
	}
}
