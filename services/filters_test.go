package services_test

import (
	"reflect"
	"testing"

	"jims/models"
	"jims/services"
)

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, EmpID: "EMP001", Name: "Ana Cruz", Role: "Manager", Department: "Sales", Status: "Active", Contact: "09171234567"},
		{ID: 2, EmpID: "EMP002", Name: "Ben Reyes", Role: "Cashier", Department: "Sales", Status: "Active", Contact: "09179876543"},
		{ID: 3, EmpID: "EMP003", Name: "Carla Santos", Role: "Cashier", Department: "Warehouse", Status: "Inactive", Contact: "09170001111"},
	}
}

func TestFilterEmployeesIdentity(t *testing.T) {
	employees := sampleEmployees()

	tests := []struct {
		name                       string
		search, role, dept, status string
	}{
		{"all empty", "", "", "", ""},
		{"all dropdown defaults", "", "All Roles", "All Departments", "All Status"},
		{"mixed defaults", "", "All Roles", "", "All Status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.FilterEmployees(employees, tt.search, tt.role, tt.dept, tt.status)
			if !reflect.DeepEqual(got, employees) {
				t.Errorf("no-op filters changed the list: got %d items, want %d", len(got), len(employees))
			}
		})
	}
}

func TestFilterEmployees(t *testing.T) {
	employees := sampleEmployees()

	tests := []struct {
		name                       string
		search, role, dept, status string
		wantIDs                    []uint
	}{
		{"search by name", "ana", "", "", "", []uint{1}},
		{"search by empId", "EMP002", "", "", "", []uint{2}},
		{"search by contact", "0001111", "", "", "", []uint{3}},
		{"role filter", "", "Cashier", "", "", []uint{2, 3}},
		{"department filter", "", "", "Warehouse", "", []uint{3}},
		{"status filter", "", "", "", "Inactive", []uint{3}},
		{"filters combine with AND", "", "Cashier", "Sales", "", []uint{2}},
		{"search and filter", "carla", "Cashier", "", "", []uint{3}},
		{"no match", "zzz", "", "", "", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.FilterEmployees(employees, tt.search, tt.role, tt.dept, tt.status)
			gotIDs := make([]uint, 0, len(got))
			for _, e := range got {
				gotIDs = append(gotIDs, e.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{"empty list still has one page", 0, 5, 1},
		{"exact fit", 10, 5, 2},
		{"partial last page", 11, 5, 3},
		{"single page", 3, 5, 1},
		{"zero limit", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.PageCount(tt.total, tt.limit); got != tt.want {
				t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPaginatePartition(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	limit := 3

	// concatenating every page must reproduce the list exactly
	var rebuilt []int
	for page := 0; page < services.PageCount(len(items), limit); page++ {
		rebuilt = append(rebuilt, services.Paginate(items, page, limit)...)
	}

	if !reflect.DeepEqual(rebuilt, items) {
		t.Errorf("pages do not partition the list: got %v, want %v", rebuilt, items)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	if got := services.Paginate(items, 5, 2); len(got) != 0 {
		t.Errorf("page past the end returned %v, want empty", got)
	}
	if got := services.Paginate(items, -1, 2); len(got) != 2 {
		t.Errorf("negative page returned %d items, want 2", len(got))
	}
}
