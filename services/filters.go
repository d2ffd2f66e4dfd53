package services

import (
	"strings"

	"jims/models"
)

// allFilter is the prefix of the no-op dropdown values ("All Roles",
// "All Departments", "All Status").
func isAllFilter(value string) bool {
	return value == "" || strings.HasPrefix(value, "All")
}

// matchesSearch does a case-insensitive substring match over name,
// empId and contact.
func matchesSearch(e models.Employee, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.EmpID), term) ||
		strings.Contains(strings.ToLower(e.Contact), term)
}

// FilterEmployees combines the search term with the three dropdown
// filters using logical AND. With every filter at its "All …" default
// the input list comes back unchanged.
func FilterEmployees(employees []models.Employee, searchTerm, roleFilter, departmentFilter, statusFilter string) []models.Employee {
	if searchTerm == "" && isAllFilter(roleFilter) && isAllFilter(departmentFilter) && isAllFilter(statusFilter) {
		return employees
	}

	filtered := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if !matchesSearch(e, searchTerm) {
			continue
		}
		if !isAllFilter(roleFilter) && e.Role != roleFilter {
			continue
		}
		if !isAllFilter(departmentFilter) && e.Department != departmentFilter {
			continue
		}
		if !isAllFilter(statusFilter) && e.Status != statusFilter {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// PageCount is max(1, ceil(total/limit))
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	count := (total + limit - 1) / limit
	if count < 1 {
		return 1
	}
	return count
}

// PageBounds returns the [start, end) slice window for a zero-based
// page. Pages past the end yield an empty window.
func PageBounds(total, page, limit int) (int, int) {
	if page < 0 {
		page = 0
	}
	start := page * limit
	if start >= total {
		return total, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

// Paginate slices one page out of a filtered list
func Paginate[T any](items []T, page, limit int) []T {
	start, end := PageBounds(len(items), page, limit)
	return items[start:end]
}
