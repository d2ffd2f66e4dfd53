package services

import (
	"fmt"
	"strconv"
	"strings"

	"jims/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const empIDPrefix = "EMP"

// FormatEmpID renders a numeric sequence as the EMP### code. Numbers
// past 999 keep their full width.
func FormatEmpID(n int) string {
	return fmt.Sprintf("%s%03d", empIDPrefix, n)
}

// ParseEmpID extracts the numeric sequence from an EMP### code
func ParseEmpID(code string) (int, error) {
	if !strings.HasPrefix(code, empIDPrefix) {
		return 0, fmt.Errorf("invalid employee code %q", code)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(code, empIDPrefix))
	if err != nil {
		return 0, fmt.Errorf("invalid employee code %q", code)
	}
	return n, nil
}

// nextEmpID computes MAX+1 over the locked employee rows. Must run
// inside the caller's transaction so two concurrent creates cannot
// read the same max.
func nextEmpID(tx *gorm.DB) (string, error) {
	var employees []models.Employee
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("emp_id").Find(&employees).Error; err != nil {
		return "", err
	}

	maxSeq := 0
	for _, e := range employees {
		if n, err := ParseEmpID(e.EmpID); err == nil && n > maxSeq {
			maxSeq = n
		}
	}

	return FormatEmpID(maxSeq + 1), nil
}

// CreateEmployee assigns the next EMP### code and inserts the row in
// one transaction.
func CreateEmployee(db *gorm.DB, employee models.Employee) (models.Employee, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		empID, err := nextEmpID(tx)
		if err != nil {
			return err
		}
		employee.EmpID = empID

		hashed, err := HashPassword(employee.Password)
		if err != nil {
			return err
		}
		employee.Password = hashed

		return tx.Create(&employee).Error
	})

	return employee, err
}
