package services

import (
	"errors"
	"fmt"
	"time"

	"jims/constants"
	"jims/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenExpiryMinutes = 3 * 24 * 60

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a bcrypt hash against a plaintext candidate
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// GetEmployeeByUsername resolves a login name against empId first,
// then the display name.
func GetEmployeeByUsername(db *gorm.DB, username string) (models.Employee, error) {
	var employee models.Employee

	result := db.Where("emp_id = ?", username).First(&employee)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		result = db.Where("name = ?", username).First(&employee)
	}

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return employee, fmt.Errorf("no employee found for username %s", username)
	}
	if result.Error != nil {
		return employee, result.Error
	}

	return employee, nil
}

// Login verifies credentials, stamps lastLogin and returns a signed
// token for the employee.
func Login(db *gorm.DB, username, password string) (string, models.Employee, error) {
	employee, err := GetEmployeeByUsername(db, username)
	if err != nil {
		return "", employee, err
	}

	if !CheckPassword(employee.Password, password) {
		return "", employee, fmt.Errorf("invalid password")
	}

	now := time.Now()
	employee.LastLogin = &now
	if err := db.Save(&employee).Error; err != nil {
		return "", employee, err
	}

	role := constants.RoleStaff
	if employee.Role == "Admin" || employee.Role == "Manager" {
		role = constants.RoleAdmin
	}

	token, err := GenerateToken(UserInfo{UserId: employee.ID, Role: role}, accessTokenExpiryMinutes)
	if err != nil {
		return "", employee, err
	}

	return token, employee, nil
}
