package validator

import (
	"regexp"

	"jims/constants"
	"jims/errors"
	"jims/models"
)

// ValidateEmployee checks an employee payload before it reaches the
// database.
func ValidateEmployee(employee *models.Employee) error {
	if employee.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name must not be empty", nil)
	}

	if employee.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(employee.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if employee.Contact != "" && !isValidContact(employee.Contact) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Contact number is not valid", nil)
	}

	if employee.Status != "" && !IsValidEmployeeStatus(employee.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Status must be Active or Inactive", nil)
	}

	if employee.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Salary must not be negative", nil)
	}

	return nil
}

func IsValidEmployeeStatus(status string) bool {
	return status == constants.EmployeeStatusActive || status == constants.EmployeeStatusInactive
}

// IsValidPaymentMethod checks sales payment methods
func IsValidPaymentMethod(method string) bool {
	switch method {
	case constants.PaymentMethodCash,
		constants.PaymentMethodGcash,
		constants.PaymentMethodPayMaya,
		constants.PaymentMethodJuanpay:
		return true
	}
	return false
}

// IsValidTransactionType checks e-wallet transaction types
func IsValidTransactionType(txType string) bool {
	return txType == constants.TransactionTypeCashIn || txType == constants.TransactionTypeCashOut
}

// IsValidPayrollStatus checks payroll statuses
func IsValidPayrollStatus(status string) bool {
	switch status {
	case constants.PayrollStatusPaid,
		constants.PayrollStatusPending,
		constants.PayrollStatusOverdue:
		return true
	}
	return false
}

// ValidateInventoryItem checks an inventory payload
func ValidateInventoryItem(item *models.InventoryItem) error {
	if item.ProductName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Product name must not be empty", nil)
	}

	if item.Stock < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidStock, "Stock must not be negative", nil)
	}

	if item.ProductPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Product price must not be negative", nil)
	}

	return nil
}

// ValidateSalesRecord checks a sales payload
func ValidateSalesRecord(sale *models.SalesRecord) error {
	if sale.ProductName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Product name must not be empty", nil)
	}

	if sale.Quantity <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Quantity must be greater than zero", nil)
	}

	if sale.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Price must not be negative", nil)
	}

	if !IsValidPaymentMethod(sale.PaymentMethod) {
		return errors.NewAppError(errors.ErrCodeInvalidpayment, "Payment method is not valid", nil)
	}

	return nil
}

// ValidateWalletAmounts checks the shared e-wallet numeric fields
func ValidateWalletAmounts(amount, serviceCharge float64, transactionType string) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must not be negative", nil)
	}

	if serviceCharge < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Service charge must not be negative", nil)
	}

	if !IsValidTransactionType(transactionType) {
		return errors.NewAppError(errors.ErrCodeValidation, "Transaction type must be Cash-In or Cash-Out", nil)
	}

	return nil
}

// ValidatePayrollRecord checks a payroll payload
func ValidatePayrollRecord(record *models.PayrollRecord) error {
	if record.EmpID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Employee ID must not be empty", nil)
	}

	if record.Month < 1 || record.Month > 12 {
		return errors.NewAppError(errors.ErrCodeValidation, "Month must be between 1 and 12", nil)
	}

	if record.Year < 2000 {
		return errors.NewAppError(errors.ErrCodeValidation, "Year is not valid", nil)
	}

	if record.BasicSalary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Basic salary must not be negative", nil)
	}

	if record.Deductions < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Deductions must not be negative", nil)
	}

	if record.Status != "" && !IsValidPayrollStatus(record.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Status must be Paid, Pending or Overdue", nil)
	}

	return nil
}

// isValidContact accepts PH-style mobile numbers
func isValidContact(contact string) bool {
	contactRegex := regexp.MustCompile(`^(\+63|0)[0-9]{10}$`)
	return contactRegex.MatchString(contact)
}
