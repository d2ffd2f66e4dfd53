package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an application error class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"

	// Employee errors
	ErrCodeInvalidEmployeeID ErrorCode = "INVALID_EMPLOYEE_ID"
	ErrCodeEmployeeExists    ErrorCode = "EMPLOYEE_EXISTS"
	ErrCodeInvalidStatus     ErrorCode = "INVALID_STATUS"

	// Inventory / sales errors
	ErrCodeInvalidStock   ErrorCode = "INVALID_STOCK"
	ErrCodeInvalidPrice   ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidAmount  ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidpayment ErrorCode = "INVALID_PAYMENT_METHOD"

	// Attendance errors
	ErrCodeAlreadyCheckedIn ErrorCode = "ALREADY_CHECKED_IN"
	ErrCodeNotCheckedIn     ErrorCode = "NOT_CHECKED_IN"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries an error code alongside a human readable message
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from err, or nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnauthorized     = errors.New("unauthorized")

	// Attendance errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNoCheckInToday    = errors.New("no check-in recorded today")

	// Record errors
	ErrRecordNotFound = errors.New("record not found")
	ErrRecordDeleted  = errors.New("record already deleted")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
