package constants

// Employee status
const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
)

// Inventory stock status, derived from the stock count on every write.
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out Of Stock"
)

// LowStockThreshold is the stock count at or below which an item is
// considered low. Not configurable per product.
const LowStockThreshold = 10

// Payment methods accepted on sales records
const (
	PaymentMethodCash    = "Cash"
	PaymentMethodGcash   = "Gcash"
	PaymentMethodPayMaya = "PayMaya"
	PaymentMethodJuanpay = "Juanpay"
)

// E-wallet transaction types
const (
	TransactionTypeCashIn  = "Cash-In"
	TransactionTypeCashOut = "Cash-Out"
)

// Payroll status
const (
	PayrollStatusPaid    = "Paid"
	PayrollStatusPending = "Pending"
	PayrollStatusOverdue = "Overdue"
)

// Attendance status
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusLate    = "Late"
)

// Roles carried in JWT claims
const (
	RoleAdmin = 1
	RoleStaff = 0
)
