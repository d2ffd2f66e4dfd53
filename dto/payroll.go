package dto

type CreatePayrollRequest struct {
	EmpID       string   `json:"empId" binding:"required"`
	Month       string   `json:"month" binding:"required"`
	Year        int      `json:"year" binding:"required"`
	BasicSalary *float64 `json:"basicSalary" binding:"required"`
	Deductions  float64  `json:"deductions"`
	Status      string   `json:"status"`
	PaymentDate string   `json:"paymentDate"`
}

type PayrollResponse struct {
	ID           uint    `json:"id"`
	EmployeeName string  `json:"employeeName"`
	EmpID        string  `json:"empId"`
	Role         string  `json:"role"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	BasicSalary  float64 `json:"basicSalary"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"netSalary"`
	Status       string  `json:"status"`
	PaymentDate  string  `json:"paymentDate,omitempty"`
}
