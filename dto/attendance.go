package dto

type CheckInRequest struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type CheckOutRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
}

type AttendanceResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	TimeIn       string `json:"timeIn"`
	TimeOut      string `json:"timeOut,omitempty"`
	Status       string `json:"status"`
}
