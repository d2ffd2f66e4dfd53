package models

import "time"

type PayrollRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EmployeeName string     `gorm:"not null" json:"employeeName"`
	EmpID        string     `gorm:"column:emp_id;not null" json:"empId"`
	Role         string     `json:"role"`
	Month        int        `gorm:"not null" json:"month"`
	Year         int        `gorm:"not null" json:"year"`
	BasicSalary  float64    `gorm:"not null" json:"basicSalary"`
	Deductions   float64    `gorm:"default:0" json:"deductions"`
	NetSalary    float64    `gorm:"not null" json:"netSalary"`
	Status       string     `gorm:"default:Pending" json:"status"`
	PaymentDate  *time.Time `json:"paymentDate"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
