package models

import "time"

type Employee struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmpID      string     `gorm:"unique;type:varchar(10);not null" json:"empId"`
	Name       string     `gorm:"not null" json:"name"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	Contact    string     `json:"contact"`
	Status     string     `gorm:"default:Active" json:"status"`
	LastLogin  *time.Time `json:"lastLogin"`
	Salary     float64    `gorm:"default:0" json:"salary"`
	Password   string     `json:"-"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Attendance []AttendanceRecord `json:"attendance,omitempty" gorm:"foreignKey:EmployeeID"`
}
