package models

import "time"

// AttendanceRecord holds one check-in per employee per day. The
// composite unique index enforces the at-most-one-per-day rule at the
// database, not just in handler code.
type AttendanceRecord struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmployeeID uint       `gorm:"not null;uniqueIndex:idx_employee_date" json:"employeeId"`
	Date       time.Time  `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`
	TimeIn     time.Time  `gorm:"not null" json:"timeIn"`
	TimeOut    *time.Time `json:"timeOut"`
	Status     string     `gorm:"default:Present" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}
