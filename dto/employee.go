package dto

import "time"

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Contact    string  `json:"contact"`
	Status     string  `json:"status"`
	Salary     float64 `json:"salary"`
	Password   string  `json:"password" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Contact    string   `json:"contact"`
	Status     string   `json:"status"`
	Salary     *float64 `json:"salary"`
	Password   string   `json:"password"`
}

type EmployeeResponse struct {
	ID         uint      `json:"id"`
	EmpID      string    `json:"empId"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
	Status     string    `json:"status"`
	LastLogin  string    `json:"lastLogin,omitempty"`
	Salary     float64   `json:"salary"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
