package controllers

import (
	"jims/dto"
	"jims/models"
	"jims/response"
	"jims/services"
	"jims/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) AuthController {
	return AuthController{DB: db}
}

// Login accepts empId or display name as the username
func (a AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Username and password are required")
		return
	}

	token, employee, err := services.Login(a.DB, req.Username, req.Password)
	if err != nil {
		utils.LogError("Login failed for %s: %v", req.Username, err)
		response.Unauthorized(c)
		return
	}

	utils.LogInfo("Employee %s logged in", employee.EmpID)
	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toEmployeeResponse(employee),
	})
}

func toEmployeeResponse(e models.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:         e.ID,
		EmpID:      e.EmpID,
		Name:       e.Name,
		Role:       e.Role,
		Department: e.Department,
		Contact:    e.Contact,
		Status:     e.Status,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.LastLogin != nil {
		resp.LastLogin = e.LastLogin.Format("2006-01-02 15:04:05")
	}
	return resp
}
