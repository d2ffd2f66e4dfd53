package controllers

import (
	"log"

	"jims/dto"
	"jims/models"
	"jims/response"
	"jims/services"
	"jims/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	employeeCacheKey     = "employees:all"
	employeePageLimit    = 5
	maxEmployeePageLimit = 100
)

type EmployeeController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client) EmployeeController {
	return EmployeeController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetEmployees lists employees with search, dropdown filters and
// pagination. The full list is cached; filtering happens in memory.
func (ec EmployeeController) GetEmployees(c *gin.Context) {
	page, limit := parsePagination(c, employeePageLimit)
	if limit > maxEmployeePageLimit {
		limit = maxEmployeePageLimit
	}

	search := c.Query("search")
	roleFilter := c.Query("role")
	departmentFilter := c.Query("department")
	statusFilter := c.Query("status")

	ctx := c.Request.Context()

	var employees []models.Employee
	if err := services.GetFromRedis(ctx, ec.Redis, employeeCacheKey, &employees); err != nil {
		log.Printf("Failed to read employee cache: %v", err)
	}

	if len(employees) == 0 {
		if err := ec.DB.Order("id").Find(&employees).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(ctx, ec.Redis, employeeCacheKey, employees, listCacheTTL); err != nil {
			log.Printf("Failed to cache employees: %v", err)
		}
	}

	filtered := services.FilterEmployees(employees, search, roleFilter, departmentFilter, statusFilter)
	pageItems := services.Paginate(filtered, page, limit)

	responses := make([]dto.EmployeeResponse, 0, len(pageItems))
	for _, e := range pageItems {
		responses = append(responses, toEmployeeResponse(e))
	}

	response.SuccessWithPagination(c, responses, page, limit, len(filtered))
}

func (ec EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toEmployeeResponse(employee))
}

// CreateEmployee assigns the next EMP### code inside a transaction
func (ec EmployeeController) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Name and password are required")
		return
	}

	employee := models.Employee{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Contact:    req.Contact,
		Status:     req.Status,
		Salary:     req.Salary,
		Password:   req.Password,
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	created, err := services.CreateEmployee(ec.DB, employee)
	if err != nil {
		log.Printf("Failed to create employee: %v", err)
		response.ServerError(c)
		return
	}

	ec.invalidateCache(c)
	response.Success(c, toEmployeeResponse(created))
}

func (ec EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if req.Department != "" {
		employee.Department = req.Department
	}
	if req.Contact != "" {
		employee.Contact = req.Contact
	}
	if req.Status != "" {
		if !validator.IsValidEmployeeStatus(req.Status) {
			response.ValidationError(c, "Status must be Active or Inactive")
			return
		}
		employee.Status = req.Status
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			response.ValidationError(c, "Salary must not be negative")
			return
		}
		employee.Salary = *req.Salary
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			response.ValidationError(c, "Password must be at least 6 characters")
			return
		}
		hashed, err := services.HashPassword(req.Password)
		if err != nil {
			response.ServerError(c)
			return
		}
		employee.Password = hashed
	}

	if err := ec.DB.Save(&employee).Error; err != nil {
		log.Printf("Failed to update employee %d: %v", id, err)
		response.ServerError(c)
		return
	}

	ec.invalidateCache(c)
	response.Success(c, toEmployeeResponse(employee))
}

// DeleteEmployee removes the row permanently
func (ec EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	var employee models.Employee
	if err := ec.DB.First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ec.DB.Delete(&employee).Error; err != nil {
		log.Printf("Failed to delete employee %d: %v", id, err)
		response.ServerError(c)
		return
	}

	ec.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

func (ec EmployeeController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), ec.Redis, employeeCacheKey); err != nil {
		log.Printf("Failed to invalidate employee cache: %v", err)
	}
}
