package controllers

import (
	stderrors "errors"
	"log"
	"strconv"
	"strings"

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
	payrollCacheKey  = "payroll:all"
	payrollPageLimit = 10
)

// PayrollController manages payroll records. There is no update route:
// a wrong record gets deleted and re-created.
type PayrollController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewPayrollController(db *gorm.DB, redisCli *redis.Client) PayrollController {
	return PayrollController{DB: db, Redis: redisCli}
}

// GetPayroll lists payroll records with month/year/status filters, a
// name or empId search, and pagination.
func (pc PayrollController) GetPayroll(c *gin.Context) {
	page, limit := parsePagination(c, payrollPageLimit)
	search := c.Query("search")
	statusFilter := c.Query("status")
	yearFilter := c.Query("year")

	monthFilter := 0
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := services.NormalizeMonth(monthStr)
		if err != nil {
			response.BadRequest(c, "Month is not valid")
			return
		}
		monthFilter = m
	}

	records, err := pc.loadRecords(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := make([]models.PayrollRecord, 0, len(records))
	for _, r := range records {
		if search != "" {
			term := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(r.EmployeeName), term) &&
				!strings.Contains(strings.ToLower(r.EmpID), term) {
				continue
			}
		}
		if statusFilter != "" && !strings.HasPrefix(statusFilter, "All") && r.Status != statusFilter {
			continue
		}
		if monthFilter != 0 && r.Month != monthFilter {
			continue
		}
		if yearFilter != "" {
			if y, err := strconv.Atoi(yearFilter); err == nil && r.Year != y {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	pageItems := services.Paginate(filtered, page, limit)

	responses := make([]dto.PayrollResponse, 0, len(pageItems))
	for _, r := range pageItems {
		responses = append(responses, toPayrollResponse(r))
	}

	response.SuccessWithPagination(c, responses, page, limit, len(filtered))
}

// CreatePayroll resolves the employee by EMP code, normalizes the
// month and recomputes netSalary server-side.
func (pc PayrollController) CreatePayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Employee id, month, year and basic salary are required")
		return
	}

	var employee models.Employee
	if err := pc.DB.Where("emp_id = ?", req.EmpID).First(&employee).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	month, err := services.NormalizeMonth(req.Month)
	if err != nil {
		response.BadRequest(c, "Month is not valid")
		return
	}

	record := models.PayrollRecord{
		EmployeeName: employee.Name,
		EmpID:        employee.EmpID,
		Role:         employee.Role,
		Month:        month,
		Year:         req.Year,
		BasicSalary:  *req.BasicSalary,
		Deductions:   req.Deductions,
		NetSalary:    services.ComputeNetSalary(*req.BasicSalary, req.Deductions),
		Status:       req.Status,
	}

	if req.PaymentDate != "" {
		paymentDate, err := services.ParseDate(req.PaymentDate)
		if err != nil {
			response.BadRequest(c, "Payment date must be YYYY-MM-DD")
			return
		}
		record.PaymentDate = &paymentDate
	}

	if err := validator.ValidatePayrollRecord(&record); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := pc.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to create payroll record: %v", err)
		response.ServerError(c)
		return
	}

	pc.invalidateCache(c)
	response.Success(c, toPayrollResponse(record))
}

// DeletePayroll removes the row permanently
func (pc PayrollController) DeletePayroll(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.PayrollRecord
	if err := pc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := pc.DB.Delete(&record).Error; err != nil {
		log.Printf("Failed to delete payroll record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	pc.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

func (pc PayrollController) loadRecords(c *gin.Context) ([]models.PayrollRecord, error) {
	ctx := c.Request.Context()

	var records []models.PayrollRecord
	if err := services.GetFromRedis(ctx, pc.Redis, payrollCacheKey, &records); err != nil {
		log.Printf("Failed to read payroll cache: %v", err)
	}

	if len(records) == 0 {
		if err := pc.DB.Order("year DESC, month DESC, id DESC").Find(&records).Error; err != nil {
			return nil, err
		}
		if err := services.SetToRedis(ctx, pc.Redis, payrollCacheKey, records, listCacheTTL); err != nil {
			log.Printf("Failed to cache payroll records: %v", err)
		}
	}

	return records, nil
}

func (pc PayrollController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), pc.Redis, payrollCacheKey); err != nil {
		log.Printf("Failed to invalidate payroll cache: %v", err)
	}
}

func toPayrollResponse(r models.PayrollRecord) dto.PayrollResponse {
	resp := dto.PayrollResponse{
		ID:           r.ID,
		EmployeeName: r.EmployeeName,
		EmpID:        r.EmpID,
		Role:         r.Role,
		Month:        r.Month,
		Year:         r.Year,
		BasicSalary:  r.BasicSalary,
		Deductions:   r.Deductions,
		NetSalary:    r.NetSalary,
		Status:       r.Status,
	}
	if r.PaymentDate != nil {
		resp.PaymentDate = services.FormatPaymentStamp(*r.PaymentDate)
	}
	return resp
}
