package controllers

import (
	stderrors "errors"
	"time"

	"jims/dto"
	"jims/errors"
	"jims/models"
	"jims/response"
	"jims/services"
	"jims/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) AttendanceController {
	return AttendanceController{DB: db}
}

// GetAttendance lists attendance records, optionally scoped to one
// employee and/or one calendar date.
func (ac AttendanceController) GetAttendance(c *gin.Context) {
	query := ac.DB.Preload("Employee").Order("date DESC, time_in DESC")

	if employeeIDStr := c.Query("employeeId"); employeeIDStr != "" {
		query = query.Where("employee_id = ?", employeeIDStr)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := services.ParseDate(dateStr)
		if err != nil {
			response.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date)
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toAttendanceResponse(r))
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

// CheckIn records today's attendance. The password re-check and the
// one-per-day rule run in one transaction inside the service.
func (ac AttendanceController) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Employee id and password are required")
		return
	}

	record, err := services.CheckIn(ac.DB, req.EmployeeID, req.Password, time.Now())
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrEmployeeNotFound):
			response.NotFound(c)
		case stderrors.Is(err, errors.ErrInvalidPassword):
			response.Unauthorized(c)
		case stderrors.Is(err, errors.ErrAlreadyCheckedIn):
			response.BadRequest(c, "Already checked in today")
		default:
			utils.LogError("Check-in failed for employee %d: %v", req.EmployeeID, err)
			response.ServerError(c)
		}
		return
	}

	utils.LogInfo("Employee %d checked in at %s", req.EmployeeID, record.TimeIn.Format("15:04"))
	response.Success(c, toAttendanceResponse(record))
}

// CheckOut stamps timeOut on today's record
func (ac AttendanceController) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Employee id is required")
		return
	}

	record, err := services.CheckOut(ac.DB, req.EmployeeID, time.Now())
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrNoCheckInToday):
			response.BadRequest(c, "No check-in recorded today")
		case stderrors.Is(err, errors.ErrAlreadyCheckedOut):
			response.BadRequest(c, "Already checked out today")
		default:
			utils.LogError("Check-out failed for employee %d: %v", req.EmployeeID, err)
			response.ServerError(c)
		}
		return
	}

	response.Success(c, toAttendanceResponse(record))
}

func toAttendanceResponse(r models.AttendanceRecord) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.Employee.Name,
		Date:         services.FormatDate(r.Date),
		TimeIn:       r.TimeIn.Format("15:04:05"),
		Status:       r.Status,
	}
	if r.TimeOut != nil {
		resp.TimeOut = r.TimeOut.Format("15:04:05")
	}
	return resp
}
