package controllers

import (
	"time"

	"jims/models"
	"jims/response"
	"jims/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsController serves the dashboard aggregates. Stats always read
// the live tables; they never go through the list caches.
type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) StatsController {
	return StatsController{DB: db}
}

func (st StatsController) GetEmployeeStats(c *gin.Context) {
	var employees []models.Employee
	if err := st.DB.Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.CalculateEmployeeStats(employees, time.Now()))
}

func (st StatsController) GetSalesStats(c *gin.Context) {
	var sales []models.SalesRecord
	if err := st.DB.Find(&sales).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.CalculateSalesStats(sales, time.Now()))
}

func (st StatsController) GetPayrollStats(c *gin.Context) {
	var records []models.PayrollRecord
	if err := st.DB.Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.CalculatePayrollStats(records))
}
