package controllers

import (
	"log"

	"jims/dto"
	"jims/models"
	"jims/response"
	"jims/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const juanpayCacheKey = "juanpay:all"

// JuanPayController manages the JuanPay daily ledger. Each row carries
// the day's beginning balances as a Postgres float array. Deletes are
// soft, matching GCash.
type JuanPayController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewJuanPayController(db *gorm.DB, redisCli *redis.Client) JuanPayController {
	return JuanPayController{DB: db, Redis: redisCli}
}

func (jc JuanPayController) GetRecords(c *gin.Context) {
	ctx := c.Request.Context()

	var records []models.JuanPayRecord
	if err := services.GetFromRedis(ctx, jc.Redis, juanpayCacheKey, &records); err != nil {
		log.Printf("Failed to read juanpay cache: %v", err)
	}

	if len(records) == 0 {
		if err := jc.DB.Order("date DESC, id DESC").Find(&records).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, jc.Redis, juanpayCacheKey, records, listCacheTTL); err != nil {
			log.Printf("Failed to cache juanpay records: %v", err)
		}
	}

	responses := make([]dto.JuanPayResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toJuanPayResponse(r))
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (jc JuanPayController) CreateRecord(c *gin.Context) {
	var req dto.CreateJuanPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Date is required")
		return
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	if req.Ending < 0 || req.Sales < 0 {
		response.ValidationError(c, "Amounts must not be negative")
		return
	}
	for _, b := range req.Beginnings {
		if b < 0 {
			response.ValidationError(c, "Amounts must not be negative")
			return
		}
	}

	record := models.JuanPayRecord{
		Date:       date,
		Beginnings: pq.Float64Array(req.Beginnings),
		Ending:     req.Ending,
		Sales:      req.Sales,
	}

	if err := jc.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to create juanpay record: %v", err)
		response.ServerError(c)
		return
	}

	jc.invalidateCache(c)
	response.Success(c, toJuanPayResponse(record))
}

func (jc JuanPayController) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.JuanPayRecord
	if err := jc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateJuanPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.Date != "" {
		date, err := services.ParseDate(req.Date)
		if err != nil {
			response.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		record.Date = date
	}
	if req.Beginnings != nil {
		for _, b := range req.Beginnings {
			if b < 0 {
				response.ValidationError(c, "Amounts must not be negative")
				return
			}
		}
		record.Beginnings = pq.Float64Array(req.Beginnings)
	}
	if req.Ending != nil {
		if *req.Ending < 0 {
			response.ValidationError(c, "Amounts must not be negative")
			return
		}
		record.Ending = *req.Ending
	}
	if req.Sales != nil {
		if *req.Sales < 0 {
			response.ValidationError(c, "Amounts must not be negative")
			return
		}
		record.Sales = *req.Sales
	}

	if err := jc.DB.Save(&record).Error; err != nil {
		log.Printf("Failed to update juanpay record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	jc.invalidateCache(c)
	response.Success(c, toJuanPayResponse(record))
}

// DeleteRecord soft-deletes; the row stays in the table with its
// deleted_at stamp.
func (jc JuanPayController) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.JuanPayRecord
	if err := jc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := jc.DB.Delete(&record).Error; err != nil {
		log.Printf("Failed to delete juanpay record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	jc.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

func (jc JuanPayController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), jc.Redis, juanpayCacheKey); err != nil {
		log.Printf("Failed to invalidate juanpay cache: %v", err)
	}
}

func toJuanPayResponse(r models.JuanPayRecord) dto.JuanPayResponse {
	return dto.JuanPayResponse{
		ID:         r.ID,
		Date:       services.FormatDate(r.Date),
		Beginnings: []float64(r.Beginnings),
		Ending:     r.Ending,
		Sales:      r.Sales,
	}
}
