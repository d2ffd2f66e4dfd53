package controllers

import (
	"log"
	"strings"
	"time"

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
	salesCacheKey  = "sales:all"
	salesPageLimit = 10
)

type SalesController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSalesController(db *gorm.DB, redisCli *redis.Client) SalesController {
	return SalesController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetSales lists sales with product search, payment method filter and
// pagination over the cached full list.
func (sc SalesController) GetSales(c *gin.Context) {
	page, limit := parsePagination(c, salesPageLimit)
	search := c.Query("search")
	methodFilter := c.Query("paymentMethod")

	var dateFrom, dateTo time.Time
	if fromStr := c.Query("dateFrom"); fromStr != "" {
		from, err := services.ParseDate(fromStr)
		if err != nil {
			response.BadRequest(c, "dateFrom must be YYYY-MM-DD")
			return
		}
		dateFrom = from
	}
	if toStr := c.Query("dateTo"); toStr != "" {
		to, err := services.ParseDate(toStr)
		if err != nil {
			response.BadRequest(c, "dateTo must be YYYY-MM-DD")
			return
		}
		dateTo = to
	}

	sales, err := sc.loadSales(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := make([]models.SalesRecord, 0, len(sales))
	for _, sale := range sales {
		if search != "" && !strings.Contains(strings.ToLower(sale.ProductName), strings.ToLower(search)) {
			continue
		}
		if methodFilter != "" && !strings.HasPrefix(methodFilter, "All") && sale.PaymentMethod != methodFilter {
			continue
		}
		if !dateFrom.IsZero() && sale.Date.Before(dateFrom) {
			continue
		}
		if !dateTo.IsZero() && sale.Date.After(dateTo) {
			continue
		}
		filtered = append(filtered, sale)
	}

	pageItems := services.Paginate(filtered, page, limit)

	responses := make([]dto.SalesResponse, 0, len(pageItems))
	for _, sale := range pageItems {
		responses = append(responses, toSalesResponse(sale))
	}

	response.SuccessWithPagination(c, responses, page, limit, len(filtered))
}

func (sc SalesController) GetSaleByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	var sale models.SalesRecord
	if err := sc.DB.First(&sale, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toSalesResponse(sale))
}

// CreateSale recomputes total from quantity and price; the client
// cannot set it.
func (sc SalesController) CreateSale(c *gin.Context) {
	var req dto.CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Date, product, quantity, price and payment method are required")
		return
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Date must be YYYY-MM-DD")
		return
	}

	sale := models.SalesRecord{
		Date:          date,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Total:         float64(req.Quantity) * req.Price,
		PaymentMethod: req.PaymentMethod,
	}

	if err := validator.ValidateSalesRecord(&sale); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := sc.DB.Create(&sale).Error; err != nil {
		log.Printf("Failed to create sale: %v", err)
		response.ServerError(c)
		return
	}

	sc.invalidateCache(c)
	response.Success(c, toSalesResponse(sale))
}

func (sc SalesController) UpdateSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	var sale models.SalesRecord
	if err := sc.DB.First(&sale, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateSalesRequest
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
		sale.Date = date
	}
	if req.ProductName != "" {
		sale.ProductName = req.ProductName
	}
	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}
	if req.Price != nil {
		sale.Price = *req.Price
	}
	if req.PaymentMethod != "" {
		sale.PaymentMethod = req.PaymentMethod
	}
	sale.Total = float64(sale.Quantity) * sale.Price

	if err := validator.ValidateSalesRecord(&sale); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := sc.DB.Save(&sale).Error; err != nil {
		log.Printf("Failed to update sale %d: %v", id, err)
		response.ServerError(c)
		return
	}

	sc.invalidateCache(c)
	response.Success(c, toSalesResponse(sale))
}

// DeleteSale removes the row permanently
func (sc SalesController) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	var sale models.SalesRecord
	if err := sc.DB.First(&sale, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := sc.DB.Delete(&sale).Error; err != nil {
		log.Printf("Failed to delete sale %d: %v", id, err)
		response.ServerError(c)
		return
	}

	sc.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

func (sc SalesController) loadSales(c *gin.Context) ([]models.SalesRecord, error) {
	ctx := c.Request.Context()

	var sales []models.SalesRecord
	if err := services.GetFromRedis(ctx, sc.Redis, salesCacheKey, &sales); err != nil {
		log.Printf("Failed to read sales cache: %v", err)
	}

	if len(sales) == 0 {
		if err := sc.DB.Order("date DESC, id DESC").Find(&sales).Error; err != nil {
			return nil, err
		}

		if err := services.SetToRedis(ctx, sc.Redis, salesCacheKey, sales, listCacheTTL); err != nil {
			log.Printf("Failed to cache sales: %v", err)
		}
	}

	return sales, nil
}

func (sc SalesController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), sc.Redis, salesCacheKey); err != nil {
		log.Printf("Failed to invalidate sales cache: %v", err)
	}
}

func toSalesResponse(sale models.SalesRecord) dto.SalesResponse {
	return dto.SalesResponse{
		ID:            sale.ID,
		Date:          services.FormatDate(sale.Date),
		ProductName:   sale.ProductName,
		Quantity:      sale.Quantity,
		Price:         sale.Price,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
	}
}
